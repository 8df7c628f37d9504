package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey struct{}

// IdentityMiddleware decorates requests carrying a valid bearer token with
// the requester identity. Requests without one pass through untouched: the
// booking core accepts anonymous submissions.
func IdentityMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				raw := strings.TrimPrefix(header, "Bearer ")
				if identity, err := ParseToken(secret, raw); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), contextKey{}, identity))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFromContext returns the authenticated requester, if any.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(contextKey{}).(*Identity)
	return identity, ok
}
