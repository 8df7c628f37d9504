package api

import (
	"encoding/json"
	"net/http"

	"parksmart/internal/auth"
	apperrors "parksmart/internal/errors"
)

type AuthHandler struct {
	verifier auth.Verifier
	secret   []byte
}

func NewAuthHandler(verifier auth.Verifier, secret []byte) *AuthHandler {
	return &AuthHandler{verifier: verifier, secret: secret}
}

// Login verifies the credential pair against the configured verifier
// variant and issues a session token used only to pre-fill the booking
// form.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ErrBadRequest("Invalid request body"))
		return
	}

	identity, err := h.verifier.Verify(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, apperrors.ErrUnauthorized("Invalid credentials"))
		return
	}

	token, err := auth.IssueToken(h.secret, identity)
	if err != nil {
		writeError(w, apperrors.ErrInternal("Could not issue token"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LoginResponse{
		Token: token,
		Name:  identity.Name,
		Email: identity.Email,
	})
}
