package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity is the authenticated requester, used only to pre-fill the
// booking form. The booking core works identically without one.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Verifier checks a credential pair and returns the requester identity.
// Variants: the static demo credential and a delegated upstream provider.
type Verifier interface {
	Verify(ctx context.Context, email, password string) (*Identity, error)
}

// StaticVerifier holds the single hard-coded demo credential, hashed with
// bcrypt.
type StaticVerifier struct {
	email        string
	name         string
	passwordHash []byte
}

func NewStaticVerifier(email, name, passwordHash string) *StaticVerifier {
	return &StaticVerifier{
		email:        email,
		name:         name,
		passwordHash: []byte(passwordHash),
	}
}

func (v *StaticVerifier) Verify(_ context.Context, email, password string) (*Identity, error) {
	if !strings.EqualFold(strings.TrimSpace(email), v.email) {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &Identity{Name: v.name, Email: v.email}, nil
}

// DelegatedVerifier trusts an external identity provider: the password slot
// carries a token already issued by the provider, signed with the shared
// secret.
type DelegatedVerifier struct {
	secret []byte
}

func NewDelegatedVerifier(secret string) *DelegatedVerifier {
	return &DelegatedVerifier{secret: []byte(secret)}
}

func (v *DelegatedVerifier) Verify(_ context.Context, email, token string) (*Identity, error) {
	identity, err := ParseToken(v.secret, token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if email != "" && !strings.EqualFold(email, identity.Email) {
		return nil, ErrInvalidCredentials
	}
	return identity, nil
}

// HashPassword is a helper for provisioning the demo credential.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}
