package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticVerifier(t *testing.T) {
	hash, err := HashPassword("demo123")
	require.NoError(t, err)
	v := NewStaticVerifier("demo@parksmart.co.za", "Demo User", hash)

	identity, err := v.Verify(context.Background(), "Demo@ParkSmart.co.za", "demo123")
	require.NoError(t, err)
	assert.Equal(t, "demo@parksmart.co.za", identity.Email)
	assert.Equal(t, "Demo User", identity.Name)

	_, err = v.Verify(context.Background(), "demo@parksmart.co.za", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = v.Verify(context.Background(), "other@parksmart.co.za", "demo123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	token, err := IssueToken(secret, &Identity{Name: "Thandi Nkosi", Email: "thandi@example.com"})
	require.NoError(t, err)

	identity, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "Thandi Nkosi", identity.Name)
	assert.Equal(t, "thandi@example.com", identity.Email)

	_, err = ParseToken([]byte("other-secret"), token)
	assert.Error(t, err)
}

func TestDelegatedVerifier(t *testing.T) {
	secret := "shared-secret"
	token, err := IssueToken([]byte(secret), &Identity{Name: "Thandi", Email: "thandi@example.com"})
	require.NoError(t, err)

	v := NewDelegatedVerifier(secret)

	identity, err := v.Verify(context.Background(), "thandi@example.com", token)
	require.NoError(t, err)
	assert.Equal(t, "thandi@example.com", identity.Email)

	// Email may be omitted; the token alone identifies the requester.
	identity, err = v.Verify(context.Background(), "", token)
	require.NoError(t, err)
	assert.Equal(t, "Thandi", identity.Name)

	_, err = v.Verify(context.Background(), "someone-else@example.com", token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = v.Verify(context.Background(), "thandi@example.com", "garbage")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
