package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamdock/teamdock/internal/auth"
	"github.com/teamdock/teamdock/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("round-trip-secret", time.Hour)

	token, err := tm.Generate(7, 2, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, uint(2), claims.Company)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestTokenExpired(t *testing.T) {
	tm := auth.NewTokenManager("round-trip-secret", -time.Minute)

	token, err := tm.Generate(7, 2, "user@example.com")
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager("issuer-secret", time.Hour)
	verifier := auth.NewTokenManager("verifier-secret", time.Hour)

	token, err := issuer.Generate(7, 2, "user@example.com")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenGarbage(t *testing.T) {
	tm := auth.NewTokenManager("round-trip-secret", time.Hour)

	_, err := tm.Validate("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
