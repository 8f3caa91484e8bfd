package auth_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasklight/todo-api/internal/auth"
	"github.com/tasklight/todo-api/internal/config"
)

func newTokenManager(ttlHours int) *auth.TokenManager {
	return auth.NewTokenManager(&config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTLHours: ttlHours,
		Issuer:        "todo-api-test",
	})
}

func TestTokenManager_IssueAndValidate(t *testing.T) {
	tokens := newTokenManager(24)
	userID := uuid.New()

	token, err := tokens.Issue(userID, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.Validate(token)
	require.NoError(t, err)

	// The decoded token must yield the same user it was issued for
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestTokenManager_MalformedToken(t *testing.T) {
	tokens := newTokenManager(24)

	for _, tc := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tokens.Validate(tc)
		assert.ErrorIs(t, err, auth.ErrInvalidToken, "token %q", tc)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuing := newTokenManager(24)
	verifying := auth.NewTokenManager(&config.AuthConfig{
		JWTSecret:     "a-different-secret",
		TokenTTLHours: 24,
		Issuer:        "todo-api-test",
	})

	token, err := issuing.Issue(uuid.New(), "user@example.com")
	require.NoError(t, err)

	_, err = verifying.Validate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	// A negative TTL produces a token that expired before it was issued
	tokens := newTokenManager(-1)

	token, err := tokens.Issue(uuid.New(), "user@example.com")
	require.NoError(t, err)

	_, err = tokens.Validate(token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}
