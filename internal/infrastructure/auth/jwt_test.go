package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_Generate(t *testing.T) {
	service := NewJWTService("test-secret", 30, 120)

	pair, err := service.Generate(7, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(30*60), pair.ExpiresIn)

	access, err := service.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(7), access.UserID)
	assert.Equal(t, "alice", access.Username)
	assert.Equal(t, TokenTypeAccess, access.TokenType)
	assert.True(t, access.Fresh, "login-minted access tokens are fresh")
	assert.NotEmpty(t, access.ID)

	refresh, err := service.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refresh.TokenType)
	assert.False(t, refresh.Fresh)
	assert.NotEqual(t, access.ID, refresh.ID, "each token gets its own jti")
}

func TestJWTService_GenerateAccess_NotFresh(t *testing.T) {
	service := NewJWTService("test-secret", 30, 120)

	token, err := service.GenerateAccess(7, "alice")
	require.NoError(t, err)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.False(t, claims.Fresh, "refresh-minted access tokens are not fresh")
}

func TestJWTService_Verify_InvalidTokens(t *testing.T) {
	service := NewJWTService("test-secret", 30, 120)
	other := NewJWTService("other-secret", 30, 120)

	pair, err := other.Generate(1, "bob")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"garbage", "not.a.jwt"},
		{"wrong secret", pair.AccessToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Verify(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestJWTService_Verify_Expired(t *testing.T) {
	service := NewJWTService("test-secret", 0, 0)

	pair, err := service.Generate(1, "bob")
	require.NoError(t, err)

	_, err = service.Verify(pair.AccessToken)
	assert.Error(t, err)
}

func TestClaims_RemainingLifetime(t *testing.T) {
	service := NewJWTService("test-secret", 30, 120)

	pair, err := service.Generate(1, "bob")
	require.NoError(t, err)

	claims, err := service.Verify(pair.AccessToken)
	require.NoError(t, err)

	remaining := claims.RemainingLifetime()
	assert.Greater(t, remaining, 29*time.Minute)
	assert.LessOrEqual(t, remaining, 30*time.Minute)

	var zero Claims
	assert.Equal(t, time.Duration(0), zero.RemainingLifetime())
}
