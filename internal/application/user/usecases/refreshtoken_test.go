package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vforit/ticktrack/internal/infrastructure/auth"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
)

func refreshClaims(jti string, ttl time.Duration) *auth.Claims {
	return &auth.Claims{
		UserID:    7,
		Username:  "amy",
		TokenType: auth.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
}

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	t.Run("mints a non-fresh access token and burns the refresh jti", func(t *testing.T) {
		var revokedJTI string
		var revokedTTL time.Duration
		mockTokens := &mockTokenService{
			VerifyFunc: func(tokenString string) (*auth.Claims, error) {
				require.Equal(t, "the-refresh-token", tokenString)
				return refreshClaims("jti-refresh", time.Hour), nil
			},
			GenerateAccessFunc: func(userID uint, username string) (string, error) {
				assert.Equal(t, uint(7), userID)
				assert.Equal(t, "amy", username)
				return "new-access", nil
			},
		}
		mockStore := &mockRevocationStore{
			RevokeFunc: func(ctx context.Context, jti string, ttl time.Duration) error {
				revokedJTI = jti
				revokedTTL = ttl
				return nil
			},
		}

		uc := NewRefreshTokenUseCase(mockTokens, mockStore, 30, newNopLogger())
		result, err := uc.Execute(context.Background(), "the-refresh-token")

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "new-access", result.AccessToken)
		assert.Equal(t, int64(1800), result.ExpiresIn)

		assert.Equal(t, "jti-refresh", revokedJTI)
		assert.InDelta(t, time.Hour, revokedTTL, float64(5*time.Second))
	})

	t.Run("invalid token", func(t *testing.T) {
		mockTokens := &mockTokenService{
			VerifyFunc: func(tokenString string) (*auth.Claims, error) {
				return nil, errors.New("bad signature")
			},
		}

		uc := NewRefreshTokenUseCase(mockTokens, &mockRevocationStore{}, 30, newNopLogger())
		_, err := uc.Execute(context.Background(), "garbage")

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	})

	t.Run("access token is rejected", func(t *testing.T) {
		mockTokens := &mockTokenService{
			VerifyFunc: func(tokenString string) (*auth.Claims, error) {
				c := refreshClaims("jti-access", time.Hour)
				c.TokenType = auth.TokenTypeAccess
				return c, nil
			},
		}

		uc := NewRefreshTokenUseCase(mockTokens, &mockRevocationStore{}, 30, newNopLogger())
		_, err := uc.Execute(context.Background(), "an-access-token")

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	})

	t.Run("already revoked token", func(t *testing.T) {
		mockTokens := &mockTokenService{
			VerifyFunc: func(tokenString string) (*auth.Claims, error) {
				return refreshClaims("jti-used", time.Hour), nil
			},
		}
		mockStore := &mockRevocationStore{
			IsRevokedFunc: func(ctx context.Context, jti string) (bool, error) {
				return true, nil
			},
		}

		uc := NewRefreshTokenUseCase(mockTokens, mockStore, 30, newNopLogger())
		_, err := uc.Execute(context.Background(), "used-token")

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	})

	t.Run("mint failure leaves the refresh token usable", func(t *testing.T) {
		revokeCalled := false
		mockTokens := &mockTokenService{
			VerifyFunc: func(tokenString string) (*auth.Claims, error) {
				return refreshClaims("jti-keep", time.Hour), nil
			},
			GenerateAccessFunc: func(userID uint, username string) (string, error) {
				return "", errors.New("signing failed")
			},
		}
		mockStore := &mockRevocationStore{
			RevokeFunc: func(ctx context.Context, jti string, ttl time.Duration) error {
				revokeCalled = true
				return nil
			},
		}

		uc := NewRefreshTokenUseCase(mockTokens, mockStore, 30, newNopLogger())
		_, err := uc.Execute(context.Background(), "the-refresh-token")

		require.Error(t, err)
		assert.False(t, revokeCalled, "a failed mint must not burn the refresh token")
	})
}
