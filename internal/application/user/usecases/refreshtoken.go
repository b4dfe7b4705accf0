package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/infrastructure/auth"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type RefreshTokenResult struct {
	AccessToken string
	ExpiresIn   int64
}

type RefreshTokenUseCase struct {
	tokenService     TokenService
	revocationStore  auth.RevocationStore
	accessExpSeconds int64
	logger           logger.Interface
}

func NewRefreshTokenUseCase(
	tokenService TokenService,
	revocationStore auth.RevocationStore,
	accessExpMinutes int,
	log logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		tokenService:     tokenService,
		revocationStore:  revocationStore,
		accessExpSeconds: int64(accessExpMinutes * 60),
		logger:           log,
	}
}

// Execute mints a non-fresh access token from a refresh token. The consumed
// refresh token's jti is revoked afterwards, making refresh tokens one-time
// use. Revocation happens only after a successful mint so a transient
// failure does not burn the caller's refresh token.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, refreshToken string) (*RefreshTokenResult, error) {
	claims, err := uc.tokenService.Verify(refreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid refresh token")
	}
	if claims.TokenType != auth.TokenTypeRefresh {
		return nil, apperrors.NewUnauthorizedError("token is not a refresh token")
	}

	revoked, err := uc.revocationStore.IsRevoked(ctx, claims.ID)
	if err != nil {
		uc.logger.Errorw("failed to check token revocation", "error", err)
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, apperrors.NewUnauthorizedError("refresh token has been revoked")
	}

	accessToken, err := uc.tokenService.GenerateAccess(claims.UserID, claims.Username)
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err, "user_id", claims.UserID)
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	if err := uc.revocationStore.Revoke(ctx, claims.ID, claims.RemainingLifetime()); err != nil {
		uc.logger.Errorw("failed to revoke consumed refresh token", "error", err, "user_id", claims.UserID)
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	uc.logger.Infow("access token refreshed", "user_id", claims.UserID)

	return &RefreshTokenResult{
		AccessToken: accessToken,
		ExpiresIn:   uc.accessExpSeconds,
	}, nil
}
