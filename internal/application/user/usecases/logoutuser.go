package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/infrastructure/auth"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type LogoutUserUseCase struct {
	revocationStore auth.RevocationStore
	logger          logger.Interface
}

func NewLogoutUserUseCase(
	revocationStore auth.RevocationStore,
	logger logger.Interface,
) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		revocationStore: revocationStore,
		logger:          logger,
	}
}

// Execute revokes the presented access token for its remaining lifetime.
// Revoking an already revoked token is a no-op.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, claims *auth.Claims) error {
	if err := uc.revocationStore.Revoke(ctx, claims.ID, claims.RemainingLifetime()); err != nil {
		uc.logger.Errorw("failed to revoke token", "error", err, "user_id", claims.UserID)
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	uc.logger.Infow("user logged out", "user_id", claims.UserID, "username", claims.Username)
	return nil
}
