package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/domain/activity"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type DeleteLogUseCase struct {
	activityRepo activity.Repository
	logger       logger.Interface
}

func NewDeleteLogUseCase(activityRepo activity.Repository, logger logger.Interface) *DeleteLogUseCase {
	return &DeleteLogUseCase{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (uc *DeleteLogUseCase) Execute(ctx context.Context, logID uint) error {
	if err := uc.activityRepo.Delete(ctx, logID); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		uc.logger.Errorw("failed to delete activity log", "error", err, "log_id", logID)
		return fmt.Errorf("failed to delete activity log: %w", err)
	}

	uc.logger.Infow("activity log deleted", "log_id", logID)
	return nil
}
