package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/application/activity/dto"
	"github.com/vforit/ticktrack/internal/domain/activity"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type GetLogUseCase struct {
	activityRepo activity.Repository
	logger       logger.Interface
}

func NewGetLogUseCase(activityRepo activity.Repository, logger logger.Interface) *GetLogUseCase {
	return &GetLogUseCase{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (uc *GetLogUseCase) Execute(ctx context.Context, logID uint) (*dto.ActivityLogDTO, error) {
	log, err := uc.activityRepo.GetByID(ctx, logID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get activity log", "error", err, "log_id", logID)
		return nil, fmt.Errorf("failed to get activity log: %w", err)
	}

	return dto.NewActivityLogDTO(log), nil
}
