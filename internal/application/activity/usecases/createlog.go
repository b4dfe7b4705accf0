package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/application/activity/dto"
	"github.com/vforit/ticktrack/internal/domain/activity"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type CreateLogCommand struct {
	UserID   uint
	TicketID *uint
	Action   string
}

type CreateLogUseCase struct {
	activityRepo activity.Repository
	logger       logger.Interface
}

func NewCreateLogUseCase(activityRepo activity.Repository, logger logger.Interface) *CreateLogUseCase {
	return &CreateLogUseCase{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (uc *CreateLogUseCase) Execute(ctx context.Context, cmd CreateLogCommand) (*dto.ActivityLogDTO, error) {
	log, err := activity.NewLog(cmd.UserID, cmd.TicketID, cmd.Action)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.activityRepo.Save(ctx, log); err != nil {
		uc.logger.Errorw("failed to save activity log", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to save activity log: %w", err)
	}

	return dto.NewActivityLogDTO(log), nil
}
