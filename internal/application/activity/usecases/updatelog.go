package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/application/activity/dto"
	"github.com/vforit/ticktrack/internal/domain/activity"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

// UpdateLogCommand carries a partial update. The double pointer on
// TicketID lets a present-but-null field detach the log from its ticket.
type UpdateLogCommand struct {
	LogID    uint
	UserID   *uint
	TicketID **uint
	Action   *string
}

type UpdateLogUseCase struct {
	activityRepo activity.Repository
	logger       logger.Interface
}

func NewUpdateLogUseCase(activityRepo activity.Repository, logger logger.Interface) *UpdateLogUseCase {
	return &UpdateLogUseCase{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (uc *UpdateLogUseCase) Execute(ctx context.Context, cmd UpdateLogCommand) (*dto.ActivityLogDTO, error) {
	log, err := uc.activityRepo.GetByID(ctx, cmd.LogID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get activity log", "error", err, "log_id", cmd.LogID)
		return nil, fmt.Errorf("failed to get activity log: %w", err)
	}

	patch := activity.Patch{
		UserID:   cmd.UserID,
		TicketID: cmd.TicketID,
		Action:   cmd.Action,
	}

	if err := log.ApplyPatch(patch); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.activityRepo.Update(ctx, log); err != nil {
		uc.logger.Errorw("failed to update activity log", "error", err, "log_id", cmd.LogID)
		return nil, fmt.Errorf("failed to update activity log: %w", err)
	}

	return dto.NewActivityLogDTO(log), nil
}
