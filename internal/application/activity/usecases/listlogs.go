package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/application/activity/dto"
	"github.com/vforit/ticktrack/internal/domain/activity"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type ListLogsUseCase struct {
	activityRepo activity.Repository
	logger       logger.Interface
}

func NewListLogsUseCase(activityRepo activity.Repository, logger logger.Interface) *ListLogsUseCase {
	return &ListLogsUseCase{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (uc *ListLogsUseCase) Execute(ctx context.Context) ([]*dto.ActivityLogDTO, error) {
	logs, err := uc.activityRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list activity logs", "error", err)
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}

	return dto.NewActivityLogDTOs(logs), nil
}

// ExecuteByUser returns the logs recorded for one user. An empty result is
// reported as not found.
func (uc *ListLogsUseCase) ExecuteByUser(ctx context.Context, userID uint) ([]*dto.ActivityLogDTO, error) {
	logs, err := uc.activityRepo.ListByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list activity logs by user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	if len(logs) == 0 {
		return nil, apperrors.NewNotFoundError("no activity logs found for user")
	}

	return dto.NewActivityLogDTOs(logs), nil
}

// ExecuteByTicket returns the logs recorded against one ticket. An empty
// result is reported as not found.
func (uc *ListLogsUseCase) ExecuteByTicket(ctx context.Context, ticketID uint) ([]*dto.ActivityLogDTO, error) {
	logs, err := uc.activityRepo.ListByTicketID(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to list activity logs by ticket", "error", err, "ticket_id", ticketID)
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	if len(logs) == 0 {
		return nil, apperrors.NewNotFoundError("no activity logs found for ticket")
	}

	return dto.NewActivityLogDTOs(logs), nil
}
