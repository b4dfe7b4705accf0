package usecases

import (
	"context"

	"github.com/vforit/ticktrack/internal/application/activity/dto"
)

// Executor interfaces decouple the HTTP handlers from the concrete use cases.

type CreateLogExecutor interface {
	Execute(ctx context.Context, cmd CreateLogCommand) (*dto.ActivityLogDTO, error)
}

type GetLogExecutor interface {
	Execute(ctx context.Context, logID uint) (*dto.ActivityLogDTO, error)
}

type ListLogsExecutor interface {
	Execute(ctx context.Context) ([]*dto.ActivityLogDTO, error)
	ExecuteByUser(ctx context.Context, userID uint) ([]*dto.ActivityLogDTO, error)
	ExecuteByTicket(ctx context.Context, ticketID uint) ([]*dto.ActivityLogDTO, error)
}

type UpdateLogExecutor interface {
	Execute(ctx context.Context, cmd UpdateLogCommand) (*dto.ActivityLogDTO, error)
}

type DeleteLogExecutor interface {
	Execute(ctx context.Context, logID uint) error
}
