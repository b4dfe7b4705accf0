package usecases

import (
	"context"

	"github.com/vforit/ticktrack/internal/application/taxonomy/dto"
)

// Executor interfaces decouple the HTTP handlers from the concrete use cases.

type CreateEntryExecutor interface {
	Execute(ctx context.Context, cmd CreateEntryCommand) (*dto.ConfigEntryDTO, error)
}

type GetEntryExecutor interface {
	Execute(ctx context.Context, entryID uint) (*dto.ConfigEntryDTO, error)
}

type ListEntriesExecutor interface {
	Execute(ctx context.Context) ([]*dto.ConfigEntryDTO, error)
}

type UpdateEntryExecutor interface {
	Execute(ctx context.Context, cmd UpdateEntryCommand) (*dto.ConfigEntryDTO, error)
}

type DeleteEntryExecutor interface {
	Execute(ctx context.Context, entryID uint) error
}
