package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/application/taxonomy/dto"
	"github.com/vforit/ticktrack/internal/domain/taxonomy"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type ListEntriesUseCase struct {
	entryRepo taxonomy.Repository
	logger    logger.Interface
}

func NewListEntriesUseCase(entryRepo taxonomy.Repository, logger logger.Interface) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
		logger:    logger,
	}
}

func (uc *ListEntriesUseCase) Execute(ctx context.Context) ([]*dto.ConfigEntryDTO, error) {
	entries, err := uc.entryRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list config entries", "error", err)
		return nil, fmt.Errorf("failed to list config entries: %w", err)
	}

	return dto.NewConfigEntryDTOs(entries), nil
}
