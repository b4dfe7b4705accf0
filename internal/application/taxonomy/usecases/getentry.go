package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/application/taxonomy/dto"
	"github.com/vforit/ticktrack/internal/domain/taxonomy"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type GetEntryUseCase struct {
	entryRepo taxonomy.Repository
	logger    logger.Interface
}

func NewGetEntryUseCase(entryRepo taxonomy.Repository, logger logger.Interface) *GetEntryUseCase {
	return &GetEntryUseCase{
		entryRepo: entryRepo,
		logger:    logger,
	}
}

func (uc *GetEntryUseCase) Execute(ctx context.Context, entryID uint) (*dto.ConfigEntryDTO, error) {
	entry, err := uc.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get config entry", "error", err, "entry_id", entryID)
		return nil, fmt.Errorf("failed to get config entry: %w", err)
	}

	return dto.NewConfigEntryDTO(entry), nil
}
