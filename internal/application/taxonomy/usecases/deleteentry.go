package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/domain/taxonomy"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type DeleteEntryUseCase struct {
	entryRepo taxonomy.Repository
	logger    logger.Interface
}

func NewDeleteEntryUseCase(entryRepo taxonomy.Repository, logger logger.Interface) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		entryRepo: entryRepo,
		logger:    logger,
	}
}

func (uc *DeleteEntryUseCase) Execute(ctx context.Context, entryID uint) error {
	if err := uc.entryRepo.Delete(ctx, entryID); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		uc.logger.Errorw("failed to delete config entry", "error", err, "entry_id", entryID)
		return fmt.Errorf("failed to delete config entry: %w", err)
	}

	uc.logger.Infow("config entry deleted", "entry_id", entryID)
	return nil
}
