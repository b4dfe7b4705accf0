package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/application/taxonomy/dto"
	"github.com/vforit/ticktrack/internal/domain/taxonomy"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

// UpdateEntryCommand carries a partial update. Color and Parent use double
// pointers so a present-but-null field clears the stored value.
type UpdateEntryCommand struct {
	EntryID uint
	Type    *string
	Value   *string
	Label   *string
	Color   **string
	Parent  **string
}

type UpdateEntryUseCase struct {
	entryRepo taxonomy.Repository
	logger    logger.Interface
}

func NewUpdateEntryUseCase(entryRepo taxonomy.Repository, logger logger.Interface) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		entryRepo: entryRepo,
		logger:    logger,
	}
}

func (uc *UpdateEntryUseCase) Execute(ctx context.Context, cmd UpdateEntryCommand) (*dto.ConfigEntryDTO, error) {
	entry, err := uc.entryRepo.GetByID(ctx, cmd.EntryID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get config entry", "error", err, "entry_id", cmd.EntryID)
		return nil, fmt.Errorf("failed to get config entry: %w", err)
	}

	patch := taxonomy.Patch{
		Type:   cmd.Type,
		Value:  cmd.Value,
		Label:  cmd.Label,
		Color:  cmd.Color,
		Parent: cmd.Parent,
	}

	if err := entry.ApplyPatch(patch); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.entryRepo.Update(ctx, entry); err != nil {
		uc.logger.Errorw("failed to update config entry", "error", err, "entry_id", cmd.EntryID)
		return nil, fmt.Errorf("failed to update config entry: %w", err)
	}

	return dto.NewConfigEntryDTO(entry), nil
}
