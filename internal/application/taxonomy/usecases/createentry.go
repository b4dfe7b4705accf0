package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/application/taxonomy/dto"
	"github.com/vforit/ticktrack/internal/domain/taxonomy"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type CreateEntryCommand struct {
	Type   string
	Value  string
	Label  string
	Color  *string
	Parent *string
}

type CreateEntryUseCase struct {
	entryRepo taxonomy.Repository
	logger    logger.Interface
}

func NewCreateEntryUseCase(entryRepo taxonomy.Repository, logger logger.Interface) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		entryRepo: entryRepo,
		logger:    logger,
	}
}

func (uc *CreateEntryUseCase) Execute(ctx context.Context, cmd CreateEntryCommand) (*dto.ConfigEntryDTO, error) {
	entry, err := taxonomy.NewEntry(cmd.Type, cmd.Value, cmd.Label, cmd.Color, cmd.Parent)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.entryRepo.Save(ctx, entry); err != nil {
		uc.logger.Errorw("failed to save config entry", "error", err, "type", cmd.Type)
		return nil, fmt.Errorf("failed to save config entry: %w", err)
	}

	uc.logger.Infow("config entry created", "entry_id", entry.ID(), "type", entry.Type(), "value", entry.Value())
	return dto.NewConfigEntryDTO(entry), nil
}
