package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vforit/ticktrack/internal/domain/taxonomy"
	"github.com/vforit/ticktrack/internal/infrastructure/persistence/mappers"
	"github.com/vforit/ticktrack/internal/infrastructure/persistence/models"
	"github.com/vforit/ticktrack/internal/shared/db"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
)

type ConfigMasterRepository struct {
	db     *gorm.DB
	mapper mappers.ConfigMasterMapper
}

func NewConfigMasterRepository(database *gorm.DB) *ConfigMasterRepository {
	return &ConfigMasterRepository{
		db:     database,
		mapper: mappers.NewConfigMasterMapper(),
	}
}

func (r *ConfigMasterRepository) Save(ctx context.Context, entry *taxonomy.Entry) error {
	model := r.mapper.ToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save config entry: %w", err)
	}

	return entry.SetID(model.ID)
}

func (r *ConfigMasterRepository) Update(ctx context.Context, entry *taxonomy.Entry) error {
	model := r.mapper.ToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ConfigMasterModel{}).
		Where("id = ?", model.ID).
		Select("type", "value", "label", "color", "parent", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update config entry: %w", result.Error)
	}

	return nil
}

func (r *ConfigMasterRepository) Delete(ctx context.Context, entryID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ConfigMasterModel{}, entryID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete config entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("config entry not found")
	}

	return nil
}

func (r *ConfigMasterRepository) GetByID(ctx context.Context, entryID uint) (*taxonomy.Entry, error) {
	var model models.ConfigMasterModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("config entry not found")
		}
		return nil, fmt.Errorf("failed to find config entry: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ConfigMasterRepository) List(ctx context.Context) ([]*taxonomy.Entry, error) {
	var entryModels []models.ConfigMasterModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id").Find(&entryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list config entries: %w", err)
	}

	entries := make([]*taxonomy.Entry, 0, len(entryModels))
	for i := range entryModels {
		e, err := r.mapper.ToDomain(&entryModels[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}
