package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vforit/ticktrack/internal/domain/activity"
	"github.com/vforit/ticktrack/internal/infrastructure/persistence/mappers"
	"github.com/vforit/ticktrack/internal/infrastructure/persistence/models"
	"github.com/vforit/ticktrack/internal/shared/db"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
)

type ActivityLogRepository struct {
	db     *gorm.DB
	mapper mappers.ActivityLogMapper
}

func NewActivityLogRepository(database *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{
		db:     database,
		mapper: mappers.NewActivityLogMapper(),
	}
}

func (r *ActivityLogRepository) Save(ctx context.Context, log *activity.Log) error {
	model := r.mapper.ToModel(log)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save activity log: %w", err)
	}

	return log.SetID(model.ID)
}

func (r *ActivityLogRepository) Update(ctx context.Context, log *activity.Log) error {
	model := r.mapper.ToModel(log)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ActivityLogModel{}).
		Where("id = ?", model.ID).
		Select("user_id", "ticket_id", "action").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update activity log: %w", result.Error)
	}

	return nil
}

func (r *ActivityLogRepository) Delete(ctx context.Context, logID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ActivityLogModel{}, logID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete activity log: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("activity log not found")
	}

	return nil
}

func (r *ActivityLogRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.ActivityLogModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket activity logs: %w", err)
	}

	return nil
}

func (r *ActivityLogRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).Delete(&models.ActivityLogModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete user activity logs: %w", err)
	}

	return nil
}

func (r *ActivityLogRepository) GetByID(ctx context.Context, logID uint) (*activity.Log, error) {
	var model models.ActivityLogModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, logID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("activity log not found")
		}
		return nil, fmt.Errorf("failed to find activity log: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ActivityLogRepository) List(ctx context.Context) ([]*activity.Log, error) {
	return r.list(ctx, nil)
}

func (r *ActivityLogRepository) ListByUserID(ctx context.Context, userID uint) ([]*activity.Log, error) {
	return r.list(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("user_id = ?", userID)
	})
}

func (r *ActivityLogRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*activity.Log, error) {
	return r.list(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("ticket_id = ?", ticketID)
	})
}

func (r *ActivityLogRepository) list(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*activity.Log, error) {
	var logModels []models.ActivityLogModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.ActivityLogModel{})
	if scope != nil {
		query = scope(query)
	}

	if err := query.Order("id").Find(&logModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}

	logs := make([]*activity.Log, 0, len(logModels))
	for i := range logModels {
		l, err := r.mapper.ToDomain(&logModels[i])
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, nil
}
