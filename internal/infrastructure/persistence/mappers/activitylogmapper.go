package mappers

import (
	"github.com/vforit/ticktrack/internal/domain/activity"
	"github.com/vforit/ticktrack/internal/infrastructure/persistence/models"
	"github.com/vforit/ticktrack/internal/shared/biztime"
)

type ActivityLogMapper interface {
	ToModel(l *activity.Log) *models.ActivityLogModel
	ToDomain(model *models.ActivityLogModel) (*activity.Log, error)
}

type activityLogMapperImpl struct{}

func NewActivityLogMapper() ActivityLogMapper {
	return &activityLogMapperImpl{}
}

func (m *activityLogMapperImpl) ToModel(l *activity.Log) *models.ActivityLogModel {
	return &models.ActivityLogModel{
		ID:        l.ID(),
		UserID:    l.UserID(),
		TicketID:  l.TicketID(),
		Action:    l.Action(),
		CreatedAt: l.CreatedAt().UnixMilli(),
	}
}

func (m *activityLogMapperImpl) ToDomain(model *models.ActivityLogModel) (*activity.Log, error) {
	return activity.ReconstructLog(
		model.ID,
		model.UserID,
		model.TicketID,
		model.Action,
		biztime.UnixMilliToTime(model.CreatedAt),
	)
}
