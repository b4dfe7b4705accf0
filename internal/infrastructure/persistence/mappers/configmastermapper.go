package mappers

import (
	"github.com/vforit/ticktrack/internal/domain/taxonomy"
	"github.com/vforit/ticktrack/internal/infrastructure/persistence/models"
	"github.com/vforit/ticktrack/internal/shared/biztime"
)

type ConfigMasterMapper interface {
	ToModel(e *taxonomy.Entry) *models.ConfigMasterModel
	ToDomain(model *models.ConfigMasterModel) (*taxonomy.Entry, error)
}

type configMasterMapperImpl struct{}

func NewConfigMasterMapper() ConfigMasterMapper {
	return &configMasterMapperImpl{}
}

func (m *configMasterMapperImpl) ToModel(e *taxonomy.Entry) *models.ConfigMasterModel {
	return &models.ConfigMasterModel{
		ID:        e.ID(),
		Type:      e.Type(),
		Value:     e.Value(),
		Label:     e.Label(),
		Color:     e.Color(),
		Parent:    e.Parent(),
		CreatedAt: e.CreatedAt().UnixMilli(),
		UpdatedAt: e.UpdatedAt().UnixMilli(),
	}
}

func (m *configMasterMapperImpl) ToDomain(model *models.ConfigMasterModel) (*taxonomy.Entry, error) {
	return taxonomy.ReconstructEntry(
		model.ID,
		model.Type,
		model.Value,
		model.Label,
		model.Color,
		model.Parent,
		biztime.UnixMilliToTime(model.CreatedAt),
		biztime.UnixMilliToTime(model.UpdatedAt),
	)
}
