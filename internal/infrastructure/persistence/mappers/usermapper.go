package mappers

import (
	"github.com/vforit/ticktrack/internal/domain/user"
	"github.com/vforit/ticktrack/internal/infrastructure/persistence/models"
	"github.com/vforit/ticktrack/internal/shared/biztime"
)

// UserMapper handles the conversion between user domain entities and
// persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type userMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &userMapperImpl{}
}

func (m *userMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		Fullname:     u.Fullname(),
		Designation:  u.Designation(),
		Role:         u.Role(),
		Approver:     u.Approver(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *userMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.PasswordHash,
		model.Fullname,
		model.Designation,
		model.Role,
		model.Approver,
		biztime.UnixMilliToTime(model.CreatedAt),
		biztime.UnixMilliToTime(model.UpdatedAt),
	)
}
