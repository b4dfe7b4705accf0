package dto

import "github.com/vforit/ticktrack/internal/domain/user"

// UserDTO is the outward representation of a user. The password hash is
// never included.
type UserDTO struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Fullname    string `json:"fullname"`
	Designation string `json:"designation"`
	Role        string `json:"role"`
	Approver    bool   `json:"approver"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

func NewUserDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:          u.ID(),
		Username:    u.Username(),
		Fullname:    u.Fullname(),
		Designation: u.Designation(),
		Role:        u.Role(),
		Approver:    u.Approver(),
		CreatedAt:   u.CreatedAt().UnixMilli(),
		UpdatedAt:   u.UpdatedAt().UnixMilli(),
	}
}

func NewUserDTOs(users []*user.User) []*UserDTO {
	dtos := make([]*UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, NewUserDTO(u))
	}
	return dtos
}

// LoginResultDTO carries the token pair and the authenticated user.
type LoginResultDTO struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"`
	User         *UserDTO `json:"user"`
}
