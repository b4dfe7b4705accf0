package user

import (
	"github.com/vforit/ticktrack/internal/application/user/usecases"
)

type RegisterRequest struct {
	Username    string `json:"username" binding:"required,not_blank,max=80"`
	Password    string `json:"password" binding:"required"`
	Fullname    string `json:"fullname" binding:"required,not_blank,max=120"`
	Designation string `json:"designation"`
	Role        string `json:"role"`
	Approver    bool   `json:"approver"`
}

func (r RegisterRequest) ToCommand() usecases.RegisterUserCommand {
	return usecases.RegisterUserCommand{
		Username:    r.Username,
		Password:    r.Password,
		Fullname:    r.Fullname,
		Designation: r.Designation,
		Role:        r.Role,
		Approver:    r.Approver,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UpdateUserRequest struct {
	Username    *string `json:"username"`
	Password    *string `json:"password"`
	Fullname    *string `json:"fullname"`
	Designation *string `json:"designation"`
	Role        *string `json:"role"`
	Approver    *bool   `json:"approver"`
}

func (r UpdateUserRequest) ToCommand(userID uint) usecases.UpdateUserCommand {
	return usecases.UpdateUserCommand{
		UserID:      userID,
		Username:    r.Username,
		Password:    r.Password,
		Fullname:    r.Fullname,
		Designation: r.Designation,
		Role:        r.Role,
		Approver:    r.Approver,
	}
}
