package usecases

import (
	"context"

	"github.com/vforit/ticktrack/internal/application/user/dto"
	"github.com/vforit/ticktrack/internal/infrastructure/auth"
)

// Executor interfaces decouple the HTTP handlers from the concrete use cases.

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.UserDTO, error)
}

type LoginUserExecutor interface {
	Execute(ctx context.Context, cmd LoginUserCommand) (*dto.LoginResultDTO, error)
}

type LogoutUserExecutor interface {
	Execute(ctx context.Context, claims *auth.Claims) error
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, refreshToken string) (*RefreshTokenResult, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, userID uint) (*dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context) ([]*dto.UserDTO, error)
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, userID uint) error
}
