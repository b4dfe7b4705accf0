package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/application/user/dto"
	"github.com/vforit/ticktrack/internal/domain/user"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type RegisterUserCommand struct {
	Username    string
	Password    string
	Fullname    string
	Designation string
	Role        string
	Approver    bool
}

type RegisterUserUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	logger         logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	passwordHasher PasswordHasher,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		logger:         logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.UserDTO, error) {
	if cmd.Password == "" {
		return nil, apperrors.NewValidationError("password is required")
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check username existence", "error", err)
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("username already exists")
	}

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(cmd.Username, hash, cmd.Fullname, cmd.Designation, cmd.Role, cmd.Approver)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if apperrors.IsConflict(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to save user", "error", err, "username", cmd.Username)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "username", newUser.Username())
	return dto.NewUserDTO(newUser), nil
}
