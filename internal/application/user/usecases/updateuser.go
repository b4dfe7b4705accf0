package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/application/user/dto"
	"github.com/vforit/ticktrack/internal/domain/user"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

// UpdateUserCommand carries a partial update. Nil fields are left untouched.
// An empty Password is treated as absent so clients can resubmit the full
// form without resetting the credential.
type UpdateUserCommand struct {
	UserID      uint
	Username    *string
	Password    *string
	Fullname    *string
	Designation *string
	Role        *string
	Approver    *bool
}

type UpdateUserUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	logger         logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	passwordHasher PasswordHasher,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		logger:         logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	existingUser, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if cmd.Username != nil && *cmd.Username != existingUser.Username() {
		exists, err := uc.userRepo.ExistsByUsername(ctx, *cmd.Username)
		if err != nil {
			uc.logger.Errorw("failed to check username existence", "error", err)
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if exists {
			return nil, apperrors.NewConflictError("username already exists")
		}
	}

	patch := user.Patch{
		Username:    cmd.Username,
		Fullname:    cmd.Fullname,
		Designation: cmd.Designation,
		Role:        cmd.Role,
		Approver:    cmd.Approver,
	}

	if cmd.Password != nil && *cmd.Password != "" {
		hash, err := uc.passwordHasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		patch.PasswordHash = &hash
	}

	if err := existingUser.ApplyPatch(patch); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		if apperrors.IsConflict(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("user updated", "user_id", existingUser.ID())
	return dto.NewUserDTO(existingUser), nil
}
