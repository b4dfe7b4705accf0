package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/application/user/dto"
	"github.com/vforit/ticktrack/internal/domain/user"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type LoginUserCommand struct {
	Username string
	Password string
}

type LoginUserUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	tokenService   TokenService
	logger         logger.Interface
}

func NewLoginUserUseCase(
	userRepo user.Repository,
	passwordHasher PasswordHasher,
	tokenService TokenService,
	logger logger.Interface,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		tokenService:   tokenService,
		logger:         logger,
	}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, cmd LoginUserCommand) (*dto.LoginResultDTO, error) {
	existingUser, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if apperrors.IsNotFound(err) {
			// Generic message so an unknown username is indistinguishable
			// from a wrong password.
			return nil, apperrors.NewUnauthorizedError("invalid username or password")
		}
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := uc.passwordHasher.Verify(cmd.Password, existingUser.PasswordHash()); err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid username or password")
	}

	tokens, err := uc.tokenService.Generate(existingUser.ID(), existingUser.Username())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "user_id", existingUser.ID())
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID(), "username", existingUser.Username())

	return &dto.LoginResultDTO{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
		User:         dto.NewUserDTO(existingUser),
	}, nil
}
