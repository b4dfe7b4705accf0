package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/domain/activity"
	"github.com/vforit/ticktrack/internal/domain/ticket"
	"github.com/vforit/ticktrack/internal/domain/user"
	"github.com/vforit/ticktrack/internal/shared/db"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type DeleteUserUseCase struct {
	userRepo     user.Repository
	ticketRepo   ticket.Repository
	commentRepo  ticket.CommentRepository
	activityRepo activity.Repository
	txManager    *db.TransactionManager
	logger       logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	activityRepo activity.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:     userRepo,
		ticketRepo:   ticketRepo,
		commentRepo:  commentRepo,
		activityRepo: activityRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute deletes a user together with their comments and activity logs.
// A user who still has created tickets cannot be deleted: tickets carry a
// non-nullable creator reference, so the tickets must go first.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, userID uint) error {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", userID)
		return fmt.Errorf("failed to get user: %w", err)
	}

	createdTickets, err := uc.ticketRepo.CountByCreator(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to count created tickets", "error", err, "user_id", userID)
		return fmt.Errorf("failed to count created tickets: %w", err)
	}
	if createdTickets > 0 {
		return apperrors.NewConflictError("user has created tickets and cannot be deleted")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.DeleteByUserID(txCtx, userID); err != nil {
			return err
		}
		if err := uc.activityRepo.DeleteByUserID(txCtx, userID); err != nil {
			return err
		}
		return uc.userRepo.Delete(txCtx, userID)
	})
	if err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		uc.logger.Errorw("failed to delete user", "error", err, "user_id", userID)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	uc.logger.Infow("user deleted", "user_id", userID)
	return nil
}
