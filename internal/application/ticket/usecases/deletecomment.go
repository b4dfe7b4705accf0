package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/domain/ticket"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type DeleteCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(commentRepo ticket.CommentRepository, logger logger.Interface) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, commentID uint) error {
	if err := uc.commentRepo.Delete(ctx, commentID); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		uc.logger.Errorw("failed to delete comment", "error", err, "comment_id", commentID)
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	uc.logger.Infow("comment deleted", "comment_id", commentID)
	return nil
}
