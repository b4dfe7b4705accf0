package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/application/ticket/dto"
	"github.com/vforit/ticktrack/internal/domain/ticket"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type UpdateCommentCommand struct {
	CommentID uint
	UserID    uint
	Content   string
}

type UpdateCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewUpdateCommentUseCase(commentRepo ticket.CommentRepository, logger logger.Interface) *UpdateCommentUseCase {
	return &UpdateCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute rewrites a comment's content. Only the authoring user may do so.
func (uc *UpdateCommentUseCase) Execute(ctx context.Context, cmd UpdateCommentCommand) (*dto.CommentDTO, error) {
	comment, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get comment", "error", err, "comment_id", cmd.CommentID)
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	if !comment.IsAuthoredBy(cmd.UserID) {
		return nil, apperrors.NewForbiddenError("only the comment author may edit it")
	}

	if err := comment.UpdateContent(cmd.Content); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Update(ctx, comment); err != nil {
		uc.logger.Errorw("failed to update comment", "error", err, "comment_id", cmd.CommentID)
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	uc.logger.Infow("comment updated", "comment_id", comment.ID(), "user_id", cmd.UserID)
	return dto.NewCommentDTO(comment), nil
}
