package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/application/ticket/dto"
	"github.com/vforit/ticktrack/internal/domain/ticket"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type GetCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewGetCommentUseCase(commentRepo ticket.CommentRepository, logger logger.Interface) *GetCommentUseCase {
	return &GetCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *GetCommentUseCase) Execute(ctx context.Context, commentID uint) (*dto.CommentDTO, error) {
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get comment", "error", err, "comment_id", commentID)
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return dto.NewCommentDTO(comment), nil
}
