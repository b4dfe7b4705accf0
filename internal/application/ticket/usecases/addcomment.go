package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/application/ticket/dto"
	"github.com/vforit/ticktrack/internal/domain/ticket"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID uint
	UserID   uint
	Content  string
}

type AddCommentUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.UserID, cmd.Content)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	uc.logger.Infow("comment added", "comment_id", comment.ID(), "ticket_id", cmd.TicketID, "user_id", cmd.UserID)
	return dto.NewCommentDTO(comment), nil
}
