package usecases

import (
	"context"

	"github.com/vforit/ticktrack/internal/application/ticket/dto"
)

// Executor interfaces decouple the HTTP handlers from the concrete use cases.

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, ticketID uint) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context) ([]*dto.TicketDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, ticketID uint) error
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type GetCommentExecutor interface {
	Execute(ctx context.Context, commentID uint) (*dto.CommentDTO, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, ticketID uint) ([]*dto.CommentDTO, error)
}

type UpdateCommentExecutor interface {
	Execute(ctx context.Context, cmd UpdateCommentCommand) (*dto.CommentDTO, error)
}

type DeleteCommentExecutor interface {
	Execute(ctx context.Context, commentID uint) error
}

type CreateAttachmentExecutor interface {
	Execute(ctx context.Context, cmd CreateAttachmentCommand) (*dto.AttachmentDTO, error)
}

type UploadAttachmentExecutor interface {
	Execute(ctx context.Context, cmd UploadAttachmentCommand) (*dto.AttachmentDTO, error)
}

type DownloadAttachmentExecutor interface {
	Execute(ctx context.Context, ticketID, attachmentID uint) (*DownloadAttachmentResult, error)
}

type GetAttachmentExecutor interface {
	Execute(ctx context.Context, ticketID, attachmentID uint) (*dto.AttachmentDTO, error)
}

type ListAttachmentsExecutor interface {
	Execute(ctx context.Context, ticketID uint) ([]*dto.AttachmentDTO, error)
}

type DeleteAttachmentExecutor interface {
	Execute(ctx context.Context, ticketID, attachmentID uint) error
}
