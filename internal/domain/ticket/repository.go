package ticket

import "context"

type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context) ([]*Ticket, error)
	CountByCreator(ctx context.Context, userID uint) (int64, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	Update(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, commentID uint) error
	DeleteByTicketID(ctx context.Context, ticketID uint) error
	DeleteByUserID(ctx context.Context, userID uint) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}

type AttachmentRepository interface {
	Save(ctx context.Context, attachment *Attachment) error
	Update(ctx context.Context, attachment *Attachment) error
	Delete(ctx context.Context, attachmentID uint) error
	DeleteByTicketID(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, attachmentID uint) (*Attachment, error)
	GetByTicketAndID(ctx context.Context, ticketID, attachmentID uint) (*Attachment, error)
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
}
