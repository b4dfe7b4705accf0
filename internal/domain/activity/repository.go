package activity

import "context"

type Repository interface {
	Save(ctx context.Context, log *Log) error
	Update(ctx context.Context, log *Log) error
	Delete(ctx context.Context, logID uint) error
	DeleteByTicketID(ctx context.Context, ticketID uint) error
	DeleteByUserID(ctx context.Context, userID uint) error
	GetByID(ctx context.Context, logID uint) (*Log, error)
	List(ctx context.Context) ([]*Log, error)
	ListByUserID(ctx context.Context, userID uint) ([]*Log, error)
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Log, error)
}
