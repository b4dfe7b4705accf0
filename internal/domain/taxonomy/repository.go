package taxonomy

import "context"

type Repository interface {
	Save(ctx context.Context, entry *Entry) error
	Update(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, entryID uint) error
	GetByID(ctx context.Context, entryID uint) (*Entry, error)
	List(ctx context.Context) ([]*Entry, error)
}
