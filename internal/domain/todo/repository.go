package todo

import "context"

// Repository defines persistence behaviours for todos. All reads and writes
// are scoped to the owning user so one account can never see another's items.
type Repository interface {
	Create(ctx context.Context, item *Todo) error
	GetByID(ctx context.Context, userID, id string) (*Todo, error)
	ListByUser(ctx context.Context, userID string) ([]*Todo, error)
	Update(ctx context.Context, item *Todo) error
	Delete(ctx context.Context, userID, id string) error
}
