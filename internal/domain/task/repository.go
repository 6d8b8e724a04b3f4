package task

import "context"

// Repository defines persistence behaviours for tasks, scoped to the owner.
type Repository interface {
	Create(ctx context.Context, item *Task) error
	GetByID(ctx context.Context, userID, id string) (*Task, error)
	ListByUser(ctx context.Context, userID string) ([]*Task, error)
	Update(ctx context.Context, item *Task) error
	Delete(ctx context.Context, userID, id string) error
}
