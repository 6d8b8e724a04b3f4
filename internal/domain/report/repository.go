package report

import "context"

// Repository defines persistence behaviours for reports, scoped to the owner.
type Repository interface {
	Create(ctx context.Context, item *Report) error
	GetByID(ctx context.Context, userID, id string) (*Report, error)
	ListByUser(ctx context.Context, userID string) ([]*Report, error)
	Update(ctx context.Context, item *Report) error
	Delete(ctx context.Context, userID, id string) error
}
