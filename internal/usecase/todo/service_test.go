package todo

import (
	"context"
	"sort"
	"testing"

	"taskhive/backend/internal/apperror"
	domain "taskhive/backend/internal/domain/todo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	items map[string]*domain.Todo
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[string]*domain.Todo{}}
}

func (r *fakeRepo) Create(_ context.Context, item *domain.Todo) error {
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeRepo) ListByUser(_ context.Context, userID string) ([]*domain.Todo, error) {
	var out []*domain.Todo
	for _, item := range r.items {
		if item.UserID == userID {
			clone := *item
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeRepo) GetByID(_ context.Context, userID, id string) (*domain.Todo, error) {
	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return nil, domain.ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *fakeRepo) Update(_ context.Context, item *domain.Todo) error {
	existing, ok := r.items[item.ID]
	if !ok || existing.UserID != item.UserID {
		return domain.ErrNotFound
	}
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, userID, id string) error {
	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func TestCreate(t *testing.T) {
	svc := NewService(newFakeRepo())

	item, err := svc.Create(context.Background(), "user-1", CreateInput{
		Title:       "  Buy milk  ",
		Description: "2 liters",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Buy milk", item.Title)
	assert.False(t, item.IsCompleted)
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), "user-1", CreateInput{Title: "   "})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "Title must be between 1 and 255 characters", appErr.Message)
}

func TestUpdatePartial(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	item, err := svc.Create(ctx, "user-1", CreateInput{Title: "Buy milk", Description: "2 liters"})
	require.NoError(t, err)

	done := true
	updated, err := svc.Update(ctx, "user-1", item.ID, UpdateInput{IsCompleted: &done})
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)
	assert.Equal(t, "Buy milk", updated.Title, "untouched fields survive")
	assert.Equal(t, "2 liters", updated.Description)
}

func TestUserScoping(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	item, err := svc.Create(ctx, "user-1", CreateInput{Title: "mine"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "user-2", item.ID)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
	assert.Equal(t, "Todo not found", appErr.Message)

	err = svc.Delete(ctx, "user-2", item.ID)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)

	// Still reachable by its owner.
	_, err = svc.Get(ctx, "user-1", item.ID)
	require.NoError(t, err)
}

func TestListPerUser(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, "user-1", CreateInput{Title: "a"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-1", CreateInput{Title: "b"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-2", CreateInput{Title: "c"})
	require.NoError(t, err)

	items, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestDelete(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	item, err := svc.Create(ctx, "user-1", CreateInput{Title: "a"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "user-1", item.ID))

	_, err = svc.Get(ctx, "user-1", item.ID)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
}
