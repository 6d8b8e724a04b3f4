package task

import (
	"context"
	"testing"
	"time"

	"taskhive/backend/internal/apperror"
	domain "taskhive/backend/internal/domain/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	items map[string]*domain.Task
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[string]*domain.Task{}}
}

func (r *fakeRepo) Create(_ context.Context, item *domain.Task) error {
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeRepo) ListByUser(_ context.Context, userID string) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, item := range r.items {
		if item.UserID == userID {
			clone := *item
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetByID(_ context.Context, userID, id string) (*domain.Task, error) {
	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return nil, domain.ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *fakeRepo) Update(_ context.Context, item *domain.Task) error {
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

func TestCreateDefaultsToPending(t *testing.T) {
	svc := NewService(newFakeRepo())

	item, err := svc.Create(context.Background(), "user-1", CreateInput{Title: "Plan sprint"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, item.Status)
	assert.Equal(t, item.CreatedAt, item.UpdatedAt)
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), "user-1", CreateInput{Title: "Plan sprint", Status: "paused"})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "Invalid task status", appErr.Message)
}

func TestCreateRejectsInvertedWindow(t *testing.T) {
	svc := NewService(newFakeRepo())

	start := time.Now().Add(2 * time.Hour)
	end := start.Add(-time.Hour)
	_, err := svc.Create(context.Background(), "user-1", CreateInput{
		Title:     "Plan sprint",
		StartTime: &start,
		EndTime:   &end,
	})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "End time must not be before start time", appErr.Message)
}

func TestUpdateStatusTransition(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	item, err := svc.Create(ctx, "user-1", CreateInput{Title: "Plan sprint"})
	require.NoError(t, err)

	status := string(domain.StatusInProgress)
	updated, err := svc.Update(ctx, "user-1", item.ID, UpdateInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, updated.Status)
	assert.True(t, updated.UpdatedAt.After(item.UpdatedAt) || updated.UpdatedAt.Equal(item.UpdatedAt))

	bogus := "archived"
	_, err = svc.Update(ctx, "user-1", item.ID, UpdateInput{Status: &bogus})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Invalid task status", appErr.Message)
}

func TestUpdateWindowCheckedAgainstMergedState(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	start := time.Now().Add(time.Hour)
	item, err := svc.Create(ctx, "user-1", CreateInput{Title: "Plan sprint", StartTime: &start})
	require.NoError(t, err)

	// New end precedes the stored start.
	end := start.Add(-30 * time.Minute)
	_, err = svc.Update(ctx, "user-1", item.ID, UpdateInput{EndTime: &end})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
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
	assert.Equal(t, "Task not found", appErr.Message)
}
