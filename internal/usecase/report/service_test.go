package report

import (
	"context"
	"strings"
	"testing"

	"taskhive/backend/internal/apperror"
	domain "taskhive/backend/internal/domain/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	items map[string]*domain.Report
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[string]*domain.Report{}}
}

func (r *fakeRepo) Create(_ context.Context, item *domain.Report) error {
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeRepo) ListByUser(_ context.Context, userID string) ([]*domain.Report, error) {
	var out []*domain.Report
	for _, item := range r.items {
		if item.UserID == userID {
			clone := *item
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetByID(_ context.Context, userID, id string) (*domain.Report, error) {
	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return nil, domain.ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *fakeRepo) Update(_ context.Context, item *domain.Report) error {
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

type fakePresigner struct{}

func (fakePresigner) PresignPut(_ context.Context, key string) (string, error) {
	return "https://bucket.example/put/" + key, nil
}

func (fakePresigner) PresignGet(_ context.Context, key string) (string, error) {
	return "https://bucket.example/get/" + key, nil
}

func newTestService() *Service {
	return NewService(newFakeRepo(), fakePresigner{})
}

func TestCreateReturnsUploadURL(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), "user-1", CreateInput{Title: "Q3 summary"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusGenerating, created.Report.Status)
	assert.True(t, strings.HasPrefix(created.Report.StorageKey, "reports/"))
	assert.Equal(t, "https://bucket.example/put/"+created.Report.StorageKey, created.UploadURL)
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), "user-1", CreateInput{Title: ""})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
}

func TestGetReturnsDownloadURL(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", CreateInput{Title: "Q3 summary"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "user-1", created.Report.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Report.ID, got.Report.ID)
	assert.Equal(t, "https://bucket.example/get/"+created.Report.StorageKey, got.DownloadURL)
}

func TestComplete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", CreateInput{Title: "Q3 summary"})
	require.NoError(t, err)

	item, err := svc.Complete(ctx, "user-1", created.Report.ID, CompleteInput{
		Status:    "completed",
		AISummary: "Revenue up 12%.",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, item.Status)
	assert.Equal(t, "Revenue up 12%.", item.AISummary)
}

func TestCompleteRejectsOtherStatuses(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", CreateInput{Title: "Q3 summary"})
	require.NoError(t, err)

	for _, status := range []string{"generating", "done", ""} {
		_, err := svc.Complete(ctx, "user-1", created.Report.ID, CompleteInput{Status: status})
		var appErr *apperror.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.KindValidation, appErr.Kind)
		assert.Equal(t, "Status must be completed or failed", appErr.Message)
	}
}

func TestUserScoping(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", CreateInput{Title: "mine"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "user-2", created.Report.ID)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
	assert.Equal(t, "Report not found", appErr.Message)
}
