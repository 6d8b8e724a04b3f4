package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskhive/backend/internal/apperror"
	domain "taskhive/backend/internal/domain/report"
	"taskhive/backend/internal/validate"

	"github.com/google/uuid"
)

// Presigner issues time-limited object storage URLs for report files.
type Presigner interface {
	PresignPut(ctx context.Context, key string) (string, error)
	PresignGet(ctx context.Context, key string) (string, error)
}

// Service encapsulates report use cases. Report files live in object storage;
// the API hands out presigned URLs and tracks metadata only.
type Service struct {
	repo      domain.Repository
	presigner Presigner
	nowFunc   func() time.Time
}

// NewService constructs a report service.
func NewService(repo domain.Repository, presigner Presigner) *Service {
	return &Service{
		repo:      repo,
		presigner: presigner,
		nowFunc:   time.Now,
	}
}

// CreateInput contains the payload required for report creation.
type CreateInput struct {
	Title string `json:"title"`
}

// Created pairs a new report with the presigned URL for uploading its file.
type Created struct {
	Report    *domain.Report `json:"report"`
	UploadURL string         `json:"uploadUrl"`
}

// WithURL pairs a report with a presigned URL for downloading its file.
type WithURL struct {
	Report      *domain.Report `json:"report"`
	DownloadURL string         `json:"downloadUrl"`
}

// CompleteInput finalizes a report after the client finishes uploading.
type CompleteInput struct {
	Status    string `json:"status"`
	AISummary string `json:"aiSummary"`
}

// Create registers a report in status "generating" and returns a presigned
// PUT URL the client uploads the file to.
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (*Created, error) {
	title, ok := validate.Title(input.Title)
	if !ok {
		return nil, apperror.Validation("Title must be between 1 and 255 characters", map[string]any{"field": "title"})
	}

	now := s.nowFunc().UTC()
	item := &domain.Report{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      title,
		StorageKey: storageKey(now),
		Status:     domain.StatusGenerating,
		CreatedAt:  now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, apperror.Database("Failed to create report", nil).WithCause(err)
	}

	uploadURL, err := s.presigner.PresignPut(ctx, item.StorageKey)
	if err != nil {
		return nil, apperror.Internal("Failed to presign upload URL").WithCause(err)
	}

	return &Created{Report: item, UploadURL: uploadURL}, nil
}

// List retrieves the user's reports (metadata only, no URLs).
func (s *Service) List(ctx context.Context, userID string) ([]*domain.Report, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Database("Failed to list reports", nil).WithCause(err)
	}
	return items, nil
}

// Get fetches a report and a presigned download URL for its file.
func (s *Service) Get(ctx context.Context, userID, id string) (*WithURL, error) {
	item, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	downloadURL, err := s.presigner.PresignGet(ctx, item.StorageKey)
	if err != nil {
		return nil, apperror.Internal("Failed to presign download URL").WithCause(err)
	}

	return &WithURL{Report: item, DownloadURL: downloadURL}, nil
}

// Complete transitions a report out of "generating", storing the summary.
func (s *Service) Complete(ctx context.Context, userID, id string, input CompleteInput) (*domain.Report, error) {
	status := domain.Status(input.Status)
	if status != domain.StatusCompleted && status != domain.StatusFailed {
		return nil, apperror.Validation("Status must be completed or failed", map[string]any{"field": "status"})
	}

	item, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	item.Status = status
	item.AISummary = input.AISummary
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, mapRepoError(err)
	}
	return item, nil
}

// Delete removes a report owned by the user. The stored object is left for
// bucket lifecycle rules to reap.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return mapRepoError(err)
	}
	return nil
}

func storageKey(now time.Time) string {
	return fmt.Sprintf("reports/%d/%02d/%02d/%s", now.Year(), now.Month(), now.Day(), uuid.NewString())
}

func mapRepoError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Report not found")
	}
	return apperror.Database("Report operation failed", nil).WithCause(err)
}
