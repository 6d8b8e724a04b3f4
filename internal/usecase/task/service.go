package task

import (
	"context"
	"errors"
	"time"

	"taskhive/backend/internal/apperror"
	domain "taskhive/backend/internal/domain/task"
	"taskhive/backend/internal/validate"

	"github.com/google/uuid"
)

// Service encapsulates task use cases, scoped to the authenticated user.
type Service struct {
	repo    domain.Repository
	nowFunc func() time.Time
}

// NewService constructs a task service.
func NewService(repo domain.Repository) *Service {
	return &Service{
		repo:    repo,
		nowFunc: time.Now,
	}
}

// CreateInput contains the payload required for task creation.
type CreateInput struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	StartTime       *time.Time `json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
	CalendarEventID string     `json:"calendarEventId"`
}

// UpdateInput encapsulates partial task updates.
type UpdateInput struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	Status          *string    `json:"status"`
	StartTime       *time.Time `json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
	CalendarEventID *string    `json:"calendarEventId"`
}

// Create stores a new task for the user.
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (*domain.Task, error) {
	title, ok := validate.Title(input.Title)
	if !ok {
		return nil, apperror.Validation("Title must be between 1 and 255 characters", map[string]any{"field": "title"})
	}

	status := domain.StatusPending
	if input.Status != "" {
		status = domain.Status(input.Status)
		if !status.Valid() {
			return nil, apperror.Validation("Invalid task status", map[string]any{"field": "status"})
		}
	}
	if err := checkWindow(input.StartTime, input.EndTime); err != nil {
		return nil, err
	}

	now := s.nowFunc().UTC()
	item := &domain.Task{
		ID:              uuid.NewString(),
		UserID:          userID,
		Title:           title,
		Description:     input.Description,
		Status:          status,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		CalendarEventID: input.CalendarEventID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, apperror.Database("Failed to create task", nil).WithCause(err)
	}
	return item, nil
}

// List retrieves the user's tasks.
func (s *Service) List(ctx context.Context, userID string) ([]*domain.Task, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Database("Failed to list tasks", nil).WithCause(err)
	}
	return items, nil
}

// Get fetches a single task owned by the user.
func (s *Service) Get(ctx context.Context, userID, id string) (*domain.Task, error) {
	item, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return item, nil
}

// Update applies partial updates to a task owned by the user.
func (s *Service) Update(ctx context.Context, userID, id string, input UpdateInput) (*domain.Task, error) {
	item, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	if input.Title != nil {
		title, ok := validate.Title(*input.Title)
		if !ok {
			return nil, apperror.Validation("Title must be between 1 and 255 characters", map[string]any{"field": "title"})
		}
		item.Title = title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Status != nil {
		status := domain.Status(*input.Status)
		if !status.Valid() {
			return nil, apperror.Validation("Invalid task status", map[string]any{"field": "status"})
		}
		item.Status = status
	}
	if input.StartTime != nil {
		item.StartTime = input.StartTime
	}
	if input.EndTime != nil {
		item.EndTime = input.EndTime
	}
	if err := checkWindow(item.StartTime, item.EndTime); err != nil {
		return nil, err
	}
	if input.CalendarEventID != nil {
		item.CalendarEventID = *input.CalendarEventID
	}

	item.UpdatedAt = s.nowFunc().UTC()
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, mapRepoError(err)
	}
	return item, nil
}

// Delete removes a task owned by the user.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return mapRepoError(err)
	}
	return nil
}

func checkWindow(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return apperror.Validation("End time must not be before start time", map[string]any{"field": "endTime"})
	}
	return nil
}

func mapRepoError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Task not found")
	}
	return apperror.Database("Task operation failed", nil).WithCause(err)
}
