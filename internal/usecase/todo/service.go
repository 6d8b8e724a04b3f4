package todo

import (
	"context"
	"errors"
	"time"

	"taskhive/backend/internal/apperror"
	domain "taskhive/backend/internal/domain/todo"
	"taskhive/backend/internal/validate"

	"github.com/google/uuid"
)

// Service encapsulates todo use cases. Every operation is scoped to the
// authenticated user.
type Service struct {
	repo    domain.Repository
	nowFunc func() time.Time
}

// NewService constructs a todo service.
func NewService(repo domain.Repository) *Service {
	return &Service{
		repo:    repo,
		nowFunc: time.Now,
	}
}

// CreateInput contains the payload required for todo creation.
type CreateInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateInput encapsulates partial todo updates.
type UpdateInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"isCompleted"`
}

// Create stores a new todo for the user.
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (*domain.Todo, error) {
	title, ok := validate.Title(input.Title)
	if !ok {
		return nil, apperror.Validation("Title must be between 1 and 255 characters", map[string]any{"field": "title"})
	}

	item := &domain.Todo{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: input.Description,
		CreatedAt:   s.nowFunc().UTC(),
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, apperror.Database("Failed to create todo", nil).WithCause(err)
	}
	return item, nil
}

// List retrieves the user's todos.
func (s *Service) List(ctx context.Context, userID string) ([]*domain.Todo, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Database("Failed to list todos", nil).WithCause(err)
	}
	return items, nil
}

// Get fetches a single todo owned by the user.
func (s *Service) Get(ctx context.Context, userID, id string) (*domain.Todo, error) {
	item, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return item, nil
}

// Update applies partial updates to a todo owned by the user.
func (s *Service) Update(ctx context.Context, userID, id string, input UpdateInput) (*domain.Todo, error) {
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
	if input.IsCompleted != nil {
		item.IsCompleted = *input.IsCompleted
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, mapRepoError(err)
	}
	return item, nil
}

// Delete removes a todo owned by the user.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return mapRepoError(err)
	}
	return nil
}

func mapRepoError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Todo not found")
	}
	return apperror.Database("Todo operation failed", nil).WithCause(err)
}
