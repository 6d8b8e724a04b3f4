package postgres

import (
	"context"
	"errors"

	domain "taskhive/backend/internal/domain/task"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskRepository persists tasks in PostgreSQL.
type TaskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository constructs a repository.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// Create inserts a new task.
func (r *TaskRepository) Create(ctx context.Context, item *domain.Task) error {
	const query = `
INSERT INTO tasks (id, user_id, title, description, status, start_time, end_time, calendar_event_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`
	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.UserID,
		item.Title,
		item.Description,
		item.Status,
		item.StartTime,
		item.EndTime,
		item.CalendarEventID,
		item.CreatedAt,
		item.UpdatedAt,
	)
	return err
}

// GetByID fetches a task owned by the given user.
func (r *TaskRepository) GetByID(ctx context.Context, userID, id string) (*domain.Task, error) {
	const query = `
SELECT id, user_id, title, description, status, start_time, end_time, calendar_event_id, created_at, updated_at
FROM tasks WHERE id = $1 AND user_id = $2
`
	row := r.pool.QueryRow(ctx, query, id, userID)
	item, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// ListByUser returns the user's tasks, newest first.
func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	const query = `
SELECT id, user_id, title, description, status, start_time, end_time, calendar_event_id, created_at, updated_at
FROM tasks WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.Task
	for rows.Next() {
		item, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Update writes task changes, scoped to the owner.
func (r *TaskRepository) Update(ctx context.Context, item *domain.Task) error {
	const query = `
UPDATE tasks
SET title = $3,
    description = $4,
    status = $5,
    start_time = $6,
    end_time = $7,
    calendar_event_id = $8,
    updated_at = $9
WHERE id = $1 AND user_id = $2
`
	ct, err := r.pool.Exec(ctx, query,
		item.ID,
		item.UserID,
		item.Title,
		item.Description,
		item.Status,
		item.StartTime,
		item.EndTime,
		item.CalendarEventID,
		item.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a task owned by the given user.
func (r *TaskRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	ct, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.StartTime,
		&t.EndTime,
		&t.CalendarEventID,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
