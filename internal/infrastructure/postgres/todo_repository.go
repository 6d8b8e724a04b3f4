package postgres

import (
	"context"
	"errors"

	domain "taskhive/backend/internal/domain/todo"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TodoRepository persists todos in PostgreSQL.
type TodoRepository struct {
	pool *pgxpool.Pool
}

// NewTodoRepository constructs a repository.
func NewTodoRepository(pool *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{pool: pool}
}

// Create inserts a new todo.
func (r *TodoRepository) Create(ctx context.Context, item *domain.Todo) error {
	const query = `
INSERT INTO todos (id, user_id, title, description, is_completed, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.UserID,
		item.Title,
		item.Description,
		item.IsCompleted,
		item.CreatedAt,
	)
	return err
}

// GetByID fetches a todo owned by the given user.
func (r *TodoRepository) GetByID(ctx context.Context, userID, id string) (*domain.Todo, error) {
	const query = `
SELECT id, user_id, title, description, is_completed, created_at
FROM todos WHERE id = $1 AND user_id = $2
`
	row := r.pool.QueryRow(ctx, query, id, userID)
	item, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// ListByUser returns the user's todos, newest first.
func (r *TodoRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Todo, error) {
	const query = `
SELECT id, user_id, title, description, is_completed, created_at
FROM todos WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.Todo
	for rows.Next() {
		item, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Update writes todo changes, scoped to the owner.
func (r *TodoRepository) Update(ctx context.Context, item *domain.Todo) error {
	const query = `
UPDATE todos
SET title = $3,
    description = $4,
    is_completed = $5
WHERE id = $1 AND user_id = $2
`
	ct, err := r.pool.Exec(ctx, query,
		item.ID,
		item.UserID,
		item.Title,
		item.Description,
		item.IsCompleted,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a todo owned by the given user.
func (r *TodoRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM todos WHERE id = $1 AND user_id = $2`
	ct, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTodo(row pgx.Row) (*domain.Todo, error) {
	var t domain.Todo
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Title,
		&t.Description,
		&t.IsCompleted,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
