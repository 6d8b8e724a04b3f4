package postgres

import (
	"context"
	"errors"

	domain "taskhive/backend/internal/domain/report"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportRepository persists reports in PostgreSQL.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository constructs a repository.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// Create inserts a new report.
func (r *ReportRepository) Create(ctx context.Context, item *domain.Report) error {
	const query = `
INSERT INTO reports (id, user_id, title, storage_key, ai_summary, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.UserID,
		item.Title,
		item.StorageKey,
		item.AISummary,
		item.Status,
		item.CreatedAt,
	)
	return err
}

// GetByID fetches a report owned by the given user.
func (r *ReportRepository) GetByID(ctx context.Context, userID, id string) (*domain.Report, error) {
	const query = `
SELECT id, user_id, title, storage_key, ai_summary, status, created_at
FROM reports WHERE id = $1 AND user_id = $2
`
	row := r.pool.QueryRow(ctx, query, id, userID)
	item, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// ListByUser returns the user's reports, newest first.
func (r *ReportRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Report, error) {
	const query = `
SELECT id, user_id, title, storage_key, ai_summary, status, created_at
FROM reports WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.Report
	for rows.Next() {
		item, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Update writes report changes, scoped to the owner.
func (r *ReportRepository) Update(ctx context.Context, item *domain.Report) error {
	const query = `
UPDATE reports
SET title = $3,
    ai_summary = $4,
    status = $5
WHERE id = $1 AND user_id = $2
`
	ct, err := r.pool.Exec(ctx, query,
		item.ID,
		item.UserID,
		item.Title,
		item.AISummary,
		item.Status,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a report owned by the given user.
func (r *ReportRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM reports WHERE id = $1 AND user_id = $2`
	ct, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanReport(row pgx.Row) (*domain.Report, error) {
	var rep domain.Report
	err := row.Scan(
		&rep.ID,
		&rep.UserID,
		&rep.Title,
		&rep.StorageKey,
		&rep.AISummary,
		&rep.Status,
		&rep.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}
