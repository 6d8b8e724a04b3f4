package postgres

import (
	"context"
	"errors"

	domain "taskhive/backend/internal/domain/auth"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OTPRepository persists one-time codes in PostgreSQL.
type OTPRepository struct {
	pool *pgxpool.Pool
}

// NewOTPRepository constructs a repository.
func NewOTPRepository(pool *pgxpool.Pool) *OTPRepository {
	return &OTPRepository{pool: pool}
}

// Create inserts a new one-time code.
func (r *OTPRepository) Create(ctx context.Context, otp *domain.OTPCode) error {
	const query = `
INSERT INTO otp_codes (id, user_id, code, type, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := r.pool.Exec(ctx, query,
		otp.ID,
		otp.UserID,
		otp.Code,
		otp.Type,
		otp.ExpiresAt,
		otp.CreatedAt,
	)
	return err
}

// Find returns the newest matching code for the user.
func (r *OTPRepository) Find(ctx context.Context, userID, code string, otpType domain.OTPType) (*domain.OTPCode, error) {
	const query = `
SELECT id, user_id, code, type, expires_at, created_at
FROM otp_codes
WHERE user_id = $1 AND code = $2 AND type = $3
ORDER BY created_at DESC
LIMIT 1
`
	row := r.pool.QueryRow(ctx, query, userID, code, otpType)

	var otp domain.OTPCode
	err := row.Scan(
		&otp.ID,
		&otp.UserID,
		&otp.Code,
		&otp.Type,
		&otp.ExpiresAt,
		&otp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOTPNotFound
		}
		return nil, err
	}
	return &otp, nil
}

// Delete removes a code once consumed.
func (r *OTPRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM otp_codes WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
