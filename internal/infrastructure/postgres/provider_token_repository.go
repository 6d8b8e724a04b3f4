package postgres

import (
	"context"

	domain "taskhive/backend/internal/domain/auth"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ProviderTokenRepository persists linked OAuth provider tokens in PostgreSQL.
type ProviderTokenRepository struct {
	pool *pgxpool.Pool
}

// NewProviderTokenRepository constructs a repository.
func NewProviderTokenRepository(pool *pgxpool.Pool) *ProviderTokenRepository {
	return &ProviderTokenRepository{pool: pool}
}

// Upsert stores the token pair for a (user, provider), replacing any previous
// pair for the same provider.
func (r *ProviderTokenRepository) Upsert(ctx context.Context, token *domain.ProviderToken) error {
	const query = `
INSERT INTO auth_tokens (id, user_id, provider, access_token, refresh_token, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT ON CONSTRAINT auth_tokens_user_provider_key
DO UPDATE SET access_token = EXCLUDED.access_token,
              refresh_token = EXCLUDED.refresh_token,
              expires_at = EXCLUDED.expires_at
`
	_, err := r.pool.Exec(ctx, query,
		token.ID,
		token.UserID,
		token.Provider,
		token.AccessToken,
		token.RefreshToken,
		token.ExpiresAt,
		token.CreatedAt,
	)
	return err
}

// ListByUser returns the user's linked provider tokens.
func (r *ProviderTokenRepository) ListByUser(ctx context.Context, userID string) ([]*domain.ProviderToken, error) {
	const query = `
SELECT id, user_id, provider, access_token, refresh_token, expires_at, created_at
FROM auth_tokens WHERE user_id = $1
ORDER BY provider ASC
`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []*domain.ProviderToken
	for rows.Next() {
		var t domain.ProviderToken
		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Provider,
			&t.AccessToken,
			&t.RefreshToken,
			&t.ExpiresAt,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, &t)
	}
	return tokens, rows.Err()
}
