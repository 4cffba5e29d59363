package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepository is the durable record of which issued tokens are
// currently active. A token is keyed by its exact encoded string; entries
// live until explicitly deactivated.
type SessionRepository interface {
	Activate(ctx context.Context, token string) error
	Deactivate(ctx context.Context, token string) error
	IsActive(ctx context.Context, token string) (bool, error)
}

type sessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository returns a Postgres-backed implementation.
func NewSessionRepository(pool *pgxpool.Pool) SessionRepository {
	return &sessionRepository{pool: pool}
}

func (r *sessionRepository) Activate(ctx context.Context, token string) error {
	const query = `
        INSERT INTO auth_tokens (token) VALUES ($1)
        ON CONFLICT (token) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, token)
	return err
}

func (r *sessionRepository) Deactivate(ctx context.Context, token string) error {
	// Deleting an absent token is not an error; logout is idempotent.
	const query = `DELETE FROM auth_tokens WHERE token=$1`

	_, err := r.pool.Exec(ctx, query, token)
	return err
}

func (r *sessionRepository) IsActive(ctx context.Context, token string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM auth_tokens WHERE token=$1)`

	var active bool
	if err := r.pool.QueryRow(ctx, query, token).Scan(&active); err != nil {
		return false, err
	}
	return active, nil
}
