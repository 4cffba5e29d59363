package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Spencer4792/jwt-pizza-service/internal/domain"
)

// FranchiseRepository defines persistence access for franchises and stores.
type FranchiseRepository interface {
	Create(ctx context.Context, franchise *domain.Franchise) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Franchise, error)
	List(ctx context.Context) ([]domain.Franchise, error)
	ListByAdmin(ctx context.Context, userID string) ([]domain.Franchise, error)
	CreateStore(ctx context.Context, store *domain.Store) error
	DeleteStore(ctx context.Context, franchiseID, storeID string) error
}

type franchiseRepository struct {
	pool *pgxpool.Pool
}

// NewFranchiseRepository returns a Postgres-backed implementation.
func NewFranchiseRepository(pool *pgxpool.Pool) FranchiseRepository {
	return &franchiseRepository{pool: pool}
}

func (r *franchiseRepository) Create(ctx context.Context, franchise *domain.Franchise) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const query = `
        INSERT INTO franchises (name) VALUES ($1)
        RETURNING id, created_at`

	if err := tx.QueryRow(ctx, query, franchise.Name).Scan(&franchise.ID, &franchise.CreatedAt); err != nil {
		return err
	}

	// Naming a franchise admin also grants the franchisee role. Both
	// writes share the transaction so membership and role never diverge.
	for _, admin := range franchise.Admins {
		if _, err := tx.Exec(ctx,
			`INSERT INTO franchise_admins (franchise_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			franchise.ID, admin.ID,
		); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			admin.ID, domain.RoleFranchisee,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *franchiseRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM franchises WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *franchiseRepository) GetByID(ctx context.Context, id string) (*domain.Franchise, error) {
	const query = `SELECT id, name, created_at FROM franchises WHERE id=$1`

	var franchise domain.Franchise
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&franchise.ID,
		&franchise.Name,
		&franchise.CreatedAt,
	); err != nil {
		return nil, err
	}

	if err := r.attachRelations(ctx, &franchise); err != nil {
		return nil, err
	}
	return &franchise, nil
}

func (r *franchiseRepository) List(ctx context.Context) ([]domain.Franchise, error) {
	return r.list(ctx, `SELECT id, name, created_at FROM franchises ORDER BY name`)
}

func (r *franchiseRepository) ListByAdmin(ctx context.Context, userID string) ([]domain.Franchise, error) {
	const query = `
        SELECT f.id, f.name, f.created_at
        FROM franchises f
        JOIN franchise_admins fa ON fa.franchise_id = f.id
        WHERE fa.user_id=$1
        ORDER BY f.name`

	return r.list(ctx, query, userID)
}

func (r *franchiseRepository) list(ctx context.Context, query string, args ...any) ([]domain.Franchise, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var franchises []domain.Franchise
	for rows.Next() {
		var franchise domain.Franchise
		if err := rows.Scan(&franchise.ID, &franchise.Name, &franchise.CreatedAt); err != nil {
			return nil, err
		}
		franchises = append(franchises, franchise)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range franchises {
		if err := r.attachRelations(ctx, &franchises[i]); err != nil {
			return nil, err
		}
	}
	return franchises, nil
}

func (r *franchiseRepository) attachRelations(ctx context.Context, franchise *domain.Franchise) error {
	const adminQuery = `
        SELECT u.id, u.name, u.email
        FROM users u
        JOIN franchise_admins fa ON fa.user_id = u.id
        WHERE fa.franchise_id=$1
        ORDER BY u.name`

	rows, err := r.pool.Query(ctx, adminQuery, franchise.ID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var admin domain.FranchiseAdmin
		if err := rows.Scan(&admin.ID, &admin.Name, &admin.Email); err != nil {
			rows.Close()
			return err
		}
		franchise.Admins = append(franchise.Admins, admin)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	const storeQuery = `
        SELECT s.id, s.franchise_id, s.name, COALESCE(SUM(o.total), 0), s.created_at
        FROM stores s
        LEFT JOIN orders o ON o.store_id = s.id
        WHERE s.franchise_id=$1
        GROUP BY s.id
        ORDER BY s.name`

	rows, err = r.pool.Query(ctx, storeQuery, franchise.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var store domain.Store
		if err := rows.Scan(&store.ID, &store.FranchiseID, &store.Name, &store.TotalRevenue, &store.CreatedAt); err != nil {
			return err
		}
		franchise.Stores = append(franchise.Stores, store)
	}
	return rows.Err()
}

func (r *franchiseRepository) CreateStore(ctx context.Context, store *domain.Store) error {
	const query = `
        INSERT INTO stores (franchise_id, name) VALUES ($1, $2)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query, store.FranchiseID, store.Name).
		Scan(&store.ID, &store.CreatedAt)
}

func (r *franchiseRepository) DeleteStore(ctx context.Context, franchiseID, storeID string) error {
	cmd, err := r.pool.Exec(ctx,
		`DELETE FROM stores WHERE id=$1 AND franchise_id=$2`, storeID, franchiseID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
