package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Spencer4792/jwt-pizza-service/internal/domain"
)

// OrderRepository defines persistence access for submitted orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	ListByDiner(ctx context.Context, dinerID string, page, perPage int) ([]domain.Order, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed implementation.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const query = `
        INSERT INTO orders (diner_id, franchise_id, store_id, total)
        VALUES ($1, $2, $3, $4)
        RETURNING id, date`

	if err := tx.QueryRow(ctx, query,
		order.DinerID,
		order.FranchiseID,
		order.StoreID,
		order.Total(),
	).Scan(&order.ID, &order.Date); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.Exec(ctx,
			`INSERT INTO order_items (order_id, menu_id, description, price) VALUES ($1, $2, $3, $4)`,
			order.ID, item.MenuID, item.Description, item.Price,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) ListByDiner(ctx context.Context, dinerID string, page, perPage int) ([]domain.Order, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	const query = `
        SELECT id, diner_id, franchise_id, store_id, date
        FROM orders WHERE diner_id=$1
        ORDER BY date DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, dinerID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.DinerID, &order.FranchiseID, &order.StoreID, &order.Date); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.itemsFor(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *orderRepository) itemsFor(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT menu_id, description, price FROM order_items WHERE order_id=$1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.MenuID, &item.Description, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
