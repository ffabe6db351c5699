package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gosm1/pureperfumes/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

const orderColumns = `id, created_at, first_name, last_name, phone, city, other_city, address, cart_items, total_price, status`

// scanOrder scans one order row, decoding the cart_items snapshot.
func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o         model.Order
		cartItems []byte
	)

	err := row.Scan(
		&o.ID,
		&o.CreatedAt,
		&o.FirstName,
		&o.LastName,
		&o.Phone,
		&o.City,
		&o.OtherCity,
		&o.Address,
		&cartItems,
		&o.TotalPrice,
		&o.Status,
	)
	if err != nil {
		return nil, err
	}

	if len(cartItems) > 0 {
		if err := json.Unmarshal(cartItems, &o.CartItems); err != nil {
			return nil, fmt.Errorf("failed to decode cart items: %w", err)
		}
	}

	return &o, nil
}

// Create inserts a new order with its cart-item snapshot.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	query := `
		INSERT INTO orders (id, created_at, first_name, last_name, phone, city, other_city, address, cart_items, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	cartItems, err := json.Marshal(order.CartItems)
	if err != nil {
		return fmt.Errorf("failed to encode cart items: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		order.ID,
		order.CreatedAt,
		order.FirstName,
		order.LastName,
		order.Phone,
		order.City,
		order.OtherCity,
		order.Address,
		cartItems,
		order.TotalPrice,
		order.Status,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().Str("order_id", order.ID.String()).Msg("order created successfully")

	return nil
}

// GetAll retrieves every order, newest first.
func (r *orderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// GetByID retrieves an order by its ID.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	o, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return o, nil
}

// UpdateStatus sets the status of an order.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Str("status", string(status)).
			Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("order_id", id.String()).Msg("order not found for status update")
		return model.ErrOrderNotFound
	}

	return nil
}

// Delete removes the order row.
func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to delete order")
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("order_id", id.String()).Msg("order not found for delete")
		return model.ErrOrderNotFound
	}

	r.logger.Debug().Str("order_id", id.String()).Msg("order deleted successfully")

	return nil
}
