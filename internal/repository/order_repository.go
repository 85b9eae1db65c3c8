package repository

import (
	"context"
	"errors"
	"fmt"

	"marketplace-catalog/internal/model"

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

// GetByID retrieves an order by its ID. The cart is stored alongside the order as JSONB.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := `
		SELECT id, user_id, cart, shipping_address, total_amount, status, created_at
		FROM orders
		WHERE id = $1
	`

	var (
		order  model.Order
		status string
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.Cart,
		&order.ShippingAddress,
		&order.TotalAmount,
		&status,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	order.Status, err = model.ParseOrderStatus(status)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("stored order has unknown status")
		return nil, fmt.Errorf("failed to decode order %s: %w", id, err)
	}

	if order.Cart == nil {
		order.Cart = []model.CartItem{}
	}

	return &order, nil
}
