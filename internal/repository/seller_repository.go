package repository

import (
	"context"
	"errors"
	"fmt"

	"marketplace-catalog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const sellerColumns = `id, account_id, name, description, image_url, rating, region, subregion, city, created_at`

type sellerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSellerRepository creates a new PostgreSQL-backed seller repository.
func NewSellerRepository(pool *pgxpool.Pool, logger zerolog.Logger) SellerRepository {
	return &sellerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "seller").Logger(),
	}
}

func (r *sellerRepository) ListSellers(ctx context.Context) ([]model.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query sellers")
		return nil, fmt.Errorf("failed to query sellers: %w", err)
	}

	sellers, err := pgx.CollectRows(rows, scanSeller)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan seller rows")
		return nil, fmt.Errorf("failed to scan sellers: %w", err)
	}

	return sellers, nil
}

func (r *sellerRepository) GetByID(ctx context.Context, id string) (*model.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE id = $1`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Str("seller_id", id).Msg("failed to query seller")
		return nil, fmt.Errorf("failed to query seller: %w", err)
	}

	s, err := pgx.CollectExactlyOneRow(rows, scanSeller)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("seller_id", id).Msg("seller not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("seller_id", id).Msg("failed to scan seller")
		return nil, fmt.Errorf("failed to scan seller: %w", err)
	}

	return &s, nil
}

func scanSeller(row pgx.CollectableRow) (model.Seller, error) {
	var (
		s                       model.Seller
		region, subregion, city *string
	)

	err := row.Scan(&s.ID, &s.AccountID, &s.Name, &s.Description, &s.ImageURL, &s.Rating,
		&region, &subregion, &city, &s.CreatedAt)
	if err != nil {
		return model.Seller{}, err
	}

	s.Location = locationFromColumns(region, subregion, city)
	return s, nil
}
