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

const productColumns = `
	id, name, description, brands, price, original_price, stock, is_available,
	category, tags, market_id, region, subregion, city, currency, image_urls,
	created_at, updated_at, last_sold_at, rating, reviews, labels, discount,
	is_featured, is_new_arrival, is_best_seller, is_on_sale, is_active,
	account_id, market_type
`

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// ListProducts retrieves every product ordered by creation time.
func (r *productRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan product rows")
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	p, err := pgx.CollectExactlyOneRow(rows, scanProduct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to scan product")
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}

	return &p, nil
}

func scanProduct(row pgx.CollectableRow) (model.Product, error) {
	var (
		p                       model.Product
		region, subregion, city *string
		currency, marketType    string
		labels                  []string
	)

	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Brands, &p.Price, &p.OriginalPrice, &p.Stock, &p.IsAvailable,
		&p.Category, &p.Tags, &p.MarketID, &region, &subregion, &city, &currency, &p.ImageURLs,
		&p.CreatedAt, &p.UpdatedAt, &p.LastSoldAt, &p.Rating, &p.Reviews, &labels, &p.Discount,
		&p.IsFeatured, &p.IsNewArrival, &p.IsBestSeller, &p.IsOnSale, &p.IsActive,
		&p.AccountID, &marketType,
	)
	if err != nil {
		return model.Product{}, err
	}

	p.Location = locationFromColumns(region, subregion, city)
	p.Currency = model.Currency(currency)
	p.MarketType = model.MarketType(marketType)
	p.Labels = make([]model.Label, len(labels))
	for i, l := range labels {
		p.Labels[i] = model.Label(l)
	}

	return p, nil
}
