package database

import (
	"context"
	"fmt"

	"marketplace-catalog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed upserts the given entities in a single batch. Rows with the same ID
// are replaced.
func Seed(ctx context.Context, pool *pgxpool.Pool, products []model.Product, sellers []model.Seller, orders []model.Order) error {
	batch := &pgx.Batch{}
	for _, p := range products {
		queueProduct(batch, p)
	}
	for _, s := range sellers {
		queueSeller(batch, s)
	}
	for _, o := range orders {
		queueOrder(batch, o)
	}
	if batch.Len() == 0 {
		return nil
	}
	return sendBatch(ctx, pool, batch)
}

func sendBatch(ctx context.Context, pool *pgxpool.Pool, batch *pgx.Batch) error {
	results := pool.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to execute statement %d: %w", i, err)
		}
	}
	return results.Close()
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func locationColumns(loc *model.Location) (region, subregion, city *string) {
	if loc == nil {
		return nil, nil, nil
	}
	return &loc.Region, &loc.Subregion, &loc.City
}

func queueProduct(batch *pgx.Batch, p model.Product) {
	region, subregion, city := locationColumns(p.Location)
	labels := make([]string, len(p.Labels))
	for i, l := range p.Labels {
		labels[i] = string(l)
	}

	batch.Queue(`
		INSERT INTO products (
			id, name, description, brands, price, original_price, stock, is_available,
			category, tags, market_id, region, subregion, city, currency, image_urls,
			created_at, updated_at, last_sold_at, rating, reviews, labels, discount,
			is_featured, is_new_arrival, is_best_seller, is_on_sale, is_active,
			account_id, market_type
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, description = EXCLUDED.description, brands = EXCLUDED.brands,
			price = EXCLUDED.price, original_price = EXCLUDED.original_price, stock = EXCLUDED.stock,
			is_available = EXCLUDED.is_available, category = EXCLUDED.category, tags = EXCLUDED.tags,
			market_id = EXCLUDED.market_id, region = EXCLUDED.region, subregion = EXCLUDED.subregion,
			city = EXCLUDED.city, currency = EXCLUDED.currency, image_urls = EXCLUDED.image_urls,
			updated_at = EXCLUDED.updated_at, last_sold_at = EXCLUDED.last_sold_at,
			rating = EXCLUDED.rating, reviews = EXCLUDED.reviews, labels = EXCLUDED.labels,
			discount = EXCLUDED.discount, is_featured = EXCLUDED.is_featured,
			is_new_arrival = EXCLUDED.is_new_arrival, is_best_seller = EXCLUDED.is_best_seller,
			is_on_sale = EXCLUDED.is_on_sale, is_active = EXCLUDED.is_active,
			account_id = EXCLUDED.account_id, market_type = EXCLUDED.market_type`,
		p.ID, p.Name, p.Description, nonNil(p.Brands), p.Price, p.OriginalPrice, p.Stock, p.IsAvailable,
		p.Category, nonNil(p.Tags), p.MarketID, region, subregion, city, string(p.Currency), nonNil(p.ImageURLs),
		p.CreatedAt, p.UpdatedAt, p.LastSoldAt, p.Rating, nonNil(p.Reviews), labels, p.Discount,
		p.IsFeatured, p.IsNewArrival, p.IsBestSeller, p.IsOnSale, p.IsActive,
		p.AccountID, string(p.MarketType),
	)
}

func queueSeller(batch *pgx.Batch, s model.Seller) {
	region, subregion, city := locationColumns(s.Location)
	batch.Queue(`
		INSERT INTO sellers (id, account_id, name, description, image_url, rating, region, subregion, city, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			account_id = EXCLUDED.account_id, name = EXCLUDED.name, description = EXCLUDED.description,
			image_url = EXCLUDED.image_url, rating = EXCLUDED.rating, region = EXCLUDED.region,
			subregion = EXCLUDED.subregion, city = EXCLUDED.city`,
		s.ID, s.AccountID, s.Name, s.Description, s.ImageURL, s.Rating, region, subregion, city, s.CreatedAt,
	)
}

func queueOrder(batch *pgx.Batch, o model.Order) {
	batch.Queue(`
		INSERT INTO orders (id, user_id, cart, shipping_address, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id, cart = EXCLUDED.cart, shipping_address = EXCLUDED.shipping_address,
			total_amount = EXCLUDED.total_amount, status = EXCLUDED.status`,
		o.ID, o.UserID, nonNil(o.Cart), o.ShippingAddress, o.TotalAmount, string(o.Status), o.CreatedAt,
	)
}
