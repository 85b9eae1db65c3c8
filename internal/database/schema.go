package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the catalogue tables. Location columns are nullable so
// unlocated products and sellers can be stored as they are.
const Schema = `
	CREATE TABLE IF NOT EXISTS products (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		brands         JSONB NOT NULL DEFAULT '[]',
		price          DOUBLE PRECISION NOT NULL,
		original_price DOUBLE PRECISION,
		stock          INTEGER NOT NULL DEFAULT 0,
		is_available   BOOLEAN NOT NULL DEFAULT TRUE,
		category       JSONB,
		tags           TEXT[] NOT NULL DEFAULT '{}',
		market_id      TEXT NOT NULL DEFAULT '',
		region         TEXT,
		subregion      TEXT,
		city           TEXT,
		currency       TEXT NOT NULL,
		image_urls     TEXT[] NOT NULL DEFAULT '{}',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_sold_at   TIMESTAMPTZ,
		rating         DOUBLE PRECISION NOT NULL DEFAULT 0,
		reviews        JSONB NOT NULL DEFAULT '[]',
		labels         TEXT[] NOT NULL DEFAULT '{}',
		discount       DOUBLE PRECISION,
		is_featured    BOOLEAN NOT NULL DEFAULT FALSE,
		is_new_arrival BOOLEAN NOT NULL DEFAULT FALSE,
		is_best_seller BOOLEAN NOT NULL DEFAULT FALSE,
		is_on_sale     BOOLEAN NOT NULL DEFAULT FALSE,
		is_active      BOOLEAN NOT NULL DEFAULT TRUE,
		account_id     TEXT NOT NULL DEFAULT '',
		market_type    TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_products_account_id ON products(account_id);
	CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC);

	CREATE TABLE IF NOT EXISTS sellers (
		id          TEXT PRIMARY KEY,
		account_id  TEXT NOT NULL,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image_url   TEXT NOT NULL DEFAULT '',
		rating      DOUBLE PRECISION NOT NULL DEFAULT 0,
		region      TEXT,
		subregion   TEXT,
		city        TEXT,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_sellers_account_id ON sellers(account_id);

	CREATE TABLE IF NOT EXISTS orders (
		id               UUID PRIMARY KEY,
		user_id          TEXT NOT NULL,
		cart             JSONB NOT NULL DEFAULT '[]',
		shipping_address TEXT NOT NULL DEFAULT '',
		total_amount     DOUBLE PRECISION NOT NULL,
		status           TEXT NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
`

// Migrate applies Schema. It is safe to run more than once.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
