package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"marketplace-catalog/internal/config"
	"marketplace-catalog/internal/database"
	"marketplace-catalog/internal/model"
	"marketplace-catalog/internal/snapshot"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
}

// SetupTestDB creates a PostgreSQL test container, connects through
// database.Open, which also applies the catalogue schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "testuser",
		Password:        "testpass",
		Database:        "testdb",
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
		ApplicationName: "catalog-integration",
	}

	pool, err := database.Open(ctx, dbConfig, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
	}
}

// FixtureOrderID identifies the single order in Fixture.
var FixtureOrderID = uuid.MustParse("0b7f2f0e-6c1a-4d7e-8a61-3f0d9d0c2b11")

// Fixture returns the catalogue used by the integration tests. P-BAD has an
// unsupported currency and S-3 has no location.
func Fixture() *snapshot.Snapshot {
	base := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	discount := 15.0
	original := 100000.0

	takengon := &model.Location{Region: "Sumatra", Subregion: "Aceh", City: "Takengon"}
	solo := &model.Location{Region: "Java", Subregion: "Central Java", City: "Solo"}
	bandung := &model.Location{Region: "Java", Subregion: "West Java", City: "Bandung"}

	return &snapshot.Snapshot{
		GeneratedAt: base,
		Products: []model.Product{
			{
				ID:            "P-1",
				Name:          "Kopi Gayo",
				Brands:        []model.Brand{{ID: "brand-gayo", Name: "Gayo", CreatedAt: base}},
				Price:         85000,
				OriginalPrice: &original,
				Stock:         20,
				IsAvailable:   true,
				Category:      &model.Category{ID: "cat-coffee", Name: "Coffee", CreatedAt: base},
				Location:      takengon,
				Currency:      model.CurrencyIDR,
				CreatedAt:     base,
				UpdatedAt:     base,
				Rating:        4,
				Reviews:       []model.Review{{ID: "R-1", AccountID: "buyer", Rating: 4, CreatedAt: base}},
				Labels:        []model.Label{"organic"},
				Discount:      &discount,
				IsOnSale:      true,
				AccountID:     "acc-1",
				MarketType:    model.MarketTypeDomestic,
			},
			{
				ID: "P-2", Name: "Batik Tulis", Price: 450000, Stock: 2, IsAvailable: true,
				Currency: model.CurrencyIDR, MarketType: model.MarketTypeGlobal, Location: solo,
				AccountID: "acc-2", Rating: 5, CreatedAt: base.Add(time.Hour), UpdatedAt: base,
			},
			{
				ID: "P-3", Name: "Keripik Tempe", Price: 15000, Stock: 0, IsAvailable: true,
				Currency: model.CurrencyIDR, MarketType: model.MarketTypeDomestic, Location: bandung,
				AccountID: "acc-1", Rating: 3.5, CreatedAt: base.Add(2 * time.Hour), UpdatedAt: base,
			},
			{
				ID: "P-4", Name: "Gift Card", Price: 50000, Stock: 100, IsAvailable: true,
				Currency: model.CurrencyIDR, MarketType: model.MarketTypeDomestic,
				AccountID: "acc-2", CreatedAt: base.Add(3 * time.Hour), UpdatedAt: base,
			},
			{
				ID: "P-BAD", Name: "Imported Cheese", Price: 20, Stock: 1,
				Currency: "EUR", MarketType: model.MarketTypeGlobal,
				AccountID: "acc-2", CreatedAt: base.Add(4 * time.Hour), UpdatedAt: base,
			},
		},
		Sellers: []model.Seller{
			{ID: "S-1", AccountID: "acc-1", Name: "Toko Kopi", Rating: 4.5, Location: takengon, CreatedAt: base},
			{ID: "S-2", AccountID: "acc-2", Name: "Batik Solo", Rating: 4.9, Location: solo, CreatedAt: base},
			{ID: "S-3", AccountID: "acc-3", Name: "Nomad Goods", Rating: 3, CreatedAt: base},
		},
		Orders: []model.Order{
			{
				ID:              FixtureOrderID,
				UserID:          "buyer",
				Cart:            []model.CartItem{{ProductID: "P-1", Name: "Kopi Gayo", Price: 85000, Quantity: 1}},
				ShippingAddress: "Jl. Braga 10, Bandung",
				TotalAmount:     85000,
				Status:          model.OrderStatusShipped,
				CreatedAt:       base,
			},
		},
	}
}

// SeedFixture loads Fixture into the database.
func SeedFixture(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	snap := Fixture()
	if err := database.Seed(context.Background(), pool, snap.Products, snap.Sellers, snap.Orders); err != nil {
		t.Fatalf("failed to seed fixture: %v", err)
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"orders", "sellers", "products"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
