package service

import (
	"context"

	"marketplace-catalog/internal/model"

	"github.com/google/uuid"
)

// CatalogService answers product queries over the catalogue.
type CatalogService interface {
	// ListProducts returns the valid products matching filter.
	ListProducts(ctx context.Context, filter model.ProductFilterInput) ([]model.Product, error)

	// GetProduct retrieves a single product by ID.
	GetProduct(ctx context.Context, id string) (*model.Product, error)

	// GeographyTree groups valid products and sellers by location.
	GeographyTree(ctx context.Context) (*model.GeographyTree, error)

	// InventoryStats summarises stock across valid products.
	InventoryStats(ctx context.Context) (*model.InventoryStats, error)
}

// SellerService answers seller queries.
type SellerService interface {
	// Search returns sellers whose name or location contains query.
	Search(ctx context.Context, query string) ([]model.Seller, error)

	// Profile builds the seller page for the seller with the given ID.
	Profile(ctx context.Context, id string) (*model.SellerProfile, error)
}

// OrderService defines read operations on orders.
type OrderService interface {
	// GetByID retrieves an order by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
}
