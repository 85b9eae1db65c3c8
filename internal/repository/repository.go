package repository

import (
	"context"

	"marketplace-catalog/internal/model"

	"github.com/google/uuid"
)

// ProductRepository is read-only access to the product collection.
type ProductRepository interface {
	// ListProducts returns every stored product in storage order.
	ListProducts(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product. It returns nil, nil when no product has the ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

// SellerRepository is read-only access to the seller collection.
type SellerRepository interface {
	// ListSellers returns every stored seller in storage order.
	ListSellers(ctx context.Context) ([]model.Seller, error)

	// GetByID retrieves a single seller. It returns nil, nil when no seller has the ID.
	GetByID(ctx context.Context, id string) (*model.Seller, error)
}

// OrderRepository is read-only access to orders.
type OrderRepository interface {
	// GetByID retrieves an order with its cart. It returns nil, nil when no order has the ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
}

// locationFromColumns builds a Location from nullable columns. All-null means unlocated.
func locationFromColumns(region, subregion, city *string) *model.Location {
	if region == nil && subregion == nil && city == nil {
		return nil
	}
	loc := &model.Location{}
	if region != nil {
		loc.Region = *region
	}
	if subregion != nil {
		loc.Subregion = *subregion
	}
	if city != nil {
		loc.City = *city
	}
	return loc
}
