package catalog

import (
	"fmt"

	"marketplace-catalog/internal/model"

	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold is the stock level at or below which an in-stock
// product counts as low on stock.
const DefaultLowStockThreshold = 5

// ComputeInventoryStats summarises stock and stock value across products.
func ComputeInventoryStats(products []model.Product, lowStockThreshold int) model.InventoryStats {
	stats := model.InventoryStats{
		TotalProducts: len(products),
		TotalValue:    decimal.Zero,
	}

	for _, p := range products {
		stats.TotalStock += p.Stock
		stats.TotalValue = stats.TotalValue.Add(
			decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Stock))),
		)

		switch {
		case p.Stock <= 0:
			stats.OutOfStockCount++
		case p.Stock <= lowStockThreshold:
			stats.LowStockCount++
		}
	}

	return stats
}

// ApplyStockUpdate returns a copy of p with the stock delta applied.
func ApplyStockUpdate(p model.Product, u model.StockUpdate) (model.Product, error) {
	if err := checkTarget(p, u.ProductID); err != nil {
		return model.Product{}, err
	}

	next := p
	next.Stock = p.Stock + u.StockDelta
	next.UpdatedAt = u.UpdatedAt
	if next.Stock == 0 {
		next.IsAvailable = false
	}

	if err := ValidateProduct(next); err != nil {
		return model.Product{}, err
	}
	return next, nil
}

// ApplyPriceUpdate returns a copy of p with the new price. The update is
// rejected when its old price does not match the product.
func ApplyPriceUpdate(p model.Product, u model.PriceUpdate) (model.Product, error) {
	if err := checkTarget(p, u.ProductID); err != nil {
		return model.Product{}, err
	}
	if !decimal.NewFromFloat(p.Price).Equal(decimal.NewFromFloat(u.OldPrice)) {
		return model.Product{}, model.NewValidationError(p.ID, "price", "does not match the update's old price", u.OldPrice)
	}

	next := p
	next.Price = u.NewPrice
	next.UpdatedAt = u.UpdatedAt

	if err := ValidateProduct(next); err != nil {
		return model.Product{}, err
	}
	return next, nil
}

// ApplyAvailabilityUpdate returns a copy of p with availability set.
func ApplyAvailabilityUpdate(p model.Product, u model.ProductAvailabilityUpdate) (model.Product, error) {
	if err := checkTarget(p, u.ProductID); err != nil {
		return model.Product{}, err
	}

	next := p
	next.IsAvailable = u.IsAvailable
	next.UpdatedAt = u.UpdatedAt
	return next, nil
}

func checkTarget(p model.Product, productID string) error {
	if p.ID != productID {
		return fmt.Errorf("update for product %s applied to product %s", productID, p.ID)
	}
	return nil
}
