package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the currency a product is priced in.
type Currency string

const (
	CurrencyIDR Currency = "IDR"
	CurrencyUSD Currency = "USD"
)

// Valid reports whether c is a supported currency.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyIDR, CurrencyUSD:
		return true
	}
	return false
}

// MarketType separates domestic listings from global ones.
type MarketType string

const (
	MarketTypeDomestic MarketType = "domestic"
	MarketTypeGlobal   MarketType = "global"
)

// Valid reports whether m is a known market type.
func (m MarketType) Valid() bool {
	switch m {
	case MarketTypeDomestic, MarketTypeGlobal:
		return true
	}
	return false
}

// ParseMarketType converts a raw string into a MarketType.
func ParseMarketType(s string) (MarketType, bool) {
	m := MarketType(s)
	return m, m.Valid()
}

// Label is a free-form marketing label attached to a product.
type Label string

// Location places a product or seller in the region/subregion/city hierarchy.
type Location struct {
	Region    string `json:"region" db:"region" validate:"required"`
	Subregion string `json:"subregion" db:"subregion" validate:"required"`
	City      string `json:"city" db:"city" validate:"required"`
}

// Complete reports whether all three levels of the location are set.
func (l *Location) Complete() bool {
	return l != nil && l.Region != "" && l.Subregion != "" && l.City != ""
}

// Brand is a product brand.
type Brand struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Category is a product category. Products carry a copy, not a reference.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Review is a single customer review of a product.
type Review struct {
	ID        string    `json:"id"`
	AccountID string    `json:"accountId"`
	Rating    int       `json:"rating" validate:"gte=0,lte=5"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// Product represents a listing in the marketplace catalogue.
type Product struct {
	ID            string     `json:"id" db:"id" validate:"required"`
	Name          string     `json:"name" db:"name"`
	Description   string     `json:"description" db:"description"`
	Brands        []Brand    `json:"brand" db:"brands"`
	Price         float64    `json:"price" db:"price" validate:"gte=0"`
	OriginalPrice *float64   `json:"originalPrice" db:"original_price" validate:"omitempty,gte=0"`
	Stock         int        `json:"stock" db:"stock" validate:"gte=0"`
	IsAvailable   bool       `json:"isAvailable" db:"is_available"`
	Category      *Category  `json:"category,omitempty" db:"category"`
	Tags          []string   `json:"tags" db:"tags"`
	MarketID      string     `json:"marketId" db:"market_id"`
	Location      *Location  `json:"location,omitempty"`
	Currency      Currency   `json:"currency" db:"currency" validate:"oneof=IDR USD"`
	ImageURLs     []string   `json:"imageUrls" db:"image_urls"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
	LastSoldAt    *time.Time `json:"lastSoldAt,omitempty" db:"last_sold_at"`
	Rating        float64    `json:"rating" db:"rating" validate:"gte=0,lte=5"`
	Reviews       []Review   `json:"reviews" db:"reviews" validate:"dive"`
	Labels        []Label    `json:"labels" db:"labels"`
	Discount      *float64   `json:"discount,omitempty" db:"discount"`
	IsFeatured    bool       `json:"isFeatured,omitempty" db:"is_featured"`
	IsNewArrival  bool       `json:"isNewArrival,omitempty" db:"is_new_arrival"`
	IsBestSeller  bool       `json:"isBestSeller,omitempty" db:"is_best_seller"`
	IsOnSale      bool       `json:"isOnSale,omitempty" db:"is_on_sale"`
	IsActive      bool       `json:"isActive,omitempty" db:"is_active"`
	AccountID     string     `json:"accountId" db:"account_id"`
	MarketType    MarketType `json:"marketType" db:"market_type" validate:"oneof=domestic global"`
}

// HasDiscount reports whether the product carries a positive discount.
// The discount value itself is opaque: it may be a percentage or an amount.
func (p *Product) HasDiscount() bool {
	return p.Discount != nil && *p.Discount > 0
}

// HasBrand reports whether any of the product's brands has the given ID.
func (p *Product) HasBrand(id string) bool {
	for _, b := range p.Brands {
		if b.ID == id {
			return true
		}
	}
	return false
}

// ProductWithUser is a product decorated with its seller's display data.
type ProductWithUser struct {
	Product
	AccountName   string  `json:"accountName"`
	AccountRating float64 `json:"accountRating"`
}

// InventoryStats summarises stock across a set of products.
type InventoryStats struct {
	TotalProducts   int             `json:"totalProducts"`
	TotalStock      int             `json:"totalStock"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	LowStockCount   int             `json:"lowStockCount"`
	OutOfStockCount int             `json:"outOfStockCount"`
}

// StockUpdate adjusts a product's stock by a signed delta.
type StockUpdate struct {
	ProductID  string    `json:"productId"`
	StockDelta int       `json:"stockDelta"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PriceUpdate replaces a product's price. OldPrice must match the current price.
type PriceUpdate struct {
	ProductID string    `json:"productId"`
	OldPrice  float64   `json:"oldPrice"`
	NewPrice  float64   `json:"newPrice"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductAvailabilityUpdate toggles whether a product can be bought.
type ProductAvailabilityUpdate struct {
	ProductID   string    `json:"productId"`
	IsAvailable bool      `json:"isAvailable"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
