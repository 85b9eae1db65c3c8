package model

import "time"

// Seller is a marketplace account that lists products.
type Seller struct {
	ID          string    `json:"id" db:"id" validate:"required"`
	AccountID   string    `json:"accountId" db:"account_id" validate:"required"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	ImageURL    string    `json:"imageUrl,omitempty" db:"image_url"`
	Rating      float64   `json:"rating" db:"rating" validate:"gte=0,lte=5"`
	Location    *Location `json:"location,omitempty"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// SellerProfile is the seller page view: the seller plus what they sell.
type SellerProfile struct {
	Seller        Seller            `json:"seller"`
	Products      []ProductWithUser `json:"products"`
	ProductCount  int               `json:"productCount"`
	ReviewCount   int               `json:"reviewCount"`
	AverageRating float64           `json:"averageRating"`
	Stars         [5]bool           `json:"stars"`
}
