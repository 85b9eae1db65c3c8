package catalog

import (
	"strings"

	"marketplace-catalog/internal/model"
)

// SearchSellers matches query case-insensitively against a seller's name and
// the names of its city, subregion and region. A blank query returns every
// seller. Input order is kept.
func SearchSellers(sellers []model.Seller, query string) []model.Seller {
	term := strings.ToLower(strings.TrimSpace(query))

	out := make([]model.Seller, 0, len(sellers))
	for _, s := range sellers {
		if term == "" || sellerMatches(s, term) {
			out = append(out, s)
		}
	}
	return out
}

func sellerMatches(s model.Seller, term string) bool {
	if strings.Contains(strings.ToLower(s.Name), term) {
		return true
	}
	if s.Location == nil {
		return false
	}
	for _, name := range []string{s.Location.City, s.Location.Subregion, s.Location.Region} {
		if strings.Contains(strings.ToLower(name), term) {
			return true
		}
	}
	return false
}

// BuildSellerProfile collects the seller's products (matched on account ID)
// and aggregates their reviews.
func BuildSellerProfile(seller model.Seller, products []model.Product) model.SellerProfile {
	profile := model.SellerProfile{
		Seller:   seller,
		Products: []model.ProductWithUser{},
	}

	var reviews []model.Review
	for _, p := range products {
		if p.AccountID != seller.AccountID {
			continue
		}
		profile.Products = append(profile.Products, model.ProductWithUser{
			Product:       p,
			AccountName:   seller.Name,
			AccountRating: seller.Rating,
		})
		reviews = append(reviews, p.Reviews...)
	}

	profile.ProductCount = len(profile.Products)
	profile.AverageRating, profile.ReviewCount = AverageRating(reviews)
	profile.Stars = Stars(seller.Rating)

	return profile
}
