package model

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// SortBy selects the ordering applied after filtering.
type SortBy string

const (
	SortByPriceAsc  SortBy = "price_asc"
	SortByPriceDesc SortBy = "price_desc"
	SortByRating    SortBy = "rating"
	SortByNewest    SortBy = "newest"
)

// Valid reports whether s is a known sort order.
func (s SortBy) Valid() bool {
	switch s {
	case SortByPriceAsc, SortByPriceDesc, SortByRating, SortByNewest:
		return true
	}
	return false
}

// ProductFilterInput narrows a product collection. Nil fields impose no constraint.
type ProductFilterInput struct {
	Search       *string     `json:"search,omitempty"`
	CategoryID   *string     `json:"categoryId,omitempty"`
	MinPrice     *float64    `json:"minPrice,omitempty"`
	MaxPrice     *float64    `json:"maxPrice,omitempty"`
	InStock      *bool       `json:"inStock,omitempty"`
	SortBy       *SortBy     `json:"sortBy,omitempty"`
	Region       *string     `json:"region,omitempty"`
	Subregion    *string     `json:"subregion,omitempty"`
	City         *string     `json:"city,omitempty"`
	MarketType   *MarketType `json:"marketType,omitempty"`
	BrandID      *string     `json:"brandId,omitempty"`
	Labels       []Label     `json:"labels,omitempty"`
	DiscountOnly *bool       `json:"discountOnly,omitempty"`
}

// Validate checks the filter for malformed values.
func (f ProductFilterInput) Validate() error {
	if err := validatePriceBound("minPrice", f.MinPrice); err != nil {
		return err
	}
	if err := validatePriceBound("maxPrice", f.MaxPrice); err != nil {
		return err
	}
	if f.SortBy != nil && !f.SortBy.Valid() {
		return NewInvalidFilterError("sortBy", string(*f.SortBy), "must be one of price_asc, price_desc, rating, newest")
	}
	if f.MarketType != nil && !f.MarketType.Valid() {
		return NewInvalidFilterError("marketType", string(*f.MarketType), "must be domestic or global")
	}
	return nil
}

func validatePriceBound(field string, v *float64) error {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return NewInvalidFilterError(field, strconv.FormatFloat(*v, 'g', -1, 64), "must be a finite number")
	}
	if *v < 0 {
		return NewInvalidFilterError(field, strconv.FormatFloat(*v, 'g', -1, 64), "must not be negative")
	}
	return nil
}

// ParseProductFilter decodes a filter from query parameters.
// Empty parameters are treated as absent.
func ParseProductFilter(q url.Values) (ProductFilterInput, error) {
	var f ProductFilterInput

	f.Search = optionalString(q, "search")
	f.CategoryID = optionalString(q, "categoryId")
	f.Region = optionalString(q, "region")
	f.Subregion = optionalString(q, "subregion")
	f.City = optionalString(q, "city")
	f.BrandID = optionalString(q, "brandId")

	var err error
	if f.MinPrice, err = optionalFloat(q, "minPrice"); err != nil {
		return ProductFilterInput{}, err
	}
	if f.MaxPrice, err = optionalFloat(q, "maxPrice"); err != nil {
		return ProductFilterInput{}, err
	}
	if f.InStock, err = optionalBool(q, "inStock"); err != nil {
		return ProductFilterInput{}, err
	}
	if f.DiscountOnly, err = optionalBool(q, "discountOnly"); err != nil {
		return ProductFilterInput{}, err
	}

	if raw := q.Get("sortBy"); raw != "" {
		s := SortBy(raw)
		f.SortBy = &s
	}
	if raw := q.Get("marketType"); raw != "" {
		m := MarketType(raw)
		f.MarketType = &m
	}

	// labels may be repeated or comma separated
	for _, raw := range q["labels"] {
		for _, l := range strings.Split(raw, ",") {
			if l = strings.TrimSpace(l); l != "" {
				f.Labels = append(f.Labels, Label(l))
			}
		}
	}

	if err := f.Validate(); err != nil {
		return ProductFilterInput{}, err
	}

	return f, nil
}

func optionalString(q url.Values, key string) *string {
	v := q.Get(key)
	if v == "" {
		return nil
	}
	return &v
}

func optionalFloat(q url.Values, key string) (*float64, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, NewInvalidFilterError(key, raw, "must be a number")
	}
	return &v, nil
}

func optionalBool(q url.Values, key string) (*bool, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, NewInvalidFilterError(key, raw, "must be true or false")
	}
	return &v, nil
}
