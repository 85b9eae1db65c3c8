package catalog

import (
	"sort"
	"strings"

	"marketplace-catalog/internal/model"
)

// FilterProducts returns the products satisfying every constraint present in
// filter, ordered by filter.SortBy. Without a sort order the input order is
// kept. The input slice is never modified.
func FilterProducts(products []model.Product, filter model.ProductFilterInput) ([]model.Product, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	out := make([]model.Product, 0, len(products))

	// an inverted price range matches nothing
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return out, nil
	}

	m := newMatcher(filter)
	for i := range products {
		if m.match(&products[i]) {
			out = append(out, products[i])
		}
	}

	if filter.SortBy != nil {
		sortProducts(out, *filter.SortBy)
	}

	return out, nil
}

// matcher holds the normalised form of a filter.
type matcher struct {
	filter model.ProductFilterInput
	search string
	labels map[model.Label]struct{}
}

func newMatcher(filter model.ProductFilterInput) *matcher {
	m := &matcher{filter: filter}
	if filter.Search != nil {
		m.search = strings.ToLower(strings.TrimSpace(*filter.Search))
	}
	if len(filter.Labels) > 0 {
		m.labels = make(map[model.Label]struct{}, len(filter.Labels))
		for _, l := range filter.Labels {
			m.labels[l] = struct{}{}
		}
	}
	return m
}

func (m *matcher) match(p *model.Product) bool {
	f := m.filter

	if m.search != "" && !matchesSearch(p, m.search) {
		return false
	}
	if f.CategoryID != nil && (p.Category == nil || p.Category.ID != *f.CategoryID) {
		return false
	}
	// negated so a NaN price fails both bounds
	if f.MinPrice != nil && !(p.Price >= *f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && !(p.Price <= *f.MaxPrice) {
		return false
	}
	if f.InStock != nil && *f.InStock && p.Stock <= 0 {
		return false
	}
	if f.DiscountOnly != nil && *f.DiscountOnly && !p.HasDiscount() {
		return false
	}
	if f.MarketType != nil && p.MarketType != *f.MarketType {
		return false
	}
	if f.BrandID != nil && !p.HasBrand(*f.BrandID) {
		return false
	}
	if !matchesLocation(p.Location, f.Region, f.Subregion, f.City) {
		return false
	}
	if m.labels != nil && !m.hasLabel(p.Labels) {
		return false
	}
	return true
}

func (m *matcher) hasLabel(labels []model.Label) bool {
	for _, l := range labels {
		if _, ok := m.labels[l]; ok {
			return true
		}
	}
	return false
}

// matchesSearch expects term to be lower-cased already.
func matchesSearch(p *model.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func matchesLocation(loc *model.Location, region, subregion, city *string) bool {
	if region == nil && subregion == nil && city == nil {
		return true
	}
	if loc == nil {
		return false
	}
	if region != nil && loc.Region != *region {
		return false
	}
	if subregion != nil && loc.Subregion != *subregion {
		return false
	}
	if city != nil && loc.City != *city {
		return false
	}
	return true
}

// sortProducts orders products in place. Ties fall back to ID ascending so the
// result does not depend on the input order.
func sortProducts(products []model.Product, by model.SortBy) {
	var less func(a, b *model.Product) (bool, bool)
	switch by {
	case model.SortByPriceAsc:
		less = func(a, b *model.Product) (bool, bool) { return a.Price < b.Price, a.Price == b.Price }
	case model.SortByPriceDesc:
		less = func(a, b *model.Product) (bool, bool) { return a.Price > b.Price, a.Price == b.Price }
	case model.SortByRating:
		less = func(a, b *model.Product) (bool, bool) { return a.Rating > b.Rating, a.Rating == b.Rating }
	case model.SortByNewest:
		less = func(a, b *model.Product) (bool, bool) {
			return a.CreatedAt.After(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
		}
	default:
		return
	}

	sort.SliceStable(products, func(i, j int) bool {
		lt, eq := less(&products[i], &products[j])
		if eq {
			return products[i].ID < products[j].ID
		}
		return lt
	})
}
