package catalog

import (
	"math"
	"testing"

	"marketplace-catalog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() model.Product {
	return model.Product{
		ID:         "P001",
		Name:       "Kopi Gayo",
		Price:      85000,
		Stock:      10,
		Currency:   model.CurrencyIDR,
		MarketType: model.MarketTypeDomestic,
		Rating:     4.5,
		Reviews:    []model.Review{{ID: "R1", AccountID: "A1", Rating: 5}},
		Location:   &model.Location{Region: "Sumatra", Subregion: "Aceh", City: "Takengon"},
	}
}

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *model.Product)
		field  string
	}{
		{name: "Valid product", mutate: func(p *model.Product) {}},
		{name: "Valid without location", mutate: func(p *model.Product) { p.Location = nil }},
		{name: "Valid zero price", mutate: func(p *model.Product) { p.Price = 0 }},
		{name: "Valid on sale", mutate: func(p *model.Product) { p.IsOnSale = true; p.OriginalPrice = floatPtr(90000) }},
		{name: "Valid original price below price when not on sale", mutate: func(p *model.Product) { p.OriginalPrice = floatPtr(1) }},
		{name: "Missing ID", mutate: func(p *model.Product) { p.ID = "" }, field: "id"},
		{name: "Negative price", mutate: func(p *model.Product) { p.Price = -1 }, field: "price"},
		{name: "NaN price", mutate: func(p *model.Product) { p.Price = math.NaN() }, field: "price"},
		{name: "Negative stock", mutate: func(p *model.Product) { p.Stock = -3 }, field: "stock"},
		{name: "Rating above five", mutate: func(p *model.Product) { p.Rating = 5.1 }, field: "rating"},
		{name: "Negative rating", mutate: func(p *model.Product) { p.Rating = -0.5 }, field: "rating"},
		{name: "Unknown currency", mutate: func(p *model.Product) { p.Currency = "EUR" }, field: "currency"},
		{name: "Empty currency", mutate: func(p *model.Product) { p.Currency = "" }, field: "currency"},
		{name: "Unknown market type", mutate: func(p *model.Product) { p.MarketType = "local" }, field: "marketType"},
		{name: "Original price below price on sale", mutate: func(p *model.Product) { p.IsOnSale = true; p.OriginalPrice = floatPtr(80000) }, field: "originalPrice"},
		{name: "Review rating out of range", mutate: func(p *model.Product) { p.Reviews[0].Rating = 6 }, field: "reviews[0].rating"},
		{name: "Partial location", mutate: func(p *model.Product) { p.Location.City = "" }, field: "location.city"},
		{name: "Infinite discount", mutate: func(p *model.Product) { p.Discount = floatPtr(math.Inf(1)) }, field: "discount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(&p)

			err := ValidateProduct(p)

			if tt.field == "" {
				assert.NoError(t, err)
				assert.True(t, IsValidProduct(p))
				return
			}

			require.Error(t, err)
			assert.False(t, IsValidProduct(p))
			assert.True(t, model.IsValidationError(err))

			var ve *model.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestValidateProduct_DoesNotCoerce(t *testing.T) {
	p := validProduct()
	p.Stock = -1

	require.Error(t, ValidateProduct(p))
	assert.Equal(t, -1, p.Stock)
}

func TestValidateSeller(t *testing.T) {
	tests := []struct {
		name        string
		seller      model.Seller
		expectError bool
	}{
		{"Valid", model.Seller{ID: "S1", AccountID: "A1", Rating: 4}, false},
		{"Missing ID", model.Seller{AccountID: "A1"}, true},
		{"Missing account", model.Seller{ID: "S1"}, true},
		{"Rating too high", model.Seller{ID: "S1", AccountID: "A1", Rating: 7}, true},
		{"NaN rating", model.Seller{ID: "S1", AccountID: "A1", Rating: math.NaN()}, true},
		{"Partial location", model.Seller{ID: "S1", AccountID: "A1", Location: &model.Location{Region: "Java"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeller(tt.seller)
			if tt.expectError {
				assert.True(t, model.IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
