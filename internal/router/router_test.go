package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace-catalog/internal/handler"
	"marketplace-catalog/internal/middleware"
	"marketplace-catalog/internal/model"
	"marketplace-catalog/internal/service"
	"marketplace-catalog/internal/snapshot"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key"

func newTestRouter(t *testing.T, limiter *middleware.RateLimiter) http.Handler {
	t.Helper()
	logger := zerolog.Nop()

	orderID := uuid.MustParse("6f1c7e1a-5d2b-4c1e-9a3f-2b8d7e6c5a41")
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	store := snapshot.NewStoreFromSnapshot(&snapshot.Snapshot{
		Products: []model.Product{
			{
				ID:          "P1",
				Name:        "Kopi Gayo",
				Price:       45000,
				Stock:       10,
				IsAvailable: true,
				Currency:    model.CurrencyIDR,
				MarketType:  model.MarketTypeDomestic,
				AccountID:   "A1",
				Location:    &model.Location{Region: "Sumatra", Subregion: "Aceh", City: "Takengon"},
				CreatedAt:   created,
			},
		},
		Sellers: []model.Seller{
			{ID: "S1", AccountID: "A1", Name: "Toko Kopi", Rating: 4.5, CreatedAt: created},
		},
		Orders: []model.Order{
			{ID: orderID, UserID: "U1", Status: model.OrderStatusPending, CreatedAt: created},
		},
	}, logger)

	handlers := Handlers{
		Catalog: handler.NewCatalogHandler(service.NewCatalogService(store.Products(), store.Sellers(), 5, logger), logger),
		Seller:  handler.NewSellerHandler(service.NewSellerService(store.Sellers(), store.Products(), logger), logger),
		Order:   handler.NewOrderHandler(service.NewOrderService(store.Orders(), logger), logger),
	}
	return New(handlers, limiter, testAPIKey, logger)
}

func TestRouter_Routes(t *testing.T) {
	r := newTestRouter(t, nil)

	tests := []struct {
		name           string
		method         string
		path           string
		apiKey         string
		expectedStatus int
	}{
		{"Health without key", http.MethodGet, "/health", "", http.StatusOK},
		{"Products require key", http.MethodGet, "/api/products", "", http.StatusUnauthorized},
		{"List products", http.MethodGet, "/api/products", testAPIKey, http.StatusOK},
		{"Filtered products", http.MethodGet, "/api/products?city=Takengon&inStock=true", testAPIKey, http.StatusOK},
		{"Invalid filter", http.MethodGet, "/api/products?minPrice=abc", testAPIKey, http.StatusBadRequest},
		{"Get product", http.MethodGet, "/api/products/P1", testAPIKey, http.StatusOK},
		{"Missing product", http.MethodGet, "/api/products/P9", testAPIKey, http.StatusNotFound},
		{"Geography", http.MethodGet, "/api/geography", testAPIKey, http.StatusOK},
		{"Inventory stats", http.MethodGet, "/api/inventory/stats", testAPIKey, http.StatusOK},
		{"Search sellers", http.MethodGet, "/api/sellers?q=kopi", testAPIKey, http.StatusOK},
		{"Seller profile", http.MethodGet, "/api/sellers/S1", testAPIKey, http.StatusOK},
		{"Get order", http.MethodGet, "/api/orders/6f1c7e1a-5d2b-4c1e-9a3f-2b8d7e6c5a41", testAPIKey, http.StatusOK},
		{"Malformed order ID", http.MethodGet, "/api/orders/123", testAPIKey, http.StatusBadRequest},
		{"Writes are not routed", http.MethodPost, "/api/products", testAPIKey, http.StatusMethodNotAllowed},
		{"Preflight", http.MethodOptions, "/api/products", "", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestRouter_RateLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(0.001, 1, zerolog.Nop())
	r := newTestRouter(t, limiter)

	send := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("X-API-Key", testAPIKey)
		req.RemoteAddr = "10.1.1.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send("/api/sellers/S1").Code)

	w := send("/api/sellers/S1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	var body model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, model.ErrCodeRateLimited, body.Error)
	assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), body.CorrelationID)

	// the bucket is per client, not per route
	assert.Equal(t, http.StatusTooManyRequests, send("/api/products").Code)
	assert.Equal(t, http.StatusOK, send("/health").Code)
}
