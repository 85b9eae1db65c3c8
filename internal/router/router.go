package router

import (
	"net/http"

	"marketplace-catalog/internal/handler"
	"marketplace-catalog/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Catalog *handler.CatalogHandler
	Seller  *handler.SellerHandler
	Order   *handler.OrderHandler
}

// New creates a new HTTP router with all routes and middleware configured.
// A nil limiter disables rate limiting.
func New(
	handlers Handlers,
	limiter *middleware.RateLimiter,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("GET /api/products", handlers.Catalog.ListProducts)
	mux.HandleFunc("GET /api/products/{id}", handlers.Catalog.GetProduct)
	mux.HandleFunc("GET /api/geography", handlers.Catalog.Geography)
	mux.HandleFunc("GET /api/inventory/stats", handlers.Catalog.InventoryStats)

	mux.HandleFunc("GET /api/sellers", handlers.Seller.Search)
	mux.HandleFunc("GET /api/sellers/{id}", handlers.Seller.Profile)

	mux.HandleFunc("GET /api/orders/{id}", handlers.Order.GetByID)

	// Apply middleware in order: RequestID -> Recovery -> Logging -> CORS -> RateLimit -> APIKeyAuth
	var handler http.Handler = mux
	handler = middleware.APIKeyAuth(apiKey, logger)(handler)
	if limiter != nil {
		handler = limiter.Middleware(handler)
	}
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.RequestID(handler)

	return handler
}
