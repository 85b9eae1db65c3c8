package handler

import (
	"net/http"

	"marketplace-catalog/internal/model"
	"marketplace-catalog/internal/service"

	"github.com/rs/zerolog"
)

// CatalogHandler handles product, geography and inventory requests.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalogue handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// ListProducts handles GET /api/products. Filter fields come from the query string.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := model.ParseProductFilter(r.URL.Query())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	products, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/products/{id}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")
	if productID == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "product ID is required", h.logger)
		return
	}

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Geography handles GET /api/geography.
func (h *CatalogHandler) Geography(w http.ResponseWriter, r *http.Request) {
	tree, err := h.service.GeographyTree(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, tree)
}

// InventoryStats handles GET /api/inventory/stats.
func (h *CatalogHandler) InventoryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.InventoryStats(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
