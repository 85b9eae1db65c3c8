package handler

import (
	"net/http"

	"marketplace-catalog/internal/model"
	"marketplace-catalog/internal/service"

	"github.com/rs/zerolog"
)

// SellerHandler handles seller search and profile requests.
type SellerHandler struct {
	service service.SellerService
	logger  zerolog.Logger
}

// NewSellerHandler creates a new seller handler.
func NewSellerHandler(service service.SellerService, logger zerolog.Logger) *SellerHandler {
	return &SellerHandler{
		service: service,
		logger:  logger.With().Str("handler", "seller").Logger(),
	}
}

// Search handles GET /api/sellers?q=.
func (h *SellerHandler) Search(w http.ResponseWriter, r *http.Request) {
	sellers, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, sellers)
}

// Profile handles GET /api/sellers/{id}.
func (h *SellerHandler) Profile(w http.ResponseWriter, r *http.Request) {
	sellerID := r.PathValue("id")
	if sellerID == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "seller ID is required", h.logger)
		return
	}

	profile, err := h.service.Profile(r.Context(), sellerID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
