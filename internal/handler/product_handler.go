package handler

import (
	"net/http"

	"github.com/gosm1/pureperfumes/internal/model"
	"github.com/gosm1/pureperfumes/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles storefront product requests.
type ProductHandler struct {
	catalog service.CatalogService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalog service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests with optional ?q= and ?category=
// filters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	products, err := h.catalog.List(r.Context(), filter)
	if err != nil {
		// Storefront reads degrade to an empty catalogue instead of showing
		// shoppers an error page. The admin listing keeps the real error.
		h.logger.Warn().Err(err).Msg("product listing unavailable, serving empty catalogue")
		writeJSON(w, http.StatusOK, []model.Product{})
		return
	}

	if category != "" {
		if !model.Category(category).IsValid() {
			writeServiceError(w, model.ErrInvalidCategory, h.logger)
			return
		}
		filtered := make([]model.Product, 0, len(products))
		for _, p := range products {
			if p.Category == model.Category(category) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if products == nil {
		products = []model.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

// Get handles GET /api/products/{id} requests.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	product, err := h.catalog.Get(r.Context(), productID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}
