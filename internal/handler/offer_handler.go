package handler

import (
	"net/http"
	"time"

	"github.com/gosm1/pureperfumes/internal/service"

	"github.com/rs/zerolog"
)

// OfferHandler handles storefront special-offer requests.
type OfferHandler struct {
	offers service.OfferService
	logger zerolog.Logger
}

// NewOfferHandler creates a new offer handler.
func NewOfferHandler(offers service.OfferService, logger zerolog.Logger) *OfferHandler {
	return &OfferHandler{
		offers: offers,
		logger: logger.With().Str("handler", "offer").Logger(),
	}
}

// Active handles GET /api/offers/active requests. The promoted banner is the
// first element of the result. Failures degrade to an empty list.
func (h *OfferHandler) Active(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.offers.Active(r.Context(), time.Now()))
}
