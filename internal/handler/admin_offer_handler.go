package handler

import (
	"net/http"

	"github.com/gosm1/pureperfumes/internal/model"
	"github.com/gosm1/pureperfumes/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AdminOfferHandler handles the special-offer management surface.
type AdminOfferHandler struct {
	offers service.OfferService
	logger zerolog.Logger
}

// NewAdminOfferHandler creates a new admin offer handler.
func NewAdminOfferHandler(offers service.OfferService, logger zerolog.Logger) *AdminOfferHandler {
	return &AdminOfferHandler{
		offers: offers,
		logger: logger.With().Str("handler", "admin-offer").Logger(),
	}
}

// List handles GET /api/admin/offers requests.
func (h *AdminOfferHandler) List(w http.ResponseWriter, r *http.Request) {
	offers, err := h.offers.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve offers", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, offers)
}

// Create handles POST /api/admin/offers requests.
func (h *AdminOfferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var offer model.SpecialOffer
	if err := decodeJSON(r, &offer); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	created, err := h.offers.Create(r.Context(), &offer)
	if err != nil {
		h.writeWriteError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/admin/offers/{id} requests.
func (h *AdminOfferHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid offer ID format", h.logger)
		return
	}

	var offer model.SpecialOffer
	if err := decodeJSON(r, &offer); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	updated, err := h.offers.Update(r.Context(), id, &offer)
	if err != nil {
		h.writeWriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/admin/offers/{id} requests.
func (h *AdminOfferHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid offer ID format", h.logger)
		return
	}

	if err := h.offers.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminOfferHandler) writeWriteError(w http.ResponseWriter, err error) {
	if _, ok := err.(*model.DomainError); ok {
		writeServiceError(w, err, h.logger)
		return
	}
	writeError(w, http.StatusBadRequest, err.Error(), h.logger)
}
