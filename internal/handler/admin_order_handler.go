package handler

import (
	"net/http"

	"github.com/gosm1/pureperfumes/internal/model"
	"github.com/gosm1/pureperfumes/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AdminOrderHandler handles the order management surface.
type AdminOrderHandler struct {
	orders service.OrderService
	logger zerolog.Logger
}

// NewAdminOrderHandler creates a new admin order handler.
func NewAdminOrderHandler(orders service.OrderService, logger zerolog.Logger) *AdminOrderHandler {
	return &AdminOrderHandler{
		orders: orders,
		logger: logger.With().Str("handler", "admin-order").Logger(),
	}
}

// List handles GET /api/admin/orders requests.
func (h *AdminOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve orders", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// Get handles GET /api/admin/orders/{id} requests.
func (h *AdminOrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID format", h.logger)
		return
	}

	order, err := h.orders.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// updateStatusRequest is the payload for a status change.
type updateStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/orders/{id}/status requests.
func (h *AdminOrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID format", h.logger)
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.orders.UpdateStatus(r.Context(), id, req.Status); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	// Status writes are followed by a full list reload on the client.
	orders, err := h.orders.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to reload orders", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// Delete handles DELETE /api/admin/orders/{id} requests.
func (h *AdminOrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID format", h.logger)
		return
	}

	if err := h.orders.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
