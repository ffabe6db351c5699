package handler

import (
	"net/http"

	"github.com/gosm1/pureperfumes/internal/model"
	"github.com/gosm1/pureperfumes/internal/service"

	"github.com/rs/zerolog"
)

// AdminProductHandler handles the product management surface.
type AdminProductHandler struct {
	catalog service.CatalogService
	logger  zerolog.Logger
}

// NewAdminProductHandler creates a new admin product handler.
func NewAdminProductHandler(catalog service.CatalogService, logger zerolog.Logger) *AdminProductHandler {
	return &AdminProductHandler{
		catalog: catalog,
		logger:  logger.With().Str("handler", "admin-product").Logger(),
	}
}

// List handles GET /api/admin/products requests. Products are partitioned
// into standard and pack groups; ?q= filters name and brand.
func (h *AdminProductHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.catalog.ListGrouped(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, groups)
}

// Create handles POST /api/admin/products requests.
func (h *AdminProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var product model.Product
	if err := decodeJSON(r, &product); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	created, err := h.catalog.Create(r.Context(), &product)
	if err != nil {
		h.writeWriteError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/admin/products/{id} requests. The full record is
// replaced server-side; the following reload shows the applied state.
func (h *AdminProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	var product model.Product
	if err := decodeJSON(r, &product); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	updated, err := h.catalog.Update(r.Context(), id, &product)
	if err != nil {
		h.writeWriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/admin/products/{id} requests.
func (h *AdminProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	if err := h.catalog.Delete(r.Context(), id); err != nil {
		h.writeWriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeWriteError surfaces write failures with their message so the operator
// can retry the same action; the in-memory state is unchanged.
func (h *AdminProductHandler) writeWriteError(w http.ResponseWriter, err error) {
	if _, ok := err.(*model.DomainError); ok {
		writeServiceError(w, err, h.logger)
		return
	}
	writeError(w, http.StatusBadRequest, err.Error(), h.logger)
}
