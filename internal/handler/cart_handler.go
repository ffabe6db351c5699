package handler

import (
	"errors"
	"net/http"

	"github.com/gosm1/pureperfumes/internal/cart"
	"github.com/gosm1/pureperfumes/internal/model"
	"github.com/gosm1/pureperfumes/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// sessionCookie identifies the shopper session owning a cart.
const sessionCookie = "cart_session"

// CartHandler handles cart and checkout requests for the active session.
type CartHandler struct {
	carts   *cart.Store
	catalog service.CatalogService
	orders  service.OrderService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(carts *cart.Store, catalog service.CatalogService, orders service.OrderService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		carts:   carts,
		catalog: catalog,
		orders:  orders,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// cartView is the cart body returned by every cart endpoint.
type cartView struct {
	Items      []model.CartItem `json:"items"`
	TotalItems int              `json:"totalItems"`
	TotalPrice float64          `json:"totalPrice"`
}

func view(c *cart.Cart) cartView {
	return cartView{
		Items:      c.Items(),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}

// sessionCart resolves the cart of the request's session, minting a session
// cookie on first use.
func (h *CartHandler) sessionCart(w http.ResponseWriter, r *http.Request) *cart.Cart {
	var sessionID string
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		sessionID = cookie.Value
	} else {
		sessionID = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    sessionID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return h.carts.Get(sessionID)
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, view(h.sessionCart(w, r)))
}

// addItemRequest is the payload for adding a line to the cart.
type addItemRequest struct {
	ProductID     string               `json:"productId"`
	Quantity      int                  `json:"quantity"`
	Customization *model.Customization `json:"customization,omitempty"`
}

// AddItem handles POST /api/cart/items requests. The server resolves the
// product by id and snapshots it into the line.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	product, err := h.catalog.Get(r.Context(), req.ProductID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	c := h.sessionCart(w, r)
	if err := c.Add(*product, req.Quantity, req.Customization); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view(c))
}

// updateItemRequest is the payload for a quantity change.
type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem handles PATCH /api/cart/items/{productId} requests. A quantity
// of zero or less removes every line of the product.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productId")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	c := h.sessionCart(w, r)
	c.UpdateQuantity(productID, req.Quantity)

	writeJSON(w, http.StatusOK, view(c))
}

// RemoveItem handles DELETE /api/cart/items/{productId} requests. Every line
// of the product is removed, customized variants included.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productId")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	c := h.sessionCart(w, r)
	c.Remove(productID)

	writeJSON(w, http.StatusOK, view(c))
}

// Checkout handles POST /api/checkout requests.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req service.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	c := h.sessionCart(w, r)
	order, err := h.orders.Checkout(r.Context(), c, &req)
	if err != nil {
		// Validation problems carry their own code and message; persistence
		// problems stay opaque.
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			writeServiceError(w, err, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create order", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}
