package router

import (
	"net/http"

	"github.com/gosm1/pureperfumes/internal/handler"
	"github.com/gosm1/pureperfumes/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups every HTTP handler the router wires up.
type Handlers struct {
	Product      *handler.ProductHandler
	Cart         *handler.CartHandler
	Offer        *handler.OfferHandler
	AdminProduct *handler.AdminProductHandler
	AdminOrder   *handler.AdminOrderHandler
	AdminOffer   *handler.AdminOfferHandler
	Image        *handler.ImageHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, adminSecret string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Storefront routes
	mux.HandleFunc("GET /api/products", h.Product.List)
	mux.HandleFunc("GET /api/products/{id}", h.Product.Get)
	mux.HandleFunc("GET /api/offers/active", h.Offer.Active)
	mux.HandleFunc("GET /api/cart", h.Cart.Get)
	mux.HandleFunc("POST /api/cart/items", h.Cart.AddItem)
	mux.HandleFunc("PATCH /api/cart/items/{productId}", h.Cart.UpdateItem)
	mux.HandleFunc("DELETE /api/cart/items/{productId}", h.Cart.RemoveItem)
	mux.HandleFunc("POST /api/checkout", h.Cart.Checkout)

	// Admin routes, gated by the shared-secret middleware
	mux.HandleFunc("GET /api/admin/products", h.AdminProduct.List)
	mux.HandleFunc("POST /api/admin/products", h.AdminProduct.Create)
	mux.HandleFunc("PUT /api/admin/products/{id}", h.AdminProduct.Update)
	mux.HandleFunc("DELETE /api/admin/products/{id}", h.AdminProduct.Delete)

	mux.HandleFunc("GET /api/admin/orders", h.AdminOrder.List)
	mux.HandleFunc("GET /api/admin/orders/{id}", h.AdminOrder.Get)
	mux.HandleFunc("PATCH /api/admin/orders/{id}/status", h.AdminOrder.UpdateStatus)
	mux.HandleFunc("DELETE /api/admin/orders/{id}", h.AdminOrder.Delete)

	mux.HandleFunc("GET /api/admin/offers", h.AdminOffer.List)
	mux.HandleFunc("POST /api/admin/offers", h.AdminOffer.Create)
	mux.HandleFunc("PUT /api/admin/offers/{id}", h.AdminOffer.Update)
	mux.HandleFunc("DELETE /api/admin/offers/{id}", h.AdminOffer.Delete)

	mux.HandleFunc("POST /api/admin/images", h.Image.Upload)
	mux.HandleFunc("DELETE /api/admin/images", h.Image.Delete)

	// Apply middleware in order: Recovery -> Logging -> CORS -> AdminAuth
	var root http.Handler = mux
	root = middleware.AdminAuth(adminSecret, logger)(root)
	root = middleware.CORS(root)
	root = middleware.Logging(logger)(root)
	root = middleware.Recovery(logger)(root)

	return root
}
