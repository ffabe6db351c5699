package service

import (
	"context"
	"time"

	"github.com/gosm1/pureperfumes/internal/cart"
	"github.com/gosm1/pureperfumes/internal/model"

	"github.com/google/uuid"
)

// ProductGroups partitions the catalogue into the two admin management
// surfaces: standard perfumes and pack pages.
type ProductGroups struct {
	Standard []model.Product `json:"standard"`
	Packs    []model.Product `json:"packs"`
}

// CatalogService defines operations for product management.
type CatalogService interface {
	// List retrieves products whose name or brand contains the filter text,
	// case-insensitively. An empty filter returns everything.
	List(ctx context.Context, filter string) ([]model.Product, error)

	// ListGrouped retrieves filtered products partitioned into standard and
	// pack groups by category.
	ListGrouped(ctx context.Context, filter string) (*ProductGroups, error)

	// Get retrieves a single product by ID.
	Get(ctx context.Context, id string) (*model.Product, error)

	// Create inserts a new product after applying the category
	// field-presence rule.
	Create(ctx context.Context, product *model.Product) (*model.Product, error)

	// Update replaces the full product record after applying the category
	// field-presence rule.
	Update(ctx context.Context, id string, product *model.Product) (*model.Product, error)

	// Delete removes the product, deleting its uploaded images best-effort
	// first.
	Delete(ctx context.Context, id string) error
}

// CheckoutRequest carries the customer identity fields collected at checkout.
type CheckoutRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	OtherCity string `json:"otherCity,omitempty"`
	Address   string `json:"address"`
}

// OrderService defines operations for checkout and order management.
type OrderService interface {
	// Checkout snapshots the session cart into a new pending order, fires
	// the order notification, and clears the cart on success.
	Checkout(ctx context.Context, c *cart.Cart, req *CheckoutRequest) (*model.Order, error)

	// List retrieves all orders, newest first, reloading from the store when
	// the cached list has been invalidated.
	List(ctx context.Context) ([]model.Order, error)

	// Get retrieves an order by its ID.
	Get(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// UpdateStatus sets the order status, restricted to the fixed enum.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error

	// Delete removes the order.
	Delete(ctx context.Context, id uuid.UUID) error

	// Watch consumes change events and marks the cached order list stale so
	// the next List reloads. Blocks until the events channel closes.
	Watch(events <-chan struct{})
}

// OfferService defines operations for special-offer display and management.
type OfferService interface {
	// Active retrieves currently valid offers ordered by descending
	// priority. Query failures degrade to an empty list.
	Active(ctx context.Context, now time.Time) []model.SpecialOffer

	// List retrieves every offer for the admin surface.
	List(ctx context.Context) ([]model.SpecialOffer, error)

	// Get retrieves an offer by its ID.
	Get(ctx context.Context, id uuid.UUID) (*model.SpecialOffer, error)

	// Create inserts a new offer.
	Create(ctx context.Context, offer *model.SpecialOffer) (*model.SpecialOffer, error)

	// Update replaces the full offer record.
	Update(ctx context.Context, id uuid.UUID, offer *model.SpecialOffer) (*model.SpecialOffer, error)

	// Delete removes the offer.
	Delete(ctx context.Context, id uuid.UUID) error
}
