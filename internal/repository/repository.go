package repository

import (
	"context"
	"time"

	"github.com/gosm1/pureperfumes/internal/model"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves every product, ordered by name.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil, nil when
	// the product does not exist.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// Update replaces the full product record.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes the product row.
	Delete(ctx context.Context, id string) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// Create inserts a new order with its cart-item snapshot.
	Create(ctx context.Context, order *model.Order) error

	// GetAll retrieves every order, newest first.
	GetAll(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves an order by its ID. Returns nil, nil when the order
	// does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// UpdateStatus sets the status of an order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error

	// Delete removes the order row.
	Delete(ctx context.Context, id uuid.UUID) error
}

// OfferRepository defines the interface for special-offer data access operations.
type OfferRepository interface {
	// GetAll retrieves every offer, highest priority first.
	GetAll(ctx context.Context) ([]model.SpecialOffer, error)

	// GetActive retrieves offers with is_active set whose date range contains
	// now (boundaries inclusive), highest priority first.
	GetActive(ctx context.Context, now time.Time) ([]model.SpecialOffer, error)

	// GetByID retrieves an offer by its ID. Returns nil, nil when the offer
	// does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.SpecialOffer, error)

	// Create inserts a new offer.
	Create(ctx context.Context, offer *model.SpecialOffer) error

	// Update replaces the full offer record.
	Update(ctx context.Context, offer *model.SpecialOffer) error

	// Delete removes the offer row.
	Delete(ctx context.Context, id uuid.UUID) error
}
