package cart

import (
	"sync"
	"time"

	"github.com/gosm1/pureperfumes/internal/model"

	"github.com/rs/zerolog"
)

// DefaultDebounceWindow is how long repeated adds of the same product id are
// silently dropped. Best-effort double-click guard, not a correctness
// guarantee across sessions.
const DefaultDebounceWindow = 500 * time.Millisecond

// Cart holds the line items of one shopper session and the derived totals.
// All mutations persist the full line list through the persister before
// returning.
type Cart struct {
	mu        sync.Mutex
	sessionID string
	items     []model.CartItem
	persister Persister
	clock     Clock
	window    time.Duration
	logger    zerolog.Logger

	// Only the most recent successful add is tracked, keyed on product id
	// alone, independent of customization or quantity.
	lastAddID string
	lastAddAt time.Time
}

// New creates an empty cart for the given session. A nil persister keeps the
// cart purely in memory.
func New(sessionID string, persister Persister, clock Clock, logger zerolog.Logger) *Cart {
	if clock == nil {
		clock = SystemClock()
	}
	return &Cart{
		sessionID: sessionID,
		persister: persister,
		clock:     clock,
		window:    DefaultDebounceWindow,
		logger:    logger.With().Str("component", "cart").Str("session_id", sessionID).Logger(),
	}
}

// Add merges the product into the cart. Lines with the same product id and
// identical customization are merged by incrementing the quantity; otherwise
// a new line is appended. A second add of the same product id within the
// debounce window is silently dropped.
func (c *Cart) Add(product model.Product, quantity int, customization *model.Customization) error {
	if quantity <= 0 {
		return model.ErrInvalidQuantity
	}
	if err := customization.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if c.lastAddID == product.ID && now.Sub(c.lastAddAt) < c.window {
		c.logger.Debug().
			Str("product_id", product.ID).
			Msg("duplicate add dropped within debounce window")
		return nil
	}
	c.lastAddID = product.ID
	c.lastAddAt = now

	key := lineKey(product.ID, customization)
	for i := range c.items {
		if lineKey(c.items[i].ID, c.items[i].Customization) == key {
			c.items[i].Quantity += quantity
			c.save()
			return nil
		}
	}

	c.items = append(c.items, model.CartItem{
		Product:       product,
		Quantity:      quantity,
		Customization: customization,
	})
	c.save()
	return nil
}

// Remove deletes every line matching the product id, regardless of
// customization. Removing a product therefore drops all of its customized
// variants at once.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.save()
}

// UpdateQuantity sets the quantity of every line matching the product id.
// A quantity of zero or less behaves as Remove. Updating a product with no
// line in the cart is a no-op; no line is created.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(productID)
		return
	}

	changed := false
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items[i].Quantity = quantity
			changed = true
		}
	}
	if changed {
		c.save()
	}
}

// Clear empties the cart. Called after a successful order submission.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.save()
}

// Items returns a copy of the current line items.
func (c *Cart) Items() []model.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]model.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity across all lines.
// Offers are informational only and never deducted here.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// restore replaces the line items without persisting, used during hydration.
func (c *Cart) restore(items []model.CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
}

// save persists the full line list. Persistence failures are logged and never
// surfaced; the in-memory cart stays authoritative for the session.
func (c *Cart) save() {
	if c.persister == nil {
		return
	}
	if err := c.persister.Save(c.sessionID, c.items); err != nil {
		c.logger.Error().Err(err).Msg("failed to persist cart")
	}
}
