package cart

import (
	"sync"

	"github.com/rs/zerolog"
)

// Store owns the carts of all active shopper sessions. A cart is hydrated
// from the persister the first time its session is seen; a corrupt or
// unreadable payload is logged and treated as an empty cart.
type Store struct {
	mu        sync.Mutex
	carts     map[string]*Cart
	persister Persister
	clock     Clock
	logger    zerolog.Logger
}

// NewStore creates a session cart registry.
func NewStore(persister Persister, clock Clock, logger zerolog.Logger) *Store {
	return &Store{
		carts:     make(map[string]*Cart),
		persister: persister,
		clock:     clock,
		logger:    logger.With().Str("component", "cart-store").Logger(),
	}
}

// Get returns the cart for the session, hydrating it on first access.
func (s *Store) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.carts[sessionID]; ok {
		return c
	}

	c := New(sessionID, s.persister, s.clock, s.logger)
	if s.persister != nil {
		items, err := s.persister.Load(sessionID)
		if err != nil {
			s.logger.Error().
				Err(err).
				Str("session_id", sessionID).
				Msg("failed to restore cart, starting empty")
		} else if len(items) > 0 {
			c.restore(items)
		}
	}

	s.carts[sessionID] = c
	return c
}
