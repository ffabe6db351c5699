package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosm1/pureperfumes/internal/model"

	"github.com/rs/zerolog"
)

// Persister is the serialize/deserialize adapter at the cart boundary.
type Persister interface {
	// Load returns the stored line items for the session, or nil when the
	// session has no stored cart.
	Load(sessionID string) ([]model.CartItem, error)

	// Save stores the full line list for the session.
	Save(sessionID string, items []model.CartItem) error

	// Delete removes the stored cart for the session.
	Delete(sessionID string) error
}

// filePersister stores one JSON document per session under a data directory.
type filePersister struct {
	dir    string
	logger zerolog.Logger
}

// NewFilePersister creates a Persister backed by JSON files under dir.
func NewFilePersister(dir string, logger zerolog.Logger) (Persister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cart data directory %s: %w", dir, err)
	}
	return &filePersister{
		dir:    dir,
		logger: logger.With().Str("component", "cart-persister").Logger(),
	}, nil
}

func (p *filePersister) path(sessionID string) (string, error) {
	// Session ids are server-minted UUIDs, but never trust them as path input.
	if sessionID == "" || strings.ContainsAny(sessionID, `/\.`) {
		return "", fmt.Errorf("invalid session id %q", sessionID)
	}
	return filepath.Join(p.dir, sessionID+".json"), nil
}

// Load reads and decodes the stored cart for the session.
func (p *filePersister) Load(sessionID string) ([]model.CartItem, error) {
	path, err := p.path(sessionID)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}

	var items []model.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart file: %w", err)
	}

	return items, nil
}

// Save writes the full line list for the session.
func (p *filePersister) Save(sessionID string, items []model.CartItem) error {
	path, err := p.path(sessionID)
	if err != nil {
		return err
	}

	if items == nil {
		items = []model.CartItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart file: %w", err)
	}

	return nil
}

// Delete removes the stored cart for the session.
func (p *filePersister) Delete(sessionID string) error {
	path, err := p.path(sessionID)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete cart file: %w", err)
	}
	return nil
}
