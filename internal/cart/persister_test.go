package cart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gosm1/pureperfumes/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePersisterRoundtrip(t *testing.T) {
	p, err := NewFilePersister(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	items := []model.CartItem{
		{
			Product:  mkProduct("A", 100),
			Quantity: 2,
		},
		{
			Product:       mkProduct("B", 50),
			Quantity:      1,
			Customization: &model.Customization{RingSize: intPtr(7), PerfumeType: "custom", CustomPerfumeName: "Oud Royal"},
		},
	}

	require.NoError(t, p.Save("session-1", items))

	loaded, err := p.Load("session-1")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "A", loaded[0].ID)
	assert.Equal(t, 2, loaded[0].Quantity)
	require.NotNil(t, loaded[1].Customization)
	assert.Equal(t, 7, *loaded[1].Customization.RingSize)
	assert.Equal(t, "Oud Royal", loaded[1].Customization.CustomPerfumeName)
}

func TestFilePersisterLoadMissingSession(t *testing.T) {
	p, err := NewFilePersister(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	items, err := p.Load("never-seen")
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestFilePersisterRejectsUnsafeSessionIDs(t *testing.T) {
	p, err := NewFilePersister(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	for _, id := range []string{"", "../etc/passwd", "a/b", `a\b`, "a.b"} {
		_, err := p.Load(id)
		assert.Error(t, err, "session id %q", id)
		assert.Error(t, p.Save(id, nil), "session id %q", id)
	}
}

func TestFilePersisterDelete(t *testing.T) {
	p, err := NewFilePersister(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, p.Save("session-1", []model.CartItem{{Product: mkProduct("A", 100), Quantity: 1}}))
	require.NoError(t, p.Delete("session-1"))

	items, err := p.Load("session-1")
	require.NoError(t, err)
	assert.Nil(t, items)

	// Deleting a session with no stored cart is not an error.
	require.NoError(t, p.Delete("session-1"))
}

func TestStoreHydratesCartOnFirstAccess(t *testing.T) {
	dir := t.TempDir()
	p, err := NewFilePersister(dir, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, p.Save("session-1", []model.CartItem{{Product: mkProduct("A", 100), Quantity: 3}}))

	store := NewStore(p, newFakeClock(), zerolog.Nop())
	c := store.Get("session-1")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)

	// The same session always resolves to the same cart.
	assert.Same(t, c, store.Get("session-1"))
}

func TestStoreCorruptPayloadStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	p, err := NewFilePersister(dir, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "session-1.json"), []byte("{not json"), 0o644))

	store := NewStore(p, newFakeClock(), zerolog.Nop())
	c := store.Get("session-1")

	assert.Empty(t, c.Items())

	// The cart remains usable after the failed restore.
	require.NoError(t, c.Add(mkProduct("A", 100), 1, nil))
	assert.Len(t, c.Items(), 1)
}
