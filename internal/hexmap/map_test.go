package hexmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hexfield/internal/hex"
)

func TestMapBasics(t *testing.T) {
	m := New[string]()
	h := hex.Axial(1, -1)

	_, ok := m.Get(h)
	assert.False(t, ok)
	assert.False(t, m.Has(h))

	m.Set(h, "red")
	v, ok := m.Get(h)
	require.True(t, ok)
	assert.Equal(t, "red", v)
	assert.True(t, m.Has(h))
	assert.Equal(t, 1, m.Len())

	// same hex built another way is the same key
	same, err := hex.NewHex(1, -1, 0)
	require.NoError(t, err)
	m.Set(same, "blue")
	assert.Equal(t, 1, m.Len())
	v, _ = m.Get(h)
	assert.Equal(t, "blue", v)

	m.Delete(h)
	assert.False(t, m.Has(h))
	assert.Equal(t, 0, m.Len())
	m.Delete(h)
}

func TestForEachVisitsOnce(t *testing.T) {
	m := Populate(Hexagon(3), func(h hex.Hex) int { return h.Len() })
	seen := map[hex.Hex]int{}
	m.ForEach(func(h hex.Hex, v int) {
		seen[h]++
		assert.Equal(t, h.Len(), v)
	})
	assert.Len(t, seen, m.Len())
	for h, n := range seen {
		assert.Equal(t, 1, n, "%s", h)
	}
}

func TestAllStopsEarly(t *testing.T) {
	m := Populate(Hexagon(2), func(hex.Hex) bool { return true })
	n := 0
	for range m.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestEmptyMap(t *testing.T) {
	m := Populate(Hexagon(-1), func(hex.Hex) int { return 0 })
	assert.Equal(t, 0, m.Len())
	m.ForEach(func(hex.Hex, int) { t.Fatal("unexpected entry") })
	assert.Equal(t, "Map(hexes=0)", m.String())
}
