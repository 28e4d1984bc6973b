// Package hexmap provides a generic hex-keyed container and the shape
// strategies used to populate it.
package hexmap

import (
	"fmt"
	"iter"

	"github.com/talgya/hexfield/internal/hex"
)

// Map holds one payload per hex. It is owned by a single caller; share it
// read-only once populated, or synchronise externally.
type Map[T any] struct {
	cells map[hex.Hex]T
}

// New creates an empty map.
func New[T any]() *Map[T] {
	return &Map[T]{cells: make(map[hex.Hex]T)}
}

// Get returns the payload at h and whether h is present.
func (m *Map[T]) Get(h hex.Hex) (T, bool) {
	v, ok := m.cells[h]
	return v, ok
}

// Set places a payload at h, replacing any previous one.
func (m *Map[T]) Set(h hex.Hex, v T) {
	m.cells[h] = v
}

// Has reports whether h is present.
func (m *Map[T]) Has(h hex.Hex) bool {
	_, ok := m.cells[h]
	return ok
}

// Delete removes h. Deleting an absent hex is a no-op.
func (m *Map[T]) Delete(h hex.Hex) {
	delete(m.cells, h)
}

// Len returns the number of hexes in the map.
func (m *Map[T]) Len() int {
	return len(m.cells)
}

// ForEach visits every entry once, in no particular order.
func (m *Map[T]) ForEach(fn func(h hex.Hex, v T)) {
	for h, v := range m.cells {
		fn(h, v)
	}
}

// All returns an iterator over every entry, in no particular order.
func (m *Map[T]) All() iter.Seq2[hex.Hex, T] {
	return func(yield func(hex.Hex, T) bool) {
		for h, v := range m.cells {
			if !yield(h, v) {
				return
			}
		}
	}
}

// String returns a summary of the map.
func (m *Map[T]) String() string {
	return fmt.Sprintf("Map(hexes=%d)", m.Len())
}

// Populate builds a map holding fill(h) for every hex in shape.
func Populate[T any](shape []hex.Hex, fill func(hex.Hex) T) *Map[T] {
	m := &Map[T]{cells: make(map[hex.Hex]T, len(shape))}
	for _, h := range shape {
		m.Set(h, fill(h))
	}
	return m
}
