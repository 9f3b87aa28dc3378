// Package grid provides a sparse hex grid keyed by axial position, with
// helpers for boolean obstacle layers, noise-filled layers and CSV export.
//
// A Grid is not safe for concurrent mutation. Queries only read it, so any
// number of them may run against a grid that nobody is writing.
package grid

import (
	"fmt"
	"iter"
	"maps"

	"github.com/gravitas-games/hexquery/pkg/hexcore/hex"
)

// Grid maps hex positions to values of one type. A missing key means there
// is no data at that position, which is different from a stored zero value.
// The zero Grid is empty and ready to use.
type Grid[V any] struct {
	cells map[hex.Axial]V
}

// ValueFunc produces the value stored for a position when a grid is
// pre-populated.
type ValueFunc[V any] func(p hex.Axial) V

// New creates an empty grid.
func New[V any]() *Grid[V] {
	return &Grid[V]{cells: make(map[hex.Axial]V)}
}

// NewFromSpiral creates a grid holding V's zero value at every position of
// Spiral(origin, radius).
func NewFromSpiral[V any](origin hex.Axial, radius int) (*Grid[V], error) {
	var zero V
	return NewFromFunc[V](origin, radius, func(hex.Axial) V { return zero })
}

// NewFromFunc creates a grid over Spiral(origin, radius), calling fn once
// per position to obtain its value.
func NewFromFunc[V any](origin hex.Axial, radius int, fn ValueFunc[V]) (*Grid[V], error) {
	spiral, err := hex.NewSpiral(origin, radius)
	if err != nil {
		return nil, fmt.Errorf("populating grid: %w", err)
	}
	g := &Grid[V]{cells: make(map[hex.Axial]V, spiral.Len())}
	for p := range spiral.All() {
		g.cells[p] = fn(p)
	}
	return g, nil
}

// Get returns the value at p and whether one is present.
func (g *Grid[V]) Get(p hex.Axial) (V, bool) {
	v, ok := g.cells[p]
	return v, ok
}

// Has reports whether p holds a value.
func (g *Grid[V]) Has(p hex.Axial) bool {
	_, ok := g.cells[p]
	return ok
}

// Set stores v at p, returning the value it replaced, if any.
func (g *Grid[V]) Set(p hex.Axial, v V) (V, bool) {
	if g.cells == nil {
		g.cells = make(map[hex.Axial]V)
	}
	prev, ok := g.cells[p]
	g.cells[p] = v
	return prev, ok
}

// Delete removes p, returning the value it held, if any.
func (g *Grid[V]) Delete(p hex.Axial) (V, bool) {
	prev, ok := g.cells[p]
	delete(g.cells, p)
	return prev, ok
}

// Len returns the number of populated positions.
func (g *Grid[V]) Len() int { return len(g.cells) }

// IsEmpty reports whether no position is populated.
func (g *Grid[V]) IsEmpty() bool { return len(g.cells) == 0 }

// Clear removes every position.
func (g *Grid[V]) Clear() { clear(g.cells) }

// Positions returns the populated positions in unspecified order.
func (g *Grid[V]) Positions() []hex.Axial {
	out := make([]hex.Axial, 0, len(g.cells))
	for p := range g.cells {
		out = append(out, p)
	}
	return out
}

// Values returns the stored values in unspecified order.
func (g *Grid[V]) Values() []V {
	out := make([]V, 0, len(g.cells))
	for _, v := range g.cells {
		out = append(out, v)
	}
	return out
}

// All yields every populated position with its value.
func (g *Grid[V]) All() iter.Seq2[hex.Axial, V] {
	return maps.All(g.cells)
}

// Fill overwrites every populated position with fn(p).
func (g *Grid[V]) Fill(fn ValueFunc[V]) {
	for p := range g.cells {
		g.cells[p] = fn(p)
	}
}

// Clone returns a shallow copy of the grid.
func (g *Grid[V]) Clone() *Grid[V] {
	return &Grid[V]{cells: maps.Clone(g.cells)}
}

// Keys returns the populated positions as a set.
func (g *Grid[V]) Keys() PositionSet {
	s := make(PositionSet, len(g.cells))
	for p := range g.cells {
		s.Add(p)
	}
	return s
}

// And returns the positions populated in both g and other.
func (g *Grid[V]) And(other *Grid[V]) PositionSet {
	s := make(PositionSet)
	for p := range g.cells {
		if other.Has(p) {
			s.Add(p)
		}
	}
	return s
}

// Or returns the positions populated in g, other, or both.
func (g *Grid[V]) Or(other *Grid[V]) PositionSet {
	s := make(PositionSet, len(g.cells)+len(other.cells))
	for p := range g.cells {
		s.Add(p)
	}
	for p := range other.cells {
		s.Add(p)
	}
	return s
}

// Xor returns the positions populated in exactly one of g and other.
func (g *Grid[V]) Xor(other *Grid[V]) PositionSet {
	s := make(PositionSet)
	for p := range g.cells {
		if !other.Has(p) {
			s.Add(p)
		}
	}
	for p := range other.cells {
		if !g.Has(p) {
			s.Add(p)
		}
	}
	return s
}
