package grid

import (
	"cmp"
	"slices"

	"github.com/gravitas-games/hexquery/pkg/hexcore/hex"
)

// PositionSet is an owned set of positions, as returned by queries.
type PositionSet map[hex.Axial]struct{}

// NewPositionSet returns a set holding ps.
func NewPositionSet(ps ...hex.Axial) PositionSet {
	s := make(PositionSet, len(ps))
	for _, p := range ps {
		s.Add(p)
	}
	return s
}

// Add inserts p.
func (s PositionSet) Add(p hex.Axial) { s[p] = struct{}{} }

// Contains reports whether p is in the set.
func (s PositionSet) Contains(p hex.Axial) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of positions.
func (s PositionSet) Len() int { return len(s) }

// Sorted returns the positions ordered by r, then q.
func (s PositionSet) Sorted() []hex.Axial {
	out := make([]hex.Axial, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b hex.Axial) int {
		if c := cmp.Compare(a.R, b.R); c != 0 {
			return c
		}
		return cmp.Compare(a.Q, b.Q)
	})
	return out
}
