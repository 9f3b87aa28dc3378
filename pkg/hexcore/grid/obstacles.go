package grid

import "github.com/gravitas-games/hexquery/pkg/hexcore/hex"

// Obstacles is a boolean layer where true marks an impassable cell.
// Positions without a value are treated as open: the layer is a sparse
// overlay on an unbounded plane.
type Obstacles struct {
	*Grid[bool]
}

// NewObstacles returns an empty obstacle layer.
func NewObstacles() Obstacles {
	return Obstacles{Grid: New[bool]()}
}

// ObstaclesOf wraps an existing boolean grid.
func ObstaclesOf(g *Grid[bool]) Obstacles {
	return Obstacles{Grid: g}
}

// Block marks every position in ps as impassable.
func (o Obstacles) Block(ps ...hex.Axial) {
	for _, p := range ps {
		o.Set(p, true)
	}
}

// Blocked reports whether p holds true.
func (o Obstacles) Blocked(p hex.Axial) bool {
	v, ok := o.Get(p)
	return ok && v
}

// OpenNeighbors returns the unblocked neighbors of p in direction order.
func (o Obstacles) OpenNeighbors(p hex.Axial) []hex.Axial {
	out := make([]hex.Axial, 0, 6)
	for _, n := range p.Neighbors() {
		if !o.Blocked(n) {
			out = append(out, n)
		}
	}
	return out
}

// BlockedSet returns the positions that are currently blocked.
func (o Obstacles) BlockedSet() PositionSet {
	s := make(PositionSet)
	for p, v := range o.All() {
		if v {
			s.Add(p)
		}
	}
	return s
}
