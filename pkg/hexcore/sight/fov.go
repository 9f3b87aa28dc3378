// Package sight computes line-of-sight visibility over an obstacle layer.
//
// A position is visible from an origin when nothing strictly between them on
// the hex line is blocked. Line rounding depends on direction, so Visible(a,
// b) and Visible(b, a) can disagree near obstacles.
package sight

import (
	"errors"
	"fmt"

	"github.com/gravitas-games/hexquery/pkg/hexcore/grid"
	"github.com/gravitas-games/hexquery/pkg/hexcore/hex"
)

// ErrNegativeRange is returned for a view range below zero.
var ErrNegativeRange = errors.New("sight: negative range")

// Blocker reports whether a position stops sight.
type Blocker interface {
	Blocked(p hex.Axial) bool
}

// Layer is an obstacle layer that can also enumerate its populated
// positions. grid.Obstacles satisfies it.
type Layer interface {
	Blocker
	Positions() []hex.Axial
}

type options struct {
	rng     int
	limited bool
}

// Option configures FieldOfView.
type Option func(*options)

// WithRange limits candidates to Spiral(origin, r).
func WithRange(r int) Option {
	return func(o *options) {
		o.rng = r
		o.limited = true
	}
}

// FieldOfView returns the positions visible from origin. Without WithRange
// the candidates are the layer's populated positions plus origin. A blocked
// candidate is still visible; it only hides what lies behind it.
func FieldOfView(layer Layer, origin hex.Axial, opts ...Option) (grid.PositionSet, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	visible := make(grid.PositionSet)
	if o.limited {
		if o.rng < 0 {
			return nil, fmt.Errorf("view from %v: %w", origin, ErrNegativeRange)
		}
		spiral := hex.Spiral[int]{Center: origin, Radius: o.rng}
		for p := range spiral.All() {
			if Visible(layer, origin, p) {
				visible.Add(p)
			}
		}
		return visible, nil
	}

	visible.Add(origin)
	for _, p := range layer.Positions() {
		if Visible(layer, origin, p) {
			visible.Add(p)
		}
	}
	return visible, nil
}

// Visible reports whether to can be seen from from.
func Visible(layer Blocker, from, to hex.Axial) bool {
	c := hex.NewLine(from, to).Cursor()
	c.Next() // from itself never blocks
	for c.Remaining() > 1 {
		p, _ := c.Next()
		if layer.Blocked(p) {
			return false
		}
	}
	return true
}
