package hex

import (
	"errors"
	"fmt"
	"iter"
)

// ErrNegativeRadius is returned for rings and spirals built with radius < 0.
var ErrNegativeRadius = errors.New("hex: negative radius")

// Ring is the set of positions at exactly Radius steps from Center.
// It only holds its parameters; every Cursor or All call starts over.
type Ring[T Number] struct {
	Center Position[T] `json:"center" yaml:"center"`
	Radius int         `json:"radius" yaml:"radius"`
}

// NewRing validates radius and returns the ring.
func NewRing[T Number](center Position[T], radius int) (Ring[T], error) {
	g := Ring[T]{Center: center, Radius: radius}
	if err := g.Validate(); err != nil {
		return Ring[T]{}, err
	}
	return g, nil
}

// Validate rejects a negative radius.
func (g Ring[T]) Validate() error {
	return checkRadius("ring", g.Radius)
}

// Len returns 6*Radius, or 1 for the degenerate ring.
func (g Ring[T]) Len() int {
	if g.Radius == 0 {
		return 1
	}
	return 6 * g.Radius
}

// Cursor returns a fresh cursor at the start of the ring. It panics if the
// radius is negative.
func (g Ring[T]) Cursor() *RingCursor[T] {
	mustRadius("ring", g.Radius)
	return newRingCursor(g.Center, g.Radius)
}

// All yields the ring in traversal order: starting at Center+DownLeft*Radius
// and walking Radius steps along each direction in order.
func (g Ring[T]) All() iter.Seq[Position[T]] {
	mustRadius("ring", g.Radius)
	return func(yield func(Position[T]) bool) {
		drain[T](newRingCursor(g.Center, g.Radius), yield)
	}
}

// Collect returns the whole ring as a slice.
func (g Ring[T]) Collect() []Position[T] {
	return collect[T](g.Cursor(), g.Len())
}

// RingCursor walks a ring one position at a time.
type RingCursor[T Number] struct {
	cur    Position[T]
	radius int
	side   Direction
	step   int
	left   int
}

func newRingCursor[T Number](center Position[T], radius int) *RingCursor[T] {
	c := &RingCursor[T]{
		cur:    center.Add(DirectionVector[T](DownLeft).Scale(T(radius))),
		radius: radius,
		left:   6 * radius,
	}
	if radius == 0 {
		c.left = 1
	}
	return c
}

// Next returns the next position, or false once the ring is exhausted.
func (c *RingCursor[T]) Next() (Position[T], bool) {
	if c.left == 0 {
		return Position[T]{}, false
	}
	c.left--
	p := c.cur
	if c.radius > 0 {
		c.cur = c.cur.Add(DirectionVector[T](c.side))
		c.step++
		if c.step == c.radius {
			c.step = 0
			c.side++
		}
	}
	return p, true
}

// Remaining returns how many positions Next will still produce.
func (c *RingCursor[T]) Remaining() int { return c.left }

// cursor is the shape shared by the pattern cursors.
type cursor[T Number] interface {
	Next() (Position[T], bool)
}

func drain[T Number](c cursor[T], yield func(Position[T]) bool) {
	for p, ok := c.Next(); ok; p, ok = c.Next() {
		if !yield(p) {
			return
		}
	}
}

func collect[T Number](c cursor[T], n int) []Position[T] {
	out := make([]Position[T], 0, n)
	for p, ok := c.Next(); ok; p, ok = c.Next() {
		out = append(out, p)
	}
	return out
}

func checkRadius(kind string, radius int) error {
	if radius < 0 {
		return fmt.Errorf("%s radius %d: %w", kind, radius, ErrNegativeRadius)
	}
	return nil
}

func mustRadius(kind string, radius int) {
	if err := checkRadius(kind, radius); err != nil {
		panic(err)
	}
}
