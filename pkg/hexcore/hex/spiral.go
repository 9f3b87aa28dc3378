package hex

import "iter"

// Spiral is the union of Ring(Center, 0) through Ring(Center, Radius),
// produced ring by ring from the center outwards.
type Spiral[T Number] struct {
	Center Position[T] `json:"center" yaml:"center"`
	Radius int         `json:"radius" yaml:"radius"`
}

// NewSpiral validates radius and returns the spiral.
func NewSpiral[T Number](center Position[T], radius int) (Spiral[T], error) {
	g := Spiral[T]{Center: center, Radius: radius}
	if err := g.Validate(); err != nil {
		return Spiral[T]{}, err
	}
	return g, nil
}

// Validate rejects a negative radius.
func (g Spiral[T]) Validate() error {
	return checkRadius("spiral", g.Radius)
}

// Len returns 1 + 3*Radius*(Radius+1).
func (g Spiral[T]) Len() int {
	return 1 + 3*g.Radius*(g.Radius+1)
}

// Cursor returns a fresh cursor at the center. It panics if the radius is
// negative.
func (g Spiral[T]) Cursor() *SpiralCursor[T] {
	mustRadius("spiral", g.Radius)
	return newSpiralCursor(g.Center, g.Radius)
}

// All yields the spiral lazily; outer rings are not built until reached.
func (g Spiral[T]) All() iter.Seq[Position[T]] {
	mustRadius("spiral", g.Radius)
	return func(yield func(Position[T]) bool) {
		drain[T](newSpiralCursor(g.Center, g.Radius), yield)
	}
}

// Collect returns the whole spiral as a slice.
func (g Spiral[T]) Collect() []Position[T] {
	return collect[T](g.Cursor(), g.Len())
}

// SpiralCursor walks a spiral one position at a time.
type SpiralCursor[T Number] struct {
	center Position[T]
	ring   int
	cur    *RingCursor[T]
	left   int
}

func newSpiralCursor[T Number](center Position[T], radius int) *SpiralCursor[T] {
	return &SpiralCursor[T]{
		center: center,
		cur:    newRingCursor(center, 0),
		left:   1 + 3*radius*(radius+1),
	}
}

// Next returns the next position, or false once the spiral is exhausted.
func (c *SpiralCursor[T]) Next() (Position[T], bool) {
	if c.left == 0 {
		return Position[T]{}, false
	}
	for {
		if p, ok := c.cur.Next(); ok {
			c.left--
			return p, true
		}
		c.ring++
		c.cur = newRingCursor(c.center, c.ring)
	}
}

// Remaining returns how many positions Next will still produce.
func (c *SpiralCursor[T]) Remaining() int { return c.left }

// Ring returns the radius of the ring the cursor is currently in.
func (c *SpiralCursor[T]) Ring() int { return c.ring }
