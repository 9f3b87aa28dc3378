package hex

import "iter"

// Line is the straight run of hexes from Start to End, both included.
// Consecutive positions are always adjacent.
type Line[T Number] struct {
	Start Position[T] `json:"start" yaml:"start"`
	End   Position[T] `json:"end" yaml:"end"`
}

// NewLine returns the line from a to b.
func NewLine[T Number](a, b Position[T]) Line[T] {
	return Line[T]{Start: a, End: b}
}

// Len returns Distance(Start, End) + 1.
func (l Line[T]) Len() int { return l.steps() + 1 }

func (l Line[T]) steps() int { return int(float64(Distance(l.Start, l.End))) }

// Cursor returns a fresh cursor at Start.
func (l Line[T]) Cursor() *LineCursor[T] {
	return &LineCursor[T]{a: l.Start, b: l.End, n: l.steps()}
}

// All yields the line from Start to End.
func (l Line[T]) All() iter.Seq[Position[T]] {
	return func(yield func(Position[T]) bool) {
		drain[T](l.Cursor(), yield)
	}
}

// Collect returns the whole line as a slice.
func (l Line[T]) Collect() []Position[T] {
	return collect[T](l.Cursor(), l.Len())
}

// LineCursor walks a line one position at a time. Each step samples the
// cube-space interpolation at i/N and rounds it to the nearest hex.
type LineCursor[T Number] struct {
	a, b Position[T]
	n, i int
}

// Next returns the next position, or false after End.
func (c *LineCursor[T]) Next() (Position[T], bool) {
	if c.i > c.n {
		return Position[T]{}, false
	}
	i := c.i
	c.i++
	if c.n == 0 {
		return c.a, true
	}
	p := Round(Lerp(c.a, c.b, float64(i)/float64(c.n)))
	return Position[T]{Q: T(p.Q), R: T(p.R)}, true
}

// Remaining returns how many positions Next will still produce.
func (c *LineCursor[T]) Remaining() int { return c.n + 1 - c.i }
