// Package hex implements axial hex coordinates, the six neighbor directions
// and the ring, spiral and line patterns built from them.
package hex

import "fmt"

// Number is the set of signed numeric types a Position can be built on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Position represents axial coordinates (q, r) for pointy-top orientation.
type Position[T Number] struct {
	Q T `json:"q" yaml:"q"`
	R T `json:"r" yaml:"r"`
}

// Axial is the integer position used by grids and searches.
type Axial = Position[int]

// Cube represents cube coordinates (q, r, s) with q+r+s=0.
type Cube[T Number] struct {
	Q T
	R T
	S T
}

// New returns the position (q, r).
func New[T Number](q, r T) Position[T] { return Position[T]{Q: q, R: r} }

// S returns the derived third cube coordinate.
func (a Position[T]) S() T { return -a.Q - a.R }

// Add returns a+b in axial space.
func (a Position[T]) Add(b Position[T]) Position[T] { return Position[T]{a.Q + b.Q, a.R + b.R} }

// Sub returns a-b in axial space.
func (a Position[T]) Sub(b Position[T]) Position[T] { return Position[T]{a.Q - b.Q, a.R - b.R} }

// Scale multiplies both components by k.
func (a Position[T]) Scale(k T) Position[T] { return Position[T]{a.Q * k, a.R * k} }

// Neg returns -a.
func (a Position[T]) Neg() Position[T] { return Position[T]{-a.Q, -a.R} }

// ToCube converts axial to cube.
func (a Position[T]) ToCube() Cube[T] {
	return Cube[T]{Q: a.Q, R: a.R, S: a.S()}
}

// ToAxial converts cube to axial. S is dropped; it is implied by Q and R.
func (c Cube[T]) ToAxial() Position[T] { return Position[T]{Q: c.Q, R: c.R} }

// Distance returns the number of hex steps between a and b.
func Distance[T Number](a, b Position[T]) T {
	return DistanceCube(a.ToCube(), b.ToCube())
}

// DistanceCube returns hex distance between two cube coords.
func DistanceCube[T Number](a, b Cube[T]) T {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S - b.S)
	if dq > dr && dq > ds {
		return dq
	}
	if dr > ds {
		return dr
	}
	return ds
}

// Distance returns the number of hex steps from a to b.
func (a Position[T]) Distance(b Position[T]) T { return Distance(a, b) }

// Length returns the distance from the origin.
func (a Position[T]) Length() T { return Distance(a, Position[T]{}) }

// Rotate turns a around the origin by steps*60 degrees. steps is reduced
// modulo 6 first, so negative values rotate the other way. One positive step
// maps (q, r, s) to (-r, -s, -q); a direction vector moves to the previous
// entry of the direction order (Right becomes DownRight).
func (a Position[T]) Rotate(steps int) Position[T] {
	for n := mod6(steps); n > 0; n-- {
		a = Position[T]{Q: -a.R, R: a.Q + a.R}
	}
	return a
}

// RotateAround turns a around center by steps*60 degrees.
func (a Position[T]) RotateAround(center Position[T], steps int) Position[T] {
	return a.Sub(center).Rotate(steps).Add(center)
}

// Reflect returns the point reflection of a through the origin. It is the
// same as Rotate(3).
func (a Position[T]) Reflect() Position[T] { return a.Neg() }

// Neighbor returns the adjacent position in direction d.
func (a Position[T]) Neighbor(d Direction) Position[T] {
	return a.Add(DirectionVector[T](d))
}

// Neighbors returns the six adjacent positions in direction order.
func (a Position[T]) Neighbors() [6]Position[T] {
	var out [6]Position[T]
	for d := Right; d <= DownRight; d++ {
		out[d] = a.Neighbor(d)
	}
	return out
}

func (a Position[T]) String() string {
	return fmt.Sprintf("(%v, %v)", a.Q, a.R)
}

func abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func mod6(n int) int {
	n %= 6
	if n < 0 {
		n += 6
	}
	return n
}
