package hex

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Orientation holds the forward (F) and inverse (B) hex-to-pixel matrices,
// row major.
type Orientation struct {
	F0, F1, F2, F3 float64
	B0, B1, B2, B3 float64
}

var (
	// PointyTop has a vertex pointing up; rows of hexes run horizontally.
	PointyTop = Orientation{
		F0: math.Sqrt(3), F1: math.Sqrt(3) / 2, F2: 0, F3: 1.5,
		B0: math.Sqrt(3) / 3, B1: -1.0 / 3, B2: 0, B3: 2.0 / 3,
	}
	// FlatTop has an edge on top; columns of hexes run vertically.
	FlatTop = Orientation{
		F0: 1.5, F1: 0, F2: math.Sqrt(3) / 2, F3: math.Sqrt(3),
		B0: 2.0 / 3, B1: 0, B2: -1.0 / 3, B3: math.Sqrt(3) / 3,
	}
)

// Layout maps positions to screen space. Size is the hex radius (corner to
// center) in pixels per axis; Origin is the pixel center of (0, 0).
type Layout struct {
	Orientation Orientation
	Size        r2.Vec
	Origin      r2.Vec
}

// DefaultLayout is pointy-top with unit size at the pixel origin.
var DefaultLayout = Layout{Orientation: PointyTop, Size: r2.Vec{X: 1, Y: 1}}

// NewLayout returns a layout with square cells of the given size.
func NewLayout(o Orientation, size float64, origin r2.Vec) Layout {
	return Layout{Orientation: o, Size: r2.Vec{X: size, Y: size}, Origin: origin}
}

// Pixel converts a to the pixel center of its cell under l.
func (a Position[T]) Pixel(l Layout) r2.Vec {
	o := l.Orientation
	q, r := float64(a.Q), float64(a.R)
	v := r2.Vec{
		X: (o.F0*q + o.F1*r) * l.Size.X,
		Y: (o.F2*q + o.F3*r) * l.Size.Y,
	}
	return r2.Add(v, l.Origin)
}

// ToPixel converts a using DefaultLayout.
func (a Position[T]) ToPixel() r2.Vec { return a.Pixel(DefaultLayout) }

// FractionalFromPixel applies the inverse transform without rounding.
func (l Layout) FractionalFromPixel(p r2.Vec) Position[float64] {
	o := l.Orientation
	d := r2.Sub(p, l.Origin)
	x, y := d.X/l.Size.X, d.Y/l.Size.Y
	return Position[float64]{
		Q: o.B0*x + o.B1*y,
		R: o.B2*x + o.B3*y,
	}
}

// FromPixel returns the hex containing pixel p.
func (l Layout) FromPixel(p r2.Vec) Axial {
	return Round(l.FractionalFromPixel(p))
}

// FromPixel returns the hex containing pixel p under DefaultLayout.
func FromPixel(p r2.Vec) Axial { return DefaultLayout.FromPixel(p) }
