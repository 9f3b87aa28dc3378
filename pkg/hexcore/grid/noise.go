package grid

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/gravitas-games/hexquery/pkg/hexcore/hex"
)

// Sampler is a 2-D noise source.
type Sampler interface {
	Eval2(x, y float64) float64
}

// NoiseProvider samples src at the pixel center of each position under
// layout, with the pixel coordinates multiplied by frequency.
func NoiseProvider(src Sampler, layout hex.Layout, frequency float64) ValueFunc[float64] {
	return func(p hex.Axial) float64 {
		v := p.Pixel(layout)
		return src.Eval2(v.X*frequency, v.Y*frequency)
	}
}

// SimplexProvider returns a NoiseProvider over normalized OpenSimplex noise
// (values in [0, 1)) using the default pointy-top layout.
func SimplexProvider(seed int64, frequency float64) ValueFunc[float64] {
	return NoiseProvider(opensimplex.NewNormalized(seed), hex.DefaultLayout, frequency)
}

// FillNoise overwrites every populated position of g with fn(p).
func FillNoise(g *Grid[float64], fn ValueFunc[float64]) {
	g.Fill(fn)
}

// Threshold derives an obstacle layer from a float layer: a position is
// blocked when its value is at least cut. Every position of g gets a value
// in the result, so the populated extent is preserved.
func Threshold(g *Grid[float64], cut float64) Obstacles {
	o := Obstacles{Grid: &Grid[bool]{cells: make(map[hex.Axial]bool, g.Len())}}
	for p, v := range g.All() {
		o.Set(p, v >= cut)
	}
	return o
}
