package hex

import "math"

// Round resolves fractional axial coordinates to the nearest hex. The cube
// component with the largest rounding error is rebuilt from the other two so
// that q+r+s stays exactly 0.
func Round(p Position[float64]) Axial {
	q, r := p.Q, p.R
	s := -q - r

	rq, rr, rs := math.Round(q), math.Round(r), math.Round(s)
	dq, dr, ds := math.Abs(rq-q), math.Abs(rr-r), math.Abs(rs-s)

	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	}
	return Axial{Q: int(rq), R: int(rr)}
}

// Lerp interpolates between a and b in cube space; t=0 gives a, t=1 gives b.
func Lerp[T Number](a, b Position[T], t float64) Position[float64] {
	return Position[float64]{
		Q: lerp(float64(a.Q), float64(b.Q), t),
		R: lerp(float64(a.R), float64(b.R), t),
	}
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
