package grid

import (
	"fmt"
	"io"
	"math/bits"
	"slices"

	"github.com/gocarina/gocsv"
	"github.com/google/hilbert"

	"github.com/gravitas-games/hexquery/pkg/hexcore/hex"
)

// Scalar is the set of value types a layer can be written to CSV with.
type Scalar interface {
	~bool | ~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

// Cell is one CSV row: a position and its value.
type Cell[V Scalar] struct {
	Q     int `csv:"q"`
	R     int `csv:"r"`
	Value V   `csv:"value"`
}

// WriteCSV writes g as q,r,value rows with a header. Rows follow a Hilbert
// curve over the layer's bounding box, so the output is deterministic and
// neighboring cells stay close together.
func WriteCSV[V Scalar](w io.Writer, g *Grid[V]) error {
	ps, err := HilbertOrder(g.Positions())
	if err != nil {
		return fmt.Errorf("ordering layer: %w", err)
	}
	rows := make([]*Cell[V], 0, len(ps))
	for _, p := range ps {
		v, _ := g.Get(p)
		rows = append(rows, &Cell[V]{Q: p.Q, R: p.R, Value: v})
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing layer csv: %w", err)
	}
	return nil
}

// ReadCSV builds a grid from rows written by WriteCSV. A position listed
// twice is an error.
func ReadCSV[V Scalar](r io.Reader) (*Grid[V], error) {
	var rows []*Cell[V]
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("reading layer csv: %w", err)
	}
	g := New[V]()
	for i, c := range rows {
		p := hex.Axial{Q: c.Q, R: c.R}
		if _, dup := g.Set(p, c.Value); dup {
			return nil, fmt.Errorf("reading layer csv: row %d repeats position %v", i+1, p)
		}
	}
	return g, nil
}

// HilbertOrder returns ps sorted by their index along a Hilbert curve
// covering the bounding box of ps.
func HilbertOrder(ps []hex.Axial) ([]hex.Axial, error) {
	if len(ps) == 0 {
		return nil, nil
	}
	minQ, minR, maxQ, maxR := ps[0].Q, ps[0].R, ps[0].Q, ps[0].R
	for _, p := range ps[1:] {
		minQ, maxQ = min(minQ, p.Q), max(maxQ, p.Q)
		minR, maxR = min(minR, p.R), max(maxR, p.R)
	}
	extent := max(maxQ-minQ, maxR-minR) + 1
	side := 1 << bits.Len(uint(extent-1))
	h, err := hilbert.NewHilbert(side)
	if err != nil {
		return nil, err
	}

	type keyed struct {
		p hex.Axial
		t int
	}
	ks := make([]keyed, len(ps))
	for i, p := range ps {
		t, err := h.MapInverse(p.Q-minQ, p.R-minR)
		if err != nil {
			return nil, err
		}
		ks[i] = keyed{p: p, t: t}
	}
	slices.SortFunc(ks, func(a, b keyed) int { return a.t - b.t })

	out := make([]hex.Axial, len(ks))
	for i, k := range ks {
		out[i] = k.p
	}
	return out, nil
}
