package grid_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gravitas-games/hexquery/pkg/hexcore/grid"
	"github.com/gravitas-games/hexquery/pkg/hexcore/hex"
)

func TestSetGetDelete(t *testing.T) {
	g := grid.New[bool]()
	p := hex.New(1, -1)
	if _, ok := g.Get(p); ok {
		t.Fatalf("expected empty grid to report absent")
	}
	if _, replaced := g.Set(p, false); replaced {
		t.Fatalf("first Set reported a replaced value")
	}
	v, ok := g.Get(p)
	if !ok || v {
		t.Fatalf("expected present false, got %v, %v", v, ok)
	}
	if prev, replaced := g.Set(p, true); !replaced || prev {
		t.Fatalf("expected to replace false, got %v, %v", prev, replaced)
	}
	g.Set(hex.New(0, 0), true)
	if g.Len() != 2 {
		t.Fatalf("expected Len=2, got %d", g.Len())
	}
	if prev, ok := g.Delete(p); !ok || !prev {
		t.Fatalf("expected to delete true, got %v, %v", prev, ok)
	}
	if _, ok := g.Get(p); ok {
		t.Fatalf("expected %v absent after delete", p)
	}
	if _, ok := g.Delete(p); ok {
		t.Fatalf("second delete reported a value")
	}
	if g.Len() != 1 || g.IsEmpty() {
		t.Fatalf("expected one position left, got %d", g.Len())
	}
	g.Clear()
	if !g.IsEmpty() {
		t.Fatalf("expected empty grid after Clear")
	}
}

func TestZeroGrid(t *testing.T) {
	var g grid.Grid[string]
	g.Set(hex.New(2, 2), "ore")
	if v, ok := g.Get(hex.New(2, 2)); !ok || v != "ore" {
		t.Fatalf("expected ore, got %q, %v", v, ok)
	}
}

func TestNewFromSpiral(t *testing.T) {
	g, err := grid.NewFromSpiral[bool](hex.New(0, 0), 2)
	if err != nil {
		t.Fatalf("NewFromSpiral failed: %v", err)
	}
	if g.Len() != 19 {
		t.Fatalf("expected 19 positions, got %d", g.Len())
	}
	for p, v := range g.All() {
		if v {
			t.Fatalf("expected default false at %v", p)
		}
		if hex.Distance(p, hex.New(0, 0)) > 2 {
			t.Fatalf("position %v outside radius", p)
		}
	}
	if _, err := grid.NewFromSpiral[bool](hex.New(0, 0), -1); !errors.Is(err, hex.ErrNegativeRadius) {
		t.Fatalf("expected ErrNegativeRadius, got %v", err)
	}
}

func TestNewFromFunc(t *testing.T) {
	calls := 0
	g, err := grid.NewFromFunc[int](hex.New(3, 3), 3, func(p hex.Axial) int {
		calls++
		return hex.Distance(p, hex.New(3, 3))
	})
	if err != nil {
		t.Fatalf("NewFromFunc failed: %v", err)
	}
	if calls != 37 || g.Len() != 37 {
		t.Fatalf("expected 37 calls and positions, got %d and %d", calls, g.Len())
	}
	if v, _ := g.Get(hex.New(6, 0)); v != 3 {
		t.Fatalf("expected stored distance 3, got %d", v)
	}
}

func TestSetAlgebra(t *testing.T) {
	a := grid.New[int]()
	b := grid.New[int]()
	a.Set(hex.New(0, 0), 1)
	a.Set(hex.New(1, 0), 1)
	b.Set(hex.New(1, 0), 2)
	b.Set(hex.New(2, 0), 2)

	if diff := cmp.Diff(grid.NewPositionSet(hex.New(1, 0)), a.And(b)); diff != "" {
		t.Errorf("And mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(grid.NewPositionSet(hex.New(0, 0), hex.New(1, 0), hex.New(2, 0)), a.Or(b)); diff != "" {
		t.Errorf("Or mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(grid.NewPositionSet(hex.New(0, 0), hex.New(2, 0)), a.Xor(b)); diff != "" {
		t.Errorf("Xor mismatch (-want +got):\n%s", diff)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := grid.New[int]()
	g.Set(hex.New(0, 0), 1)
	c := g.Clone()
	c.Set(hex.New(0, 0), 5)
	c.Set(hex.New(1, 1), 5)
	if v, _ := g.Get(hex.New(0, 0)); v != 1 || g.Len() != 1 {
		t.Fatalf("clone mutation leaked into original")
	}
}

func TestObstacles(t *testing.T) {
	o := grid.NewObstacles()
	o.Block(hex.New(1, 0), hex.New(0, 1))
	o.Set(hex.New(-1, 0), false)

	if !o.Blocked(hex.New(1, 0)) {
		t.Errorf("expected (1, 0) blocked")
	}
	if o.Blocked(hex.New(-1, 0)) {
		t.Errorf("expected stored false to be open")
	}
	if o.Blocked(hex.New(40, -7)) {
		t.Errorf("expected absent position to be open")
	}
	want := []hex.Axial{{Q: 1, R: -1}, {Q: 0, R: -1}, {Q: -1, R: 0}, {Q: -1, R: 1}}
	if diff := cmp.Diff(want, o.OpenNeighbors(hex.New(0, 0))); diff != "" {
		t.Errorf("OpenNeighbors mismatch (-want +got):\n%s", diff)
	}
	if o.BlockedSet().Len() != 2 {
		t.Errorf("expected 2 blocked positions, got %d", o.BlockedSet().Len())
	}
}

func TestPositionSetSorted(t *testing.T) {
	s := grid.NewPositionSet(hex.New(2, 1), hex.New(-1, 1), hex.New(5, -3))
	want := []hex.Axial{{Q: 5, R: -3}, {Q: -1, R: 1}, {Q: 2, R: 1}}
	if diff := cmp.Diff(want, s.Sorted()); diff != "" {
		t.Fatalf("Sorted mismatch (-want +got):\n%s", diff)
	}
	if !s.Contains(hex.New(2, 1)) || s.Contains(hex.New(0, 0)) {
		t.Fatalf("unexpected membership")
	}
}

func TestSimplexNoise(t *testing.T) {
	a, err := grid.NewFromFunc(hex.New(0, 0), 4, grid.SimplexProvider(42, 0.3))
	if err != nil {
		t.Fatalf("NewFromFunc failed: %v", err)
	}
	b, _ := grid.NewFromSpiral[float64](hex.New(0, 0), 4)
	grid.FillNoise(b, grid.SimplexProvider(42, 0.3))
	for p, v := range a.All() {
		if v < 0 || v > 1 {
			t.Fatalf("noise %v at %v outside [0, 1]", v, p)
		}
		if w, _ := b.Get(p); w != v {
			t.Fatalf("same seed produced %v and %v at %v", v, w, p)
		}
	}

	o := grid.Threshold(a, 0.5)
	if o.Len() != a.Len() {
		t.Fatalf("threshold layer has %d positions, want %d", o.Len(), a.Len())
	}
	for p, v := range a.All() {
		if o.Blocked(p) != (v >= 0.5) {
			t.Fatalf("threshold mismatch at %v", p)
		}
	}
}

func TestCSVRoundTrip(t *testing.T) {
	g, _ := grid.NewFromSpiral[bool](hex.New(-2, 1), 3)
	g.Set(hex.New(-2, 1), true)
	g.Set(hex.New(-1, 1), true)

	var buf bytes.Buffer
	if err := grid.WriteCSV(&buf, g); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "q,r,value\n") {
		t.Fatalf("unexpected header in %q", buf.String())
	}
	var again bytes.Buffer
	if err := grid.WriteCSV(&again, g); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if buf.String() != again.String() {
		t.Fatalf("WriteCSV output is not deterministic")
	}

	out, err := grid.ReadCSV[bool](&buf)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if out.Len() != g.Len() {
		t.Fatalf("expected %d positions, got %d", g.Len(), out.Len())
	}
	for p, v := range g.All() {
		if w, ok := out.Get(p); !ok || w != v {
			t.Fatalf("value at %v: want %v, got %v (%v)", p, v, w, ok)
		}
	}
}

func TestCSVDuplicateRow(t *testing.T) {
	in := "q,r,value\n0,0,1.5\n0,0,2.5\n"
	if _, err := grid.ReadCSV[float64](strings.NewReader(in)); err == nil {
		t.Fatalf("expected error for repeated position")
	}
}

func TestHilbertOrder(t *testing.T) {
	g, _ := grid.NewFromSpiral[int](hex.New(0, 0), 3)
	ps, err := grid.HilbertOrder(g.Positions())
	if err != nil {
		t.Fatalf("HilbertOrder failed: %v", err)
	}
	if diff := cmp.Diff(g.Keys(), grid.NewPositionSet(ps...)); diff != "" {
		t.Fatalf("HilbertOrder is not a permutation (-want +got):\n%s", diff)
	}
	again, _ := grid.HilbertOrder(g.Positions())
	if diff := cmp.Diff(ps, again); diff != "" {
		t.Fatalf("HilbertOrder depends on input order (-first +second):\n%s", diff)
	}
}
