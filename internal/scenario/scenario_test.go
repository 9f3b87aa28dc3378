package scenario

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/hexquery/internal/config"
	"github.com/gravitas-games/hexquery/pkg/hexcore/grid"
	"github.com/gravitas-games/hexquery/pkg/hexcore/hex"
)

const fixture = `
grid:
  radius: 4
obstacles: [{q: -1, r: 1}, {q: 1, r: -1}, {q: 1, r: 0}, {q: 0, r: 1}]
units:
  - {name: scout, position: {q: 0, r: 0}, movement: 2, sight: 2}
  - {name: mole, position: {q: 3, r: -3}, movement: 1, sight: 3, blind: true}
queries:
  - {kind: path, from: {q: 0, r: 0}, to: {q: 0, r: 2}}
  - {kind: movement, unit: scout}
  - {kind: view, unit: scout}
  - {kind: line, from: {q: 0, r: 0}, to: {q: 3, r: -1}}
  - {kind: ring, from: {q: 0, r: 0}, range: 2}
  - {kind: spiral, unit: mole, range: 1}
  - {kind: view, unit: mole}
`

func load(t *testing.T, doc string) *Scenario {
	t.Helper()
	cfg, err := config.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestRun(t *testing.T) {
	s := load(t, fixture)
	report, err := s.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := Summary{Positions: 61, Blocked: 4, Units: 2, Queries: 7}
	if diff := cmp.Diff(want, report.Summary); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
	if len(report.Results) != 7 {
		t.Fatalf("expected 7 results, got %d", len(report.Results))
	}
	for i, res := range report.Results {
		if res.Index != i {
			t.Errorf("result %d has index %d", i, res.Index)
		}
		if res.Count != len(res.Positions) {
			t.Errorf("result %d count %d, %d positions", i, res.Count, len(res.Positions))
		}
	}

	p := report.Results[0]
	wantPath := []hex.Axial{{Q: 0, R: 0}, {Q: -1, R: 0}, {Q: -2, R: 1}, {Q: -2, R: 2}, {Q: -1, R: 2}, {Q: 0, R: 2}}
	if diff := cmp.Diff(wantPath, p.Positions); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
	if !p.Found || p.Explored == 0 {
		t.Errorf("expected found path with explored count, got %+v", p)
	}

	if m := report.Results[1]; m.Range == nil || *m.Range != 2 || m.From != hex.New(0, 0) {
		t.Errorf("expected movement range from unit, got %+v", m)
	}

	v := report.Results[2]
	if v.Range == nil || *v.Range != 2 {
		t.Errorf("expected view range from unit sight, got %v", v.Range)
	}
	visible := grid.NewPositionSet(v.Positions...)
	if !visible.Contains(hex.New(1, 0)) || visible.Contains(hex.New(2, 0)) {
		t.Errorf("expected wall visible and cell behind it hidden, got %v", v.Positions)
	}

	if l := report.Results[3]; l.Count != 4 || l.Positions[3] != hex.New(3, -1) {
		t.Errorf("unexpected line %v", l.Positions)
	}
	if r := report.Results[4]; r.Count != 12 {
		t.Errorf("expected ring of 12, got %d", r.Count)
	}
	if sp := report.Results[5]; sp.Count != 7 || sp.Positions[0] != hex.New(3, -3) {
		t.Errorf("expected spiral of 7 around the mole, got %v", sp.Positions)
	}
	if blind := report.Results[6]; blind.Count != 1 {
		t.Errorf("expected blind unit to see only its hex, got %v", blind.Positions)
	}
}

func TestUnreachablePath(t *testing.T) {
	s := load(t, `
grid: {radius: 2}
obstacles: [{q: 4, r: 0}, {q: 4, r: -1}, {q: 3, r: -1}, {q: 2, r: 0}, {q: 2, r: 1}, {q: 3, r: 1}]
search: {max_explored: 200}
queries:
  - {kind: path, from: {q: 0, r: 0}, to: {q: 3, r: 0}}
`)
	report, err := s.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	res := report.Results[0]
	if res.Found || res.Positions != nil || res.Explored != 200 {
		t.Fatalf("expected bounded failure, got %+v", res)
	}
}

func TestNoiseLayer(t *testing.T) {
	doc := `
grid:
  radius: 6
  noise: {seed: 11, frequency: 0.5, threshold: 0.6}
clear: [{q: 0, r: 0}]
`
	a, b := load(t, doc), load(t, doc)
	if diff := cmp.Diff(a.Obstacles.BlockedSet(), b.Obstacles.BlockedSet()); diff != "" {
		t.Fatalf("same seed produced different layers (-a +b):\n%s", diff)
	}
	if a.Obstacles.Len() != 127 {
		t.Errorf("expected 127 positions, got %d", a.Obstacles.Len())
	}
	if a.Obstacles.Blocked(hex.New(0, 0)) {
		t.Errorf("expected cleared origin to be open")
	}
}

func TestSharedUnitPosition(t *testing.T) {
	cfg, err := config.Parse([]byte(`units: [{name: a}, {name: b}]`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, err := New(cfg); err == nil {
		t.Fatalf("expected error for two units on one hex")
	}
}

func TestQueryErrors(t *testing.T) {
	s := load(t, `grid: {radius: 1}`)
	from := hex.New(0, 0)
	neg := -1
	tests := []struct {
		name string
		q    config.Query
	}{
		{"no origin", config.Query{Kind: config.KindView}},
		{"unknown unit", config.Query{Kind: config.KindView, Unit: "ghost"}},
		{"no goal", config.Query{Kind: config.KindLine, From: &from}},
		{"no range", config.Query{Kind: config.KindRing, From: &from}},
		{"negative range", config.Query{Kind: config.KindMovement, From: &from, Range: &neg}},
		{"unknown kind", config.Query{Kind: "warp", From: &from}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.Query(tc.q); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestReportYAML(t *testing.T) {
	s := load(t, fixture)
	report, err := s.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	out, err := yaml.Marshal(report)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(out), "kind: path") {
		t.Fatalf("unexpected report:\n%s", out)
	}
	var back Report
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if diff := cmp.Diff(report, &back); diff != "" {
		t.Fatalf("report changed through YAML (-want +got):\n%s", diff)
	}
}

func TestWriteObstaclesCSV(t *testing.T) {
	s := load(t, fixture)
	var buf bytes.Buffer
	if err := s.WriteObstaclesCSV(&buf); err != nil {
		t.Fatalf("WriteObstaclesCSV failed: %v", err)
	}
	g, err := grid.ReadCSV[bool](&buf)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if diff := cmp.Diff(s.Obstacles.BlockedSet(), grid.ObstaclesOf(g).BlockedSet()); diff != "" {
		t.Fatalf("blocked set mismatch (-want +got):\n%s", diff)
	}
}
