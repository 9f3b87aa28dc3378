// Package scenario builds map layers from a scenario config and runs its
// queries against them.
package scenario

import (
	"fmt"
	"io"
	"log"

	"github.com/dustin/go-humanize"

	"github.com/gravitas-games/hexquery/internal/config"
	"github.com/gravitas-games/hexquery/pkg/hexcore/grid"
	"github.com/gravitas-games/hexquery/pkg/hexcore/hex"
	"github.com/gravitas-games/hexquery/pkg/hexcore/path"
	"github.com/gravitas-games/hexquery/pkg/hexcore/sight"
	"github.com/gravitas-games/hexquery/pkg/models"
)

// Scenario holds the layers of one map and the queries to run on it
type Scenario struct {
	cfg       *config.Config
	Obstacles grid.Obstacles
	Units     *grid.Grid[models.Unit]
	byName    map[string]models.Unit
}

// New builds the obstacle and unit layers described by cfg
func New(cfg *config.Config) (*Scenario, error) {
	log.Printf("Building obstacle layer with radius %d", cfg.Grid.Radius)

	obstacles, err := buildObstacles(cfg)
	if err != nil {
		return nil, err
	}

	s := &Scenario{
		cfg:       cfg,
		Obstacles: obstacles,
		Units:     grid.New[models.Unit](),
		byName:    make(map[string]models.Unit, len(cfg.Units)),
	}
	for _, u := range cfg.Units {
		if other, taken := s.Units.Get(u.Position); taken {
			return nil, fmt.Errorf("units %q and %q share %v", other.Name, u.Name, u.Position)
		}
		s.Units.Set(u.Position, u)
		s.byName[u.Name] = u
	}

	log.Printf("Obstacle layer built with %s positions, %s blocked, %d units",
		humanize.Comma(int64(s.Obstacles.Len())),
		humanize.Comma(int64(s.Obstacles.BlockedSet().Len())),
		s.Units.Len())
	return s, nil
}

// buildObstacles layers noise, explicit obstacles and clearings, in that order
func buildObstacles(cfg *config.Config) (grid.Obstacles, error) {
	origin := hex.New(0, 0)

	var obstacles grid.Obstacles
	if n := cfg.Grid.Noise; n != nil {
		values, err := grid.NewFromFunc(origin, cfg.Grid.Radius, grid.SimplexProvider(n.Seed, n.Frequency))
		if err != nil {
			return grid.Obstacles{}, fmt.Errorf("failed to sample noise: %w", err)
		}
		obstacles = grid.Threshold(values, n.Threshold)
		log.Printf("Noise seed %d blocked %s positions", n.Seed,
			humanize.Comma(int64(obstacles.BlockedSet().Len())))
	} else {
		g, err := grid.NewFromSpiral[bool](origin, cfg.Grid.Radius)
		if err != nil {
			return grid.Obstacles{}, fmt.Errorf("failed to build grid: %w", err)
		}
		obstacles = grid.ObstaclesOf(g)
	}

	obstacles.Block(cfg.Obstacles...)
	for _, p := range cfg.Clear {
		obstacles.Set(p, false)
	}
	return obstacles, nil
}

// Summary describes the built layers
func (s *Scenario) Summary() Summary {
	return Summary{
		Positions: s.Obstacles.Len(),
		Blocked:   s.Obstacles.BlockedSet().Len(),
		Units:     s.Units.Len(),
		Queries:   len(s.cfg.Queries),
	}
}

// Run executes every query in file order
func (s *Scenario) Run() (*Report, error) {
	results := make([]Result, 0, len(s.cfg.Queries))
	for i, q := range s.cfg.Queries {
		res, err := s.Query(q)
		if err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
		res.Index = i
		log.Printf("Query %d (%s) from %v: %s positions", i, q.Kind, res.From, humanize.Comma(int64(res.Count)))
		results = append(results, res)
	}
	return &Report{Summary: s.Summary(), Results: results}, nil
}

// Query runs a single query
func (s *Scenario) Query(q config.Query) (Result, error) {
	res := Result{Kind: q.Kind, Unit: q.Unit, To: q.To, Found: true}

	var unit *models.Unit
	if q.Unit != "" {
		u, ok := s.byName[q.Unit]
		if !ok {
			return Result{}, fmt.Errorf("unknown unit %q", q.Unit)
		}
		unit = &u
	}
	switch {
	case q.From != nil:
		res.From = *q.From
	case unit != nil:
		res.From = unit.Position
	default:
		return Result{}, fmt.Errorf("%s query has no origin", q.Kind)
	}
	if (q.Kind == config.KindPath || q.Kind == config.KindLine) && q.To == nil {
		return Result{}, fmt.Errorf("%s query has no goal", q.Kind)
	}
	rng := q.Range
	if rng == nil && (q.Kind == config.KindRing || q.Kind == config.KindSpiral ||
		q.Kind == config.KindMovement && unit == nil) {
		return Result{}, fmt.Errorf("%s query has no range", q.Kind)
	}

	switch q.Kind {
	case config.KindPath:
		st := path.FindStats(s.Obstacles, res.From, *q.To, path.WithMaxExplored(s.cfg.Search.MaxExplored))
		if st.Limited {
			log.Printf("Path search from %v stopped after %s positions", res.From, humanize.Comma(int64(st.Explored)))
		}
		res.Found = st.Found()
		res.Explored = st.Explored
		res.Positions = st.Path

	case config.KindMovement:
		if rng == nil {
			rng = &unit.Movement
		}
		set, err := path.Reachable(s.Obstacles, res.From, *rng)
		if err != nil {
			return Result{}, err
		}
		res.Positions = set.Sorted()

	case config.KindView:
		var opts []sight.Option
		if rng == nil && unit != nil {
			r := unit.ViewRange()
			rng = &r
		}
		if rng != nil {
			opts = append(opts, sight.WithRange(*rng))
		}
		set, err := sight.FieldOfView(s.Obstacles, res.From, opts...)
		if err != nil {
			return Result{}, err
		}
		res.Positions = set.Sorted()

	case config.KindLine:
		res.Positions = hex.NewLine(res.From, *q.To).Collect()

	case config.KindRing:
		ring, err := hex.NewRing(res.From, *rng)
		if err != nil {
			return Result{}, err
		}
		res.Positions = ring.Collect()

	case config.KindSpiral:
		spiral, err := hex.NewSpiral(res.From, *rng)
		if err != nil {
			return Result{}, err
		}
		res.Positions = spiral.Collect()

	default:
		return Result{}, fmt.Errorf("unknown query kind %q", q.Kind)
	}

	res.Range = rng
	res.Count = len(res.Positions)
	return res, nil
}

// WriteObstaclesCSV dumps the obstacle layer as q,r,value rows
func (s *Scenario) WriteObstaclesCSV(w io.Writer) error {
	return grid.WriteCSV(w, s.Obstacles.Grid)
}
