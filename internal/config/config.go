package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/hexquery/pkg/hexcore/hex"
	"github.com/gravitas-games/hexquery/pkg/hexcore/path"
	"github.com/gravitas-games/hexquery/pkg/models"
)

// Defaults applied by Load to zero-valued fields
const (
	DefaultGridRadius     = 8
	DefaultNoiseFrequency = 0.35
	DefaultNoiseThreshold = 0.72
)

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid scenario")

// Config holds a whole scenario: the map, the units on it and the queries to run
type Config struct {
	Grid      GridConfig    `yaml:"grid"`
	Obstacles []hex.Axial   `yaml:"obstacles"`
	Clear     []hex.Axial   `yaml:"clear"` // Forced open after noise and obstacles
	Units     []models.Unit `yaml:"units"`
	Queries   []Query       `yaml:"queries"`
	Search    SearchConfig  `yaml:"search"`
	Output    OutputConfig  `yaml:"output"`
}

// GridConfig holds the extent of the pre-populated obstacle layer
type GridConfig struct {
	Radius int          `yaml:"radius"`
	Noise  *NoiseConfig `yaml:"noise"` // Optional
}

// NoiseConfig holds simplex noise settings for obstacle generation
type NoiseConfig struct {
	Seed      int64   `yaml:"seed"`
	Frequency float64 `yaml:"frequency"`
	Threshold float64 `yaml:"threshold"` // Noise >= threshold is blocked
}

// SearchConfig holds pathfinding bounds
type SearchConfig struct {
	MaxExplored int `yaml:"max_explored"`
}

// OutputConfig holds optional file outputs
type OutputConfig struct {
	ObstaclesCSV string `yaml:"obstacles_csv"`
}

// QueryKind names a query type
type QueryKind string

// Query kinds
const (
	KindPath     QueryKind = "path"
	KindMovement QueryKind = "movement"
	KindView     QueryKind = "view"
	KindLine     QueryKind = "line"
	KindRing     QueryKind = "ring"
	KindSpiral   QueryKind = "spiral"
)

// Query is one request against the scenario. The origin comes from From or,
// when that is empty, from the named unit's position.
type Query struct {
	Kind  QueryKind  `yaml:"kind"`
	From  *hex.Axial `yaml:"from,omitempty"`
	To    *hex.Axial `yaml:"to,omitempty"`
	Unit  string     `yaml:"unit,omitempty"`
	Range *int       `yaml:"range,omitempty"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML scenario, applies defaults and validates it
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Grid.Radius == 0 {
		c.Grid.Radius = DefaultGridRadius
	}
	if n := c.Grid.Noise; n != nil {
		if n.Frequency == 0 {
			n.Frequency = DefaultNoiseFrequency
		}
		if n.Threshold == 0 {
			n.Threshold = DefaultNoiseThreshold
		}
	}
	if c.Search.MaxExplored == 0 {
		c.Search.MaxExplored = path.DefaultMaxExplored
	}
	for i := range c.Units {
		c.Units[i].EnsureID()
	}
}

// Validate checks the scenario for values no query could run with
func (c *Config) Validate() error {
	if c.Grid.Radius < 0 {
		return fmt.Errorf("%w: grid radius %d is negative", ErrInvalid, c.Grid.Radius)
	}

	units := make(map[string]bool, len(c.Units))
	for i, u := range c.Units {
		switch {
		case u.Name == "":
			return fmt.Errorf("%w: unit %d has no name", ErrInvalid, i)
		case units[u.Name]:
			return fmt.Errorf("%w: unit name %q repeated", ErrInvalid, u.Name)
		case u.Movement < 0 || u.Sight < 0:
			return fmt.Errorf("%w: unit %q has a negative range", ErrInvalid, u.Name)
		}
		units[u.Name] = true
	}

	for i, q := range c.Queries {
		if err := q.validate(units); err != nil {
			return fmt.Errorf("%w: query %d (%s): %v", ErrInvalid, i, q.Kind, err)
		}
	}
	return nil
}

func (q Query) validate(units map[string]bool) error {
	if q.Unit != "" && !units[q.Unit] {
		return fmt.Errorf("unknown unit %q", q.Unit)
	}
	if q.From == nil && q.Unit == "" {
		return errors.New("needs from or unit")
	}
	if q.Range != nil && *q.Range < 0 {
		return fmt.Errorf("range %d is negative", *q.Range)
	}

	switch q.Kind {
	case KindPath, KindLine:
		if q.To == nil {
			return errors.New("needs to")
		}
	case KindMovement:
		if q.Range == nil && q.Unit == "" {
			return errors.New("needs range or unit")
		}
	case KindView:
	case KindRing, KindSpiral:
		if q.Range == nil {
			return errors.New("needs range")
		}
	default:
		return fmt.Errorf("unknown kind %q", q.Kind)
	}
	return nil
}
