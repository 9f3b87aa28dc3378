package scenario

import (
	"github.com/gravitas-games/hexquery/internal/config"
	"github.com/gravitas-games/hexquery/pkg/hexcore/hex"
)

// Report is the document written for a scenario run
type Report struct {
	Summary Summary  `yaml:"summary" json:"summary"`
	Results []Result `yaml:"results" json:"results"`
}

// Summary describes the layers the queries ran against
type Summary struct {
	Positions int `yaml:"positions" json:"positions"` // Populated obstacle-layer positions
	Blocked   int `yaml:"blocked" json:"blocked"`
	Units     int `yaml:"units" json:"units"`
	Queries   int `yaml:"queries" json:"queries"`
}

// Result is the outcome of one query
type Result struct {
	Index int              `yaml:"index" json:"index"`
	Kind  config.QueryKind `yaml:"kind" json:"kind"`
	Unit  string           `yaml:"unit,omitempty" json:"unit,omitempty"`
	From  hex.Axial        `yaml:"from" json:"from"`
	To    *hex.Axial       `yaml:"to,omitempty" json:"to,omitempty"`
	Range *int             `yaml:"range,omitempty" json:"range,omitempty"` // Effective range, after unit defaults

	// Found is false only for a path query that produced no path
	Found    bool `yaml:"found" json:"found"`
	Count    int  `yaml:"count" json:"count"`
	Explored int  `yaml:"explored,omitempty" json:"explored,omitempty"` // Path queries only

	// Sequences keep their traversal order; sets are sorted by r, then q
	Positions []hex.Axial `yaml:"positions,flow" json:"positions"`
}
