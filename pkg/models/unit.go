package models

import (
	"github.com/google/uuid"

	"github.com/gravitas-games/hexquery/pkg/hexcore/hex"
)

// Unit represents a piece standing on the map
type Unit struct {
	ID       string    `json:"id" yaml:"id"`             // Generated when not supplied
	Name     string    `json:"name" yaml:"name"`         // Unique within a scenario
	Position hex.Axial `json:"position" yaml:"position"` // Current hex
	Movement int       `json:"movement" yaml:"movement"` // Steps per turn
	Sight    int       `json:"sight" yaml:"sight"`       // View range in hexes

	// Blind units see nothing beyond their own hex
	Blind bool `json:"blind,omitempty" yaml:"blind,omitempty"`
}

// NewUnit creates a unit with a fresh ID
func NewUnit(name string, pos hex.Axial, movement, sight int) Unit {
	return Unit{
		ID:       uuid.NewString(),
		Name:     name,
		Position: pos,
		Movement: movement,
		Sight:    sight,
	}
}

// EnsureID assigns a random ID if the unit has none
func (u *Unit) EnsureID() {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
}

// CanMove checks if the unit has any movement this turn
func (u *Unit) CanMove() bool {
	return u.Movement > 0
}

// ViewRange returns how far the unit sees; blind units see only their hex
func (u *Unit) ViewRange() int {
	if u.Blind {
		return 0
	}
	return u.Sight
}
