package path

import (
	"errors"
	"fmt"

	"github.com/gravitas-games/hexquery/pkg/hexcore/grid"
	"github.com/gravitas-games/hexquery/pkg/hexcore/hex"
)

// ErrNegativeRange is returned for a movement range below zero.
var ErrNegativeRange = errors.New("path: negative range")

// Reachable returns every position reachable from start in at most rng steps
// through unblocked positions. start is always included; whether it is itself
// passable is the caller's concern.
func Reachable(obs Blocker, start hex.Axial, rng int) (grid.PositionSet, error) {
	dist, err := Distances(obs, start, rng)
	if err != nil {
		return nil, err
	}
	s := make(grid.PositionSet, len(dist))
	for p := range dist {
		s.Add(p)
	}
	return s, nil
}

// Distances is Reachable with the step count of each position.
func Distances(obs Blocker, start hex.Axial, rng int) (map[hex.Axial]int, error) {
	if rng < 0 {
		return nil, fmt.Errorf("movement from %v: %w", start, ErrNegativeRange)
	}
	dist := map[hex.Axial]int{start: 0}
	layer := []hex.Axial{start}
	for step := 1; step <= rng && len(layer) > 0; step++ {
		var next []hex.Axial
		for _, cur := range layer {
			for _, nb := range cur.Neighbors() {
				if _, seen := dist[nb]; seen || obs.Blocked(nb) {
					continue
				}
				dist[nb] = step
				next = append(next, nb)
			}
		}
		layer = next
	}
	return dist, nil
}
