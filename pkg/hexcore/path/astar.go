// Package path implements shortest-path search and bounded reachability over
// a hex plane with an obstacle overlay.
package path

import (
	"container/heap"

	"github.com/gravitas-games/hexquery/pkg/hexcore/hex"
)

// DefaultMaxExplored bounds Find when no WithMaxExplored option is given.
const DefaultMaxExplored = 65536

// Blocker reports whether a position is impassable. grid.Obstacles
// satisfies it.
type Blocker interface {
	Blocked(p hex.Axial) bool
}

// Stats describes one search.
type Stats struct {
	Path     []hex.Axial
	Explored int
	// Limited is set when the search stopped at its exploration bound.
	Limited bool
}

// Found reports whether a path was produced.
func (s Stats) Found() bool { return s.Path != nil }

type options struct {
	maxExplored int
	bounded     bool
	center      hex.Axial
	radius      int
}

// Option configures Find.
type Option func(*options)

// WithMaxExplored caps the number of positions expanded. n <= 0 removes the
// cap, which only terminates when the goal is reachable or the graph is
// otherwise bounded.
func WithMaxExplored(n int) Option {
	return func(o *options) { o.maxExplored = n }
}

// WithinRadius restricts the search to the disc of radius r around center.
func WithinRadius(center hex.Axial, r int) Option {
	return func(o *options) {
		o.bounded = true
		o.center = center
		o.radius = r
	}
}

// Find returns a shortest path from start to goal, both inclusive, moving one
// hex per step through positions obs does not block. It returns nil when
// start or goal is blocked, when the goal cannot be reached, or when the
// exploration bound is hit first.
func Find(obs Blocker, start, goal hex.Axial, opts ...Option) []hex.Axial {
	return FindStats(obs, start, goal, opts...).Path
}

// FindStats is Find with the search effort reported alongside the path.
func FindStats(obs Blocker, start, goal hex.Axial, opts ...Option) Stats {
	o := options{maxExplored: DefaultMaxExplored}
	for _, opt := range opts {
		opt(&o)
	}
	inside := func(p hex.Axial) bool {
		return !o.bounded || hex.Distance(o.center, p) <= o.radius
	}
	if obs.Blocked(start) || obs.Blocked(goal) || !inside(start) || !inside(goal) {
		return Stats{}
	}

	neighbors := func(a hex.Axial) []hex.Axial {
		out := make([]hex.Axial, 0, 6)
		for _, b := range a.Neighbors() {
			if inside(b) && !obs.Blocked(b) {
				out = append(out, b)
			}
		}
		return out
	}
	return search(start, goal, HeuristicTo(goal), neighbors, unitCost, o.maxExplored)
}

// AStar computes a shortest path using the A* algorithm.
//   - start, goal: axial coordinates
//   - h: admissible heuristic (e.g. HeuristicTo(goal))
//   - neighbors: adjacent coordinates to explore from a position
//   - cost: edge cost between adjacent coordinates; values below 1 count as 1
//   - limit: maximum expansions, or <= 0 for none
//
// Returns the path including start and goal, or nil if no path was found.
func AStar(start, goal hex.Axial,
	h func(a hex.Axial) int,
	neighbors func(a hex.Axial) []hex.Axial,
	cost func(a, b hex.Axial) int,
	limit int,
) []hex.Axial {
	return search(start, goal, h, neighbors, cost, limit).Path
}

func search(start, goal hex.Axial,
	h func(a hex.Axial) int,
	neighbors func(a hex.Axial) []hex.Axial,
	cost func(a, b hex.Axial) int,
	limit int,
) Stats {
	if start == goal {
		return Stats{Path: []hex.Axial{start}}
	}

	open := &frontier{}
	heap.Init(open)
	var seq uint64
	push := func(a hex.Axial, f int) {
		heap.Push(open, &entry{pos: a, f: f, seq: seq})
		seq++
	}

	g := map[hex.Axial]int{start: 0}
	came := map[hex.Axial]hex.Axial{}
	closed := map[hex.Axial]bool{}
	push(start, h(start))

	var st Stats
	for open.Len() > 0 {
		cur := heap.Pop(open).(*entry).pos
		if closed[cur] {
			continue
		}
		closed[cur] = true
		st.Explored++
		if cur == goal {
			st.Path = reconstruct(came, start, goal)
			return st
		}
		if limit > 0 && st.Explored >= limit {
			st.Limited = true
			return st
		}
		for _, nb := range neighbors(cur) {
			if closed[nb] {
				continue
			}
			tentative := g[cur] + max(cost(cur, nb), 1)
			if old, ok := g[nb]; !ok || tentative < old {
				g[nb] = tentative
				came[nb] = cur
				push(nb, tentative+h(nb))
			}
		}
	}
	return st
}

func reconstruct(came map[hex.Axial]hex.Axial, start, goal hex.Axial) []hex.Axial {
	path := []hex.Axial{goal}
	for k := goal; k != start; {
		k = came[k]
		path = append(path, k)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func unitCost(_, _ hex.Axial) int { return 1 }

// HeuristicTo returns the hex distance to goal.
func HeuristicTo(goal hex.Axial) func(a hex.Axial) int {
	return func(a hex.Axial) int { return hex.Distance(a, goal) }
}

// NeighborsWithinDisc limits neighbors to the disc of radius r around center.
func NeighborsWithinDisc(center hex.Axial, r int) func(a hex.Axial) []hex.Axial {
	return func(a hex.Axial) []hex.Axial {
		out := make([]hex.Axial, 0, 6)
		for _, b := range a.Neighbors() {
			if hex.Distance(center, b) <= r {
				out = append(out, b)
			}
		}
		return out
	}
}

// entry is a frontier node. Equal f values pop in insertion order.
type entry struct {
	pos hex.Axial
	f   int
	seq uint64
}

type frontier []*entry

func (p frontier) Len() int { return len(p) }
func (p frontier) Less(i, j int) bool {
	if p[i].f != p[j].f {
		return p[i].f < p[j].f
	}
	return p[i].seq < p[j].seq
}
func (p frontier) Swap(i, j int) { p[i], p[j] = p[j], p[i] }
func (p *frontier) Push(x any)   { *p = append(*p, x.(*entry)) }
func (p *frontier) Pop() any {
	old := *p
	n := len(old)
	x := old[n-1]
	*p = old[:n-1]
	return x
}
