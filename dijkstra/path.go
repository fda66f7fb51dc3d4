package dijkstra

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/netroute/network"
)

// Hop is one edge of a reconstructed path.
type Hop struct {
	FromID int
	ToID   int
	From   network.Point
	To     network.Point
	Length float64
}

// Label returns the hop length rounded to a whole number, for display.
func (h Hop) Label() string {
	return fmt.Sprintf("%.0f", h.Length)
}

// Path is the shortest route from a tree's source to one destination.
// An unreachable destination has Cost +Inf and no hops.
type Path struct {
	Cost float64
	Hops []Hop
}

// Reachable reports whether the path has a finite cost.
func (p Path) Reachable() bool { return !math.IsInf(p.Cost, 1) }

// Nodes returns the node ids along the path, source first. It is empty for
// an unreachable destination.
func (p Path) Nodes() []int {
	if len(p.Hops) == 0 {
		return nil
	}
	ids := make([]int, 0, len(p.Hops)+1)
	ids = append(ids, p.Hops[0].FromID)
	for _, h := range p.Hops {
		ids = append(ids, h.ToID)
	}

	return ids
}

// ShortestPath walks the predecessor table back from dest to the source and
// returns the hops in source → dest order with Cost = Distance(dest).
//
// For every step the edge prev → current is looked up among prev's outgoing
// edges (O(degree)). A chain longer than the node count, a missing
// predecessor or a missing edge yields ErrInconsistentState.
//
// Complexity: O(Σ degree) over the nodes on the path.
func (t *Tree) ShortestPath(dest int) (Path, error) {
	n := t.tables.Len()
	if dest < 0 || dest >= n {
		return Path{}, fmt.Errorf("%w: dest=%d n=%d", ErrInvalidIndex, dest, n)
	}
	cost := t.tables.dist[dest]
	if math.IsInf(cost, 1) {
		return Path{Cost: cost}, nil
	}

	var hops []Hop
	cur := dest
	for steps := 0; cur != t.source; steps++ {
		if steps >= n {
			return Path{}, fmt.Errorf("%w: no route back to source %d from %d within %d steps",
				ErrInconsistentState, t.source, dest, n)
		}
		prev := t.tables.prev[cur]
		if prev < 0 || prev >= n {
			return Path{}, fmt.Errorf("%w: node %d has no predecessor", ErrInconsistentState, cur)
		}
		e, ok := t.net.Edge(prev, cur)
		if !ok {
			return Path{}, fmt.Errorf("%w: no edge %d→%d", ErrInconsistentState, prev, cur)
		}
		hops = append(hops, Hop{
			FromID: prev,
			ToID:   cur,
			From:   t.net.Loc(prev),
			To:     t.net.Loc(cur),
			Length: e.Length,
		})
		cur = prev
	}
	slices.Reverse(hops)

	return Path{Cost: cost, Hops: hops}, nil
}
