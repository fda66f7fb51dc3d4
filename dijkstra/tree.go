package dijkstra

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/netroute/network"
	"github.com/katalvlaran/netroute/pq"
)

// Stats reports how much work a run did. Observability only.
type Stats struct {
	Elapsed   time.Duration // time spent in the extract/relax loop
	Extracted int           // nodes finalized
	Scanned   int           // edges examined
	Relaxed   int           // successful relaxations (= DecreaseKey calls)
}

// Tree is the result of one Run: the shortest-path tree rooted at Source.
// It is immutable and safe for concurrent readers.
type Tree struct {
	net     *network.Network
	source  int
	variant pq.Variant
	tables  Tables
	stats   Stats
}

// Network returns the network the tree was computed on.
func (t *Tree) Network() *network.Network { return t.net }

// Source returns the source node id.
func (t *Tree) Source() int { return t.source }

// Variant returns the queue strategy used.
func (t *Tree) Variant() pq.Variant { return t.variant }

// Stats returns the run statistics.
func (t *Tree) Stats() Stats { return t.stats }

// Distance returns the shortest distance from the source to id, +Inf when
// id is unreachable.
func (t *Tree) Distance(id int) (float64, error) { return t.tables.Distance(id) }

// Predecessor returns id's predecessor on its shortest path, or NoPredecessor
// for the source and unreachable nodes.
func (t *Tree) Predecessor(id int) (int, error) { return t.tables.Predecessor(id) }

// Reachable reports whether id has a finite distance.
func (t *Tree) Reachable(id int) bool {
	d, err := t.tables.Distance(id)
	return err == nil && !math.IsInf(d, 1)
}

// Distances returns a copy of the distance table.
func (t *Tree) Distances() []float64 {
	return append([]float64(nil), t.tables.dist...)
}

// Predecessors returns a copy of the predecessor table.
func (t *Tree) Predecessors() []int {
	return append([]int(nil), t.tables.prev...)
}

// String summarizes the tree for logs.
func (t *Tree) String() string {
	return fmt.Sprintf("dijkstra.Tree{source=%d variant=%s nodes=%d extracted=%d}",
		t.source, t.variant, t.tables.Len(), t.stats.Extracted)
}
