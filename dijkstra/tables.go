package dijkstra

import (
	"fmt"
	"math"
)

// Tables holds the per-query distance and predecessor arrays, indexed densely
// by node id. The zero value is empty; call Reset before use.
type Tables struct {
	dist []float64
	prev []int
}

// Reset sizes the tables for nodeCount nodes: dist[source]=0, every other
// distance +Inf, every predecessor NoPredecessor. Existing storage is reused
// when large enough.
func (t *Tables) Reset(nodeCount, source int) error {
	if nodeCount < 0 || source < 0 || source >= nodeCount {
		return fmt.Errorf("%w: source=%d n=%d", ErrInvalidIndex, source, nodeCount)
	}
	if cap(t.dist) < nodeCount {
		t.dist = make([]float64, nodeCount)
		t.prev = make([]int, nodeCount)
	}
	t.dist = t.dist[:nodeCount]
	t.prev = t.prev[:nodeCount]

	inf := math.Inf(1)
	for i := range t.dist {
		t.dist[i] = inf
		t.prev[i] = NoPredecessor
	}

	return t.SetDistance(source, 0)
}

// Len returns the number of nodes the tables cover.
func (t *Tables) Len() int { return len(t.dist) }

// Distance returns the best-known distance of id.
func (t *Tables) Distance(id int) (float64, error) {
	if err := t.check(id); err != nil {
		return 0, err
	}

	return t.dist[id], nil
}

// SetDistance records d as the best-known distance of id.
func (t *Tables) SetDistance(id int, d float64) error {
	if err := t.check(id); err != nil {
		return err
	}
	t.dist[id] = d

	return nil
}

// Predecessor returns the predecessor of id, or NoPredecessor.
func (t *Tables) Predecessor(id int) (int, error) {
	if err := t.check(id); err != nil {
		return NoPredecessor, err
	}

	return t.prev[id], nil
}

// SetPredecessor records p as the predecessor of id.
func (t *Tables) SetPredecessor(id, p int) error {
	if err := t.check(id); err != nil {
		return err
	}
	t.prev[id] = p

	return nil
}

func (t *Tables) check(id int) error {
	if id < 0 || id >= len(t.dist) {
		return fmt.Errorf("%w: id=%d n=%d", ErrInvalidIndex, id, len(t.dist))
	}

	return nil
}
