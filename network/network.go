package network

import (
	"fmt"
	"math"
)

// New validates nodes and returns a Network holding a private copy of them.
//
// Validation (in order, first failure wins):
//  1. At least one node (ErrInvalidGraph).
//  2. nodes[i].ID == i for every i (ErrInvalidGraph).
//  3. Every edge has From equal to its owning node and To in range (ErrInvalidGraph).
//  4. Every edge length is finite and ≥ 0 (ErrInvalidWeight).
//
// Complexity: O(V + E).
func New(nodes []Node) (*Network, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrInvalidGraph)
	}

	out := make([]Node, len(nodes))
	edges := 0
	for i, nd := range nodes {
		if nd.ID != i {
			return nil, fmt.Errorf("%w: node at position %d has id %d", ErrInvalidGraph, i, nd.ID)
		}
		for _, e := range nd.Edges {
			if err := validateEdge(e, i, len(nodes)); err != nil {
				return nil, err
			}
		}
		out[i] = Node{ID: i, Loc: nd.Loc, Edges: append([]Edge(nil), nd.Edges...)}
		edges += len(nd.Edges)
	}

	return &Network{nodes: out, edges: edges}, nil
}

// validateEdge checks one outgoing edge of node owner in a network of n nodes.
func validateEdge(e Edge, owner, n int) error {
	if e.From != owner {
		return fmt.Errorf("%w: edge %d→%d listed under node %d", ErrInvalidGraph, e.From, e.To, owner)
	}
	if e.To < 0 || e.To >= n {
		return fmt.Errorf("%w: edge %d→%d target out of range [0,%d)", ErrInvalidGraph, e.From, e.To, n)
	}
	if e.Length < 0 || math.IsNaN(e.Length) || math.IsInf(e.Length, 0) {
		return fmt.Errorf("%w: edge %d→%d length=%g", ErrInvalidWeight, e.From, e.To, e.Length)
	}

	return nil
}

// Builder assembles a Network incrementally. The zero value is ready to use.
// Errors are deferred to Build so call sites stay linear.
type Builder struct {
	nodes []Node
	err   error
}

// AddNode appends a node at loc and returns its id.
func (b *Builder) AddNode(loc Point) int {
	id := len(b.nodes)
	b.nodes = append(b.nodes, Node{ID: id, Loc: loc})

	return id
}

// AddEdge appends a directed edge from → to. The first invalid edge is
// remembered and reported by Build.
func (b *Builder) AddEdge(from, to int, length float64) *Builder {
	if b.err != nil {
		return b
	}
	if from < 0 || from >= len(b.nodes) {
		b.err = fmt.Errorf("%w: edge %d→%d source out of range [0,%d)", ErrInvalidGraph, from, to, len(b.nodes))
		return b
	}
	e := Edge{From: from, To: to, Length: length}
	if err := validateEdge(e, from, len(b.nodes)); err != nil {
		b.err = err
		return b
	}
	b.nodes[from].Edges = append(b.nodes[from].Edges, e)

	return b
}

// Build validates the accumulated nodes and returns the Network.
func (b *Builder) Build() (*Network, error) {
	if b.err != nil {
		return nil, b.err
	}

	return New(b.nodes)
}
