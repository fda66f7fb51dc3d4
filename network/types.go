package network

import (
	"errors"
	"math"
)

// Sentinel errors for network construction.
var (
	// ErrInvalidGraph indicates an empty or malformed network.
	ErrInvalidGraph = errors.New("network: invalid graph")

	// ErrInvalidWeight indicates an edge whose length is negative, NaN or infinite.
	ErrInvalidWeight = errors.New("network: invalid edge weight")
)

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Edge is a directed, weighted connection From → To.
type Edge struct {
	From   int
	To     int
	Length float64
}

// Node is a network vertex with its outgoing edges in insertion order.
type Node struct {
	ID    int
	Loc   Point
	Edges []Edge
}

// Network is an immutable directed network with dense node ids 0..Len()-1.
type Network struct {
	nodes []Node
	edges int
}

// Len returns the number of nodes.
func (n *Network) Len() int { return len(n.nodes) }

// EdgeCount returns the total number of directed edges.
func (n *Network) EdgeCount() int { return n.edges }

// Has reports whether id names a node.
func (n *Network) Has(id int) bool { return id >= 0 && id < len(n.nodes) }

// Loc returns the location of node id. It panics if id is out of range.
func (n *Network) Loc(id int) Point { return n.nodes[id].Loc }

// Edges returns the outgoing edges of node id in insertion order.
// The slice is shared with the network and must not be modified.
// It panics if id is out of range.
func (n *Network) Edges(id int) []Edge { return n.nodes[id].Edges }

// Node returns a copy of node id.
func (n *Network) Node(id int) (Node, bool) {
	if !n.Has(id) {
		return Node{}, false
	}
	nd := n.nodes[id]
	nd.Edges = append([]Edge(nil), nd.Edges...)

	return nd, true
}

// Nodes returns a deep copy of every node in id order.
func (n *Network) Nodes() []Node {
	out := make([]Node, len(n.nodes))
	for i := range n.nodes {
		out[i], _ = n.Node(i)
	}

	return out
}

// Edge returns the shortest edge from → to. Parallel edges are allowed, so
// the scan covers all of from's outgoing edges. O(degree(from)).
func (n *Network) Edge(from, to int) (Edge, bool) {
	if !n.Has(from) {
		return Edge{}, false
	}
	var best Edge
	found := false
	for _, e := range n.nodes[from].Edges {
		if e.To == to && (!found || e.Length < best.Length) {
			best, found = e, true
		}
	}

	return best, found
}
