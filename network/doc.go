// Package network holds the immutable, directed, weighted network that
// shortest-path queries run against.
//
// A Network is a dense sequence of nodes. Node i has ID i, a 2D location used
// only for bookkeeping and display, and an ordered list of outgoing edges.
// Every edge length is finite and non-negative; New rejects anything else, so
// algorithms built on a Network never see a negative weight.
//
// Ways to obtain a Network:
//
//   - New: from a slice of nodes, validated.
//   - Builder: incremental AddNode / AddEdge, then Build.
//   - Decode / LoadFile: from the YAML document format.
//   - Random: a seeded random point set where each node links to a fixed
//     number of random other nodes, weighted by Euclidean distance.
//
// Once built, a Network is never mutated and may be shared by any number of
// goroutines.
//
// YAML format:
//
//	nodes:
//	  - id: 0
//	    x: 0.5
//	    y: 0.25
//	    edges:
//	      - {to: 1, length: 12.5}
//	  - id: 1
//	    x: 3
//	    y: 4
//
// Errors (sentinel):
//
//   - ErrInvalidGraph:  nil or empty network, node id not equal to its
//     position, edge endpoint out of range.
//   - ErrInvalidWeight: negative, NaN or infinite edge length.
package network
