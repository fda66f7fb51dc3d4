// Package dijkstra computes single-source shortest paths on a network.Network
// with Dijkstra's algorithm, driven by either priority-queue strategy from
// package pq.
//
// Overview:
//
//   - Run performs one query and returns a *Tree: the distance and
//     predecessor tables for that source plus run statistics. A Tree is an
//     explicit per-query context; nothing is kept on shared instances, so
//     independent queries may run concurrently against the same Network.
//   - (*Tree).ShortestPath reconstructs the cost and the ordered edge list
//     from the source to any destination.
//   - Solver wraps Run behind the three-call interface InitializeNetwork,
//     ComputeShortestPaths and ShortestPath, keeping the most recent Tree.
//
// Queue strategies (pq.Variant):
//
//   - pq.Array: unsorted dense array. O(n²) overall.
//   - pq.Heap:  indexed binary min-heap. O((n + e) log n) overall.
//
// Both extract the lowest id among equal keys, so they finalize nodes in the
// same order and produce identical distance and predecessor tables, ties
// included.
//
// Algorithm:
//
//	INIT    reset tables (dist[src]=0, others +Inf, prev=NoPredecessor),
//	        seed the queue with (src, 0)
//	RUNNING while the queue is not empty: u = DeleteMin; for every edge
//	        (u, v, w): if dist[u]+w < dist[v] then dist[v]=dist[u]+w,
//	        prev[v]=u, DecreaseKey(v, dist[v])
//	DONE    every reachable node is finalized with its true distance;
//	        unreachable nodes keep +Inf and NoPredecessor.
//
// Non-negative weights are guaranteed by network.New, which rejects negative
// lengths with network.ErrInvalidWeight.
//
// Options:
//
//   - WithVariant(v):           queue strategy (default pq.Heap).
//   - WithContext(ctx):         abort between extractions once ctx is done.
//   - WithMaxDistance(d):       do not record distances above d.
//   - WithInfEdgeThreshold(t):  edges with length ≥ t are impassable.
//
// Errors (sentinel):
//
//   - ErrNilNetwork:         Run got a nil network, or
//     Solver.ComputeShortestPaths ran before InitializeNetwork.
//   - ErrInvalidIndex:       source or destination outside [0, n).
//   - ErrInconsistentState:  the predecessor chain does not lead back to the
//     source within n steps. Indicates a driver or queue bug.
//   - ErrNotComputed:        Solver.ShortestPath before ComputeShortestPaths.
//   - network.ErrInvalidGraph from Solver.InitializeNetwork.
//
// Unreachable destinations are not errors: ShortestPath returns
// Path{Cost: +Inf} with no hops.
//
// Example:
//
//	tree, err := dijkstra.Run(net, 0, dijkstra.WithVariant(pq.Array))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, err := tree.ShortestPath(7)
//	fmt.Println(p.Cost, len(p.Hops))
package dijkstra
