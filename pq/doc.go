// Package pq provides the two priority-queue strategies used by the
// dijkstra package: an unsorted dense array and an indexed binary min-heap.
//
// Overview:
//
//   - Both strategies implement Queue: Insert, DecreaseKey, DeleteMin,
//     IsEmpty and Len over node ids in [0, n).
//   - Keys are distance estimates (float64). A key may only ever decrease.
//   - Once an id is returned by DeleteMin it is finalized: it is never
//     reinserted and its key is never reconsidered.
//
// Complexity:
//
//	| Operation   | Array | Heap     |
//	|-------------|-------|----------|
//	| Insert      | O(1)  | O(log n) |
//	| DecreaseKey | O(1)  | O(log n) |
//	| DeleteMin   | O(n)  | O(log n) |
//	| IsEmpty/Len | O(1)  | O(1)     |
//
// Driving Dijkstra with Array costs O(n²) overall; with Heap it costs
// O((n + e) log n). The results are identical, only the cost differs.
//
// Tie-break:
//
//   - Array scans ids in ascending order and keeps the first strictly
//     smaller key, so among equal keys the lowest id wins.
//   - Heap orders entries by (key, id), so it also returns the lowest id
//     among equal keys. Both strategies therefore extract the same sequence
//     for the same operations, and Dijkstra builds identical distance and
//     predecessor tables with either one.
//
// Storage:
//
//	Both queues are backed by dense slices indexed by node id with explicit
//	presence and finalized flags. Nothing depends on map iteration order.
//
// Errors (sentinel):
//
//   - ErrEmpty          DeleteMin on an empty queue.
//   - ErrInvalidIndex   id outside [0, n).
//   - ErrPresent        Insert of an id already queued.
//   - ErrFinalized      Insert of an id already extracted.
//   - ErrUnknownVariant unrecognised Variant or variant name.
//
// Thread safety:
//
//	Queues are not safe for concurrent use. Each Dijkstra run owns its own.
package pq
