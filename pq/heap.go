package pq

// HeapQueue is a binary min-heap over dense node ids.
//
// The heap lives in two parallel slices, keys and ids, indexed by heap slot.
// slot maps a node id back to its heap slot (-1 when absent) so DecreaseKey
// can find an entry without searching. Every swap updates all three.
//
// Slots are 0-based: parent(i) = (i-1)/2, children 2i+1 and 2i+2.
// Entries are ordered by (key, id), so among equal keys the lowest id is
// extracted first, exactly as ArrayQueue does.
type HeapQueue struct {
	keys      []float64 // keys[s]: key at heap slot s
	ids       []int     // ids[s]: node id at heap slot s
	slot      []int     // slot[id]: heap slot of id, or -1
	finalized []bool    // id was returned by DeleteMin
}

var _ Queue = (*HeapQueue)(nil)

// NewHeap returns an empty HeapQueue for ids in [0, n).
func NewHeap(n int) *HeapQueue {
	slot := make([]int, n)
	for i := range slot {
		slot[i] = -1
	}

	return &HeapQueue{
		keys:      make([]float64, 0, n),
		ids:       make([]int, 0, n),
		slot:      slot,
		finalized: make([]bool, n),
	}
}

// Insert appends id at the end of the heap and bubbles it up. O(log n).
func (h *HeapQueue) Insert(id int, key float64) error {
	if err := checkIndex(id, len(h.slot)); err != nil {
		return err
	}
	if h.finalized[id] {
		return ErrFinalized
	}
	if h.slot[id] >= 0 {
		return ErrPresent
	}

	s := len(h.keys)
	h.keys = append(h.keys, key)
	h.ids = append(h.ids, id)
	h.slot[id] = s
	h.up(s)

	return nil
}

// DecreaseKey lowers id's key and restores heap order. O(log n).
// Absent ids are inserted; finalized ids and non-decreasing keys are ignored.
func (h *HeapQueue) DecreaseKey(id int, key float64) error {
	if err := checkIndex(id, len(h.slot)); err != nil {
		return err
	}
	if h.finalized[id] {
		return nil
	}
	s := h.slot[id]
	if s < 0 {
		return h.Insert(id, key)
	}
	if key >= h.keys[s] {
		return nil
	}
	h.keys[s] = key
	h.up(s)

	return nil
}

// DeleteMin removes and finalizes the id at slot 0. O(log n).
func (h *HeapQueue) DeleteMin() (int, float64, error) {
	n := len(h.keys)
	if n == 0 {
		return -1, 0, ErrEmpty
	}

	// 1) take the root, 2) move the last entry into its place, 3) sift down.
	id, key := h.ids[0], h.keys[0]
	last := n - 1
	if last > 0 {
		h.keys[0], h.ids[0] = h.keys[last], h.ids[last]
		h.slot[h.ids[0]] = 0
	}
	h.keys = h.keys[:last]
	h.ids = h.ids[:last]
	h.slot[id] = -1
	h.finalized[id] = true

	if last > 1 {
		h.down(0)
	}

	return id, key, nil
}

// IsEmpty reports whether the heap holds no ids.
func (h *HeapQueue) IsEmpty() bool { return len(h.keys) == 0 }

// Len returns the number of queued ids.
func (h *HeapQueue) Len() int { return len(h.keys) }

// less reports whether the entry at slot a orders before the entry at slot b:
// smaller key first, lower id on equal keys.
func (h *HeapQueue) less(a, b int) bool {
	if h.keys[a] != h.keys[b] {
		return h.keys[a] < h.keys[b]
	}

	return h.ids[a] < h.ids[b]
}

// up moves the entry at slot s toward the root while it orders before its
// parent.
func (h *HeapQueue) up(s int) {
	for s > 0 {
		parent := (s - 1) / 2
		if !h.less(s, parent) {
			return
		}
		h.swap(parent, s)
		s = parent
	}
}

// down moves the entry at slot s toward the leaves while some child orders
// before it. Children outside the heap are absent; with a single child only
// that child is compared.
func (h *HeapQueue) down(s int) {
	n := len(h.keys)
	for {
		// 1) pick the smaller child, if any
		left := 2*s + 1
		if left >= n {
			return
		}
		child := left
		if right := left + 1; right < n && h.less(right, left) {
			child = right
		}

		// 2) stop once the entry is in place
		if !h.less(child, s) {
			return
		}
		h.swap(s, child)
		s = child
	}
}

// swap exchanges heap slots a and b and keeps slot in sync.
func (h *HeapQueue) swap(a, b int) {
	h.keys[a], h.keys[b] = h.keys[b], h.keys[a]
	h.ids[a], h.ids[b] = h.ids[b], h.ids[a]
	h.slot[h.ids[a]] = a
	h.slot[h.ids[b]] = b
}
