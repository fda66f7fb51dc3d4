package pq

// ArrayQueue is an unsorted priority queue over dense node ids.
//
// Insert and DecreaseKey are O(1); DeleteMin scans every id and costs O(n).
// Among equal keys DeleteMin returns the lowest id.
type ArrayQueue struct {
	keys      []float64 // keys[id] is meaningful only while present[id]
	present   []bool    // id is currently queued
	finalized []bool    // id was returned by DeleteMin
	size      int       // number of queued ids
}

var _ Queue = (*ArrayQueue)(nil)

// NewArray returns an empty ArrayQueue for ids in [0, n).
func NewArray(n int) *ArrayQueue {
	return &ArrayQueue{
		keys:      make([]float64, n),
		present:   make([]bool, n),
		finalized: make([]bool, n),
	}
}

// Insert queues id with key in O(1).
func (q *ArrayQueue) Insert(id int, key float64) error {
	if err := checkIndex(id, len(q.keys)); err != nil {
		return err
	}
	if q.finalized[id] {
		return ErrFinalized
	}
	if q.present[id] {
		return ErrPresent
	}
	q.keys[id] = key
	q.present[id] = true
	q.size++

	return nil
}

// DecreaseKey lowers id's key in O(1), inserting id if it is absent.
// Finalized ids and non-decreasing keys are ignored.
func (q *ArrayQueue) DecreaseKey(id int, key float64) error {
	if err := checkIndex(id, len(q.keys)); err != nil {
		return err
	}
	if q.finalized[id] {
		return nil
	}
	if !q.present[id] {
		return q.Insert(id, key)
	}
	if key < q.keys[id] {
		q.keys[id] = key
	}

	return nil
}

// DeleteMin removes and finalizes the queued id with the smallest key.
//
// The scan runs over ids in ascending order and only replaces the current
// best on a strictly smaller key, so the lowest id wins ties.
func (q *ArrayQueue) DeleteMin() (int, float64, error) {
	if q.size == 0 {
		return -1, 0, ErrEmpty
	}

	best := -1
	var bestKey float64
	for id, ok := range q.present {
		if !ok {
			continue
		}
		if best == -1 || q.keys[id] < bestKey {
			best, bestKey = id, q.keys[id]
		}
	}

	q.present[best] = false
	q.finalized[best] = true
	q.size--

	return best, bestKey, nil
}

// IsEmpty reports whether no ids are queued.
func (q *ArrayQueue) IsEmpty() bool { return q.size == 0 }

// Len returns the number of queued ids.
func (q *ArrayQueue) Len() int { return q.size }
