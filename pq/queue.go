package pq

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the queues.
var (
	// ErrEmpty indicates DeleteMin was called on an empty queue.
	ErrEmpty = errors.New("pq: queue is empty")

	// ErrInvalidIndex indicates a node id outside [0, n).
	ErrInvalidIndex = errors.New("pq: node id out of range")

	// ErrPresent indicates Insert was called for an id that is already queued.
	// Use DecreaseKey to lower the key of a queued id.
	ErrPresent = errors.New("pq: node already queued")

	// ErrFinalized indicates Insert was called for an id that was already extracted.
	ErrFinalized = errors.New("pq: node already finalized")

	// ErrUnknownVariant indicates an unrecognised queue variant.
	ErrUnknownVariant = errors.New("pq: unknown queue variant")
)

// Queue is the capability set Dijkstra needs from a priority queue.
//
// Implementations index nodes densely by id in [0, n) where n is fixed at
// construction.
type Queue interface {
	// Insert queues id with the given key.
	// Returns ErrPresent if id is queued and ErrFinalized if id was extracted.
	Insert(id int, key float64) error

	// DecreaseKey lowers the key of a queued id if key is strictly smaller,
	// inserts id if it is neither queued nor finalized, and is a no-op
	// otherwise. Keys never increase.
	DecreaseKey(id int, key float64) error

	// DeleteMin removes and finalizes the id with the smallest key.
	DeleteMin() (id int, key float64, err error)

	// IsEmpty reports whether no ids are queued.
	IsEmpty() bool

	// Len returns the number of queued ids.
	Len() int
}

// Variant selects a Queue implementation.
type Variant int

const (
	// Heap is the indexed binary min-heap. It is the zero value.
	Heap Variant = iota

	// Array is the unsorted dense array with linear-scan DeleteMin.
	Array
)

// Variants lists every supported Variant in a stable order.
var Variants = []Variant{Array, Heap}

// String returns the lowercase variant name.
func (v Variant) String() string {
	switch v {
	case Array:
		return "array"
	case Heap:
		return "heap"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Valid reports whether v names a supported implementation.
func (v Variant) Valid() bool {
	return v == Array || v == Heap
}

// New returns an empty queue of this variant sized for ids in [0, n).
func (v Variant) New(n int) (Queue, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidIndex, n)
	}
	switch v {
	case Array:
		return NewArray(n), nil
	case Heap:
		return NewHeap(n), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, v)
	}
}

// MarshalText implements encoding.TextMarshaler so variants read naturally
// in YAML and JSON.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, v)
	}

	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed

	return nil
}

// ParseVariant maps a name ("array", "heap", case-insensitive) to a Variant.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "array":
		return Array, nil
	case "heap":
		return Heap, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
}

// checkIndex validates id against the queue size n.
func checkIndex(id, n int) error {
	if id < 0 || id >= n {
		return fmt.Errorf("%w: id=%d n=%d", ErrInvalidIndex, id, n)
	}

	return nil
}
