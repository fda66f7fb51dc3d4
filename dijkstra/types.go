package dijkstra

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/netroute/pq"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilNetwork indicates a nil *network.Network.
	ErrNilNetwork = errors.New("dijkstra: network is nil")

	// ErrInvalidIndex indicates a source or destination outside [0, n).
	ErrInvalidIndex = errors.New("dijkstra: node index out of range")

	// ErrInconsistentState indicates a predecessor chain that does not reach
	// the source. It can only result from a bug in the driver or a queue.
	ErrInconsistentState = errors.New("dijkstra: inconsistent predecessor state")

	// ErrNotComputed indicates a Solver query before any computation.
	ErrNotComputed = errors.New("dijkstra: shortest paths not computed")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a zero, negative or NaN InfEdgeThreshold.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// NoPredecessor marks the source and unreachable nodes in the predecessor table.
const NoPredecessor = -1

// Options configures one Dijkstra run.
//
// Variant          – queue strategy.
// Ctx              – checked between extractions; a done context aborts the run.
// MaxDistance      – distances above this are never recorded. Default +Inf.
// InfEdgeThreshold – edges with length ≥ this are skipped. Default +Inf.
type Options struct {
	Variant          pq.Variant
	Ctx              context.Context
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// DefaultOptions returns the options Run starts from:
//   - Variant:          pq.Heap
//   - Ctx:              context.Background()
//   - MaxDistance:      +Inf (no cap)
//   - InfEdgeThreshold: +Inf (no impassable edges)
func DefaultOptions() Options {
	return Options{
		Variant:          pq.Heap,
		Ctx:              context.Background(),
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithVariant selects the priority-queue strategy.
func WithVariant(v pq.Variant) Option {
	return func(o *Options) {
		o.Variant = v
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance caps recorded distances: a relaxation that would set a
// distance above max is skipped, leaving the node unreachable unless a
// cheaper path exists. Panics on a negative or NaN max.
func WithMaxDistance(max float64) Option {
	if !(max >= 0) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge whose length is ≥ threshold as
// impassable. Panics unless threshold > 0.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}
