package dijkstra

import (
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/netroute/network"
	"github.com/katalvlaran/netroute/pq"
)

// Solver binds a network and remembers the most recent Tree, exposing the
// three-step interface initialize → compute → query.
//
// The latest tree is swapped under a lock, so a Solver is memory-safe for
// concurrent use, but concurrent ComputeShortestPaths calls race for which
// result ShortestPath sees. Callers needing independent concurrent queries
// should call Run and keep their own Tree.
type Solver struct {
	mu     sync.RWMutex
	net    *network.Network
	latest *Tree
	base   []Option
}

// NewSolver returns a Solver whose computations apply opts before the
// per-call variant.
func NewSolver(opts ...Option) *Solver {
	return &Solver{base: opts}
}

// InitializeNetwork binds net and discards any previous result.
// Returns network.ErrInvalidGraph for a nil or empty network.
func (s *Solver) InitializeNetwork(net *network.Network) error {
	if net == nil || net.Len() == 0 {
		return fmt.Errorf("%w: nothing to initialize", network.ErrInvalidGraph)
	}
	s.mu.Lock()
	s.net = net
	s.latest = nil
	s.mu.Unlock()

	return nil
}

// Network returns the bound network, or nil.
func (s *Solver) Network() *network.Network {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.net
}

// ComputeShortestPaths runs Dijkstra from source with the given queue
// variant, stores the result for ShortestPath and returns the time spent in
// the main loop. The duration is an observability metric only.
func (s *Solver) ComputeShortestPaths(source int, variant pq.Variant) (time.Duration, error) {
	s.mu.RLock()
	net := s.net
	s.mu.RUnlock()
	if net == nil {
		return 0, ErrNilNetwork
	}

	opts := append(append([]Option(nil), s.base...), WithVariant(variant))
	tree, err := Run(net, source, opts...)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	if s.net == net {
		s.latest = tree
	}
	s.mu.Unlock()

	return tree.Stats().Elapsed, nil
}

// ShortestPath returns the path to dest from the source of the latest
// computation. ErrNotComputed if nothing has been computed for the bound
// network yet.
func (s *Solver) ShortestPath(dest int) (Path, error) {
	t := s.Latest()
	if t == nil {
		return Path{}, ErrNotComputed
	}

	return t.ShortestPath(dest)
}

// Latest returns the most recent Tree, or nil.
func (s *Solver) Latest() *Tree {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.latest
}
