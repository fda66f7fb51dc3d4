package network

import (
	"fmt"
	"math/rand"
)

// Defaults for Random.
const (
	DefaultDegree = 3
	DefaultExtent = 1000.0
)

// randomConfig collects the options of Random.
type randomConfig struct {
	rng    *rand.Rand
	degree int
	extent float64
}

// RandomOption customizes Random.
type RandomOption func(*randomConfig)

// WithSeed makes Random deterministic for the given seed.
func WithSeed(seed int64) RandomOption {
	return func(c *randomConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the RNG used by Random. Panics on nil.
func WithRand(r *rand.Rand) RandomOption {
	if r == nil {
		panic("network: WithRand(nil)")
	}
	return func(c *randomConfig) {
		c.rng = r
	}
}

// WithDegree sets how many distinct random neighbours each node links to.
// Values above n-1 are capped at n-1. Panics on a negative degree.
func WithDegree(d int) RandomOption {
	if d < 0 {
		panic(fmt.Sprintf("network: WithDegree(%d) must be non-negative", d))
	}
	return func(c *randomConfig) {
		c.degree = d
	}
}

// WithExtent sets the side of the square the points are drawn from.
// Panics unless extent > 0.
func WithExtent(extent float64) RandomOption {
	if !(extent > 0) {
		panic(fmt.Sprintf("network: WithExtent(%g) must be positive", extent))
	}
	return func(c *randomConfig) {
		c.extent = extent
	}
}

// Random returns a network of n points drawn uniformly from
// [0,extent)×[0,extent). Each node gets edges to degree distinct other nodes
// chosen uniformly at random, weighted by Euclidean distance.
//
// Determinism: points are drawn in id order, then neighbours node by node,
// so a fixed seed always yields the same network. Without WithSeed or
// WithRand the seed is 1.
//
// Complexity: O(n·degree) expected.
func Random(n int, opts ...RandomOption) (*Network, error) {
	cfg := randomConfig{degree: DefaultDegree, extent: DefaultExtent}
	for _, opt := range opts {
		opt(&cfg)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: random network needs n ≥ 1, got %d", ErrInvalidGraph, n)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(1))
	}
	if cfg.degree > n-1 {
		cfg.degree = n - 1
	}

	rng := cfg.rng
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i] = Node{ID: i, Loc: Point{X: rng.Float64() * cfg.extent, Y: rng.Float64() * cfg.extent}}
	}

	picked := make(map[int]bool, cfg.degree)
	for i := range nodes {
		clear(picked)
		nodes[i].Edges = make([]Edge, 0, cfg.degree)
		for len(nodes[i].Edges) < cfg.degree {
			j := rng.Intn(n)
			if j == i || picked[j] {
				continue
			}
			picked[j] = true
			nodes[i].Edges = append(nodes[i].Edges, Edge{
				From:   i,
				To:     j,
				Length: nodes[i].Loc.Dist(nodes[j].Loc),
			})
		}
	}

	return New(nodes)
}
