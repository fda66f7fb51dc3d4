package dijkstra

import (
	"fmt"
	"time"

	"github.com/katalvlaran/netroute/network"
	"github.com/katalvlaran/netroute/pq"
)

// Run computes shortest distances from source to every node of net and
// returns them as a fresh Tree.
//
// Preconditions and validation (in order):
//  1. net must be non-nil (ErrNilNetwork).
//  2. source must lie in [0, net.Len()) (ErrInvalidIndex).
//  3. the selected variant must exist (pq.ErrUnknownVariant).
//
// A cancelled WithContext context aborts the run between extractions and
// returns ctx.Err() wrapped.
//
// Complexity:
//
//   - pq.Array: O(V² + E)
//   - pq.Heap:  O((V + E) log V)
//   - Space:    O(V)
func Run(net *network.Network, source int, opts ...Option) (*Tree, error) {
	// 1) Build Options from defaults and the supplied overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the network and the source.
	if net == nil {
		return nil, ErrNilNetwork
	}
	if !net.Has(source) {
		return nil, fmt.Errorf("%w: source=%d n=%d", ErrInvalidIndex, source, net.Len())
	}

	// 3) Create the queue for the selected strategy.
	q, err := cfg.Variant.New(net.Len())
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	// 4) Reset the tables and seed the queue with the source.
	r := &runner{net: net, opts: cfg, queue: q}
	if err = r.init(source); err != nil {
		return nil, err
	}

	// 5) Run the main loop. Only this phase is timed.
	start := time.Now()
	err = r.process()
	r.stats.Elapsed = time.Since(start)
	if err != nil {
		return nil, err
	}

	return &Tree{
		net:     net,
		source:  source,
		variant: cfg.Variant,
		tables:  r.tables,
		stats:   r.stats,
	}, nil
}

// runner holds the mutable state of a single Run.
type runner struct {
	net    *network.Network // read-only
	opts   Options
	queue  pq.Queue // strategy chosen by opts.Variant
	tables Tables   // dist/prev, owned by this run only
	stats  Stats
}

// init resets the tables and seeds the queue with (source, 0).
func (r *runner) init(source int) error {
	if err := r.tables.Reset(r.net.Len(), source); err != nil {
		return err
	}
	if err := r.queue.Insert(source, 0); err != nil {
		return fmt.Errorf("dijkstra: seed queue: %w", err)
	}

	return nil
}

// process extracts the closest unfinalized node until the queue is empty,
// relaxing the outgoing edges of each.
func (r *runner) process() error {
	ctx := r.opts.Ctx
	for !r.queue.IsEmpty() {
		// 1) Stop early if the caller gave up.
		select {
		case <-ctx.Done():
			return fmt.Errorf("dijkstra: run aborted after %d extractions: %w", r.stats.Extracted, ctx.Err())
		default:
		}

		// 2) Extract the closest queued node; its distance is now final.
		u, _, err := r.queue.DeleteMin()
		if err != nil {
			return fmt.Errorf("dijkstra: extract: %w", err)
		}
		r.stats.Extracted++

		// 3) Relax its outgoing edges.
		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbour of the finalized node u.
// Strict < keeps the first predecessor found among equal-cost paths.
//
// dist and prev are indexed directly rather than through the Tables
// setters: u came out of the queue and every e.To was range-checked by
// network.New, so the per-edge bounds checks of SetDistance/SetPredecessor
// would never fire.
func (r *runner) relax(u int) error {
	dist, prev := r.tables.dist, r.tables.prev
	du := dist[u]
	for _, e := range r.net.Edges(u) {
		r.stats.Scanned++
		if e.Length >= r.opts.InfEdgeThreshold {
			continue
		}
		nd := du + e.Length
		if nd > r.opts.MaxDistance || nd >= dist[e.To] {
			continue
		}

		dist[e.To] = nd
		prev[e.To] = u
		r.stats.Relaxed++
		if err := r.queue.DecreaseKey(e.To, nd); err != nil {
			return fmt.Errorf("dijkstra: decrease key %d: %w", e.To, err)
		}
	}

	return nil
}
