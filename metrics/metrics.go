// Package metrics exposes Prometheus collectors for shortest-path queries.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/netroute/dijkstra"
	"github.com/katalvlaran/netroute/network"
)

// Recorder holds the collectors. Create one per registry with New.
type Recorder struct {
	Computations    *prometheus.CounterVec
	ComputeDuration *prometheus.HistogramVec
	NodesExtracted  *prometheus.HistogramVec
	PathsServed     *prometheus.CounterVec
	NetworkNodes    prometheus.Gauge
	NetworkEdges    prometheus.Gauge
	NetworkReloads  *prometheus.CounterVec
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer
// to expose them on promhttp.Handler().
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		Computations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "netroute_computations_total",
			Help: "Shortest-path computations, labelled by queue variant.",
		}, []string{"variant"}),

		ComputeDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "netroute_compute_duration_seconds",
			Help:    "Time spent in the Dijkstra main loop, labelled by queue variant.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"variant"}),

		NodesExtracted: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "netroute_nodes_extracted",
			Help:    "Nodes finalized per computation, labelled by queue variant.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"variant"}),

		PathsServed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "netroute_paths_total",
			Help: "Reconstructed paths, labelled by reachability.",
		}, []string{"reachable"}),

		NetworkNodes: f.NewGauge(prometheus.GaugeOpts{
			Name: "netroute_network_nodes",
			Help: "Nodes in the currently loaded network.",
		}),

		NetworkEdges: f.NewGauge(prometheus.GaugeOpts{
			Name: "netroute_network_edges",
			Help: "Edges in the currently loaded network.",
		}),

		NetworkReloads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "netroute_network_reloads_total",
			Help: "Network (re)loads, labelled by status.",
		}, []string{"status"}),
	}
}

// ObserveTree records one finished computation.
func (r *Recorder) ObserveTree(t *dijkstra.Tree) {
	v := t.Variant().String()
	st := t.Stats()
	r.Computations.WithLabelValues(v).Inc()
	r.ComputeDuration.WithLabelValues(v).Observe(st.Elapsed.Seconds())
	r.NodesExtracted.WithLabelValues(v).Observe(float64(st.Extracted))
}

// ObservePath records one reconstructed path.
func (r *Recorder) ObservePath(p dijkstra.Path) {
	r.PathsServed.WithLabelValues(strconv.FormatBool(p.Reachable())).Inc()
}

// SetNetwork records the size of a newly loaded network.
func (r *Recorder) SetNetwork(n *network.Network) {
	r.NetworkNodes.Set(float64(n.Len()))
	r.NetworkEdges.Set(float64(n.EdgeCount()))
	r.NetworkReloads.WithLabelValues("ok").Inc()
}

// ReloadFailed counts a network load that was rejected.
func (r *Recorder) ReloadFailed() {
	r.NetworkReloads.WithLabelValues("error").Inc()
}
