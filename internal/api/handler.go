// Package api serves shortest-path queries over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/netroute/config"
	"github.com/katalvlaran/netroute/dijkstra"
	"github.com/katalvlaran/netroute/metrics"
	"github.com/katalvlaran/netroute/network"
	"github.com/katalvlaran/netroute/pq"
)

// Handler holds all HTTP handler dependencies. Every route request builds
// its own dijkstra.Tree; the network and router settings are swapped
// atomically on reload.
type Handler struct {
	mu     sync.RWMutex
	net    *network.Network
	router config.RouterConf

	rec  *metrics.Recorder
	mux  *http.ServeMux
	wrap http.Handler
}

// New creates the handler and registers all routes. net may be nil until
// the first SwapNetwork; route queries answer 503 meanwhile.
func New(net *network.Network, router config.RouterConf, rec *metrics.Recorder, gatherer prometheus.Gatherer) *Handler {
	h := &Handler{rec: rec, mux: http.NewServeMux()}
	if net != nil {
		h.SwapNetwork(net, router)
	} else {
		h.router = router
	}

	h.mux.HandleFunc("GET /v1/route", h.route)
	h.mux.HandleFunc("GET /v1/network", h.networkInfo)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.HandleFunc("GET /readyz", h.readyz)
	h.mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	h.wrap = loggingMiddleware(h.mux)

	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.wrap.ServeHTTP(w, r)
}

// SwapNetwork replaces the served network and router settings.
func (h *Handler) SwapNetwork(net *network.Network, router config.RouterConf) {
	h.mu.Lock()
	h.net = net
	h.router = router
	h.mu.Unlock()
	h.rec.SetNetwork(net)
}

func (h *Handler) current() (*network.Network, config.RouterConf) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.net, h.router
}

// GET /v1/route?src=&dst=&variant=: one shortest-path query.
func (h *Handler) route(w http.ResponseWriter, r *http.Request) {
	net, router := h.current()
	if net == nil {
		writeError(w, r, http.StatusServiceUnavailable, "no network loaded")
		return
	}

	q := r.URL.Query()
	src, err := intParam(q.Get("src"), "src")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	dst, err := intParam(q.Get("dst"), "dst")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	variant := router.DefaultVariant
	if name := q.Get("variant"); name != "" {
		if variant, err = pq.ParseVariant(name); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}
	if !net.Has(dst) {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("dst %d out of range [0,%d)", dst, net.Len()))
		return
	}

	ctx := r.Context()
	if d := router.QueryTimeout(); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	opts := append(router.Options(), dijkstra.WithVariant(variant), dijkstra.WithContext(ctx))
	tree, err := dijkstra.Run(net, src, opts...)
	if err != nil {
		writeError(w, r, statusFor(err), err.Error())
		return
	}
	h.rec.ObserveTree(tree)

	p, err := tree.ShortestPath(dst)
	if err != nil {
		writeError(w, r, statusFor(err), err.Error())
		return
	}
	h.rec.ObservePath(p)

	writeJSON(w, http.StatusOK, newRouteResponse(requestID(r.Context()), tree, dst, p))
}

// GET /v1/network: size of the loaded network.
func (h *Handler) networkInfo(w http.ResponseWriter, r *http.Request) {
	net, router := h.current()
	if net == nil {
		writeError(w, r, http.StatusServiceUnavailable, "no network loaded")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"nodes":           net.Len(),
		"edges":           net.EdgeCount(),
		"default_variant": router.DefaultVariant.String(),
	})
}

// GET /healthz: always 200 (liveness probe).
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /readyz: 503 until a network is loaded.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	if net, _ := h.current(); net == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "no network"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func intParam(raw, name string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %q", name, raw)
	}

	return v, nil
}

// statusFor maps query errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, dijkstra.ErrInvalidIndex), errors.Is(err, pq.ErrUnknownVariant):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
