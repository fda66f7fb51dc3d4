package api

import (
	"encoding/json"
	"net/http"

	"github.com/katalvlaran/netroute/dijkstra"
	"github.com/katalvlaran/netroute/network"
)

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the standard error envelope.
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, RequestID: requestID(r.Context())})
}

// pointJSON is a network.Point on the wire.
type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func toPoint(p network.Point) pointJSON { return pointJSON{X: p.X, Y: p.Y} }

// hopJSON is one path edge on the wire.
type hopJSON struct {
	FromID int       `json:"from_id"`
	ToID   int       `json:"to_id"`
	From   pointJSON `json:"from"`
	To     pointJSON `json:"to"`
	Length float64   `json:"length"`
	Label  string    `json:"label"`
}

// RouteResponse is the body of GET /v1/route. Cost is null when the
// destination is unreachable, since JSON has no infinity.
type RouteResponse struct {
	RequestID string    `json:"request_id"`
	Source    int       `json:"source"`
	Dest      int       `json:"dest"`
	Variant   string    `json:"variant"`
	Reachable bool      `json:"reachable"`
	Cost      *float64  `json:"cost"`
	ElapsedMs float64   `json:"elapsed_ms"`
	Extracted int       `json:"extracted"`
	Path      []hopJSON `json:"path"`
}

func newRouteResponse(id string, tree *dijkstra.Tree, dest int, p dijkstra.Path) RouteResponse {
	resp := RouteResponse{
		RequestID: id,
		Source:    tree.Source(),
		Dest:      dest,
		Variant:   tree.Variant().String(),
		Reachable: p.Reachable(),
		ElapsedMs: float64(tree.Stats().Elapsed.Microseconds()) / 1000,
		Extracted: tree.Stats().Extracted,
		Path:      make([]hopJSON, 0, len(p.Hops)),
	}
	if resp.Reachable {
		cost := p.Cost
		resp.Cost = &cost
	}
	for _, h := range p.Hops {
		resp.Path = append(resp.Path, hopJSON{
			FromID: h.FromID,
			ToID:   h.ToID,
			From:   toPoint(h.From),
			To:     toPoint(h.To),
			Length: h.Length,
			Label:  h.Label(),
		})
	}

	return resp
}
