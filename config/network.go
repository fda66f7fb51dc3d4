package config

import (
	"fmt"

	"github.com/katalvlaran/netroute/dijkstra"
	"github.com/katalvlaran/netroute/network"
)

// Network builds the network the current config describes.
func (l *Loader) Network() (*network.Network, error) {
	return BuildNetwork(l.Config().Network, l.Dir())
}

// BuildNetwork loads or generates the network described by nc. Relative
// file paths resolve against baseDir.
func BuildNetwork(nc NetworkConf, baseDir string) (*network.Network, error) {
	switch {
	case nc.File != "":
		return network.LoadFile(resolvePath(baseDir, nc.File))
	case nc.Random != nil:
		r := nc.Random
		opts := []network.RandomOption{network.WithSeed(r.Seed)}
		if r.Degree > 0 {
			opts = append(opts, network.WithDegree(r.Degree))
		}
		if r.Extent > 0 {
			opts = append(opts, network.WithExtent(r.Extent))
		}
		return network.Random(r.Nodes, opts...)
	default:
		return nil, fmt.Errorf("%w: network source missing", ErrInvalidConfig)
	}
}

// Options converts the router limits to dijkstra options.
func (r RouterConf) Options() []dijkstra.Option {
	var opts []dijkstra.Option
	if r.MaxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(r.MaxDistance))
	}
	if r.InfEdgeThreshold > 0 {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(r.InfEdgeThreshold))
	}

	return opts
}
