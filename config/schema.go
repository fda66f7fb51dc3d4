// Package config loads the netroute service configuration from YAML and
// hot-reloads it when the file, or the network file it points to, changes.
package config

import (
	"time"

	"github.com/katalvlaran/netroute/pq"
)

// Config is the top-level YAML structure.
type Config struct {
	Version string      `yaml:"version"`
	Network NetworkConf `yaml:"network"`
	Router  RouterConf  `yaml:"router"`
	Server  ServerConf  `yaml:"server"`
}

// NetworkConf selects where the network comes from: exactly one of File or
// Random must be set.
type NetworkConf struct {
	// File is a YAML network document. Relative paths resolve against the
	// directory of the config file.
	File   string      `yaml:"file,omitempty"`
	Random *RandomConf `yaml:"random,omitempty"`
}

// RandomConf describes a generated network.
type RandomConf struct {
	Nodes  int     `yaml:"nodes"`
	Degree int     `yaml:"degree"`
	Seed   int64   `yaml:"seed"`
	Extent float64 `yaml:"extent"`
}

// RouterConf holds query defaults.
type RouterConf struct {
	DefaultVariant   pq.Variant `yaml:"default_variant"`
	MaxDistance      float64    `yaml:"max_distance"`       // 0 = unlimited
	InfEdgeThreshold float64    `yaml:"inf_edge_threshold"` // 0 = none
	QueryTimeoutMs   int        `yaml:"query_timeout_ms"`
}

// QueryTimeout returns the per-query deadline.
func (r RouterConf) QueryTimeout() time.Duration {
	return time.Duration(r.QueryTimeoutMs) * time.Millisecond
}

// ServerConf holds HTTP settings.
type ServerConf struct {
	Addr           string `yaml:"addr"`
	ReadTimeoutMs  int    `yaml:"read_timeout_ms"`
	WriteTimeoutMs int    `yaml:"write_timeout_ms"`
}
