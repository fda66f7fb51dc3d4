package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks the config for:
//   - a version
//   - exactly one network source, with sane random parameters
//   - a known default variant and non-negative router limits
func Validate(cfg *Config) error {
	var errs []string
	if cfg.Version == "" {
		errs = append(errs, "version is required")
	}

	nc := cfg.Network
	switch {
	case nc.File == "" && nc.Random == nil:
		errs = append(errs, "network: one of file/random must be set")
	case nc.File != "" && nc.Random != nil:
		errs = append(errs, "network: only one of file/random may be set")
	case nc.Random != nil:
		if nc.Random.Nodes < 1 {
			errs = append(errs, fmt.Sprintf("network.random.nodes must be ≥ 1, got %d", nc.Random.Nodes))
		}
		if nc.Random.Degree < 0 {
			errs = append(errs, fmt.Sprintf("network.random.degree must be ≥ 0, got %d", nc.Random.Degree))
		}
		if nc.Random.Extent < 0 {
			errs = append(errs, fmt.Sprintf("network.random.extent must be ≥ 0, got %g", nc.Random.Extent))
		}
	}

	rc := cfg.Router
	if !rc.DefaultVariant.Valid() {
		errs = append(errs, fmt.Sprintf("router.default_variant %s is unknown", rc.DefaultVariant))
	}
	if rc.MaxDistance < 0 {
		errs = append(errs, "router.max_distance must be ≥ 0")
	}
	if rc.InfEdgeThreshold < 0 {
		errs = append(errs, "router.inf_edge_threshold must be ≥ 0")
	}
	if rc.QueryTimeoutMs < 0 {
		errs = append(errs, "router.query_timeout_ms must be ≥ 0")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}

	return nil
}
