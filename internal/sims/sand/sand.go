// Package sand implements a falling-sand world: a grid of material cells
// updated in place by per-species rules and a simple heat model.
package sand

import (
	"fmt"
	"strconv"

	"mad-sand/internal/core"
)

func init() {
	core.Register("sand", newFromMap)
}

// newFromMap builds a world from flag-style options. The "params" key names a
// YAML file whose rule chances are applied before any per-key overrides.
func newFromMap(opts map[string]string) (core.Sim, error) {
	cfg := FromMap(opts)
	if path := opts["params"]; path != "" {
		if err := LoadParams(path, &cfg.Params); err != nil {
			return nil, fmt.Errorf("sand: %w", err)
		}
		for _, f := range paramFields {
			if v, err := strconv.ParseFloat(opts[f.key], 64); err == nil {
				cfg.Params.Set(f.key, v)
			}
		}
	}
	return New(cfg)
}
