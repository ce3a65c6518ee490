package sand

import "strconv"

// Config controls the sand world dimensions, edges and rule parameters.
type Config struct {
	Width  int
	Height int

	// Borders stamps a permanent one-cell Border ring at construction.
	Borders bool
	// KeepEdges disables open-boundary clearing when Borders is off.
	KeepEdges bool

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   250,
		Height:  175,
		Borders: true,
		Seed:    1337,
		Params:  DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["borders"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Borders = parsed
		}
	}
	if v, ok := cfg["keep_edges"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.KeepEdges = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	for _, f := range paramFields {
		v, ok := cfg[f.key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Set(f.key, parsed)
		}
	}
	return c
}

// openEdges reports whether the outer ring is cleared every tick.
func (c Config) openEdges() bool {
	return !c.Borders && !c.KeepEdges
}
