package app

import (
	"flag"
	"strconv"
)

// Config holds the command-line options of the GUI.
type Config struct {
	Sim     string
	Width   int
	Height  int
	Borders bool
	Scale   int
	TPS     int
	Seed    int64
	Params  string
	HUD     int
}

// NewConfig returns the defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "sand",
		Width:   250,
		Height:  175,
		Borders: true,
		Scale:   4,
		TPS:     60,
		Seed:    1337,
		HUD:     260,
	}
}

// Bind registers every option on fs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.BoolVar(&c.Borders, "borders", c.Borders, "stamp a permanent border ring")
	fs.IntVar(&c.Scale, "scale", c.Scale, "screen pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.StringVar(&c.Params, "params", c.Params, "YAML file of rule probabilities")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels, 0 to hide")
}

// SimOptions converts the options into the key/value map sim factories read.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"borders": strconv.FormatBool(c.Borders),
		"seed":    strconv.FormatInt(c.Seed, 10),
	}
	if c.Params != "" {
		opts["params"] = c.Params
	}
	return opts
}
