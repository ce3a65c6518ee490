package app

import (
	"flag"
	"testing"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("sand", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-w", "64", "-h", "48", "-borders=false", "-scale", "2", "-tps", "30", "-seed", "9", "-params", "p.yaml", "-hud", "0"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 48 || cfg.Borders || cfg.Scale != 2 || cfg.TPS != 30 || cfg.Seed != 9 || cfg.HUD != 0 {
		t.Fatalf("unexpected config %+v", cfg)
	}

	opts := cfg.SimOptions()
	want := map[string]string{"w": "64", "h": "48", "borders": "false", "seed": "9", "params": "p.yaml"}
	for k, v := range want {
		if opts[k] != v {
			t.Fatalf("option %s: expected %q, got %q", k, v, opts[k])
		}
	}
}

func TestSimOptionsOmitsEmptyParams(t *testing.T) {
	opts := NewConfig().SimOptions()
	if _, ok := opts["params"]; ok {
		t.Fatalf("expected no params key, got %q", opts["params"])
	}
	if opts["borders"] != "true" {
		t.Fatalf("expected borders on by default, got %q", opts["borders"])
	}
}
