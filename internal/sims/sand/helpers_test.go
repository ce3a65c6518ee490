package sand

import (
	"testing"

	"mad-sand/internal/core"
)

// newTestWorld builds a bordered w×h world whose rules draw from seq.
func newTestWorld(t *testing.T, w, h int, seq *core.Sequence) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	world, err := NewWithRand(cfg, seq)
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	return world
}

func place(w *World, x, y int, s Species) {
	w.SetCell(x, y, NewCell(s, 0))
}

func placeHot(w *World, x, y int, s Species, heat int32) {
	c := NewCell(s, 0)
	c.Heat = heat
	w.SetCell(x, y, c)
}

func kindAt(w *World, x, y int) Kind { return w.GetCell(x, y).Kind() }
