package sand

import (
	"fmt"
	"log"

	"mad-sand/internal/core"
)

// Neighbor is a Moore-neighborhood cell tagged with its offset from the
// cursor.
type Neighbor struct {
	Cell   Cell
	DX, DY int
}

// neighborOffsets is the fixed order Neighbors reports offsets in.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {-1, 0}, {-1, 1},
	{1, -1}, {1, 1}, {0, 1}, {1, 0},
}

// World owns the cell grid, the clone registry and the cursor rule code
// addresses cells through.
type World struct {
	cfg Config

	grid  *core.Grid[Cell]
	clone *Registry

	x, y   int
	paused bool
	ticks  uint64

	// phaseHeat is the cursor cell's heat before this tick's ambient bias.
	// Phase changes test it so a cell forced to a threshold converts on the
	// next tick even when isolated.
	phaseHeat int32

	rng     core.Rand
	seeded  *core.RNG
	display []uint8
}

// New builds a world from cfg. It fails when the dimensions are unusable or
// the border ring cannot be stamped.
func New(cfg Config) (*World, error) {
	grid, err := core.NewGrid(cfg.Width, cfg.Height, Empty)
	if err != nil {
		return nil, fmt.Errorf("sand: %w", err)
	}
	seeded := core.NewRNG(cfg.Seed)
	w := &World{
		cfg:     cfg,
		grid:    grid,
		clone:   NewRegistry(DefaultRegistryCapacity),
		rng:     seeded,
		seeded:  seeded,
		display: make([]uint8, cfg.Width*cfg.Height),
	}
	if err := w.stampBorder(); err != nil {
		return nil, fmt.Errorf("sand: stamp border: %w", err)
	}
	return w, nil
}

// NewWithRand builds a world whose rules draw from r instead of the seeded
// generator.
func NewWithRand(cfg Config, r core.Rand) (*World, error) {
	w, err := New(cfg)
	if err != nil {
		return nil, err
	}
	w.SetRand(r)
	return w, nil
}

// SetRand replaces the randomness source. A nil r restores the seeded one.
func (w *World) SetRand(r core.Rand) {
	if r == nil {
		r = w.seeded
	}
	w.rng = r
}

func (w *World) stampBorder() error {
	if !w.cfg.Borders {
		return nil
	}
	border := NewCell(Plain(KindBorder), 0)
	for y := 0; y < w.grid.H; y++ {
		if err := w.grid.Put(0, y, border); err != nil {
			return err
		}
		if err := w.grid.Put(w.grid.W-1, y, border); err != nil {
			return err
		}
	}
	for x := 0; x < w.grid.W; x++ {
		if err := w.grid.Put(x, 0, border); err != nil {
			return err
		}
		if err := w.grid.Put(x, w.grid.H-1, border); err != nil {
			return err
		}
	}
	return nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Ticks returns the number of completed, unpaused steps.
func (w *World) Ticks() uint64 { return w.ticks }

// Registry exposes the clone registry for inspection.
func (w *World) Registry() *Registry { return w.clone }

// Reset clears the grid to Empty, restamps the border and drops every clone
// registration. A non-zero seed also reseeds the generator.
func (w *World) Reset(seed int64) {
	if seed != 0 {
		w.seeded.Reseed(seed)
	}
	w.grid.ResetMap()
	w.clone.Clear()
	w.x, w.y = 0, 0
	w.ticks = 0
	if err := w.stampBorder(); err != nil {
		log.Printf("sand: reset: %v", err)
	}
}

// TogglePause flips the paused state.
func (w *World) TogglePause() { w.paused = !w.paused }

// Paused reports whether Step is currently a no-op.
func (w *World) Paused() bool { return w.paused }

// SetCursor fixes the coordinate relative accessors resolve against.
func (w *World) SetCursor(x, y int) {
	w.x, w.y = x, y
}

// Cursor returns the active coordinate.
func (w *World) Cursor() (int, int) { return w.x, w.y }

// Get reads the cell at cursor+(dx, dy), clamped into the grid.
func (w *World) Get(dx, dy int) Cell {
	return w.grid.Retrieve(w.x+dx, w.y+dy)
}

// Set writes the cell at cursor+(dx, dy). Out-of-range targets and Border
// cells are left untouched.
func (w *World) Set(dx, dy int, c Cell) {
	w.SetAbsolute(w.x+dx, w.y+dy, c)
}

// GetAbsolute reads the cell at (x, y), clamped into the grid.
func (w *World) GetAbsolute(x, y int) Cell {
	return w.grid.Retrieve(x, y)
}

// SetAbsolute writes the cell at (x, y). Out-of-range targets and Border
// cells are left untouched.
func (w *World) SetAbsolute(x, y int, c Cell) {
	if !w.grid.InBounds(x, y) {
		return
	}
	if w.grid.Retrieve(x, y).Kind() == KindBorder {
		return
	}
	w.grid.Set(x, y, c)
}

// IsEmpty reports whether cursor+(dx, dy) holds Empty.
func (w *World) IsEmpty(dx, dy int) bool {
	return w.Get(dx, dy).IsEmpty()
}

// Swap moves c into cursor+(dx, dy) and whatever was there into the cursor
// slot. Grid values have no identity, so this is how matter moves. Border
// cells never take part in a swap.
func (w *World) Swap(dx, dy int, c Cell) {
	other := w.Get(dx, dy)
	if other.Kind() == KindBorder {
		return
	}
	w.Set(0, 0, other)
	w.Set(dx, dy, c)
}

// Neighbors returns the eight Moore neighbors of the cursor.
func (w *World) Neighbors() [8]Neighbor {
	var out [8]Neighbor
	for i, off := range neighborOffsets {
		out[i] = Neighbor{Cell: w.Get(off[0], off[1]), DX: off[0], DY: off[1]}
	}
	return out
}

// GetCell reads the cell at absolute (x, y).
func (w *World) GetCell(x, y int) Cell { return w.GetAbsolute(x, y) }

// SetCell writes c at absolute (x, y) for painting and erasing. Border cells
// never change.
func (w *World) SetCell(x, y int, c Cell) { w.SetAbsolute(x, y, c) }

// NeighborsOf returns the Moore neighbors of (x, y) without moving the
// cursor.
func (w *World) NeighborsOf(x, y int) [8]Neighbor {
	var out [8]Neighbor
	for i, off := range neighborOffsets {
		out[i] = Neighbor{Cell: w.grid.Retrieve(x+off[0], y+off[1]), DX: off[0], DY: off[1]}
	}
	return out
}

// StoreClonedSpecies registers s in the clone registry.
func (w *World) StoreClonedSpecies(s Species) (uint16, bool) {
	return w.clone.Insert(s)
}

// ResolveClonedSpecies looks up a clone registration.
func (w *World) ResolveClonedSpecies(id uint16) (Species, bool) {
	return w.clone.Get(id)
}

func (w *World) chance(p float64) bool {
	return w.rng.Float64() < p
}

// pick returns one of the options at random.
func (w *World) pick(options ...int) int {
	return options[w.rng.IntN(len(options))]
}

func (w *World) shuffledNeighbors() [8]Neighbor {
	n := w.Neighbors()
	for i := len(n) - 1; i > 0; i-- {
		j := w.rng.IntN(i + 1)
		n[i], n[j] = n[j], n[i]
	}
	return n
}
