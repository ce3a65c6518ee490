package core

import "fmt"

// Grid stores a fixed-size 2D array of values in row-major order.
//
// Reads clamp out-of-range coordinates onto the nearest edge, so lookups
// behave as if the grid extended forever past its boundary cells. Lenient
// writes outside the grid are dropped. Put is the strict variant used where a
// miss must be reported.
type Grid[T any] struct {
	W, H int
	data []T
	def  T
}

// NewGrid allocates a w*h grid filled with def. Non-positive dimensions are
// rejected with ErrOutOfRange.
func NewGrid[T any](w, h int, def T) (*Grid[T], error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: grid size %dx%d", ErrOutOfRange, w, h)
	}
	g := &Grid[T]{W: w, H: h, data: make([]T, w*h), def: def}
	g.ResetMap()
	return g, nil
}

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Clamp moves (x, y) onto the nearest in-bounds coordinate.
func (g *Grid[T]) Clamp(x, y int) (int, int) {
	return clampInt(x, 0, g.W-1), clampInt(y, 0, g.H-1)
}

// Retrieve returns the value at the clamped coordinate. It never fails.
func (g *Grid[T]) Retrieve(x, y int) T {
	x, y = g.Clamp(x, y)
	return g.data[g.Index(x, y)]
}

// Set writes v at (x, y). Out-of-range writes are silently ignored.
func (g *Grid[T]) Set(x, y int, v T) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[g.Index(x, y)] = v
}

// Put writes v at (x, y) and reports ErrOutOfRange when the coordinate
// misses the grid.
func (g *Grid[T]) Put(x, y int, v T) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, x, y, g.W, g.H)
	}
	g.data[g.Index(x, y)] = v
	return nil
}

// ResetPoint restores the construction-time default at (x, y).
func (g *Grid[T]) ResetPoint(x, y int) {
	g.Set(x, y, g.def)
}

// ResetMap fills the grid with the construction-time default.
func (g *Grid[T]) ResetMap() {
	for i := range g.data {
		g.data[i] = g.def
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
