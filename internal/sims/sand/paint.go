package sand

import "mad-sand/internal/core"

// RandomFlower returns a flower of a random petal color.
func (w *World) RandomFlower() Species {
	return Flower(FlowerColor(w.rng.IntN(int(flowerColorCount))))
}

func (w *World) grain() uint8 {
	return uint8(w.rng.IntN(256))
}

// Brush paints s onto every Empty cell within radius of (x, y). A radius of
// one or less paints the single cell. Each painted cell is regrained.
func (w *World) Brush(x, y, radius int, s Species) {
	if radius <= 1 {
		if w.grid.InBounds(x, y) && w.GetAbsolute(x, y).IsEmpty() {
			w.SetAbsolute(x, y, NewCell(s, w.grain()))
		}
		return
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			nx, ny := x+dx, y+dy
			if !w.grid.InBounds(nx, ny) || core.Distance(x, y, nx, ny) > float64(radius) {
				continue
			}
			if w.GetAbsolute(nx, ny).IsEmpty() {
				w.SetAbsolute(nx, ny, NewCell(s, w.grain()))
			}
		}
	}
}

// Erase clears every non-Border cell within radius of (x, y).
func (w *World) Erase(x, y, radius int) {
	if radius <= 1 {
		w.SetAbsolute(x, y, Empty)
		return
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			nx, ny := x+dx, y+dy
			if core.Distance(x, y, nx, ny) <= float64(radius) {
				w.SetAbsolute(nx, ny, Empty)
			}
		}
	}
}

// PaintLine brushes s along the segment from (x0, y0) to (x1, y1), so fast
// mouse drags leave no gaps.
func (w *World) PaintLine(x0, y0, x1, y1, radius int, s Species) {
	for _, p := range core.Line(x0, y0, x1, y1) {
		w.Brush(p.X, p.Y, radius, s)
	}
}

// EraseLine erases along the segment from (x0, y0) to (x1, y1).
func (w *World) EraseLine(x0, y0, x1, y1, radius int) {
	for _, p := range core.Line(x0, y0, x1, y1) {
		w.Erase(p.X, p.Y, radius)
	}
}
