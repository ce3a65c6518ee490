package main

import "mad-sand/internal/sims/sand"

// paintScene lays out a mixed test bed: a soil bank with grass, a sand pile
// over a water basin, a salt heap, lava and ice on a shelf, and a clone fed
// by a wall.
func paintScene(w *sand.World) {
	size := w.Size()
	wd, ht := size.W, size.H
	floor := ht - 2

	for x := 1; x < wd/3; x++ {
		for y := floor - ht/8; y <= floor; y++ {
			w.Brush(x, y, 1, sand.Plain(sand.KindSoil))
		}
		w.Brush(x, floor-ht/8-1, 1, sand.Plain(sand.KindGrass))
	}

	w.Brush(wd/2, floor-ht/10, ht/10, sand.Plain(sand.KindWater))
	w.Brush(wd/2, ht/6, ht/12, sand.Plain(sand.KindSand))
	w.Brush(wd/3+wd/12, ht/5, ht/16, sand.Plain(sand.KindSalt))

	shelf := ht / 3
	w.PaintLine(2*wd/3, shelf, wd-2, shelf, 1, sand.Plain(sand.KindWall))
	w.Brush(3*wd/4, shelf-ht/12, ht/14, sand.Plain(sand.KindLava))
	w.Brush(wd-wd/10, shelf-ht/14, ht/18, sand.Plain(sand.KindIce))

	w.Brush(wd-4, floor-2, 1, sand.Plain(sand.KindWall))
	w.Brush(wd-5, floor-2, 1, sand.Clone())
}
