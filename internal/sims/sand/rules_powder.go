package sand

// updatePowder lets granular matter fall: two cells straight down through
// empty space, otherwise one cell down or diagonally into any fluid.
func (w *World) updatePowder(cell Cell) {
	if w.chance(w.cfg.Params.PowderSkipChance) {
		return
	}
	dx := w.pick(1, 0, -1)
	if w.IsEmpty(0, 1) && w.IsEmpty(0, 2) {
		w.Swap(0, 2, cell)
		return
	}
	if w.Get(0, 1).Species.IsFluid() {
		w.Swap(0, 1, cell)
		return
	}
	if w.Get(dx, 1).Species.IsFluid() {
		w.Swap(dx, 1, cell)
	}
}

// updateCoarse is the restricted fall shared by non-powder solids: drop one
// cell when the space below holds a fluid.
func (w *World) updateCoarse(cell Cell) bool {
	if w.Get(0, 1).Species.IsFluid() {
		w.Swap(0, 1, cell)
		return true
	}
	return false
}

func (w *World) updateSand(cell Cell) {
	for _, n := range w.Neighbors() {
		if n.Cell.Kind() != KindWater || n.DY >= 0 {
			continue
		}
		if w.chance(w.cfg.Params.SandAbsorbChance) {
			w.Set(n.DX, n.DY, Empty)
			w.Set(0, 0, cell.Become(Mud(0)))
			return
		}
	}
	w.updatePowder(cell)
}

func (w *World) updateSalt(cell Cell) {
	for _, n := range w.shuffledNeighbors() {
		if n.Cell.Kind() == KindWater && w.chance(w.cfg.Params.SaltDissolveChance) {
			w.Set(n.DX, n.DY, Empty)
			w.Set(0, 0, cell.Become(Plain(KindSaltWater)))
			return
		}
	}
	w.updatePowder(cell)
}
