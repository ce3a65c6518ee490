package sand

import "mad-sand/internal/core"

// offset is a displacement relative to the cursor.
type offset struct{ dx, dy int }

// goToward moves cell as far as it can along the rasterized path toward
// (tx, ty), stopping at the first occupied point.
func (w *World) goToward(tx, ty int, cell Cell) (offset, bool) {
	path := core.Line(0, 0, tx, ty)
	var dest offset
	moved := false
	for _, p := range path[1:] {
		if !w.IsEmpty(p.X, p.Y) {
			break
		}
		dest = offset{p.X, p.Y}
		moved = true
	}
	if moved {
		w.Swap(dest.dx, dest.dy, cell)
	}
	return dest, moved
}

func (w *World) canFlowInto(dx, dy int) bool {
	s := w.Get(dx, dy).Species
	return s.IsEmpty() || s.IsGas()
}

// updateLiquid runs the shared liquid motion and returns where the cell
// ended up relative to where it started.
func (w *World) updateLiquid(cell Cell) offset {
	dx := w.pick(1, 0, -1)

	neighbors := w.Neighbors()
	if n := neighbors[w.rng.IntN(len(neighbors))]; n.Cell.Species.LiquidDestroyable() && n.DY <= 0 {
		w.Set(n.DX, n.DY, Empty)
	}

	// Ride along the underside of an overhang before trying to fall.
	if above := w.Get(0, -1); !above.Species.IsFluid() && above.Kind() != KindBorder {
		side := dx
		if side == 0 {
			side = w.pick(1, -1)
		}
		if to, ok := w.goToward(side*2, 0, cell); ok {
			return to
		}
	}

	if to, ok := w.goToward(dx, 2, cell); ok {
		return to
	}

	for _, o := range [...]offset{{0, 1}, {dx, 1}, {dx, 0}, {-dx, 1}, {-dx, 0}} {
		if o == (offset{}) {
			continue
		}
		if w.canFlowInto(o.dx, o.dy) {
			w.Swap(o.dx, o.dy, cell)
			return o
		}
	}

	if w.chance(w.cfg.Params.LiquidMixChance) {
		for _, n := range w.shuffledNeighbors() {
			if n.Cell.Species.IsLiquid() && n.Cell.Kind() != cell.Kind() {
				w.Swap(n.DX, n.DY, cell)
				return offset{n.DX, n.DY}
			}
		}
	}
	return offset{}
}

func (w *World) updateWater(cell Cell) {
	switch {
	case w.phaseHeat >= BoilPoint:
		w.Set(0, 0, cell.Become(Plain(KindSteam)))
		return
	case w.phaseHeat < FreezePoint:
		w.Set(0, 0, cell.Become(Plain(KindIce)))
		return
	}
	w.updateLiquid(cell)
}

func (w *World) updateSaltWater(cell Cell) {
	if w.phaseHeat >= SaltBoilPoint {
		if w.IsEmpty(0, -1) {
			w.Set(0, -1, cell.Spawn(Plain(KindSteam)))
		}
		w.Set(0, 0, cell.Become(Plain(KindSalt)))
		return
	}
	w.updateLiquid(cell)
}

func (w *World) updateAcid(cell Cell) {
	to := w.updateLiquid(cell)
	w.SetCursor(w.x+to.dx, w.y+to.dy)
	defer w.SetCursor(w.x-to.dx, w.y-to.dy)

	for _, n := range w.Neighbors() {
		if !n.Cell.Species.Corrodable() || !w.chance(w.cfg.Params.AcidCorrodeChance) {
			continue
		}
		w.Set(n.DX, n.DY, Empty)
		if w.chance(w.cfg.Params.AcidConsumeChance) {
			w.Set(0, 0, Empty)
			return
		}
	}
}

func (w *World) updateLava(cell Cell) {
	if cell.Heat < SolidifyPoint {
		w.Set(0, 0, cell.Become(Plain(KindStone)))
		return
	}
	for _, n := range w.Neighbors() {
		other := n.Cell
		if other.IsEmpty() || other.Kind() == KindBorder || other.Heat >= cell.Heat {
			continue
		}
		other.Heat = min(other.Heat+LavaRadiate, cell.Heat)
		cell.Heat -= LavaRadiate
		w.Set(n.DX, n.DY, other)
	}
	w.Set(0, 0, cell)

	if w.chance(w.cfg.Params.LavaPowderChance) {
		w.updatePowder(cell)
		return
	}
	w.updateLiquid(cell)
}

func (w *World) updateIce(cell Cell) {
	if w.phaseHeat > FreezePoint {
		w.Set(0, 0, cell.Become(Plain(KindWater)))
	}
}
