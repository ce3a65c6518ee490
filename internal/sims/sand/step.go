package sand

// Step advances the world by one tick. A paused world is left untouched.
//
// Rows are swept bottom to top and the horizontal direction alternates with
// row parity, so lateral movement rules get no systematic bias. Every
// coordinate gets the heat step; occupied, unclocked cells then run their
// species rule. Afterwards all clocks are cleared, unreferenced clone
// registrations are freed and, in open-boundary mode, the outer ring is
// emptied.
func (w *World) Step() {
	if w.paused {
		return
	}
	width, height := w.grid.W, w.grid.H
	for y := height - 1; y >= 0; y-- {
		if y%2 == 0 {
			for x := width - 1; x >= 0; x-- {
				w.visit(x, y)
			}
			continue
		}
		for x := 0; x < width; x++ {
			w.visit(x, y)
		}
	}

	w.resetClocks()
	w.collectClones()
	if w.cfg.openEdges() {
		w.clearEdges()
	}
	w.x, w.y = 0, 0
	w.ticks++
}

func (w *World) visit(x, y int) {
	w.SetCursor(x, y)
	w.phaseHeat = w.updateHeat()
	w.updateCell()
}

// updateCell clocks the cursor cell and dispatches to its species rule.
func (w *World) updateCell() {
	cell := w.Get(0, 0)
	if cell.Clock || cell.IsEmpty() || cell.Kind() == KindBorder {
		return
	}
	cell.Clock = true
	w.Set(0, 0, cell)

	if cell.Species.MeltsToLava() && cell.Heat > MeltPoint && w.chance(w.cfg.Params.MeltChance) {
		cell.Species = Plain(KindLava)
		w.Set(0, 0, cell)
	}

	switch cell.Kind() {
	case KindSand:
		w.updateSand(cell)
	case KindSalt:
		w.updateSalt(cell)
	case KindWater:
		w.updateWater(cell)
	case KindSaltWater:
		w.updateSaltWater(cell)
	case KindAcid:
		w.updateAcid(cell)
	case KindLava:
		w.updateLava(cell)
	case KindMud:
		w.updateMud(cell)
	case KindSoil:
		w.updateSoil(cell)
	case KindGrass:
		w.updateGrass(cell)
	case KindGrassTip:
		w.updateGrassTip(cell)
	case KindFlower:
		w.updateFlower(cell)
	case KindWaterGrass:
		w.updateWaterGrass(cell)
	case KindSteam:
		w.updateSteam(cell)
	case KindFire, KindBlueFire:
		w.updateFire(cell)
	case KindIce:
		w.updateIce(cell)
	case KindStone:
		w.updateCoarse(cell)
	case KindClone:
		w.updateClone(cell)
	case KindWall, KindEmpty, KindBorder:
	}
}

func (w *World) resetClocks() {
	cells := w.grid.Cells()
	for i := range cells {
		cells[i].Clock = false
	}
}

// collectClones frees registry slots no Clone cell references any more.
func (w *World) collectClones() {
	if w.clone.Live() == 0 {
		return
	}
	live := make([]bool, w.clone.Len())
	for _, c := range w.grid.Cells() {
		if c.Kind() != KindClone || !c.Species.Clone.Bound {
			continue
		}
		if id := int(c.Species.Clone.ID); id < len(live) {
			live[id] = true
		}
	}
	w.clone.Retain(func(id uint16) bool { return live[id] })
}

func (w *World) clearEdges() {
	width, height := w.grid.W, w.grid.H
	for y := 0; y < height; y++ {
		w.SetAbsolute(0, y, Empty)
		w.SetAbsolute(width-1, y, Empty)
	}
	for x := 0; x < width; x++ {
		w.SetAbsolute(x, 0, Empty)
		w.SetAbsolute(x, height-1, Empty)
	}
}
