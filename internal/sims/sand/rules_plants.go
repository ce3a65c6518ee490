package sand

func (w *World) rooted() bool {
	switch w.Get(0, 1).Kind() {
	case KindSoil, KindGrass:
		return true
	}
	return false
}

func (w *World) updateGrass(cell Cell) {
	p := w.cfg.Params
	if !w.rooted() {
		if w.chance(p.GrassDieChance) {
			w.Set(0, 0, Empty)
			return
		}
		w.updateCoarse(cell)
		return
	}
	if w.IsEmpty(0, -1) {
		if w.chance(p.GrassTipChance) {
			w.Set(0, -1, cell.Spawn(Plain(KindGrassTip)))
		} else {
			w.Set(0, -1, cell.Spawn(Plain(KindGrass)))
		}
	}
}

func (w *World) updateGrassTip(cell Cell) {
	p := w.cfg.Params
	if !w.rooted() {
		if w.chance(p.TipWitherChance) {
			if w.chance(0.5) {
				w.Set(0, 0, cell.Become(Plain(KindGrass)))
			} else {
				w.Set(0, 0, Empty)
			}
			return
		}
		w.updateCoarse(cell)
		return
	}
	if w.chance(p.BloomChance) {
		w.Set(0, 0, cell.Become(Flower(FlowerColor(w.rng.IntN(int(flowerColorCount))))))
	}
}

func (w *World) updateFlower(cell Cell) {
	if w.Get(0, 1).Kind() == KindGrass &&
		w.IsEmpty(1, -1) && w.IsEmpty(0, -1) && w.IsEmpty(-1, -1) && w.IsEmpty(0, -2) {
		w.Set(1, -1, cell.Spawn(cell.Species))
		w.Set(-1, -1, cell.Spawn(cell.Species))
		w.Set(0, -2, cell.Spawn(cell.Species))
	}
	for _, dx := range [...]int{-1, 1} {
		if w.Get(dx, 1).Species == cell.Species {
			return
		}
	}
	w.updateCoarse(cell)
}

func (w *World) updateWaterGrass(cell Cell) {
	p := w.cfg.Params
	neighbors := w.Neighbors()

	water, open := false, false
	for _, n := range neighbors {
		switch n.Cell.Kind() {
		case KindWater:
			water = true
		case KindEmpty:
			open = true
		}
	}
	if !water && w.chance(p.WaterGrassRotChance) {
		w.Set(0, 0, cell.Become(Mud(0)))
		return
	}
	if open && w.chance(p.WaterGrassRotChance) {
		w.Set(0, 0, cell.Become(Plain(KindWater)))
		return
	}

	anchored := true
	for _, n := range neighbors {
		if n.DY <= 0 {
			continue
		}
		if k := n.Cell.Kind(); k != KindWaterGrass && k != KindMud {
			anchored = false
			break
		}
	}
	if !anchored && w.updateCoarse(cell) {
		return
	}

	for _, o := range [...]offset{{-1, 0}, {1, 0}, {-1, -1}, {1, -1}} {
		if w.Get(o.dx, o.dy).Kind() != KindWater {
			return
		}
	}
	height := cell.Species.Height
	if height >= MaxWaterGrassHeight {
		return
	}
	grown := cell.Become(WaterGrass(height + 1))
	w.Set(0, 0, grown)
	switch w.pick(-1, 1, 0) {
	case -1:
		w.Set(-1, -1, grown.Spawn(grown.Species))
	case 1:
		w.Set(1, -1, grown.Spawn(grown.Species))
	default:
		w.Set(-1, -1, grown.Spawn(grown.Species))
		w.Set(1, -1, grown.Spawn(grown.Species))
	}
}
