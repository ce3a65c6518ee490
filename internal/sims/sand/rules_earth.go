package sand

func (w *World) updateMud(cell Cell) {
	p := w.cfg.Params
	wetness := cell.Species.Wetness

	if cell.Heat > MudDryPoint {
		if wetness == 0 {
			w.Set(0, 0, cell.Become(Plain(KindSand)))
			return
		}
		cell = cell.Become(Mud(wetness - 1))
		w.Set(0, 0, cell)
		wetness--
	}

	neighbors := w.shuffledNeighbors()
	if wetness >= 1 && wetness < MaxWetness && w.chance(p.MudSoilChance) {
		open, water := false, false
		for _, n := range neighbors {
			switch n.Cell.Kind() {
			case KindEmpty, KindSoil:
				open = true
			case KindWater:
				water = true
			}
		}
		if open && !water {
			w.Set(0, 0, cell.Become(Plain(KindSoil)))
			return
		}
	}

	for _, n := range neighbors {
		if !w.chance(p.MudExchangeChance) {
			continue
		}
		wetness = cell.Species.Wetness
		switch n.Cell.Kind() {
		case KindSand:
			if wetness >= 1 && n.DY >= 0 {
				w.Set(n.DX, n.DY, n.Cell.Become(Mud(0)))
				cell = cell.Become(Mud(wetness - 1))
				w.Set(0, 0, cell)
			}
		case KindMud:
			other := n.Cell.Species.Wetness
			orthogonal := n.DX == 0 || n.DY == 0
			if other < wetness && n.DY >= 0 && orthogonal && w.chance(p.MudEqualizeChance) {
				w.Set(n.DX, n.DY, n.Cell.Become(Mud(other+1)))
				cell = cell.Become(Mud(wetness - 1))
				w.Set(0, 0, cell)
			}
		case KindWater:
			if wetness < MaxWetness {
				w.Set(n.DX, n.DY, Empty)
				cell = cell.Become(Mud(wetness + 1))
				w.Set(0, 0, cell)
				continue
			}
			if n.DY == -1 && w.Get(0, -1).Kind() == KindWater &&
				w.Get(-1, -1).Kind() != KindWaterGrass && w.Get(1, -1).Kind() != KindWaterGrass &&
				w.chance(p.WaterGrassSeedRate) {
				w.Set(0, -1, cell.Spawn(WaterGrass(0)))
			}
		case KindEmpty:
			if wetness < 1 || n.DY < 0 || !w.chance(p.MudEmitChance) {
				continue
			}
			w.Set(n.DX, n.DY, cell.Spawn(Plain(KindWater)))
			if wetness >= MaxWetness {
				cell = cell.Become(Plain(KindSoil))
				w.Set(0, 0, cell)
				return
			}
			cell = cell.Become(Mud(wetness - 1))
			w.Set(0, 0, cell)
		}
	}
	w.updateCoarse(cell)
}

func (w *World) updateSoil(cell Cell) {
	p := w.cfg.Params
	if w.updateCoarse(cell) {
		return
	}
	if w.IsEmpty(0, -1) && w.chance(p.SoilSproutChance) {
		w.Set(0, -1, cell.Spawn(Plain(KindGrass)))
	}

	absorb := w.chance(p.SoilAbsorbChance)
	halve := w.chance(p.SoilHalveChance)
	for _, n := range w.Neighbors() {
		switch n.Cell.Kind() {
		case KindWater:
			if absorb {
				w.Set(n.DX, n.DY, Empty)
				w.Set(0, 0, cell.Become(Mud(0)))
				return
			}
		case KindMud:
			wetness := n.Cell.Species.Wetness
			if wetness >= MaxWetness && halve {
				w.Set(n.DX, n.DY, n.Cell.Become(Mud(wetness/2)))
				w.Set(0, 0, cell.Become(Mud(wetness/2)))
				return
			}
		}
	}
}
