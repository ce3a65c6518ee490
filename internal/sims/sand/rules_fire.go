package sand

func (w *World) updateFire(cell Cell) {
	p := w.cfg.Params
	if cell.Heat < FireFloor {
		w.Set(0, 0, Empty)
		return
	}
	if cell.Kind() == KindBlueFire && cell.Heat < BlueFireFloor {
		cell = cell.Become(Plain(KindFire))
		w.Set(0, 0, cell)
	}

	if w.Get(0, -1).Species.Douses() {
		w.Set(0, 0, Empty)
		return
	}

	for dx := -1; dx <= 1; dx++ {
		above := w.Get(dx, -1)
		if above.IsEmpty() || above.Kind() == KindBorder {
			continue
		}
		above.Heat += FireRadiate
		w.Set(dx, -1, above)
	}

	smothered := false
	for _, n := range w.Neighbors() {
		switch {
		case n.Cell.Species.Flammable():
			if w.chance(p.FireSpreadChance) {
				flame := NewCell(Plain(KindFire), n.Cell.Grain)
				flame.Heat = max(FireHeat, n.Cell.Heat)
				flame.Clock = true
				w.Set(n.DX, n.DY, flame)
			}
		case n.Cell.Species.Solid():
			smothered = true
		}
	}
	if smothered && w.chance(p.FireSmotherChance) {
		w.Set(0, 0, Empty)
		return
	}

	dx := w.pick(-1, 0, 1)
	switch {
	case w.IsEmpty(dx, -1):
		cell.Heat -= FireMoveLoss
		w.Swap(dx, -1, cell)
	case w.IsEmpty(dx, 0) && dx != 0:
		cell.Heat -= FireMoveLoss
		w.Swap(dx, 0, cell)
	}
}
