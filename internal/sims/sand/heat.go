package sand

// updateHeat exchanges heat between the cursor cell and its neighbors and
// biases it toward its species' starting heat. It runs before the species
// rule, on every occupied cell except clones, and returns the heat the cell
// had after the exchange but before the ambient bias.
func (w *World) updateHeat() int32 {
	cell := w.Get(0, 0)
	switch cell.Kind() {
	case KindEmpty, KindBorder, KindClone:
		return cell.Heat
	}

	if cell.Species.Flammable() {
		switch {
		case cell.Heat >= BlueFireIgnition:
			cell.Species = Plain(KindBlueFire)
		case cell.Heat >= FireIgnition:
			cell.Species = Plain(KindFire)
		}
	}

	isolated := true
	for _, n := range w.Neighbors() {
		other := n.Cell
		if other.IsEmpty() || other.Kind() == KindBorder {
			continue
		}
		isolated = false
		changed := false
		if cell.Heat > other.Heat+HeatMargin {
			cell.Heat -= HeatQuantum
			other.Heat += HeatQuantum
			changed = true
		} else if cell.Heat == other.Heat && w.chance(w.cfg.Params.HeatNoiseChance) {
			cell.Heat--
			other.Heat--
			changed = true
		}
		if changed {
			w.Set(n.DX, n.DY, other)
		}
	}

	exchanged := cell.Heat
	ambient := cell.Species.StartingHeat()
	if isolated && cell.Heat > ambient {
		cell.Heat = max(cell.Heat-IsolatedCool, ambient)
	}
	if cell.Heat < ambient {
		cell.Heat += AmbientWarming
	}
	w.Set(0, 0, cell)
	return exchanged
}
