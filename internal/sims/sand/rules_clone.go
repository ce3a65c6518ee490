package sand

// updateClone binds an unbound clone to the first eligible neighbor species,
// then lets a bound clone stamp copies and bind adjacent unbound clones.
func (w *World) updateClone(cell Cell) {
	ref := cell.Species.Clone
	var stored Species
	bound := false
	if ref.Bound {
		stored, bound = w.clone.Get(ref.ID)
	}
	if !bound {
		w.bindClone(cell)
		return
	}

	cell.Heat = stored.StartingHeat()
	w.Set(0, 0, cell)

	p := w.cfg.Params
	if w.chance(p.CloneStampChance) {
		n := w.Neighbors()[w.rng.IntN(len(neighborOffsets))]
		if n.Cell.IsEmpty() {
			w.Set(n.DX, n.DY, cell.Spawn(stored))
		}
	}
	for _, n := range w.Neighbors() {
		if n.Cell.Kind() != KindClone || n.Cell.Species.Clone.Bound {
			continue
		}
		if w.chance(p.CloneSpreadChance) {
			n.Cell.Species = BoundClone(ref.ID)
			n.Cell.Clock = true
			w.Set(n.DX, n.DY, n.Cell)
		}
	}
}

func (w *World) bindClone(cell Cell) {
	for _, n := range w.Neighbors() {
		switch n.Cell.Kind() {
		case KindClone, KindEmpty, KindBorder:
			continue
		}
		id, ok := w.clone.Insert(n.Cell.Species)
		if !ok {
			return
		}
		w.Set(0, 0, cell.Become(BoundClone(id)))
		return
	}
	if cell.Species.Clone.Bound {
		w.Set(0, 0, cell.Become(Clone()))
	}
}
