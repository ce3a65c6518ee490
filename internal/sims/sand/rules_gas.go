package sand

// steamRiseChance maps steam heat onto the chance it climbs this tick: half
// the time at the condensation point, always once it is 100 units hotter.
func steamRiseChance(heat int32) float64 {
	return clamp01(0.5 + float64(heat-CondensePoint)/200)
}

func (w *World) updateSteam(cell Cell) {
	p := w.cfg.Params
	if w.phaseHeat < CondensePoint {
		w.Set(0, 0, cell.Become(Plain(KindWater)))
		return
	}
	if w.chance(p.SteamDecayChance) {
		w.Set(0, 0, Empty)
		return
	}

	dx := w.pick(-1, 0, 1)
	open := w.canFlowInto(dx, -1)
	if open && w.chance(steamRiseChance(cell.Heat)) {
		w.Swap(dx, -1, cell)
		return
	}

	if w.chance(p.SteamCoolChance) {
		cell.Heat -= SteamCoolStep
		w.Set(0, 0, cell)
	}
	// Sideways and downward diffusion only when the way up is blocked.
	if !open {
		w.updateGas(cell)
	}
}

// updateGas diffuses a gas into a random Moore neighbor that is empty or
// holds gas.
func (w *World) updateGas(cell Cell) {
	dx := w.pick(-1, 0, 1)
	dy := w.pick(-1, 0, 1)
	if dx == 0 && dy == 0 {
		return
	}
	if w.canFlowInto(dx, dy) {
		w.Swap(dx, dy, cell)
	}
}
