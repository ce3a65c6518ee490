package sand

import "mad-sand/internal/core"

// Parameters reports the world configuration and every rule chance, grouped
// the way the HUD lists them.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", w.cfg.Width),
				core.IntParam("h", "Height", w.cfg.Height),
				core.BoolParam("borders", "Borders", w.cfg.Borders),
				core.IntParam("seed", "Seed", int(w.cfg.Seed)),
				core.IntParam("clones", "Clone slots", w.clone.Live()),
			},
		},
	}
	index := make(map[string]int)
	for _, f := range paramFields {
		i, ok := index[f.group]
		if !ok {
			i = len(groups)
			index[f.group] = i
			groups = append(groups, core.ParameterGroup{Name: f.group})
		}
		groups[i].Params = append(groups[i].Params, core.FloatParam(f.key, f.label, *f.ptr(&w.cfg.Params)))
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls exposes every rule chance as a HUD control on [0, 1].
func (w *World) ParameterControls() []core.ParameterControl {
	controls := make([]core.ParameterControl, 0, len(paramFields))
	for _, f := range paramFields {
		controls = append(controls, core.ParameterControl{
			Key:    f.key,
			Label:  f.label,
			Type:   core.ParamTypeFloat,
			Step:   0.01,
			Min:    0,
			Max:    1,
			HasMin: true,
			HasMax: true,
		})
	}
	return controls
}

// SetFloatParameter updates a rule chance, clamped into [0, 1]. Unknown keys
// report false.
func (w *World) SetFloatParameter(key string, value float64) bool {
	return w.cfg.Params.Set(key, value)
}
