package ui

import (
	"strconv"

	"mad-sand/internal/core"
)

const defaultStep = 0.05

func controlStep(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return defaultStep
	}
	return ctrl.Step
}

func clampControl(ctrl core.ParameterControl, v float64) float64 {
	if ctrl.HasMin && v < ctrl.Min {
		v = ctrl.Min
	}
	if ctrl.HasMax && v > ctrl.Max {
		v = ctrl.Max
	}
	return v
}

// formatFloat renders v with enough precision to show one step.
func formatFloat(ctrl core.ParameterControl, v float64) string {
	precision := 1
	switch step := controlStep(ctrl); {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
