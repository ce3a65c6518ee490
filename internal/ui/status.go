package ui

import (
	"fmt"
	"strings"
)

// Status is the interaction state shown at the top of the HUD panel.
type Status struct {
	Tool   string
	Radius int
	Paused bool
	TPS    int
	Ticks  uint64
	Heat   bool
}

// Lines formats the status block, one entry per HUD row.
func (s Status) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("Tool: %s  r=%d", s.Tool, s.Radius),
		fmt.Sprintf("%s  %d tps  tick %d", state, s.TPS, s.Ticks),
	}
	if s.Heat {
		lines = append(lines, "heat overlay")
	}
	return lines
}

func titleCase(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
