package core

import "errors"

// ErrOutOfRange reports an access outside a grid. Steady-state simulation
// never produces it: reads clamp and lenient writes are dropped.
var ErrOutOfRange = errors.New("coordinate out of range")
