package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is a named world the GUI and headless tools step one tick at a time.
// Cells reports one kind code per cell in row-major order.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory builds a Sim from flag-style options such as "w", "h", "borders"
// and "params". A returned error means the world could not be constructed
// and callers abort.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register makes a world available under name, normally from a package
// init. Empty names and nil factories are ignored.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims returns the registered factories keyed by name.
func Sims() map[string]Factory {
	return sims
}
