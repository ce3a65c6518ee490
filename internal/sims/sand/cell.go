package sand

// Heat thresholds and quanta. Heat is an abstract signed unit.
const (
	AmbientHeat  int32 = 20
	LavaHeat     int32 = 2000
	FireHeat     int32 = 1000
	BlueFireHeat int32 = 3000
	IceHeat      int32 = -30
	SteamHeat    int32 = 150

	FireIgnition     int32 = 800
	BlueFireIgnition int32 = 3000
	FireFloor        int32 = 300
	BlueFireFloor    int32 = 2000
	FireMoveLoss     int32 = 40
	FireRadiate      int32 = 15

	BoilPoint      int32 = 100
	SaltBoilPoint  int32 = 101
	CondensePoint  int32 = 90
	FreezePoint    int32 = 0
	SolidifyPoint  int32 = 800
	MeltPoint      int32 = 1600
	MudDryPoint    int32 = 60
	SteamCoolStep  int32 = 10
	LavaRadiate    int32 = 5
	HeatMargin     int32 = 10
	HeatQuantum    int32 = 10
	IsolatedCool   int32 = 3
	AmbientWarming int32 = 1
)

// MaxWetness caps the water a Mud cell holds.
const MaxWetness uint8 = 2

// MaxWaterGrassHeight caps water grass growth.
const MaxWaterGrassHeight uint8 = 5

// Cell is one grid slot. Value equality covers every field, grain included.
type Cell struct {
	Species Species
	Heat    int32
	// Clock marks a cell already processed during the current tick.
	Clock bool
	// Grain is a stable per-cell seed for render texture.
	Grain uint8
}

// Empty is the construction-time default cell.
var Empty = Cell{}

// NewCell returns a fresh cell of s at its starting heat.
func NewCell(s Species, grain uint8) Cell {
	return Cell{Species: s, Heat: s.StartingHeat(), Grain: grain}
}

// Become returns c turned into s in place: heat, clock and grain survive.
func (c Cell) Become(s Species) Cell {
	c.Species = s
	return c
}

// Spawn returns a new clocked cell of s carrying c's grain, for material a
// rule creates in another slot.
func (c Cell) Spawn(s Species) Cell {
	n := NewCell(s, c.Grain)
	n.Clock = true
	return n
}

// Kind is shorthand for c.Species.Kind.
func (c Cell) Kind() Kind { return c.Species.Kind }

// IsEmpty reports an Empty cell regardless of heat or grain.
func (c Cell) IsEmpty() bool { return c.Species.IsEmpty() }
