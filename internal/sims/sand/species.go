package sand

// Kind tags the material of a cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindBorder
	KindWall
	KindSand
	KindWater
	KindMud
	KindAcid
	KindSoil
	KindGrass
	KindGrassTip
	KindWaterGrass
	KindFlower
	KindSalt
	KindSaltWater
	KindSteam
	KindLava
	KindStone
	KindFire
	KindBlueFire
	KindIce
	KindClone

	kindCount
)

var kindNames = [kindCount]string{
	KindEmpty:      "empty",
	KindBorder:     "border",
	KindWall:       "wall",
	KindSand:       "sand",
	KindWater:      "water",
	KindMud:        "mud",
	KindAcid:       "acid",
	KindSoil:       "soil",
	KindGrass:      "grass",
	KindGrassTip:   "grass tip",
	KindWaterGrass: "water grass",
	KindFlower:     "flower",
	KindSalt:       "salt",
	KindSaltWater:  "salt water",
	KindSteam:      "steam",
	KindLava:       "lava",
	KindStone:      "stone",
	KindFire:       "fire",
	KindBlueFire:   "blue fire",
	KindIce:        "ice",
	KindClone:      "clone",
}

func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds lists every material kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// FlowerColor is the petal color carried by Flower cells.
type FlowerColor uint8

const (
	FlowerRed FlowerColor = iota
	FlowerBlue
	FlowerYellow
	FlowerMagenta
	FlowerWhite

	flowerColorCount
)

// CloneRef is the payload of a Clone cell. An unbound clone has Bound false.
type CloneRef struct {
	ID    uint16
	Bound bool
}

// Species is a material with its per-kind payload. Only the field belonging to
// Kind is ever non-zero, so two species compare equal with ==.
type Species struct {
	Kind Kind

	Wetness uint8       // Mud
	Height  uint8       // WaterGrass
	Color   FlowerColor // Flower
	Clone   CloneRef    // Clone
}

// Plain returns the payload-free species of kind k.
func Plain(k Kind) Species { return Species{Kind: k} }

// Mud returns a mud species with the given wetness, capped at MaxWetness.
func Mud(wetness uint8) Species {
	return Species{Kind: KindMud, Wetness: min(wetness, MaxWetness)}
}

// WaterGrass returns a water grass species of the given height.
func WaterGrass(height uint8) Species {
	return Species{Kind: KindWaterGrass, Height: height}
}

// Flower returns a flower species of the given color.
func Flower(c FlowerColor) Species {
	return Species{Kind: KindFlower, Color: c % flowerColorCount}
}

// Clone returns an unbound clone.
func Clone() Species { return Species{Kind: KindClone} }

// BoundClone returns a clone that copies the registry entry id.
func BoundClone(id uint16) Species {
	return Species{Kind: KindClone, Clone: CloneRef{ID: id, Bound: true}}
}

func (s Species) String() string { return s.Kind.String() }

// StartingHeat is the ambient temperature a species is created at and biased
// toward by the heat model.
func (s Species) StartingHeat() int32 {
	switch s.Kind {
	case KindEmpty:
		return 0
	case KindLava:
		return LavaHeat
	case KindFire:
		return FireHeat
	case KindBlueFire:
		return BlueFireHeat
	case KindIce:
		return IceHeat
	case KindSteam:
		return SteamHeat
	default:
		return AmbientHeat
	}
}

// IsEmpty reports an Empty species.
func (s Species) IsEmpty() bool { return s.Kind == KindEmpty }

// IsLiquid reports the species that flow like liquids.
func (s Species) IsLiquid() bool {
	switch s.Kind {
	case KindWater, KindAcid, KindLava, KindSaltWater:
		return true
	}
	return false
}

// IsGas reports the species that diffuse like gases.
func (s Species) IsGas() bool { return s.Kind == KindSteam }

// IsFluid reports species a falling solid may displace: liquids, gases and
// empty space.
func (s Species) IsFluid() bool {
	return s.IsEmpty() || s.IsLiquid() || s.IsGas()
}

// IsFire reports either flame kind.
func (s Species) IsFire() bool { return s.Kind == KindFire || s.Kind == KindBlueFire }

// Flammable reports species that ignite from heat or adjacent flames.
func (s Species) Flammable() bool {
	switch s.Kind {
	case KindGrass, KindGrassTip, KindFlower:
		return true
	}
	return false
}

// Corrodable reports species acid can dissolve.
func (s Species) Corrodable() bool {
	switch s.Kind {
	case KindEmpty, KindWall, KindBorder, KindAcid:
		return false
	}
	return true
}

// LiquidDestroyable reports growth that flowing liquid washes away.
func (s Species) LiquidDestroyable() bool {
	switch s.Kind {
	case KindGrass, KindGrassTip, KindFlower:
		return true
	}
	return false
}

// Douses reports species that put out a flame beneath them.
func (s Species) Douses() bool {
	switch s.Kind {
	case KindWater, KindSaltWater, KindSand, KindSalt, KindMud:
		return true
	}
	return false
}

// MeltsToLava reports solids that liquefy above MeltHeat.
func (s Species) MeltsToLava() bool {
	switch s.Kind {
	case KindSand, KindSalt, KindStone:
		return true
	}
	return false
}

// Solid reports occupied, non-flowing matter that can smother a flame.
func (s Species) Solid() bool {
	return !s.IsFluid() && !s.IsFire() && !s.Flammable() && s.Kind != KindBorder
}
