package app

import "mad-sand/internal/sims/sand"

// Tool is a paintable material bound to a key.
type Tool struct {
	Name    string
	Species sand.Species
}

// toolKeys maps key letters onto tools.
var toolKeys = map[rune]Tool{
	'S': {"sand", sand.Plain(sand.KindSand)},
	'W': {"water", sand.Plain(sand.KindWater)},
	'A': {"wall", sand.Plain(sand.KindWall)},
	'I': {"acid", sand.Plain(sand.KindAcid)},
	'L': {"lava", sand.Plain(sand.KindLava)},
	'O': {"soil", sand.Plain(sand.KindSoil)},
	'T': {"salt", sand.Plain(sand.KindSalt)},
	'G': {"grass", sand.Plain(sand.KindGrass)},
	'F': {"fire", sand.Plain(sand.KindFire)},
	'E': {"ice", sand.Plain(sand.KindIce)},
	'C': {"clone", sand.Clone()},
	'M': {"mud", sand.Mud(0)},
	'R': {"stone", sand.Plain(sand.KindStone)},
	'K': {"flower", sand.Flower(sand.FlowerRed)},
	'V': {"steam", sand.Plain(sand.KindSteam)},
}

// ToolForKey returns the tool bound to letter r.
func ToolForKey(r rune) (Tool, bool) {
	t, ok := toolKeys[r]
	return t, ok
}

var brushRadii = [...]int{1, 5, 10, 20, 30}

// RadiusForDigit returns the brush radius bound to digit key d (1..5).
func RadiusForDigit(d int) (int, bool) {
	if d < 1 || d > len(brushRadii) {
		return 0, false
	}
	return brushRadii[d-1], true
}

// canvas is the painting surface of worlds that accept brush strokes.
type canvas interface {
	PaintLine(x0, y0, x1, y1, radius int, s sand.Species)
	EraseLine(x0, y0, x1, y1, radius int)
	RandomFlower() sand.Species
}

// stroke applies one drag segment of t to c. Flowers get a fresh random
// color per stroke.
func stroke(c canvas, t Tool, erase bool, x0, y0, x1, y1, radius int) {
	if erase {
		c.EraseLine(x0, y0, x1, y1, radius)
		return
	}
	s := t.Species
	if s.Kind == sand.KindFlower {
		s = c.RandomFlower()
	}
	c.PaintLine(x0, y0, x1, y1, radius, s)
}
