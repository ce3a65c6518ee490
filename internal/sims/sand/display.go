package sand

import "image/color"

const maxGrainShade = 40

var kindPalette = buildKindPalette()

func buildKindPalette() []color.RGBA {
	palette := make([]color.RGBA, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		palette[k] = speciesColor(Plain(k))
	}
	return palette
}

// Palette maps the kind codes returned by Cells onto unshaded colors.
func (w *World) Palette() []color.RGBA { return kindPalette }

var flowerColors = [flowerColorCount]color.RGBA{
	FlowerRed:     {R: 255, A: 255},
	FlowerBlue:    {B: 255, A: 255},
	FlowerYellow:  {R: 255, G: 255, A: 255},
	FlowerMagenta: {R: 255, B: 255, A: 255},
	FlowerWhite:   {R: 255, G: 255, B: 255, A: 255},
}

func speciesColor(s Species) color.RGBA {
	switch s.Kind {
	case KindEmpty:
		return color.RGBA{R: 0, G: 2, B: 5, A: 255}
	case KindBorder:
		return color.RGBA{R: 1, G: 1, B: 1, A: 255}
	case KindWall:
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	case KindSand:
		return color.RGBA{R: 190, G: 140, B: 40, A: 255}
	case KindWater:
		return color.RGBA{R: 30, G: 100, B: 235, A: 255}
	case KindMud:
		w := s.Wetness
		return color.RGBA{R: 150 - w*23, G: 70 - w*20, B: 33 - w*8, A: 255}
	case KindAcid:
		return color.RGBA{G: 255, B: 100, A: 255}
	case KindSoil:
		return color.RGBA{R: 50, G: 10, B: 10, A: 255}
	case KindGrass, KindGrassTip:
		return color.RGBA{G: 255, A: 255}
	case KindWaterGrass:
		return color.RGBA{R: 10, G: 100, B: 40, A: 255}
	case KindFlower:
		return flowerColors[s.Color%flowerColorCount]
	case KindSalt:
		return color.RGBA{R: 254, G: 240, B: 200, A: 255}
	case KindSaltWater:
		return color.RGBA{R: 130, G: 130, B: 220, A: 255}
	case KindSteam:
		return color.RGBA{R: 90, G: 190, B: 255, A: 255}
	case KindLava:
		return color.RGBA{R: 255, G: 50, A: 255}
	case KindStone:
		return color.RGBA{R: 90, G: 85, B: 80, A: 255}
	case KindFire:
		return color.RGBA{R: 255, G: 140, B: 20, A: 255}
	case KindBlueFire:
		return color.RGBA{R: 60, G: 120, B: 255, A: 255}
	case KindIce:
		return color.RGBA{R: 180, G: 220, B: 250, A: 255}
	case KindClone:
		return color.RGBA{R: 200, G: 200, B: 40, A: 255}
	default:
		return color.RGBA{R: 255, B: 255, A: 255}
	}
}

func applyGrain(v, grain uint8) uint8 {
	v = min(v, 255-maxGrainShade)
	return v + grain%maxGrainShade
}

// CellColor returns the rendered color of c. Everything but Empty is shaded by
// its grain.
func CellColor(c Cell) color.RGBA {
	col := speciesColor(c.Species)
	if c.IsEmpty() {
		return col
	}
	col.R = applyGrain(col.R, c.Grain)
	col.G = applyGrain(col.G, c.Grain)
	col.B = applyGrain(col.B, c.Grain)
	return col
}

// FillRGBA writes the grain-shaded color of every cell into buf, four bytes
// per cell in row-major order.
func (w *World) FillRGBA(buf []byte) {
	for i, c := range w.grid.Cells() {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		col := CellColor(c)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Cells returns the kind code of every cell in row-major order. The slice is
// reused between calls.
func (w *World) Cells() []uint8 {
	for i, c := range w.grid.Cells() {
		w.display[i] = uint8(c.Kind())
	}
	return w.display
}

// Census counts cells per kind. Kinds with no cells are absent.
func (w *World) Census() map[Kind]int {
	out := make(map[Kind]int)
	for _, c := range w.grid.Cells() {
		out[c.Kind()]++
	}
	return out
}

// HeatField copies every cell's heat into dst, growing it when needed.
func (w *World) HeatField(dst []int32) []int32 {
	cells := w.grid.Cells()
	if cap(dst) < len(cells) {
		dst = make([]int32, len(cells))
	}
	dst = dst[:len(cells)]
	for i, c := range cells {
		dst[i] = c.Heat
	}
	return dst
}
