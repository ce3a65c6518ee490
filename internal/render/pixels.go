package render

import (
	"image/color"

	"mad-sand/internal/core"
)

// RGBAFiller is implemented by sims that shade their own pixels.
type RGBAFiller interface {
	FillRGBA(buf []byte)
}

// Paletted is implemented by sims whose Cells codes index a palette.
type Paletted interface {
	Palette() []color.RGBA
}

// Fill writes sim's current frame into buf, four bytes per cell. Sims that
// shade themselves take precedence over palette lookups; anything else is
// drawn as white on black.
func Fill(buf []byte, sim core.Sim) {
	if f, ok := sim.(RGBAFiller); ok {
		f.FillRGBA(buf)
		return
	}
	if p, ok := sim.(Paletted); ok {
		fillPaletteRGBA(buf, sim.Cells(), p.Palette())
		return
	}
	fillBinaryRGBA(buf, sim.Cells(), color.White, color.Black)
}

// fillBinaryRGBA converts binary cell data (0/non-zero) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillHeatRGBA maps heat values onto a translucent blue-to-red ramp. Values
// at or below cold are fully blue, at or above hot fully red. Cells at the
// ambient value are left transparent so the overlay only marks anomalies.
func FillHeatRGBA(buf []byte, heat []int32, cold, ambient, hot int32) {
	for i, h := range heat {
		base := i * 4
		var col color.RGBA
		switch {
		case h > ambient && hot > ambient:
			t := min(float64(h-ambient)/float64(hot-ambient), 1)
			col = color.RGBA{R: uint8(255 * t), G: uint8(64 * t), A: uint8(40 + 160*t)}
		case h < ambient && cold < ambient:
			t := min(float64(ambient-h)/float64(ambient-cold), 1)
			col = color.RGBA{G: uint8(96 * t), B: uint8(255 * t), A: uint8(40 + 160*t)}
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
