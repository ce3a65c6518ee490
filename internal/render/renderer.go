//go:build ebiten

package render

import (
	"mad-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a sim frame into an offscreen image and scales it onto
// the screen.
type GridPainter struct {
	img *ebiten.Image
	buf []byte
	w   int
	h   int
}

// NewGridPainter allocates a painter for a w×h grid.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
		w:   w,
		h:   h,
	}
}

// Blit draws sim onto screen at the given integer scale.
func (p *GridPainter) Blit(screen *ebiten.Image, sim core.Sim, scale int) {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	if size.W != p.w || size.H != p.h {
		*p = *NewGridPainter(size.W, size.H)
	}
	Fill(p.buf, sim)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}
