//go:build ebiten

package ui

import (
	"mad-sand/internal/core"
	"mad-sand/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Heat ramp bounds for the overlay.
const (
	overlayCold    = -30
	overlayAmbient = 20
	overlayHot     = 2000
)

type heatFieldProvider interface {
	HeatField(dst []int32) []int32
}

// Overlay draws an optional heat map on top of the base simulation.
type Overlay struct {
	sim      core.Sim
	scale    int
	showHeat bool

	img  *ebiten.Image
	buf  []byte
	heat []int32
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Visible reports whether the heat map is currently shown.
func (o *Overlay) Visible() bool { return o.showHeat }

// Update toggles the heat map on H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHeat = !o.showHeat
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showHeat {
		return
	}
	provider, ok := o.sim.(heatFieldProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.img == nil || o.img.Bounds().Dx() != size.W || o.img.Bounds().Dy() != size.H {
		o.img = ebiten.NewImage(size.W, size.H)
		o.buf = make([]byte, 4*total)
	}

	o.heat = provider.HeatField(o.heat)
	render.FillHeatRGBA(o.buf, o.heat, overlayCold, overlayAmbient, overlayHot)
	o.img.WritePixels(o.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.img, op)
}
