//go:build ebiten

package app

import (
	"mad-sand/internal/core"
	"mad-sand/internal/render"
	"mad-sand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var letterKeys = map[ebiten.Key]rune{
	ebiten.KeyS: 'S', ebiten.KeyW: 'W', ebiten.KeyA: 'A', ebiten.KeyI: 'I',
	ebiten.KeyL: 'L', ebiten.KeyO: 'O', ebiten.KeyT: 'T', ebiten.KeyG: 'G',
	ebiten.KeyF: 'F', ebiten.KeyE: 'E', ebiten.KeyC: 'C', ebiten.KeyM: 'M',
	ebiten.KeyR: 'R', ebiten.KeyK: 'K', ebiten.KeyV: 'V',
}

var digitKeys = map[ebiten.Key]int{
	ebiten.KeyDigit1: 1, ebiten.KeyDigit2: 2, ebiten.KeyDigit3: 3,
	ebiten.KeyDigit4: 4, ebiten.KeyDigit5: 5,
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	canvas  canvas
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	timer   *core.FixedStep

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
	ticks    uint64

	tool     Tool
	radius   int
	dragging bool
	lastX    int
	lastY    int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	tool, _ := ToolForKey('S')
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		hud:      ui.NewHUD(sim, cfg.HUD),
		timer:    core.NewFixedStep(cfg.TPS),
		scale:    max(cfg.Scale, 1),
		hudWidth: max(cfg.HUD, 0),
		seed:     cfg.Seed,
		tool:     tool,
		radius:   brushRadii[1],
	}
	if c, ok := sim.(canvas); ok {
		g.canvas = c
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.ticks = 0
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.Reset(g.seed)
	}
	for key, r := range letterKeys {
		if inpututil.IsKeyJustPressed(key) {
			if t, ok := ToolForKey(r); ok {
				g.tool = t
			}
		}
	}
	for key, d := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			if r, ok := RadiusForDigit(d); ok {
				g.radius = r
			}
		}
	}

	g.overlay.Update()
	g.handleMouse()
	g.hud.Update(g.sim.Size().W*g.scale, ui.Status{
		Tool:   g.tool.Name,
		Radius: g.radius,
		Paused: g.paused,
		TPS:    g.timer.TPS(),
		Ticks:  g.ticks,
		Heat:   g.overlay.Visible(),
	})

	due := g.timer.Due()
	if g.paused {
		due = 0
	}
	if g.tickOnce {
		due = max(due, 1)
		g.tickOnce = false
	}
	for i := 0; i < due; i++ {
		g.sim.Step()
		g.ticks++
	}
	return nil
}

func (g *Game) handleMouse() {
	if g.canvas == nil {
		return
	}
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	mx, my := ebiten.CursorPosition()
	size := g.sim.Size()
	x, y := mx/g.scale, my/g.scale
	if (!left && !right) || x < 0 || x >= size.W || y < 0 || y >= size.H {
		g.dragging = false
		return
	}
	if !g.dragging {
		g.lastX, g.lastY = x, y
		g.dragging = true
	}
	stroke(g.canvas, g.tool, right, g.lastX, g.lastY, x, y, g.radius)
	g.lastX, g.lastY = x, y
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
