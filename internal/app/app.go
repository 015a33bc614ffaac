//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"formind/internal/core"
	"formind/internal/render"
	"formind/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Sim is what the viewer needs from a model.
type Sim interface {
	core.Sim
	core.LAIProvider
}

// Game adapts a growth model to the ebiten.Game interface.
type Game struct {
	sim     Sim
	painter *render.SeriesPainter
	hud     *ui.HUD
	history *History

	fg color.Color
	bg color.Color

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
	vscale   float64
}

// New constructs a Game for the provided model.
func New(sim Sim, cfg *Config) *Game {
	return &Game{
		sim:      sim,
		painter:  render.NewSeriesPainter(cfg.Width, cfg.Height, cfg.Floor),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		history:  NewHistory(cfg.Width),
		fg:       color.RGBA{R: 70, G: 160, B: 80, A: 255},
		bg:       color.RGBA{R: 24, G: 20, B: 16, A: 255},
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the model with the provided seed and clears the plot.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.history.Clear()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the model.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.hud.Adjust(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.hud.Adjust(-1)
	}

	g.hud.Update(g.plotWidth())

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.history.Push(g.sim.LAI())
		g.tickOnce = false
	}
	return nil
}

// Draw renders the LAI plot and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.vscale = g.painter.Blit(screen, g.history.Samples(), g.fg, g.bg, g.scale)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("LAI max %.3f", g.vscale))
	_, h := g.painter.Size()
	g.hud.Draw(screen, g.plotWidth(), h*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	_, h := g.painter.Size()
	return g.plotWidth() + g.hudWidth, h * g.scale
}

func (g *Game) plotWidth() int {
	w, _ := g.painter.Size()
	return w * g.scale
}
