// internal/screen/game.go
package screen

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-particle-drift/internal/app"
	"go-particle-drift/internal/event"
)

// Game adapts ebiten's callbacks into ticks: every Update becomes an
// update tick with a fixed step of 1/TPS, every Draw a render tick.
type Game struct {
	sim     *app.Simulation
	surface *Surface
	hud     *HUD
	showHUD bool
	step    float64
}

func NewGame(sim *app.Simulation) *Game {
	return &Game{
		sim:     sim,
		surface: NewSurface(),
		hud:     NewHUD(),
		showHUD: sim.Config.HUD,
		step:    sim.Config.StepSeconds(),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	g.sim.Driver.Handle(event.UpdateTick{DT: g.step})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Bind(screen)
	g.sim.Driver.Handle(event.NewRenderTick(g.surface))
	if g.showHUD {
		g.hud.Draw(screen, g.sim.Palette, g.sim.Latency.Snapshot(), g.sim.System.Len())
	}
}

// Layout keeps the render surface the same size as the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(sim *app.Simulation) error {
	cfg := sim.Config
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(NewGame(sim)); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
