// internal/screen/hud.go
package screen

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"go-particle-drift/internal/app"
	"go-particle-drift/internal/config"
	"go-particle-drift/pkg/render"
)

const (
	hudX           = 8
	hudY           = 6
	hudLineSpacing = 15
)

// HUD prints tick latency and population in the top-left corner.
type HUD struct {
	face *text.GoXFace
}

func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Draw renders the overlay. The shadow is a darkened background colour.
func (h *HUD) Draw(screen *ebiten.Image, palette render.Palette, stats app.LatencyStats, particles int) {
	msg := fmt.Sprintf("particles: %d\nfps: %.1f  tps: %.1f\ntick: last %v  mean %v  max %v",
		particles, stats.FPS, ebiten.ActualTPS(), stats.Last, stats.Mean, stats.Max)

	// Shadow first, then the text one pixel up-left of it.
	h.draw(screen, msg, hudX+1, hudY+1, render.DarkenColor(palette.Background))
	h.draw(screen, msg, hudX, hudY, config.HUDTextColor)
}

func (h *HUD) draw(screen *ebiten.Image, msg string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = hudLineSpacing
	text.Draw(screen, msg, h.face, op)
}
