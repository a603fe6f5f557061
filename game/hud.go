package game

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"waveshooter/sim"
)

const controlsLine = "WASD/Arrow Keys: Move | Auto-fire | Mouse: Aim | F1: Debug"

// HUD draws the text layer: health, score, controls and the end screen.
type HUD struct {
	source *text.GoTextFaceSource
	small  *text.GoTextFace
	normal *text.GoTextFace
	large  *text.GoTextFace
	width  float64
	height float64
}

// NewHUD loads the embedded Go Regular font.
func NewHUD(screenW, screenH int) (*HUD, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load hud font: %w", err)
	}
	return &HUD{
		source: src,
		small:  &text.GoTextFace{Source: src, Size: 16},
		normal: &text.GoTextFace{Source: src, Size: 24},
		large:  &text.GoTextFace{Source: src, Size: 48},
		width:  float64(screenW),
		height: float64(screenH),
	}, nil
}

// Draw renders the HUD for snap
func (h *HUD) Draw(screen *ebiten.Image, snap sim.Snapshot) {
	h.drawText(screen, healthLabel(snap.PlayerHealth), h.normal, 16, 16, HealthTextColor(snap.PlayerHealth, snap.PlayerMaxHealth), text.AlignStart)
	h.drawText(screen, scoreLabel(snap.Score), h.normal, 16, 50, colorText, text.AlignStart)
	h.drawText(screen, controlsLine, h.small, 16, h.height-50, colorText, text.AlignStart)

	title, ok := endTitle(snap.State)
	if !ok {
		return
	}
	clr := colorGameOver
	if snap.State == sim.StateWon {
		clr = colorYouWin
	}
	h.drawText(screen, title, h.large, h.width/2, h.height/2-74, clr, text.AlignCenter)
	h.drawText(screen, "Press R or click to restart", h.normal, h.width/2, h.height/2+8, colorText, text.AlignCenter)
}

func (h *HUD) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, face, op)
}

func healthLabel(health float64) string {
	return fmt.Sprintf("Health: %d", int(math.Ceil(health)))
}

func scoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// endTitle returns the banner for a finished session
func endTitle(s sim.State) (string, bool) {
	switch s {
	case sim.StateWon:
		return "YOU WIN", true
	case sim.StateLost:
		return "GAME OVER", true
	}
	return "", false
}
