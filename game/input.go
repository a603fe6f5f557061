package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"waveshooter/sim"
)

// InputProvider supplies the controls for one tick
type InputProvider interface {
	Poll() sim.Input
}

// PlayerInput reads keyboard and mouse through ebiten
type PlayerInput struct {
	screenW, screenH int
	keys             []ebiten.Key
}

// NewPlayerInput creates a new player input provider
func NewPlayerInput(screenW, screenH int) *PlayerInput {
	return &PlayerInput{
		screenW: screenW,
		screenH: screenH,
		keys:    make([]ebiten.Key, 0, 10),
	}
}

// Poll returns movement from arrow keys or WASD, the restart trigger and the cursor.
func (p *PlayerInput) Poll() sim.Input {
	p.keys = inpututil.AppendPressedKeys(p.keys[:0])

	cx, cy := ebiten.CursorPosition()
	pointer, active := pointerFromCursor(cx, cy, p.screenW, p.screenH)

	return sim.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pointer:       pointer,
		PointerActive: active,
	}
}

// PressedKeys returns the keys held during the last poll
func (p *PlayerInput) PressedKeys() []ebiten.Key { return p.keys }

// pointerFromCursor maps the cursor to arena coordinates. A cursor at the origin
// or outside the screen counts as no pointer.
func pointerFromCursor(x, y, w, h int) (sim.Vec, bool) {
	if x == 0 && y == 0 {
		return sim.Vec{}, false
	}
	if x < 0 || y < 0 || x >= w || y >= h {
		return sim.Vec{}, false
	}
	return sim.Vec{X: float64(x), Y: float64(y)}, true
}
