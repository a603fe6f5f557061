package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"waveshooter/sim"
)

const (
	barHeight = 4.0
	barGap    = 6.0 // Space between the top of a body and its bar
)

// Renderer draws the entities of a snapshot. Arena and screen coordinates match.
type Renderer struct{}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws projectiles, enemies and the player, then the health bars on top.
func (r *Renderer) Render(screen *ebiten.Image, snap sim.Snapshot) {
	for _, p := range snap.Projectiles {
		r.RenderEntity(screen, p)
	}
	for _, e := range snap.Enemies {
		r.RenderEntity(screen, e)
	}
	r.RenderEntity(screen, snap.Player)

	for _, e := range snap.Enemies {
		r.RenderBar(screen, e)
	}
	r.RenderBar(screen, snap.Player)
}

// RenderEntity draws a single entity as a filled circle
func (r *Renderer) RenderEntity(screen *ebiten.Image, v sim.EntityView) {
	radius := v.Radius
	if radius < 1 {
		radius = 1
	}
	vector.DrawFilledCircle(screen, float32(v.Pos.X), float32(v.Pos.Y), float32(radius), EntityColor(v), true)
}

// RenderBar draws the background and fill of an entity's health bar, centered above it.
func (r *Renderer) RenderBar(screen *ebiten.Image, v sim.EntityView) {
	if v.Bar == nil {
		return
	}
	x, y := barOrigin(v)

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(v.Bar.Width), barHeight, colorBarBack, true)
	if v.Bar.Fill > 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(v.Bar.Fill), barHeight, BarFillColor(v.Bar.Color), true)
	}
}

// barOrigin returns the top-left corner of the bar above v
func barOrigin(v sim.EntityView) (float64, float64) {
	return v.Pos.X - v.Bar.Width/2, v.Pos.Y - v.Radius - barGap - barHeight
}
