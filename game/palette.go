package game

import (
	"image/color"

	"waveshooter/sim"
)

var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorText       = color.RGBA{255, 255, 255, 255}
	colorGameOver   = color.RGBA{255, 0, 0, 255}
	colorYouWin     = color.RGBA{0, 255, 0, 255}
	colorBarBack    = color.RGBA{60, 60, 60, 255}
)

// kindColors holds the sprite color for each entity kind
var kindColors = map[sim.Kind]color.RGBA{
	sim.KindPlayer:     {0, 255, 0, 255},   // Green
	sim.KindEnemy:      {255, 0, 0, 255},   // Red
	sim.KindPlayerShot: {255, 255, 0, 255}, // Yellow
	sim.KindEnemyShot:  {255, 0, 255, 255}, // Magenta
}

// EntityColor returns the sprite color for an entity view
func EntityColor(v sim.EntityView) color.RGBA {
	if v.Kind == sim.KindEnemy && v.Fast {
		return color.RGBA{255, 140, 0, 255} // Orange
	}
	if c, ok := kindColors[v.Kind]; ok {
		return c
	}
	return color.RGBA{255, 255, 255, 255}
}

// BarFillColor maps a bar band to its fill color
func BarFillColor(c sim.BarColor) color.RGBA {
	switch c {
	case sim.BarGreen:
		return color.RGBA{0, 255, 0, 255}
	case sim.BarYellow:
		return color.RGBA{255, 255, 0, 255}
	default:
		return color.RGBA{255, 0, 0, 255}
	}
}

// HealthTextColor colors the HUD health readout with the same thresholds as the bars.
func HealthTextColor(health, maxHealth float64) color.RGBA {
	if maxHealth <= 0 {
		return BarFillColor(sim.BarRed)
	}
	return BarFillColor(sim.BarColorFor(health / maxHealth))
}
