package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"waveshooter/sim"
)

const hudRows = 1

// grid maps arena coordinates onto terminal cells below the HUD row.
type grid struct {
	cols, rows int
	arena      sim.Rect
}

func (g grid) cell(p sim.Vec) (int, int) {
	rows := g.rows - hudRows
	cx := int(p.X / g.arena.W * float64(g.cols))
	cy := int(p.Y/g.arena.H*float64(rows)) + hudRows
	return clampInt(cx, 0, g.cols-1), clampInt(cy, hudRows, g.rows-1)
}

// point maps a terminal cell back to the arena position at its center.
func (g grid) point(cx, cy int) (sim.Vec, bool) {
	rows := g.rows - hudRows
	if cx < 0 || cx >= g.cols || cy < hudRows || cy >= g.rows || rows <= 0 {
		return sim.Vec{}, false
	}
	return sim.Vec{
		X: (float64(cx) + 0.5) / float64(g.cols) * g.arena.W,
		Y: (float64(cy-hudRows) + 0.5) / float64(rows) * g.arena.H,
	}, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func glyph(v sim.EntityView) (rune, tcell.Style) {
	style := tcell.StyleDefault
	switch v.Kind {
	case sim.KindPlayer:
		return '@', style.Foreground(tcell.ColorGreen).Bold(true)
	case sim.KindEnemy:
		if v.Fast {
			return 'F', style.Foreground(tcell.ColorOrange)
		}
		return 'E', style.Foreground(tcell.ColorRed)
	case sim.KindPlayerShot:
		return '*', style.Foreground(tcell.ColorYellow)
	default:
		return 'o', style.Foreground(tcell.ColorFuchsia)
	}
}

func barStyle(c sim.BarColor) tcell.Style {
	switch c {
	case sim.BarGreen:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case sim.BarYellow:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
}

// barCells returns how many of width cells a bar fills
func barCells(b *sim.BarView, width int) int {
	if b == nil || b.Width <= 0 {
		return 0
	}
	return int(math.Ceil(b.Fill / b.Width * float64(width)))
}

func hudLine(snap sim.Snapshot) string {
	line := fmt.Sprintf("Health: %d  Score: %d  Wave: %d  Enemies: %d",
		int(math.Ceil(snap.PlayerHealth)), snap.Score, snap.Wave.Number, snap.ActiveEnemies)
	switch snap.State {
	case sim.StateWon:
		line += "  YOU WIN - press R or click to restart"
	case sim.StateLost:
		line += "  GAME OVER - press R or click to restart"
	default:
		line += "  arrows/WASD move, q quits"
	}
	return line
}

func drawString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// draw renders one snapshot onto the screen
func draw(s tcell.Screen, g grid, snap sim.Snapshot) {
	s.Clear()

	hudStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if snap.PlayerMaxHealth > 0 {
		hudStyle = barStyle(sim.BarColorFor(snap.PlayerHealth / snap.PlayerMaxHealth))
	}
	drawString(s, 0, 0, hudLine(snap), hudStyle)

	put := func(v sim.EntityView) {
		x, y := g.cell(v.Pos)
		r, style := glyph(v)
		s.SetContent(x, y, r, nil, style)

		// Three-cell bar on the row above
		if n := barCells(v.Bar, 3); n > 0 && y-1 >= hudRows {
			for i := range 3 {
				ch := '·'
				if i < n {
					ch = '-'
				}
				s.SetContent(x-1+i, y-1, ch, nil, barStyle(v.Bar.Color))
			}
		}
	}

	for _, p := range snap.Projectiles {
		put(p)
	}
	for _, e := range snap.Enemies {
		put(e)
	}
	put(snap.Player)

	s.Show()
}
