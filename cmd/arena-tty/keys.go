package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"waveshooter/sim"
)

// holdWindow approximates a held key: terminals only report presses and repeats.
const holdWindow = 120 * time.Millisecond

type direction int

const (
	dirLeft direction = iota
	dirRight
	dirUp
	dirDown
	dirCount
)

// keyState turns terminal key events into the held-key model the simulation expects.
type keyState struct {
	lastSeen [dirCount]time.Time
	restart  bool
	pointer  sim.Vec
	hasPtr   bool
	quit     bool
}

// press records a key event at t
func (k *keyState) press(ev *tcell.EventKey, t time.Time) {
	switch ev.Key() {
	case tcell.KeyLeft:
		k.lastSeen[dirLeft] = t
	case tcell.KeyRight:
		k.lastSeen[dirRight] = t
	case tcell.KeyUp:
		k.lastSeen[dirUp] = t
	case tcell.KeyDown:
		k.lastSeen[dirDown] = t
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			k.lastSeen[dirLeft] = t
		case 'd', 'D':
			k.lastSeen[dirRight] = t
		case 'w', 'W':
			k.lastSeen[dirUp] = t
		case 's', 'S':
			k.lastSeen[dirDown] = t
		case 'r', 'R':
			k.restart = true
		case 'q', 'Q':
			k.quit = true
		}
	}
}

// click records a pointer position; button presses also count as restart.
func (k *keyState) click(pos sim.Vec, pressed bool) {
	k.pointer = pos
	k.hasPtr = true
	if pressed {
		k.restart = true
	}
}

func (k *keyState) held(d direction, now time.Time) bool {
	seen := k.lastSeen[d]
	return !seen.IsZero() && now.Sub(seen) < holdWindow
}

// input builds the tick input at now and consumes the one-shot restart trigger.
func (k *keyState) input(now time.Time) sim.Input {
	in := sim.Input{
		Left:          k.held(dirLeft, now),
		Right:         k.held(dirRight, now),
		Up:            k.held(dirUp, now),
		Down:          k.held(dirDown, now),
		Restart:       k.restart,
		Pointer:       k.pointer,
		PointerActive: k.hasPtr,
	}
	k.restart = false
	return in
}
