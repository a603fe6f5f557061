package sim

import "time"

// Input is the host's view of the controls for one tick
type Input struct {
	Left, Right, Up, Down bool

	// Restart is the restart trigger (key or click); honoured only after the session ends
	Restart bool

	// Pointer is the cursor position in arena coordinates
	Pointer       Vec
	PointerActive bool
}

// Steer sets velocity from held keys. Left wins over right and up over down;
// diagonals are not normalised.
func (p *Player) Steer(in Input, speed float64) {
	p.Vel = Vec{}
	switch {
	case in.Left:
		p.Vel.X = -speed
	case in.Right:
		p.Vel.X = speed
	}
	switch {
	case in.Up:
		p.Vel.Y = -speed
	case in.Down:
		p.Vel.Y = speed
	}
}

// CanTakeDamage reports whether the damage cooldown has elapsed at now.
func (p *Player) CanTakeDamage(now, cooldown time.Duration) bool {
	return !p.damaged || now-p.LastDamageAt >= cooldown
}

// TakeDamage applies amount unless the player is inside the cooldown window.
// It reports whether damage was applied.
func (p *Player) TakeDamage(now time.Duration, amount float64, cooldown time.Duration) bool {
	if !p.CanTakeDamage(now, cooldown) {
		return false
	}
	p.Health = clamp(p.Health-amount, 0, p.MaxHealth)
	p.LastDamageAt = now
	p.damaged = true
	p.Bar.Sync(p.Health, p.MaxHealth)
	return true
}

// AimAngle picks the volley direction: lead the nearest active enemy, else the
// pointer, else straight right.
func AimAngle(from Vec, enemies []*Enemy, in Input, shotSpeed float64) float64 {
	var nearest *Enemy
	best := 0.0
	for _, e := range enemies {
		if !e.Active {
			continue
		}
		d := e.Pos.Sub(from).LenSq()
		if nearest == nil || d < best {
			nearest, best = e, d
		}
	}

	if nearest != nil {
		if angle, ok := LeadAngle(from, nearest.Pos, nearest.Vel, shotSpeed); ok {
			return angle
		}
		return AngleBetween(from, nearest.Pos)
	}
	if in.PointerActive {
		return AngleBetween(from, in.Pointer)
	}
	return 0
}
