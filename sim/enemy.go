package sim

import (
	"math"
	"time"
)

// Speed returns the enemy's chase speed in pixels per second
func (e *Enemy) Speed(cfg Config) float64 {
	mult := cfg.EnemySpeedMultiplier
	if e.Fast {
		mult = cfg.FastSpeedMultiplier
	}
	return cfg.EnemyBaseSpeed*mult + e.ExtraSpeed
}

// Chase points the enemy at target, stopping inside the hold distance.
func (e *Enemy) Chase(target Vec, cfg Config) {
	if Distance(e.Pos, target) <= cfg.EnemyHoldDistance {
		e.Vel = Vec{}
		return
	}
	e.Vel = FromAngle(AngleBetween(e.Pos, target), e.Speed(cfg))
}

// ReadyToFire reports whether the enemy's next shot is due
func (e *Enemy) ReadyToFire(now time.Duration) bool {
	return e.Active && now >= e.NextShotAt
}

// Fire returns a uniformly random shot angle and schedules the next shot.
func (e *Enemy) Fire(now time.Duration, rng Rand, cfg Config) float64 {
	angle := rng.Float64() * 2 * math.Pi
	e.NextShotAt = now + uniformDuration(rng, cfg.EnemyReloadMin, cfg.EnemyReloadMax)
	return angle
}

// TakeHit applies damage and refreshes the bar. It reports whether the enemy died.
func (e *Enemy) TakeHit(damage float64) bool {
	e.Health = clamp(e.Health-damage, 0, e.MaxHealth)
	e.Bar.Sync(e.Health, e.MaxHealth)
	return e.Health <= 0
}
