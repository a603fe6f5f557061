package sim

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is returned by Config.Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// ShotConfig describes one projectile family.
type ShotConfig struct {
	// Speed in pixels per second
	Speed float64

	// Radius of the projectile body
	Radius float64

	// Damage dealt on hit
	Damage float64

	// Lifespan after which the projectile expires
	Lifespan time.Duration
}

// Config holds the gameplay constants of a session
type Config struct {
	// ArenaWidth is the width of the arena in pixels
	ArenaWidth float64

	// ArenaHeight is the height of the arena in pixels
	ArenaHeight float64

	// PhysicsCellSize is the broad-phase cell size in pixels
	PhysicsCellSize int

	// PlayerSpeed is the player's movement speed in pixels per second
	PlayerSpeed float64

	// PlayerRadius is the player's collision radius
	PlayerRadius float64

	// PlayerMaxHealth is the player's starting and maximum health
	PlayerMaxHealth float64

	// PlayerBarWidth is the full width of the player's health bar
	PlayerBarWidth float64

	// DamageCooldown is the grace window after the player takes damage
	DamageCooldown time.Duration

	// FireInterval is the player's auto-fire cadence
	FireInterval time.Duration

	// FanSpacing is the angle between shots of one volley, in radians
	FanSpacing float64

	// InitialBulletsPerShot is the volley size before any escalation
	InitialBulletsPerShot int

	PlayerShot ShotConfig
	EnemyShot  ShotConfig

	// ContactDamage is dealt when an enemy body touches the player
	ContactDamage float64

	EnemyMaxHealth float64

	// EnemyBaseSpeed is multiplied by EnemySpeedMultiplier or FastSpeedMultiplier
	EnemyBaseSpeed       float64
	EnemySpeedMultiplier float64
	FastSpeedMultiplier  float64

	// FastChance is the probability that a spawned enemy is fast
	FastChance float64

	// EnemyHoldDistance is the distance at which chasing enemies stop
	EnemyHoldDistance float64

	// EnemyBaseRadius is the enemy radius before escalation
	EnemyBaseRadius float64

	// EnemyBarWidth is the full width of an enemy health bar
	EnemyBarWidth float64

	// First shot offset after spawn
	EnemyFirstShotMin time.Duration
	EnemyFirstShotMax time.Duration

	// Delay between subsequent enemy shots
	EnemyReloadMin time.Duration
	EnemyReloadMax time.Duration

	// SpawnInterval is the period of the wave spawn timer
	SpawnInterval time.Duration

	// WaveSize is the number of enemies per batch
	WaveSize int

	// SpawnMargin keeps spawns away from the arena corners
	SpawnMargin float64

	// Escalation applied before each timed batch
	WaveSpeedStep  float64
	WaveRadiusStep float64
	WaveBulletStep int

	// MaxTickDelta caps the movement step of a single tick
	MaxTickDelta time.Duration
}

// DefaultConfig returns the standard arena configuration
func DefaultConfig() Config {
	return Config{
		ArenaWidth:      800,
		ArenaHeight:     600,
		PhysicsCellSize: 32,

		PlayerSpeed:           200,
		PlayerRadius:          15,
		PlayerMaxHealth:       100,
		PlayerBarWidth:        40,
		DamageCooldown:        500 * time.Millisecond,
		FireInterval:          500 * time.Millisecond,
		FanSpacing:            6 * math.Pi / 180,
		InitialBulletsPerShot: 2,

		PlayerShot: ShotConfig{Speed: 400, Radius: 4, Damage: 25, Lifespan: 2 * time.Second},
		EnemyShot:  ShotConfig{Speed: 200, Radius: 4, Damage: 10, Lifespan: 3 * time.Second},

		ContactDamage: 10,

		EnemyMaxHealth:       100,
		EnemyBaseSpeed:       60,
		EnemySpeedMultiplier: 1.5,
		FastSpeedMultiplier:  2.25,
		FastChance:           0.25,
		EnemyHoldDistance:    20,
		EnemyBaseRadius:      12,
		EnemyBarWidth:        30,
		EnemyFirstShotMin:    800 * time.Millisecond,
		EnemyFirstShotMax:    2500 * time.Millisecond,
		EnemyReloadMin:       1200 * time.Millisecond,
		EnemyReloadMax:       3500 * time.Millisecond,

		SpawnInterval:  10 * time.Second,
		WaveSize:       10,
		SpawnMargin:    40,
		WaveSpeedStep:  40,
		WaveRadiusStep: 4,
		WaveBulletStep: 1,

		MaxTickDelta: 100 * time.Millisecond, // Same clamp as a dropped frame
	}
}

// Bounds returns the arena rectangle
func (c Config) Bounds() Rect {
	return Rect{W: c.ArenaWidth, H: c.ArenaHeight}
}

// Validate reports the first setting that would make a session misbehave.
func (c Config) Validate() error {
	switch {
	case c.ArenaWidth <= 0 || c.ArenaHeight <= 0:
		return fmt.Errorf("%w: arena size %vx%v", ErrInvalidConfig, c.ArenaWidth, c.ArenaHeight)
	case c.PhysicsCellSize <= 0:
		return fmt.Errorf("%w: physics cell size %d", ErrInvalidConfig, c.PhysicsCellSize)
	case c.PlayerRadius <= 0 || 2*c.PlayerRadius >= math.Min(c.ArenaWidth, c.ArenaHeight):
		return fmt.Errorf("%w: player radius %v", ErrInvalidConfig, c.PlayerRadius)
	case c.PlayerMaxHealth <= 0 || c.EnemyMaxHealth <= 0:
		return fmt.Errorf("%w: max health must be positive", ErrInvalidConfig)
	case c.DamageCooldown < 0:
		return fmt.Errorf("%w: damage cooldown %v", ErrInvalidConfig, c.DamageCooldown)
	case c.FireInterval <= 0:
		return fmt.Errorf("%w: fire interval %v", ErrInvalidConfig, c.FireInterval)
	case c.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn interval %v", ErrInvalidConfig, c.SpawnInterval)
	case c.WaveSize < 0 || c.InitialBulletsPerShot < 0:
		return fmt.Errorf("%w: negative counts", ErrInvalidConfig)
	case c.FastChance < 0 || c.FastChance > 1:
		return fmt.Errorf("%w: fast chance %v", ErrInvalidConfig, c.FastChance)
	case c.SpawnMargin < 0 || 2*c.SpawnMargin > math.Min(c.ArenaWidth, c.ArenaHeight):
		return fmt.Errorf("%w: spawn margin %v", ErrInvalidConfig, c.SpawnMargin)
	case c.EnemyFirstShotMin > c.EnemyFirstShotMax || c.EnemyReloadMin > c.EnemyReloadMax:
		return fmt.Errorf("%w: enemy fire window min exceeds max", ErrInvalidConfig)
	case c.PlayerShot.Lifespan <= 0 || c.EnemyShot.Lifespan <= 0:
		return fmt.Errorf("%w: projectile lifespan must be positive", ErrInvalidConfig)
	case c.MaxTickDelta <= 0:
		return fmt.Errorf("%w: max tick delta %v", ErrInvalidConfig, c.MaxTickDelta)
	}
	return nil
}
