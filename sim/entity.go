package sim

import (
	"time"

	"github.com/solarlune/resolv"
)

// EntityID identifies an entity within a session
type EntityID uint64

// Kind identifies the type of entity
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindPlayerShot
	KindEnemyShot
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindPlayerShot:
		return "player_shot"
	case KindEnemyShot:
		return "enemy_shot"
	}
	return "unknown"
}

// Body is the physical part shared by every entity
type Body struct {
	// Position in arena coordinates
	Pos Vec

	// Velocity in pixels per second
	Vel Vec

	// Collision radius in pixels
	Radius float64

	// Whether this entity is still in play
	Active bool

	shape *resolv.Circle
}

// Player is the avatar controlled by the host
type Player struct {
	ID EntityID
	Body

	Health    float64
	MaxHealth float64

	// LastDamageAt is the clock value of the last applied damage
	LastDamageAt time.Duration

	Bar HealthBar

	damaged bool // false until the first hit, so the first hit is never gated
}

// NewPlayer creates a player at full health
func NewPlayer(pos Vec, cfg Config) *Player {
	return &Player{
		Body:      Body{Pos: pos, Radius: cfg.PlayerRadius, Active: true},
		Health:    cfg.PlayerMaxHealth,
		MaxHealth: cfg.PlayerMaxHealth,
		Bar:       NewHealthBar(cfg.PlayerBarWidth),
	}
}

// Kind identifies the player in views and physics tags
func (p *Player) Kind() Kind { return KindPlayer }

// Enemy is a pursuing shooter
type Enemy struct {
	ID EntityID
	Body

	Health    float64
	MaxHealth float64

	// Fast enemies use the higher speed multiplier
	Fast bool

	// ExtraSpeed is the wave speed bonus at spawn time
	ExtraSpeed float64

	// NextShotAt is when this enemy fires next
	NextShotAt time.Duration

	// Wave this enemy was spawned in (0 for the initial population)
	Wave int

	Bar HealthBar
}

// Kind identifies enemies in views and physics tags
func (e *Enemy) Kind() Kind { return KindEnemy }

// Projectile is a shot travelling in a straight line
type Projectile struct {
	ID EntityID
	Body

	// Owner side of the shot; KindPlayerShot or KindEnemyShot
	ShotKind Kind

	SpawnedAt time.Duration
	Lifespan  time.Duration
	Damage    float64

	expiry TimerID
}

// NewProjectile creates a shot leaving from pos along angle
func NewProjectile(kind Kind, pos Vec, angle float64, shot ShotConfig, now time.Duration) *Projectile {
	return &Projectile{
		Body: Body{
			Pos:    pos,
			Vel:    FromAngle(angle, shot.Speed),
			Radius: shot.Radius,
			Active: true,
		},
		ShotKind:  kind,
		SpawnedAt: now,
		Lifespan:  shot.Lifespan,
		Damage:    shot.Damage,
	}
}

// Kind returns the side that fired the shot
func (p *Projectile) Kind() Kind { return p.ShotKind }

// PushApart separates two overlapping bodies by half the overlap each
func PushApart(a, b *Body) {
	d := b.Pos.Sub(a.Pos)
	distance := d.Len()

	if distance == 0 {
		// Exactly on top of each other
		d = Vec{X: 1, Y: 1}
		distance = 1.414
	}

	dir := d.Scale(1 / distance)
	overlap := (a.Radius + b.Radius) - distance
	if overlap <= 0 {
		return
	}

	separation := dir.Scale(overlap * 0.5)
	a.Pos = a.Pos.Sub(separation)
	b.Pos = b.Pos.Add(separation)
}

// Overlaps reports whether two bodies intersect
func (b *Body) Overlaps(o *Body) bool {
	r := b.Radius + o.Radius
	return b.Pos.Sub(o.Pos).LenSq() < r*r
}
