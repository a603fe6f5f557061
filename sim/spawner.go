package sim

import "time"

// Edge is an arena border used for spawning
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Wave is the escalation state applied to newly spawned enemies and to the player's volley size.
type Wave struct {
	// Number of timed batches so far; 0 for the initial population
	Number int

	// SpeedBonus is added to each new enemy's speed
	SpeedBonus float64

	// EnemyRadius is the collision radius of new enemies
	EnemyRadius float64

	// BulletsPerShot is the player's volley size
	BulletsPerShot int
}

// Spawner creates enemy batches on the arena border
type Spawner struct {
	cfg  Config
	rng  Rand
	wave Wave
}

// NewSpawner creates a spawner at base difficulty
func NewSpawner(cfg Config, rng Rand) *Spawner {
	return &Spawner{
		cfg: cfg,
		rng: rng,
		wave: Wave{
			EnemyRadius:    cfg.EnemyBaseRadius,
			BulletsPerShot: cfg.InitialBulletsPerShot,
		},
	}
}

// Wave returns the current difficulty
func (s *Spawner) Wave() Wave { return s.wave }

// Escalate raises difficulty by one step and returns the new values.
func (s *Spawner) Escalate() Wave {
	s.wave.Number++
	s.wave.SpeedBonus += s.cfg.WaveSpeedStep
	s.wave.EnemyRadius += s.cfg.WaveRadiusStep
	s.wave.BulletsPerShot += s.cfg.WaveBulletStep
	return s.wave
}

// Batch creates WaveSize enemies at the current difficulty. Enemies are returned
// without ids or bodies in the physics space.
func (s *Spawner) Batch(now time.Duration) []*Enemy {
	enemies := make([]*Enemy, 0, s.cfg.WaveSize)
	for range s.cfg.WaveSize {
		enemies = append(enemies, s.spawn(now))
	}
	return enemies
}

func (s *Spawner) spawn(now time.Duration) *Enemy {
	radius := s.wave.EnemyRadius
	pos := s.borderPosition(radius)
	fast := s.rng.Float64() < s.cfg.FastChance

	return &Enemy{
		Body:       Body{Pos: pos, Radius: radius, Active: true},
		Health:     s.cfg.EnemyMaxHealth,
		MaxHealth:  s.cfg.EnemyMaxHealth,
		Fast:       fast,
		ExtraSpeed: s.wave.SpeedBonus,
		NextShotAt: now + uniformDuration(s.rng, s.cfg.EnemyFirstShotMin, s.cfg.EnemyFirstShotMax),
		Wave:       s.wave.Number,
		Bar:        NewHealthBar(s.cfg.EnemyBarWidth),
	}
}

// borderPosition picks an edge, then a point along it inside the spawn margin.
// The enemy sits on the edge, inset by its radius so it starts fully inside;
// once the radius outgrows the margin it also bounds the corners.
func (s *Spawner) borderPosition(radius float64) Vec {
	w, h := s.cfg.ArenaWidth, s.cfg.ArenaHeight
	m := max(s.cfg.SpawnMargin, radius)

	switch Edge(pick(s.rng, 4)) {
	case EdgeTop:
		return Vec{X: uniform(s.rng, m, w-m), Y: radius}
	case EdgeBottom:
		return Vec{X: uniform(s.rng, m, w-m), Y: h - radius}
	case EdgeLeft:
		return Vec{X: radius, Y: uniform(s.rng, m, h-m)}
	default:
		return Vec{X: w - radius, Y: uniform(s.rng, m, h-m)}
	}
}
