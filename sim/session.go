package sim

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/solarlune/resolv"
)

// Session is one playthrough. A restart builds a new Session; nothing carries over.
type Session struct {
	ID string

	cfg    Config
	rng    Rand
	logger *slog.Logger

	state     State
	score     int
	startedAt time.Duration
	lastTick  time.Duration
	nextFire  time.Duration
	closed    bool

	player  *Player
	enemies []*Enemy
	shots   []*Projectile

	spawner    *Spawner
	sched      *Scheduler
	phys       *Physics
	spawnTimer TimerID

	enemyByShape map[resolv.IShape]*Enemy
	nextID       EntityID
	events       []Event
}

// newSession sets up the player, the initial enemy population and the spawn timer.
func newSession(cfg Config, rng Rand, logger *slog.Logger, now time.Duration) *Session {
	s := &Session{
		ID:           uuid.NewString(),
		cfg:          cfg,
		rng:          rng,
		state:        StateRunning,
		startedAt:    now,
		lastTick:     now,
		nextFire:     now,
		spawner:      NewSpawner(cfg, rng),
		sched:        NewScheduler(now),
		phys:         newPhysics(cfg),
		enemyByShape: make(map[resolv.IShape]*Enemy),
	}
	s.logger = logger.With("session_id", s.ID)

	s.player = NewPlayer(Vec{X: cfg.ArenaWidth / 2, Y: cfg.ArenaHeight / 2}, cfg)
	s.player.ID = s.newID()
	s.phys.attach(&s.player.Body, s.player.Kind())

	// Initial population uses base difficulty
	for _, e := range s.spawner.Batch(now) {
		s.addEnemy(e)
	}
	s.spawnTimer = s.sched.Every(cfg.SpawnInterval, s.spawnWave)

	s.logger.Info("session started", "enemies", len(s.enemies))
	return s
}

func (s *Session) newID() EntityID {
	s.nextID++
	return s.nextID
}

// State returns the lifecycle state
func (s *Session) State() State { return s.state }

// Player returns the session's player
func (s *Session) Player() *Player { return s.player }

// Enemies returns the tracked enemies, including ones destroyed this tick
func (s *Session) Enemies() []*Enemy { return s.enemies }

// Projectiles returns the tracked projectiles
func (s *Session) Projectiles() []*Projectile { return s.shots }

// Wave returns the current difficulty
func (s *Session) Wave() Wave { return s.spawner.Wave() }

// PendingTimers returns the number of scheduled callbacks
func (s *Session) PendingTimers() int { return s.sched.Pending() }

// ActiveEnemies counts enemies still in play
func (s *Session) ActiveEnemies() int {
	n := 0
	for _, e := range s.enemies {
		if e.Active {
			n++
		}
	}
	return n
}

// Close cancels every pending timer. The session must not be ticked afterwards.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.sched.CancelAll()
}

// Tick advances the session to now and returns the resulting snapshot.
func (s *Session) Tick(now time.Duration, in Input) Snapshot {
	s.events = s.events[:0]

	if s.closed || s.state.Terminal() {
		s.lastTick = now
		return s.snapshot(now)
	}

	dt := now - s.lastTick
	if dt < 0 {
		dt = 0
	}
	if dt > s.cfg.MaxTickDelta {
		dt = s.cfg.MaxTickDelta
	}
	s.lastTick = now

	// Timers first: spawns and projectile expiry
	s.sched.Advance(now)

	s.player.Steer(in, s.cfg.PlayerSpeed)
	s.updateEnemies(now)
	s.firePlayer(now, in)

	s.integrate(dt.Seconds())
	s.resolveCollisions(now)
	s.prune()

	return s.snapshot(now)
}

func (s *Session) emit(kind EventKind, now time.Duration, id EntityID, value float64) {
	s.events = append(s.events, Event{Kind: kind, At: now, Entity: id, Value: value})
}

func (s *Session) addEnemy(e *Enemy) {
	e.ID = s.newID()
	shape := s.phys.attach(&e.Body, e.Kind())
	s.enemyByShape[shape] = e
	s.enemies = append(s.enemies, e)
}

func (s *Session) addProjectile(p *Projectile) {
	p.ID = s.newID()
	s.phys.attach(&p.Body, p.Kind())
	p.expiry = s.sched.After(p.Lifespan, func(now time.Duration) {
		if s.destroyProjectile(p) {
			s.emit(EventProjectileExpired, now, p.ID, 0)
		}
	})
	s.shots = append(s.shots, p)
}

// spawnWave is the spawn timer callback: escalate, then add one batch.
func (s *Session) spawnWave(now time.Duration) {
	if s.state != StateRunning {
		return
	}
	wave := s.spawner.Escalate()
	for _, e := range s.spawner.Batch(now) {
		s.addEnemy(e)
	}
	s.emit(EventWaveSpawned, now, 0, float64(wave.Number))
	s.logger.Debug("wave spawned",
		"wave", wave.Number,
		"speed_bonus", wave.SpeedBonus,
		"radius", wave.EnemyRadius,
		"bullets", wave.BulletsPerShot,
		"enemies", s.ActiveEnemies())
}

func (s *Session) updateEnemies(now time.Duration) {
	for _, e := range s.enemies {
		if !e.Active {
			continue
		}
		e.Chase(s.player.Pos, s.cfg)
		if e.ReadyToFire(now) {
			angle := e.Fire(now, s.rng, s.cfg)
			s.addProjectile(NewProjectile(KindEnemyShot, e.Pos, angle, s.cfg.EnemyShot, now))
		}
	}
}

// firePlayer fires a volley when the cadence allows.
func (s *Session) firePlayer(now time.Duration, in Input) {
	if now < s.nextFire {
		return
	}
	s.nextFire = now + s.cfg.FireInterval

	center := AimAngle(s.player.Pos, s.enemies, in, s.cfg.PlayerShot.Speed)
	for _, angle := range FanAngles(center, s.spawner.Wave().BulletsPerShot, s.cfg.FanSpacing) {
		s.addProjectile(NewProjectile(KindPlayerShot, s.player.Pos, angle, s.cfg.PlayerShot, now))
	}
}

// integrate moves every body by dt seconds. Player and enemies stay inside the
// arena; projectiles touching the border are destroyed.
func (s *Session) integrate(dt float64) {
	bounds := s.cfg.Bounds()

	p := s.player
	p.Pos = bounds.Clamp(p.Pos.Add(p.Vel.Scale(dt)), p.Radius)

	for _, e := range s.enemies {
		if !e.Active {
			continue
		}
		e.Pos = bounds.Clamp(e.Pos.Add(e.Vel.Scale(dt)), e.Radius)
	}

	for _, shot := range s.shots {
		if !shot.Active {
			continue
		}
		shot.Pos = shot.Pos.Add(shot.Vel.Scale(dt))
		if bounds.Touches(shot.Pos, shot.Radius) {
			s.destroyProjectile(shot)
		}
	}
}

// destroyProjectile removes a projectile from play. Expiry, border contact and
// hits all end here; only the first call has any effect.
func (s *Session) destroyProjectile(p *Projectile) bool {
	if !p.Active {
		return false
	}
	p.Active = false
	p.Vel = Vec{}
	s.phys.detach(&p.Body)
	s.sched.Cancel(p.expiry)
	return true
}

// destroyEnemy removes an enemy and both bar visuals.
func (s *Session) destroyEnemy(e *Enemy) bool {
	if !e.Active {
		return false
	}
	e.Active = false
	e.Vel = Vec{}
	if e.shape != nil {
		delete(s.enemyByShape, e.shape)
	}
	s.phys.detach(&e.Body)
	e.Bar.Destroy()
	return true
}

// prune drops destroyed entities from the tracking slices.
func (s *Session) prune() {
	live := s.enemies[:0]
	for _, e := range s.enemies {
		if e.Active {
			live = append(live, e)
		}
	}
	clear(s.enemies[len(live):])
	s.enemies = live

	shots := s.shots[:0]
	for _, p := range s.shots {
		if p.Active {
			shots = append(shots, p)
		}
	}
	clear(s.shots[len(shots):])
	s.shots = shots
}

// finish moves a running session into a terminal state. Later calls are ignored.
func (s *Session) finish(state State, now time.Duration) {
	if s.state != StateRunning || !state.Terminal() {
		return
	}
	s.state = state

	s.player.Vel = Vec{}
	for _, e := range s.enemies {
		e.Vel = Vec{}
	}
	for _, p := range s.shots {
		p.Vel = Vec{}
	}
	s.sched.Cancel(s.spawnTimer)

	if state == StateWon {
		s.emit(EventWon, now, 0, 0)
	} else {
		s.emit(EventLost, now, s.player.ID, 0)
	}
	s.logger.Info("session "+state.String(),
		"elapsed", now-s.startedAt,
		"wave", s.spawner.Wave().Number,
		"player_health", s.player.Health)
}
