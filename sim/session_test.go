package sim

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return newSession(DefaultConfig(), rand.New(rand.NewSource(1)), discardLogger(), 0)
}

// clearEnemies removes the initial population so a test can place its own.
func clearEnemies(s *Session) {
	for _, e := range s.enemies {
		s.destroyEnemy(e)
	}
	s.prune()
}

func placeEnemy(s *Session, pos Vec, health float64) *Enemy {
	e := &Enemy{
		Body:       Body{Pos: pos, Radius: s.cfg.EnemyBaseRadius, Active: true},
		Health:     health,
		MaxHealth:  s.cfg.EnemyMaxHealth,
		NextShotAt: time.Hour,
		Bar:        NewHealthBar(s.cfg.EnemyBarWidth),
	}
	e.Bar.Sync(e.Health, e.MaxHealth)
	s.addEnemy(e)
	return e
}

func placeShot(s *Session, kind Kind, pos Vec, now time.Duration) *Projectile {
	shot := s.cfg.PlayerShot
	if kind == KindEnemyShot {
		shot = s.cfg.EnemyShot
	}
	p := NewProjectile(kind, pos, 0, shot, now)
	p.Vel = Vec{}
	s.addProjectile(p)
	return p
}

func TestNewSession_InitialState(t *testing.T) {
	s := newTestSession(t)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, StateRunning, s.State())
	assert.Len(t, s.Enemies(), 10)
	assert.Equal(t, 10, s.ActiveEnemies())
	assert.Equal(t, Vec{X: 400, Y: 300}, s.Player().Pos)
	assert.Equal(t, 100.0, s.Player().Health)
	assert.Equal(t, Wave{EnemyRadius: 12, BulletsPerShot: 2}, s.Wave())
	assert.Equal(t, 1, s.PendingTimers(), "only the spawn timer")

	for _, e := range s.Enemies() {
		assert.Equal(t, 0.0, e.ExtraSpeed)
		assert.Equal(t, 12.0, e.Radius)
	}
}

func TestSession_PlayerShotDamagesEnemy(t *testing.T) {
	s := newTestSession(t)
	e := placeEnemy(s, Vec{X: 600, Y: 300}, 100)
	shot := placeShot(s, KindPlayerShot, e.Pos, 0)

	s.resolveCollisions(0)

	assert.False(t, shot.Active)
	assert.True(t, e.Active)
	assert.Equal(t, 75.0, e.Health)
	assert.InDelta(t, 22.5, e.Bar.Fill, 1e-9)
	assert.Equal(t, BarGreen, e.Bar.Color)
	assert.Equal(t, StateRunning, s.State())
}

func TestSession_KillingLastEnemyWins(t *testing.T) {
	s := newTestSession(t)
	clearEnemies(s)
	e := placeEnemy(s, Vec{X: 600, Y: 300}, 25)
	placeShot(s, KindPlayerShot, e.Pos, 0)
	s.player.Vel = Vec{X: 50}

	s.resolveCollisions(time.Second)

	assert.False(t, e.Active)
	assert.False(t, e.Bar.Background.Live())
	assert.False(t, e.Bar.Foreground.Live())
	assert.Equal(t, StateWon, s.State())
	assert.Equal(t, Vec{}, s.player.Vel)
	assert.False(t, s.sched.Cancel(s.spawnTimer), "spawn timer canceled on win")
	assert.Empty(t, s.enemyByShape)
}

func TestSession_KillWithEnemiesLeftKeepsRunning(t *testing.T) {
	s := newTestSession(t)
	e := placeEnemy(s, Vec{X: 600, Y: 300}, 25)
	placeShot(s, KindPlayerShot, e.Pos, 0)

	s.resolveCollisions(0)

	assert.False(t, e.Active)
	assert.Equal(t, StateRunning, s.State())
	assert.Equal(t, 10, s.ActiveEnemies())
}

func TestSession_EnemyShotsShareDamageCooldown(t *testing.T) {
	s := newTestSession(t)
	at := s.player.Pos

	first := placeShot(s, KindEnemyShot, at, 0)
	s.resolveCollisions(time.Second)
	assert.False(t, first.Active)
	assert.Equal(t, 90.0, s.player.Health)

	// Inside the grace window the shot is still consumed
	second := placeShot(s, KindEnemyShot, at, 0)
	s.resolveCollisions(1200 * time.Millisecond)
	assert.False(t, second.Active)
	assert.Equal(t, 90.0, s.player.Health)

	// Contact shares the same clock
	enemy := placeEnemy(s, at.Add(Vec{X: 5}), 100)
	s.resolveCollisions(1400 * time.Millisecond)
	assert.Equal(t, 90.0, s.player.Health)

	s.resolveCollisions(1500 * time.Millisecond)
	assert.Equal(t, 80.0, s.player.Health)
	assert.True(t, enemy.Active)
}

func TestSession_PlayerDeathLoses(t *testing.T) {
	s := newTestSession(t)
	s.player.Health = 10
	placeShot(s, KindEnemyShot, s.player.Pos, 0)

	s.resolveCollisions(time.Second)

	assert.Equal(t, 0.0, s.player.Health)
	assert.Equal(t, StateLost, s.State())
	for _, e := range s.enemies {
		assert.Equal(t, Vec{}, e.Vel)
	}
	assert.False(t, s.sched.Cancel(s.spawnTimer))
}

func TestSession_TerminalStateFreezesTicks(t *testing.T) {
	s := newTestSession(t)
	s.finish(StateLost, 0)
	pos := s.player.Pos
	enemies := s.ActiveEnemies()

	snap := s.Tick(20*time.Second, Input{Left: true})

	assert.Equal(t, StateLost, snap.State)
	assert.Equal(t, pos, s.player.Pos)
	assert.Equal(t, enemies, snap.ActiveEnemies)
	assert.Equal(t, 0, s.Wave().Number)

	// A second transition is ignored
	s.finish(StateWon, time.Second)
	assert.Equal(t, StateLost, s.State())
}

func TestSession_ProjectileDestroyedOnce(t *testing.T) {
	s := newTestSession(t)
	p := placeShot(s, KindPlayerShot, Vec{X: 400, Y: 100}, 0)
	require.Equal(t, 2, s.PendingTimers())

	assert.True(t, s.destroyProjectile(p))
	assert.False(t, s.destroyProjectile(p))
	assert.Equal(t, 1, s.PendingTimers(), "expiry timer canceled")
}

func TestSession_ProjectileExpires(t *testing.T) {
	s := newTestSession(t)
	p := placeShot(s, KindPlayerShot, Vec{X: 400, Y: 100}, 0)

	s.sched.Advance(1999 * time.Millisecond)
	assert.True(t, p.Active)

	s.sched.Advance(2 * time.Second)
	assert.False(t, p.Active)
	require.Len(t, s.events, 1)
	assert.Equal(t, EventProjectileExpired, s.events[0].Kind)
	assert.Equal(t, p.ID, s.events[0].Entity)
}

func TestSession_ProjectileLeavingArena(t *testing.T) {
	s := newTestSession(t)
	p := NewProjectile(KindPlayerShot, Vec{X: 400, Y: 10}, 0, s.cfg.PlayerShot, 0)
	p.Vel = Vec{Y: -400}
	s.addProjectile(p)

	s.integrate(0.1)

	assert.False(t, p.Active)
	assert.Equal(t, 1, s.PendingTimers())
}

func TestSession_IntegrateClampsBodies(t *testing.T) {
	s := newTestSession(t)
	s.player.Pos = Vec{X: 20, Y: 300}
	s.player.Vel = Vec{X: -200}

	s.integrate(0.1)
	assert.Equal(t, Vec{X: 15, Y: 300}, s.player.Pos)
}

func TestSession_EnemiesSeparate(t *testing.T) {
	s := newTestSession(t)
	clearEnemies(s)
	a := placeEnemy(s, Vec{X: 400, Y: 100}, 100)
	b := placeEnemy(s, Vec{X: 405, Y: 100}, 100)

	s.resolveCollisions(0)

	assert.InDelta(t, 24, Distance(a.Pos, b.Pos), 1e-6)
	assert.InDelta(t, 390.5, a.Pos.X, 1e-6)
	assert.InDelta(t, 414.5, b.Pos.X, 1e-6)
}

func TestSession_SpawnCycle(t *testing.T) {
	s := newTestSession(t)

	s.Tick(0, Input{})
	snap := s.Tick(10*time.Second, Input{})

	assert.True(t, snap.HasEvent(EventWaveSpawned))
	assert.Equal(t, 20, snap.ActiveEnemies)
	assert.Equal(t, Wave{Number: 1, SpeedBonus: 40, EnemyRadius: 16, BulletsPerShot: 3}, snap.Wave)

	var boosted int
	for _, e := range s.Enemies() {
		if e.Wave == 1 {
			boosted++
			assert.Equal(t, 40.0, e.ExtraSpeed)
			assert.Equal(t, 16.0, e.Radius)
		}
	}
	assert.Equal(t, 10, boosted)
}

func TestSession_VolleyUsesBulletsPerShot(t *testing.T) {
	s := newTestSession(t)
	s.Tick(0, Input{})

	var shots int
	for _, p := range s.Projectiles() {
		if p.ShotKind == KindPlayerShot {
			shots++
		}
	}
	assert.Equal(t, 2, shots)

	// Cadence holds the next volley back
	s.Tick(100*time.Millisecond, Input{})
	shots = 0
	for _, p := range s.Projectiles() {
		if p.ShotKind == KindPlayerShot {
			shots++
		}
	}
	assert.Equal(t, 2, shots)
}

func TestSession_EmptyBatchDoesNotWin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WaveSize = 0
	s := newSession(cfg, rand.New(rand.NewSource(1)), discardLogger(), 0)

	snap := s.Tick(10*time.Second, Input{})
	assert.Equal(t, StateRunning, snap.State)
	assert.Equal(t, 0, snap.ActiveEnemies)
}

func TestSession_Close(t *testing.T) {
	s := newTestSession(t)
	placeShot(s, KindPlayerShot, Vec{X: 400, Y: 100}, 0)

	s.Close()
	assert.Equal(t, 0, s.PendingTimers())
}

func TestSnapshot_IsIndependentCopy(t *testing.T) {
	s := newTestSession(t)
	snap := s.Tick(0, Input{})
	require.NotEmpty(t, snap.Enemies)

	snap.Enemies[0].Pos = Vec{X: -1, Y: -1}
	snap.Enemies[0].Bar.Fill = -1
	snap.Player.Bar.Fill = -1

	for _, e := range s.Enemies() {
		assert.NotEqual(t, Vec{X: -1, Y: -1}, e.Pos)
		assert.NotEqual(t, -1.0, e.Bar.Fill)
	}
	assert.Equal(t, 40.0, s.player.Bar.Fill)
}

func TestSnapshot_EntityKinds(t *testing.T) {
	s := newTestSession(t)
	placeShot(s, KindEnemyShot, Vec{X: 100, Y: 100}, 0)
	placeShot(s, KindPlayerShot, Vec{X: 200, Y: 100}, 0)

	snap := s.snapshot(0)

	assert.Equal(t, KindPlayer, snap.Player.Kind)
	for _, e := range snap.Enemies {
		assert.Equal(t, KindEnemy, e.Kind)
	}
	require.Len(t, snap.Projectiles, 2)
	assert.Equal(t, KindEnemyShot, snap.Projectiles[0].Kind)
	assert.Equal(t, KindPlayerShot, snap.Projectiles[1].Kind)
	assert.Nil(t, snap.Projectiles[0].Bar)
}
