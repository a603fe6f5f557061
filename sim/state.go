package sim

import "time"

// State is the session lifecycle state
type State int

const (
	StateRunning State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	}
	return "unknown"
}

// Terminal reports whether the session has ended
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// EventKind classifies something that happened during a tick
type EventKind int

const (
	EventWaveSpawned EventKind = iota
	EventEnemyHit
	EventEnemyKilled
	EventPlayerHit
	EventProjectileExpired
	EventWon
	EventLost
)

func (k EventKind) String() string {
	switch k {
	case EventWaveSpawned:
		return "wave_spawned"
	case EventEnemyHit:
		return "enemy_hit"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventPlayerHit:
		return "player_hit"
	case EventProjectileExpired:
		return "projectile_expired"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	}
	return "unknown"
}

// Event is emitted into the snapshot of the tick it happened in.
type Event struct {
	Kind   EventKind
	At     time.Duration
	Entity EntityID

	// Value carries the remaining health for hits and the wave number for spawns
	Value float64
}
