package sim

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// Arena owns the current session and the restart flow. It is driven by a single
// goroutine calling Tick once per frame.
type Arena struct {
	cfg    Config
	rng    Rand
	logger *slog.Logger

	session *Session
	last    Snapshot
}

// Option configures an Arena
type Option func(*Arena)

// WithLogger sets the logger used for session lifecycle messages
func WithLogger(l *slog.Logger) Option {
	return func(a *Arena) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithRand sets the randomness source for spawning and enemy fire
func WithRand(r Rand) Option {
	return func(a *Arena) {
		if r != nil {
			a.rng = r
		}
	}
}

// WithSeed seeds a math/rand source for reproducible sessions
func WithSeed(seed int64) Option {
	return func(a *Arena) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

// NewArena validates cfg and starts the first session at now.
func NewArena(cfg Config, now time.Duration, opts ...Option) (*Arena, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new arena: %w", err)
	}

	a := &Arena{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.session = newSession(cfg, a.rng, a.logger, now)
	a.last = a.session.snapshot(now)
	return a, nil
}

// Config returns the arena configuration
func (a *Arena) Config() Config { return a.cfg }

// Session returns the current session
func (a *Arena) Session() *Session { return a.session }

// Snapshot returns the snapshot of the last tick
func (a *Arena) Snapshot() Snapshot { return a.last }

// Restart tears the current session down and starts a fresh one at now.
func (a *Arena) Restart(now time.Duration) {
	old := a.session
	old.Close()
	a.session = newSession(a.cfg, a.rng, a.logger, now)
	a.logger.Info("session restarted", "previous_session_id", old.ID, "previous_state", old.State().String())
}

// Tick advances the simulation. A restart input is honoured once the session has
// ended. A panic inside the tick is logged and the previous snapshot returned.
func (a *Arena) Tick(now time.Duration, in Input) (snap Snapshot) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("tick panicked", "session_id", a.session.ID, "panic", r)
			snap = a.last
		}
	}()

	if in.Restart && a.session.State().Terminal() {
		a.Restart(now)
	}

	a.last = a.session.Tick(now, in)
	return a.last
}
