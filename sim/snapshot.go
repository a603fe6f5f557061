package sim

import "time"

// BarView is a read-only copy of a health bar
type BarView struct {
	Width float64
	Fill  float64
	Color BarColor
}

// EntityView is a read-only copy of one drawable entity
type EntityView struct {
	ID     EntityID
	Kind   Kind
	Pos    Vec
	Radius float64
	Fast   bool

	// Bar is nil for projectiles and for entities whose bar was destroyed
	Bar *BarView
}

// Snapshot is everything presentation needs for one frame. It shares no memory with the session.
type Snapshot struct {
	SessionID string
	State     State

	// Elapsed is the time since the session started
	Elapsed time.Duration

	PlayerHealth    float64
	PlayerMaxHealth float64
	Score           int
	Wave            Wave
	ActiveEnemies   int

	Player      EntityView
	Enemies     []EntityView
	Projectiles []EntityView

	// Events that happened during the tick that produced this snapshot
	Events []Event
}

// HasEvent reports whether the tick produced an event of kind k
func (s Snapshot) HasEvent(k EventKind) bool {
	for _, e := range s.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

func barView(b HealthBar) *BarView {
	if !b.Live() {
		return nil
	}
	return &BarView{Width: b.Width, Fill: b.Fill, Color: b.Color}
}

// snapshot copies the session state out.
func (s *Session) snapshot(now time.Duration) Snapshot {
	snap := Snapshot{
		SessionID:       s.ID,
		State:           s.state,
		Elapsed:         now - s.startedAt,
		PlayerHealth:    s.player.Health,
		PlayerMaxHealth: s.player.MaxHealth,
		Score:           s.score,
		Wave:            s.spawner.Wave(),
		Player: EntityView{
			ID:     s.player.ID,
			Kind:   s.player.Kind(),
			Pos:    s.player.Pos,
			Radius: s.player.Radius,
			Bar:    barView(s.player.Bar),
		},
		Enemies:     make([]EntityView, 0, len(s.enemies)),
		Projectiles: make([]EntityView, 0, len(s.shots)),
		Events:      append([]Event(nil), s.events...),
	}
	if snap.Elapsed < 0 {
		snap.Elapsed = 0
	}

	for _, e := range s.enemies {
		if !e.Active {
			continue
		}
		snap.ActiveEnemies++
		snap.Enemies = append(snap.Enemies, EntityView{
			ID:     e.ID,
			Kind:   e.Kind(),
			Pos:    e.Pos,
			Radius: e.Radius,
			Fast:   e.Fast,
			Bar:    barView(e.Bar),
		})
	}
	for _, p := range s.shots {
		if !p.Active {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, EntityView{
			ID:     p.ID,
			Kind:   p.Kind(),
			Pos:    p.Pos,
			Radius: p.Radius,
		})
	}
	return snap
}
