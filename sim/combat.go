package sim

import (
	"time"

	"github.com/solarlune/resolv"
)

type enemyPair struct {
	a, b *Enemy
}

// resolveCollisions syncs the broad phase and applies every contact rule for this tick.
// Contacts are gathered before they are applied so the space is never changed mid-query.
func (s *Session) resolveCollisions(now time.Duration) {
	s.syncShapes()
	s.separateEnemies()

	s.resolvePlayerShots(now)
	if s.state != StateRunning {
		return
	}
	s.resolveEnemyShots(now)
	if s.state != StateRunning {
		return
	}
	s.resolveContacts(now)
}

func (s *Session) syncShapes() {
	s.phys.sync(&s.player.Body)
	for _, e := range s.enemies {
		s.phys.sync(&e.Body)
	}
	for _, p := range s.shots {
		s.phys.sync(&p.Body)
	}
}

// separateEnemies pushes overlapping enemies apart by half the overlap each.
func (s *Session) separateEnemies() {
	var pairs []enemyPair
	for _, e := range s.enemies {
		if !e.Active {
			continue
		}
		s.phys.overlapping(&e.Body, KindEnemy, func(other resolv.IShape) bool {
			o := s.enemyByShape[other]
			// Each pair once, from the lower id
			if o != nil && o.Active && e.ID < o.ID {
				pairs = append(pairs, enemyPair{a: e, b: o})
			}
			return true
		})
	}

	bounds := s.cfg.Bounds()
	for _, pr := range pairs {
		PushApart(&pr.a.Body, &pr.b.Body)
		pr.a.Pos = bounds.Clamp(pr.a.Pos, pr.a.Radius)
		pr.b.Pos = bounds.Clamp(pr.b.Pos, pr.b.Radius)
		s.phys.sync(&pr.a.Body)
		s.phys.sync(&pr.b.Body)
	}
}

// resolvePlayerShots applies each player projectile to the first enemy it overlaps.
func (s *Session) resolvePlayerShots(now time.Duration) {
	for _, shot := range s.shots {
		if !shot.Active || shot.ShotKind != KindPlayerShot {
			continue
		}

		var target *Enemy
		s.phys.overlapping(&shot.Body, KindEnemy, func(other resolv.IShape) bool {
			if e := s.enemyByShape[other]; e != nil && e.Active {
				target = e
				return false
			}
			return true
		})
		if target != nil {
			s.hitEnemy(shot, target, now)
		}
		if s.state != StateRunning {
			return
		}
	}
}

// hitEnemy consumes the shot, damages the enemy and checks the win condition on a kill.
func (s *Session) hitEnemy(shot *Projectile, e *Enemy, now time.Duration) {
	if !shot.Active || !e.Active {
		return
	}
	s.destroyProjectile(shot)

	killed := e.TakeHit(shot.Damage)
	s.emit(EventEnemyHit, now, e.ID, e.Health)
	if !killed {
		return
	}

	s.destroyEnemy(e)
	s.emit(EventEnemyKilled, now, e.ID, 0)
	if s.ActiveEnemies() == 0 {
		s.finish(StateWon, now)
	}
}

// resolveEnemyShots consumes every enemy projectile touching the player. Damage
// is still gated by the cooldown.
func (s *Session) resolveEnemyShots(now time.Duration) {
	var hits []*Projectile
	for _, shot := range s.shots {
		if !shot.Active || shot.ShotKind != KindEnemyShot {
			continue
		}
		s.phys.overlapping(&shot.Body, KindPlayer, func(resolv.IShape) bool {
			hits = append(hits, shot)
			return false
		})
	}

	for _, shot := range hits {
		if !s.destroyProjectile(shot) {
			continue
		}
		s.damagePlayer(now, shot.Damage)
		if s.state != StateRunning {
			return
		}
	}
}

// resolveContacts damages the player when any enemy body touches it.
func (s *Session) resolveContacts(now time.Duration) {
	touching := false
	s.phys.overlapping(&s.player.Body, KindEnemy, func(other resolv.IShape) bool {
		if e := s.enemyByShape[other]; e != nil && e.Active {
			touching = true
			return false
		}
		return true
	})
	if touching {
		s.damagePlayer(now, s.cfg.ContactDamage)
	}
}

// damagePlayer applies cooldown-gated damage and checks the lose condition.
func (s *Session) damagePlayer(now time.Duration, amount float64) {
	if s.state != StateRunning {
		return
	}
	if !s.player.TakeDamage(now, amount, s.cfg.DamageCooldown) {
		return
	}
	s.emit(EventPlayerHit, now, s.player.ID, s.player.Health)
	if s.player.Health <= 0 {
		s.finish(StateLost, now)
	}
}
