package sim

import "github.com/solarlune/resolv"

var (
	tagPlayer     = resolv.NewTag("player")
	tagEnemy      = resolv.NewTag("enemy")
	tagPlayerShot = resolv.NewTag("player_shot")
	tagEnemyShot  = resolv.NewTag("enemy_shot")
)

func tagFor(k Kind) resolv.Tags {
	switch k {
	case KindPlayer:
		return tagPlayer
	case KindEnemy:
		return tagEnemy
	case KindPlayerShot:
		return tagPlayerShot
	default:
		return tagEnemyShot
	}
}

// Physics is the broad phase: one circle per active body in a cell grid.
// The cell grid only proposes candidates; Body.Overlaps decides contact.
type Physics struct {
	space  *resolv.Space
	bodies map[resolv.IShape]*Body
}

func newPhysics(cfg Config) *Physics {
	return &Physics{
		space:  resolv.NewSpace(int(cfg.ArenaWidth), int(cfg.ArenaHeight), cfg.PhysicsCellSize, cfg.PhysicsCellSize),
		bodies: make(map[resolv.IShape]*Body),
	}
}

// attach gives the body a circle in the space, tagged with its kind.
func (p *Physics) attach(b *Body, k Kind) *resolv.Circle {
	c := resolv.NewCircle(b.Pos.X, b.Pos.Y, b.Radius)
	c.Tags().Set(tagFor(k))
	p.space.Add(c)
	p.bodies[c] = b
	b.shape = c
	return c
}

// detach removes the body's circle. A body without one is ignored.
func (p *Physics) detach(b *Body) {
	if b.shape == nil {
		return
	}
	p.space.Remove(b.shape)
	delete(p.bodies, b.shape)
	b.shape = nil
}

func (p *Physics) sync(b *Body) {
	if b.shape == nil {
		return
	}
	b.shape.SetPosition(b.Pos.X, b.Pos.Y)
}

// overlapping calls fn for each body of kind k intersecting b until fn returns false.
// Containment and coincident centres count as contact. fn must not add or remove shapes.
func (p *Physics) overlapping(b *Body, k Kind, fn func(other resolv.IShape) bool) {
	if b.shape == nil {
		return
	}
	self := b.shape
	done := false
	self.SelectTouchingCells(1).FilterShapes().ByTags(tagFor(k)).ForEach(func(other resolv.IShape) bool {
		if done || other == resolv.IShape(self) {
			return !done
		}
		if ob := p.bodies[other]; ob != nil && b.Overlaps(ob) {
			done = !fn(other)
		}
		return !done
	})
}
