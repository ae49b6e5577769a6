package system

import (
	"github.com/younwookim/necromancer/internal/application/state"
	"github.com/younwookim/necromancer/internal/domain/pick"
	"github.com/younwookim/necromancer/internal/ecs"
)

// CollisionSystem finds the entity under the pointer and keeps the hover
// images in sync with it
type CollisionSystem struct {
	tester pick.Tester
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(tester pick.Tester) *CollisionSystem {
	return &CollisionSystem{tester: tester}
}

// Update tags at most one collidable entity as current and returns it (0 if
// the pointer is over nothing). When shapes overlap, the entity with the
// highest id wins, so units beat the hexagon under them.
func (s *CollisionSystem) Update(w *ecs.World, ptr state.Pointer) ecs.EntityID {
	p := pick.Point{X: ptr.X, Y: ptr.Y}

	var current ecs.EntityID
	w.Each(ecs.CompCollidable|ecs.CompShape, func(id ecs.EntityID) {
		if s.tester.Contains(p, w.Shape[id]) {
			current = id
		}
	})

	w.Each(ecs.CompCollidable|ecs.CompSprite, func(id ecs.EntityID) {
		spr := &w.Sprite[id]
		if id == current {
			w.Add(id, ecs.TagCurrent)
			spr.Highlight()
			return
		}
		w.Remove(id, ecs.TagCurrent)
		if !w.Has(id, ecs.TagSelected) {
			spr.Restore()
		}
	})

	return current
}
