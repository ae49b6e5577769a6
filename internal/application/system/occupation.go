package system

import (
	"github.com/younwookim/necromancer/internal/ecs"
)

// OccupationSystem keeps each hexagon's default image in line with its
// occupancy flag
type OccupationSystem struct{}

// NewOccupationSystem creates a new occupation system
func NewOccupationSystem() *OccupationSystem {
	return &OccupationSystem{}
}

// Update switches the default image of occupied hexagons to their occupied
// image and back once vacated. Hovered or selected hexagons keep showing
// their hover image.
func (s *OccupationSystem) Update(w *ecs.World) {
	w.Each(ecs.CompSpace|ecs.CompSprite, func(id ecs.EntityID) {
		spr := &w.Sprite[id]
		want := spr.Base
		if w.Space[id].Occupied && spr.Occupied != "" {
			want = spr.Occupied
		}
		if spr.Default == want {
			return
		}
		spr.Default = want
		if !w.Has(id, ecs.TagCurrent) && !w.Has(id, ecs.TagSelected) {
			spr.Restore()
		}
	})
}
