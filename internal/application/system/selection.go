package system

import (
	"log"

	"github.com/younwookim/necromancer/internal/application/state"
	"github.com/younwookim/necromancer/internal/ecs"
)

// SelectionSystem turns a press over the current entity into a selection
type SelectionSystem struct{}

// NewSelectionSystem creates a new selection system
func NewSelectionSystem() *SelectionSystem {
	return &SelectionSystem{}
}

// Update consumes the pending press, if any. A press over a unit selects it
// and clears the destination. A press over a hexagon replaces the selected
// hexagon; it only becomes a destination once a unit is selected. A press over
// nothing is dropped. Reports whether the selection changed.
func (s *SelectionSystem) Update(w *ecs.World, sel *state.Selection) bool {
	if !sel.Consume() {
		return false
	}

	current := w.Current()
	switch {
	case current == 0:
		return false

	case w.Has(current, ecs.CompUnit):
		s.deselect(w, sel.Hex)
		sel.Hex = 0
		if sel.Unit != current {
			s.deselect(w, sel.Unit)
		}
		sel.Unit = current
		s.mark(w, current)

		u := w.Unit[current]
		log.Printf("selected %s unit %d (power %d, movement %d/%d)",
			u.Army, current, u.Power, u.CurrentMovementPoints, u.MaxMovementPoints)
		return true

	case w.Has(current, ecs.CompSpace):
		if sel.Hex != current {
			s.deselect(w, sel.Hex)
		}
		sel.Hex = current
		s.mark(w, current)

		sp := w.Space[current]
		log.Printf("selected hexagon (%d,%d) cube (%d,%d,%d)",
			sp.Coord.Col, sp.Coord.Row, sp.Cube.X, sp.Cube.Y, sp.Cube.Z)
		return true
	}

	return false
}

func (s *SelectionSystem) mark(w *ecs.World, id ecs.EntityID) {
	w.Add(id, ecs.TagSelected)
	w.Sprite[id].Highlight()
}

func (s *SelectionSystem) deselect(w *ecs.World, id ecs.EntityID) {
	if id == 0 {
		return
	}
	w.Remove(id, ecs.TagSelected)
	if !w.Has(id, ecs.TagCurrent) {
		w.Sprite[id].Restore()
	}
}

// Clear drops both selections and restores their images.
func (s *SelectionSystem) Clear(w *ecs.World, sel *state.Selection) {
	s.deselect(w, sel.Unit)
	s.deselect(w, sel.Hex)
	sel.Unit, sel.Hex = 0, 0
}
