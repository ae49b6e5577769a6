package system

import (
	"log"

	"github.com/younwookim/necromancer/internal/application/state"
	"github.com/younwookim/necromancer/internal/domain/grid"
	"github.com/younwookim/necromancer/internal/domain/reach"
	"github.com/younwookim/necromancer/internal/ecs"
)

// MoveResult is the outcome of a move attempt
type MoveResult int

const (
	// MoveNone means there was nothing to do: no complete selection, or the
	// destination is the hexagon the unit already stands on.
	MoveNone MoveResult = iota
	MoveAccepted
	MoveRejectedUnreachable
	MoveRejectedOccupied
)

// String returns the string representation of the result
func (r MoveResult) String() string {
	switch r {
	case MoveNone:
		return "None"
	case MoveAccepted:
		return "Accepted"
	case MoveRejectedUnreachable:
		return "RejectedUnreachable"
	case MoveRejectedOccupied:
		return "RejectedOccupied"
	default:
		return "Unknown"
	}
}

// MovementRules configures the movement system
type MovementRules struct {
	SpendMovementPoints     bool
	ClearSelectionAfterMove bool
	AnchorX, AnchorY        float64
}

type moveAttempt struct {
	unit, dest ecs.EntityID
	result     MoveResult
}

// MovementSystem moves the selected unit to the selected hexagon
type MovementSystem struct {
	grid      *grid.Grid
	rules     MovementRules
	selection *SelectionSystem
	last      moveAttempt
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(g *grid.Grid, rules MovementRules, selection *SelectionSystem) *MovementSystem {
	return &MovementSystem{grid: g, rules: rules, selection: selection}
}

// Update attempts the move described by the selection. A rejected move leaves
// the selection as it is, so the same attempt repeats every tick until the
// player picks something else; it is logged once.
func (s *MovementSystem) Update(w *ecs.World, sel *state.Selection) MoveResult {
	if !sel.Complete() {
		s.last = moveAttempt{}
		return MoveNone
	}

	result := s.Move(w, sel.Unit, sel.Hex)
	attempt := moveAttempt{unit: sel.Unit, dest: sel.Hex, result: result}
	if attempt != s.last && result != MoveNone {
		s.logAttempt(w, attempt)
	}
	s.last = attempt

	if result == MoveAccepted && s.rules.ClearSelectionAfterMove {
		s.selection.Clear(w, sel)
	}
	return result
}

// Move validates and applies a move of unit to dest. Occupancy and position
// change together or not at all.
func (s *MovementSystem) Move(w *ecs.World, unit, dest ecs.EntityID) MoveResult {
	u := w.UnitOf(unit)
	if dest == u.Hex {
		return MoveNone
	}
	if s.grid.IsOccupied(dest) {
		return MoveRejectedOccupied
	}

	area := s.Reachable(w, unit)
	steps, ok := area.Steps(dest)
	if !ok {
		return MoveRejectedUnreachable
	}

	cx, cy := s.grid.Center(dest)
	w.PlaceUnitSprite(unit, cx, cy, s.rules.AnchorX, s.rules.AnchorY)
	if u.Hex != 0 {
		s.grid.SetOccupied(u.Hex, false)
	}
	s.grid.Occupy(dest, unit)
	u.Hex = dest

	if s.rules.SpendMovementPoints {
		u.CurrentMovementPoints -= steps
	}
	return MoveAccepted
}

// Reachable returns the area the unit can reach from its hexagon.
func (s *MovementSystem) Reachable(w *ecs.World, unit ecs.EntityID) reach.Area {
	u := w.UnitOf(unit)
	return reach.Compute(s.grid, u.Hex, u.CurrentMovementPoints)
}

func (s *MovementSystem) logAttempt(w *ecs.World, a moveAttempt) {
	to := s.grid.Coord(a.dest)
	u := w.Unit[a.unit]
	switch a.result {
	case MoveAccepted:
		log.Printf("unit %d moved to (%d,%d), %d movement left", a.unit, to.Col, to.Row, u.CurrentMovementPoints)
	default:
		log.Printf("unit %d cannot move to (%d,%d): %s", a.unit, to.Col, to.Row, a.result)
	}
}
