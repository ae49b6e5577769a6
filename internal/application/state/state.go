package state

import "github.com/younwookim/necromancer/internal/ecs"

// SelectionState represents the state of the selection machine
type SelectionState int

const (
	StateIdle SelectionState = iota
	StateUnitSelected
)

// String returns the string representation of the selection state
func (s SelectionState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateUnitSelected:
		return "UnitSelected"
	default:
		return "Unknown"
	}
}

// Pointer is the latest pointer position reported by the input collaborator.
type Pointer struct {
	X, Y float64
}

// Selection holds the committed choices of the player. Unit and Hex are
// back-references into the world (0 = none). Pressed is the "select pressed"
// edge; it is set by input and consumed by the selection system.
type Selection struct {
	Unit    ecs.EntityID
	Hex     ecs.EntityID
	Pressed bool
}

// State derives the machine state from the selection.
func (s Selection) State() SelectionState {
	if s.Unit != 0 {
		return StateUnitSelected
	}
	return StateIdle
}

// Complete reports whether both a unit and a destination are selected.
func (s Selection) Complete() bool {
	return s.Unit != 0 && s.Hex != 0
}

// Press latches a select-pressed edge. Later presses before consumption
// collapse into one.
func (s *Selection) Press() {
	s.Pressed = true
}

// Consume returns the latched edge and clears it.
func (s *Selection) Consume() bool {
	p := s.Pressed
	s.Pressed = false
	return p
}
