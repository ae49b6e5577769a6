// Package session runs one battle: it owns the world, the pointer and the
// selection, and advances them one tick at a time.
package session

import (
	"fmt"
	"sort"
	"strings"

	"github.com/younwookim/necromancer/internal/application/state"
	"github.com/younwookim/necromancer/internal/application/system"
	"github.com/younwookim/necromancer/internal/domain/grid"
	"github.com/younwookim/necromancer/internal/domain/reach"
	"github.com/younwookim/necromancer/internal/ecs"
	"github.com/younwookim/necromancer/internal/infrastructure/config"
)

// Session is the per-battle context passed through every tick
type Session struct {
	World *ecs.World
	Grid  *grid.Grid

	Pointer   state.Pointer
	Selection state.Selection

	// Reach is the area of the selected unit; Start is 0 when nothing is selected.
	Reach    reach.Area
	LastMove system.MoveResult
	Ticks    uint64

	player, enemy []ecs.EntityID

	collision  *system.CollisionSystem
	selection  *system.SelectionSystem
	movement   *system.MovementSystem
	occupation *system.OccupationSystem
}

// New loads the battlefield and wires the systems
func New(settings *config.SettingsConfig, sc *config.ScenarioConfig) (*Session, error) {
	bf, err := system.LoadBattlefield(settings, sc)
	if err != nil {
		return nil, fmt.Errorf("failed to load battlefield: %w", err)
	}

	rules := system.MovementRules{
		SpendMovementPoints:     settings.Rules.SpendMovementPoints,
		ClearSelectionAfterMove: settings.Rules.ClearSelectionAfterMove,
		AnchorX:                 settings.Units.AnchorX,
		AnchorY:                 settings.Units.AnchorY,
	}
	selection := system.NewSelectionSystem()

	s := &Session{
		World:      bf.World,
		Grid:       bf.Grid,
		player:     bf.Player,
		enemy:      bf.Enemy,
		collision:  system.NewCollisionSystem(bf.Tester),
		selection:  selection,
		movement:   system.NewMovementSystem(bf.Grid, rules, selection),
		occupation: system.NewOccupationSystem(),
	}
	s.occupation.Update(s.World)
	return s, nil
}

// ApplyInput records the latest pointer position and latches a press
func (s *Session) ApplyInput(in system.InputState) {
	s.Pointer = state.Pointer{X: float64(in.MouseX), Y: float64(in.MouseY)}
	if in.SelectPressed {
		s.Selection.Press()
	}
}

// Update runs one tick: pick, selection, movement, occupancy visuals
func (s *Session) Update() {
	s.collision.Update(s.World, s.Pointer)
	s.selection.Update(s.World, &s.Selection)
	s.LastMove = s.movement.Update(s.World, &s.Selection)
	s.occupation.Update(s.World)

	if s.Selection.Unit != 0 {
		s.Reach = s.movement.Reachable(s.World, s.Selection.Unit)
	} else {
		s.Reach = reach.Area{}
	}
	s.Ticks++
}

// Step applies one tick of input and runs the tick
func (s *Session) Step(in system.InputState) system.MoveResult {
	s.ApplyInput(in)
	s.Update()
	return s.LastMove
}

// Hovered returns the entity under the pointer, or 0
func (s *Session) Hovered() ecs.EntityID {
	return s.World.Current()
}

// Units returns the units of an army in spawn order
func (s *Session) Units(army ecs.Army) []ecs.EntityID {
	if army == ecs.ArmyEnemy {
		return s.enemy
	}
	return s.player
}

// EndTurn restores the movement points of an army
func (s *Session) EndTurn(army ecs.Army) {
	s.World.ResetMovementPoints(army)
}

// CheckOccupancy verifies that each unit stands on exactly one hexagon that
// names it as occupant, and that no other hexagon is occupied.
func (s *Session) CheckOccupancy() error {
	claimed := make(map[ecs.EntityID]ecs.EntityID)
	var err error
	s.World.Each(ecs.CompUnit, func(id ecs.EntityID) {
		if err != nil {
			return
		}
		h := s.World.Unit[id].Hex
		if h == 0 {
			err = fmt.Errorf("unit %d stands on no hexagon", id)
			return
		}
		if other, ok := claimed[h]; ok {
			err = fmt.Errorf("units %d and %d share hexagon %d", other, id, h)
			return
		}
		claimed[h] = id
		if occ := s.Grid.Occupant(h); !s.Grid.IsOccupied(h) || occ != id {
			err = fmt.Errorf("hexagon %d of unit %d has occupant %d", h, id, occ)
		}
	})
	if err != nil {
		return err
	}
	if n := s.Grid.OccupiedCount(); n != len(claimed) {
		return fmt.Errorf("%d hexagons occupied by %d units", n, len(claimed))
	}
	return nil
}

// Report describes the battlefield in plain text
func (s *Session) Report() string {
	var b strings.Builder
	cols, rows := s.Grid.Size()
	fmt.Fprintf(&b, "battlefield %dx%d, tick %d\n", cols, rows, s.Ticks)

	for _, army := range []ecs.Army{ecs.ArmyPlayer, ecs.ArmyEnemy} {
		fmt.Fprintf(&b, "%s:\n", army)
		for _, id := range s.Units(army) {
			u := s.World.Unit[id]
			o := s.Grid.Coord(u.Hex)
			c := o.Cube()
			fmt.Fprintf(&b, "  unit %d at (%d,%d) cube (%d,%d,%d) power %d movement %d/%d",
				id, o.Col, o.Row, c.X, c.Y, c.Z, u.Power, u.CurrentMovementPoints, u.MaxMovementPoints)
			if u.Fresh {
				b.WriteString(" fresh")
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "selection: %s", s.Selection.State())
	if s.Selection.Unit != 0 {
		fmt.Fprintf(&b, " unit %d", s.Selection.Unit)
	}
	if s.Selection.Hex != 0 {
		o := s.Grid.Coord(s.Selection.Hex)
		fmt.Fprintf(&b, " -> (%d,%d)", o.Col, o.Row)
	}
	b.WriteString("\n")

	if s.Reach.Start != 0 {
		var cells []string
		s.Reach.Hexes.Each(func(id ecs.EntityID) {
			o := s.Grid.Coord(id)
			cells = append(cells, fmt.Sprintf("(%d,%d)", o.Col, o.Row))
		})
		sort.Strings(cells)
		fmt.Fprintf(&b, "reachable: %s\n", strings.Join(cells, " "))
	}
	return b.String()
}
