package ecs

import (
	"github.com/younwookim/necromancer/internal/domain/hex"
	"github.com/younwookim/necromancer/internal/domain/pick"
)

// Component is a bit in an entity's component mask.
type Component uint16

const (
	CompPosition Component = 1 << iota
	CompShape
	CompSprite
	CompCollidable
	CompSpace
	CompUnit

	// Tags
	TagCurrent
	TagSelected
)

// String returns the component name (used in fail-fast messages).
func (c Component) String() string {
	switch c {
	case CompPosition:
		return "Position"
	case CompShape:
		return "Shape"
	case CompSprite:
		return "Sprite"
	case CompCollidable:
		return "Collidable"
	case CompSpace:
		return "Space"
	case CompUnit:
		return "Unit"
	case TagCurrent:
		return "Current"
	case TagSelected:
		return "Selected"
	default:
		return "Component(?)"
	}
}

// Position is the pixel where an entity's image is drawn (top-left corner).
type Position struct {
	X, Y float64
}

// Sprite names the images of a renderable entity.
// Current is the image blitted this frame; Restore resets it to Default.
// Default is Base, or Occupied for a hexagon with a unit on it.
type Sprite struct {
	Base     string
	Occupied string
	Hover    string
	Default  string
	Current  string
}

// Restore resets the displayed image to the default appearance.
func (s *Sprite) Restore() {
	s.Current = s.Default
}

// Highlight shows the hover image.
func (s *Sprite) Highlight() {
	if s.Hover != "" {
		s.Current = s.Hover
	}
}

// Space is the component of a hexagon a unit can stand on.
// Occupied is the single source of truth for occupancy.
type Space struct {
	Coord    hex.Offset
	Cube     hex.Cube
	Occupied bool
	Occupant EntityID // 0 when empty
}

// Army identifies which side a unit fights for.
type Army int

const (
	ArmyPlayer Army = iota
	ArmyEnemy
)

// String returns the army name.
func (a Army) String() string {
	switch a {
	case ArmyPlayer:
		return "player"
	case ArmyEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Unit holds combat and movement data of a unit.
type Unit struct {
	Army                  Army
	Power                 int
	Fresh                 bool
	MaxMovementPoints     int
	CurrentMovementPoints int
	Hex                   EntityID // hexagon the unit stands on
	Size                  float64  // sprite edge in pixels
}

// Shape is the pick shape of a collidable entity.
type Shape = pick.Shape
