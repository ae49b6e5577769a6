package ecs

import (
	"fmt"

	"github.com/younwookim/necromancer/internal/domain/hex"
	"github.com/younwookim/necromancer/internal/domain/pick"
)

// EntityID is a unique identifier for an entity (never recycled).
// It indexes directly into the component arrays of the World.
type EntityID uint32

// World stores every component in a dense array indexed by EntityID.
// Index 0 is reserved so that a zero EntityID means "none".
type World struct {
	mask []Component

	// Components
	Position []Position
	Shape    []Shape
	Sprite   []Sprite
	Space    []Space
	Unit     []Unit
}

// NewWorld creates a new empty world
func NewWorld() *World {
	w := &World{}
	w.grow() // slot 0 is "nil"
	return w
}

func (w *World) grow() EntityID {
	id := EntityID(len(w.mask))
	w.mask = append(w.mask, 0)
	w.Position = append(w.Position, Position{})
	w.Shape = append(w.Shape, Shape{})
	w.Sprite = append(w.Sprite, Sprite{})
	w.Space = append(w.Space, Space{})
	w.Unit = append(w.Unit, Unit{})
	return id
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	return w.grow()
}

// Len returns the number of entity slots ever allocated, including slot 0.
func (w *World) Len() int {
	return len(w.mask)
}

func (w *World) valid(id EntityID) bool {
	return id != 0 && int(id) < len(w.mask)
}

// Exists reports whether the entity has any component.
func (w *World) Exists(id EntityID) bool {
	return w.valid(id) && w.mask[id] != 0
}

// Has reports whether the entity carries all of the given components.
func (w *World) Has(id EntityID, c Component) bool {
	return w.valid(id) && w.mask[id]&c == c
}

// Add marks components as present.
func (w *World) Add(id EntityID, c Component) {
	w.mustValid(id)
	w.mask[id] |= c
}

// Remove marks components as absent. Array slots keep their last value.
func (w *World) Remove(id EntityID, c Component) {
	if w.valid(id) {
		w.mask[id] &^= c
	}
}

// Each calls fn for every entity that carries all components in c,
// in ascending ID order.
func (w *World) Each(c Component, fn func(id EntityID)) {
	for i := 1; i < len(w.mask); i++ {
		if w.mask[i]&c == c {
			fn(EntityID(i))
		}
	}
}

// Query returns the IDs of entities carrying all components in c.
func (w *World) Query(c Component) []EntityID {
	var ids []EntityID
	w.Each(c, func(id EntityID) { ids = append(ids, id) })
	return ids
}

func (w *World) mustValid(id EntityID) {
	if !w.valid(id) {
		panic(fmt.Sprintf("ecs: entity %d does not exist", id))
	}
}

func (w *World) must(id EntityID, c Component) {
	if !w.Has(id, c) {
		panic(fmt.Sprintf("ecs: entity %d has no %s component", id, c))
	}
}

// PositionOf returns the Position component. Panics if absent.
func (w *World) PositionOf(id EntityID) *Position {
	w.must(id, CompPosition)
	return &w.Position[id]
}

// ShapeOf returns the Shape component. Panics if absent.
func (w *World) ShapeOf(id EntityID) *Shape {
	w.must(id, CompShape)
	return &w.Shape[id]
}

// SpriteOf returns the Sprite component. Panics if absent.
func (w *World) SpriteOf(id EntityID) *Sprite {
	w.must(id, CompSprite)
	return &w.Sprite[id]
}

// SpaceOf returns the Space component. Panics if absent.
func (w *World) SpaceOf(id EntityID) *Space {
	w.must(id, CompSpace)
	return &w.Space[id]
}

// UnitOf returns the Unit component. Panics if absent.
func (w *World) UnitOf(id EntityID) *Unit {
	w.must(id, CompUnit)
	return &w.Unit[id]
}

// HexConfig holds the data for a hexagon entity.
type HexConfig struct {
	Coord    hex.Offset
	CenterX  float64
	CenterY  float64
	Width    float64
	Height   float64
	Tile     string
	Hover    string
	Occupied string
}

// CreateHexagon creates a hexagon entity whose image is centred on its cell.
func (w *World) CreateHexagon(cfg HexConfig) EntityID {
	id := w.NewEntity()

	w.Position[id] = Position{X: cfg.CenterX - cfg.Width/2, Y: cfg.CenterY - cfg.Height/2}
	w.Shape[id] = Shape{Kind: pick.ShapeHex, Center: pick.Point{X: cfg.CenterX, Y: cfg.CenterY}}
	w.Sprite[id] = Sprite{Base: cfg.Tile, Occupied: cfg.Occupied, Hover: cfg.Hover, Default: cfg.Tile, Current: cfg.Tile}
	w.Space[id] = Space{Coord: cfg.Coord, Cube: cfg.Coord.Cube()}
	w.mask[id] = CompPosition | CompShape | CompSprite | CompCollidable | CompSpace

	return id
}

// UnitConfig holds the data for a unit entity.
type UnitConfig struct {
	Army          Army
	Power         int
	MovementPoint int
	Size          float64
	Image         string
	Hover         string
}

// CreateUnit creates a unit entity. It stands on no hexagon until placed on the grid.
func (w *World) CreateUnit(cfg UnitConfig) EntityID {
	id := w.NewEntity()

	w.Sprite[id] = Sprite{Base: cfg.Image, Hover: cfg.Hover, Default: cfg.Image, Current: cfg.Image}
	w.Unit[id] = Unit{
		Army:                  cfg.Army,
		Power:                 cfg.Power,
		Fresh:                 true,
		MaxMovementPoints:     cfg.MovementPoint,
		CurrentMovementPoints: cfg.MovementPoint,
		Size:                  cfg.Size,
	}
	w.mask[id] = CompPosition | CompShape | CompSprite | CompCollidable | CompUnit

	return id
}

// PlaceUnitSprite moves a unit's image and box so that the anchor point of the
// box lies on (cx, cy). Anchor fractions are relative to the unit size.
func (w *World) PlaceUnitSprite(id EntityID, cx, cy, anchorX, anchorY float64) {
	u := w.UnitOf(id)
	x := cx - u.Size*anchorX
	y := cy - u.Size*anchorY
	w.Position[id] = Position{X: x, Y: y}
	w.Shape[id] = Shape{Kind: pick.ShapeBox, Box: pick.Rect{X: x, Y: y, W: u.Size, H: u.Size}}
}

// ResetMovementPoints restores the movement points of every unit of an army.
func (w *World) ResetMovementPoints(army Army) {
	w.Each(CompUnit, func(id EntityID) {
		u := &w.Unit[id]
		if u.Army == army {
			u.CurrentMovementPoints = u.MaxMovementPoints
		}
	})
}

// Units returns the units of an army in creation order.
func (w *World) Units(army Army) []EntityID {
	var ids []EntityID
	w.Each(CompUnit, func(id EntityID) {
		if w.Unit[id].Army == army {
			ids = append(ids, id)
		}
	})
	return ids
}

// Current returns the entity under the pointer, or 0.
func (w *World) Current() EntityID {
	for i := 1; i < len(w.mask); i++ {
		if w.mask[i]&TagCurrent != 0 {
			return EntityID(i)
		}
	}
	return 0
}
