// Package grid owns the hexagon entities of the battlefield and their occupancy.
package grid

import (
	"errors"
	"fmt"

	"github.com/younwookim/necromancer/internal/domain/hex"
	"github.com/younwookim/necromancer/internal/ecs"
)

var (
	// ErrAlreadyBuilt is returned when Build is called on a built grid.
	ErrAlreadyBuilt = errors.New("grid: already built")
	// ErrInvalidSize is returned for a non-positive column or row count.
	ErrInvalidSize = errors.New("grid: invalid size")
	// ErrCubeInvariant is returned if a cell's cube coordinate breaks x+y+z == 0.
	ErrCubeInvariant = errors.New("grid: cube invariant violated")
)

// Images names the hexagon images assigned at build time.
type Images struct {
	Tile     string
	Hover    string
	Occupied string
}

// Grid indexes hexagon entities by (column, row).
type Grid struct {
	world     *ecs.World
	layout    hex.Layout
	adjacency hex.Adjacency
	images    Images

	cols, rows int
	cells      []ecs.EntityID // row-major
	built      bool
}

// New creates an empty grid bound to a world.
func New(w *ecs.World, layout hex.Layout, adjacency hex.Adjacency, images Images) *Grid {
	return &Grid{
		world:     w,
		layout:    layout,
		adjacency: adjacency,
		images:    images,
	}
}

// Build creates one hexagon per (col, row) in [0, cols) × [0, rows).
func (g *Grid) Build(cols, rows int) error {
	if g.built {
		return ErrAlreadyBuilt
	}
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, cols, rows)
	}

	cells := make([]ecs.EntityID, cols*rows)
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			o := hex.Offset{Col: col, Row: row}
			if !o.Cube().Valid() || !o.LayoutCube().Valid() {
				return fmt.Errorf("%w at %v", ErrCubeInvariant, o)
			}
			cx, cy := g.layout.Center(o)
			cells[row*cols+col] = g.world.CreateHexagon(ecs.HexConfig{
				Coord:    o,
				CenterX:  cx,
				CenterY:  cy,
				Width:    g.layout.Width(),
				Height:   g.layout.Height(),
				Tile:     g.images.Tile,
				Hover:    g.images.Hover,
				Occupied: g.images.Occupied,
			})
		}
	}

	g.cols, g.rows = cols, rows
	g.cells = cells
	g.built = true
	return nil
}

// Size returns the column and row counts.
func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// Len returns the number of hexagons.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Layout returns the pixel geometry.
func (g *Grid) Layout() hex.Layout {
	return g.layout
}

// Adjacency returns the neighbor rule.
func (g *Grid) Adjacency() hex.Adjacency {
	return g.adjacency
}

// InBounds reports whether o addresses a cell of the grid.
func (g *Grid) InBounds(o hex.Offset) bool {
	return o.Col >= 0 && o.Col < g.cols && o.Row >= 0 && o.Row < g.rows
}

// Lookup returns the hexagon at o.
func (g *Grid) Lookup(o hex.Offset) (ecs.EntityID, bool) {
	if !g.InBounds(o) {
		return 0, false
	}
	return g.cells[o.Row*g.cols+o.Col], true
}

// MustLookup returns the hexagon at o and panics if there is none.
func (g *Grid) MustLookup(o hex.Offset) ecs.EntityID {
	id, ok := g.Lookup(o)
	if !ok {
		panic(fmt.Sprintf("grid: no hexagon at (%d,%d)", o.Col, o.Row))
	}
	return id
}

// Coord returns the address of a hexagon entity.
func (g *Grid) Coord(id ecs.EntityID) hex.Offset {
	return g.world.SpaceOf(id).Coord
}

// Center returns the pixel centre of a hexagon entity.
func (g *Grid) Center(id ecs.EntityID) (x, y float64) {
	return g.layout.Center(g.Coord(id))
}

// Neighbors returns the in-grid neighbors of a hexagon entity.
func (g *Grid) Neighbors(id ecs.EntityID) []ecs.EntityID {
	return g.NeighborsAt(g.Coord(id))
}

// NeighborsAt returns the in-grid neighbors of the cell at o. Offsets falling
// outside the grid are skipped.
func (g *Grid) NeighborsAt(o hex.Offset) []ecs.EntityID {
	candidates := o.Neighbors(g.adjacency)
	out := make([]ecs.EntityID, 0, len(candidates))
	for _, n := range candidates {
		if id, ok := g.Lookup(n); ok {
			out = append(out, id)
		}
	}
	return out
}

// IsOccupied reports the occupancy flag of a hexagon.
func (g *Grid) IsOccupied(id ecs.EntityID) bool {
	return g.world.SpaceOf(id).Occupied
}

// SetOccupied writes the occupancy flag. Clearing it also drops the occupant.
func (g *Grid) SetOccupied(id ecs.EntityID, occupied bool) {
	sp := g.world.SpaceOf(id)
	sp.Occupied = occupied
	if !occupied {
		sp.Occupant = 0
	}
}

// Occupant returns the unit standing on a hexagon, or 0.
func (g *Grid) Occupant(id ecs.EntityID) ecs.EntityID {
	return g.world.SpaceOf(id).Occupant
}

// Occupy marks a hexagon as taken by unit.
func (g *Grid) Occupy(id, unit ecs.EntityID) {
	sp := g.world.SpaceOf(id)
	sp.Occupied = true
	sp.Occupant = unit
}

// Each calls fn for every hexagon in column-major order.
func (g *Grid) Each(fn func(id ecs.EntityID, o hex.Offset)) {
	for col := 0; col < g.cols; col++ {
		for row := 0; row < g.rows; row++ {
			fn(g.cells[row*g.cols+col], hex.Offset{Col: col, Row: row})
		}
	}
}

// OccupiedCount returns the number of occupied hexagons.
func (g *Grid) OccupiedCount() int {
	n := 0
	for _, id := range g.cells {
		if g.world.Space[id].Occupied {
			n++
		}
	}
	return n
}
