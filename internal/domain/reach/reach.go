// Package reach computes the hexagons a unit can reach with its movement points.
package reach

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/younwookim/necromancer/internal/ecs"
)

// Graph is the part of the grid the search needs.
type Graph interface {
	Neighbors(id ecs.EntityID) []ecs.EntityID
	IsOccupied(id ecs.EntityID) bool
}

// Area is the result of a search: the reachable set and the BFS layers that
// produced it. Layers[0] is the start; Layers[i] holds hexagons first reached
// in i steps.
type Area struct {
	Start  ecs.EntityID
	Hexes  mapset.Set[ecs.EntityID]
	Layers [][]ecs.EntityID
}

// Contains reports whether id is reachable.
func (a Area) Contains(id ecs.EntityID) bool {
	return a.Hexes.Has(id)
}

// Size returns the number of reachable hexagons, start included.
func (a Area) Size() int {
	return a.Hexes.Size()
}

// Steps returns the number of steps needed to reach id.
func (a Area) Steps(id ecs.EntityID) (int, bool) {
	for i, layer := range a.Layers {
		for _, h := range layer {
			if h == id {
				return i, true
			}
		}
	}
	return 0, false
}

// Compute expands from start in exactly movementPoints layers. A neighbor joins
// the next layer if it was not visited before and is unoccupied. The start is
// always included, even though its own unit occupies it. A negative budget is
// treated as zero.
func Compute(g Graph, start ecs.EntityID, movementPoints int) Area {
	visited := mapset.New[ecs.EntityID]()
	visited.Put(start)
	layers := [][]ecs.EntityID{{start}}

	for i := 1; i <= movementPoints; i++ {
		var next []ecs.EntityID
		for _, h := range layers[i-1] {
			for _, n := range g.Neighbors(h) {
				if visited.Has(n) || g.IsOccupied(n) {
					continue
				}
				visited.Put(n)
				next = append(next, n)
			}
		}
		if len(next) == 0 {
			break
		}
		layers = append(layers, next)
	}

	return Area{Start: start, Hexes: visited, Layers: layers}
}

// Reachable returns the set of hexagons reachable from start.
func Reachable(g Graph, start ecs.EntityID, movementPoints int) mapset.Set[ecs.EntityID] {
	return Compute(g, start, movementPoints).Hexes
}
