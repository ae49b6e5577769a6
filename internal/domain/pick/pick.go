// Package pick decides whether a pointer position lies inside an entity's shape.
package pick

import (
	"fmt"
	"math"

	"github.com/younwookim/necromancer/internal/domain/hex"
)

// Point is a pixel position.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box. The right and bottom edges are exclusive.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// ShapeKind tells which test applies to a Shape.
type ShapeKind uint8

const (
	ShapeBox ShapeKind = iota
	ShapeHex
)

// Shape is either a box or a hexagon centred on Center.
type Shape struct {
	Kind   ShapeKind
	Center Point // ShapeHex
	Box    Rect  // ShapeBox
}

// Mode selects the hexagon test.
type Mode int

const (
	// ModeApproximate is the boundary approximation used by the first release.
	ModeApproximate Mode = iota
	// ModeExact is exact flat-top polygon containment.
	ModeExact
)

// ParseMode maps a config name to a Mode. Empty means ModeApproximate.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "", "approximate":
		return ModeApproximate, nil
	case "exact":
		return ModeExact, nil
	default:
		return ModeApproximate, fmt.Errorf("unknown picking mode %q", name)
	}
}

// Approximation constants, in units of hexagon height.
const (
	hexMaxDY   = 0.55
	hexSlopeDX = 0.55
	hexSlopeDY = 0.255
	hexLimit   = 0.2855
)

// Tester runs the hit test for one hexagon geometry.
type Tester struct {
	Layout hex.Layout
	Mode   Mode
}

// NewTester creates a Tester.
func NewTester(layout hex.Layout, mode Mode) Tester {
	return Tester{Layout: layout, Mode: mode}
}

// Contains reports whether p lies inside s.
func (t Tester) Contains(p Point, s Shape) bool {
	if s.Kind == ShapeBox {
		return s.Box.Contains(p)
	}
	if t.Mode == ModeExact {
		return InHexagonExact(p, s.Center, t.Layout.Edge)
	}
	return InHexagon(p, s.Center, t.Layout.Height())
}

// InHexagon is the approximate test: with dx, dy the offsets from the centre
// divided by the hexagon height, p is inside iff dy <= 0.55 and
// 0.55·dx + 0.255·dy <= 0.2855.
func InHexagon(p, center Point, height float64) bool {
	dx := math.Abs(center.X-p.X) / height
	dy := math.Abs(center.Y-p.Y) / height
	return dy <= hexMaxDY && hexSlopeDX*dx+hexSlopeDY*dy <= hexLimit
}

// InHexagonExact tests p against the flat-top hexagon with the given edge.
func InHexagonExact(p, center Point, edge float64) bool {
	dx := math.Abs(p.X - center.X)
	dy := math.Abs(p.Y - center.Y)
	halfH := math.Sqrt(3) / 2 * edge
	if dx > edge || dy > halfH {
		return false
	}
	// slanted edge from (edge, 0) to (edge/2, halfH)
	return math.Sqrt(3)*dx+dy <= math.Sqrt(3)*edge
}
