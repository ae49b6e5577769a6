// Package hex provides the coordinate model of the battlefield.
//
// Cells are addressed by offset coordinates (column, row) in a flat-top
// layout where odd columns are shifted down by half a hexagon.
package hex

import "math"

// Offset is a grid address (column, row).
type Offset struct {
	Col, Row int
}

// Cube is a three-axis coordinate with X+Y+Z == 0.
type Cube struct {
	X, Y, Z int
}

// Valid reports whether the cube invariant holds.
func (c Cube) Valid() bool {
	return c.X+c.Y+c.Z == 0
}

// Sub returns c-o component-wise.
func (c Cube) Sub(o Cube) Cube {
	return Cube{X: c.X - o.X, Y: c.Y - o.Y, Z: c.Z - o.Z}
}

// ToCube converts a grid address to the cube coordinate reported to the player.
// The row-parity formula matches the coordinates shown in reports; use
// LayoutCube for distance and adjacency math.
func ToCube(col, row int) Cube {
	x := col - (row-(row&1))/2
	z := row
	return Cube{X: x, Y: -x - z, Z: z}
}

// Cube returns ToCube(o.Col, o.Row).
func (o Offset) Cube() Cube {
	return ToCube(o.Col, o.Row)
}

// LayoutCube converts the address to a cube coordinate consistent with the
// odd-column pixel layout.
func (o Offset) LayoutCube() Cube {
	x := o.Col
	z := o.Row - (o.Col-(o.Col&1))/2
	return Cube{X: x, Y: -x - z, Z: z}
}

// FromLayoutCube is the inverse of LayoutCube.
func FromLayoutCube(c Cube) Offset {
	return Offset{Col: c.X, Row: c.Z + (c.X-(c.X&1))/2}
}

// Add returns the address displaced by d.
func (o Offset) Add(d Offset) Offset {
	return Offset{Col: o.Col + d.Col, Row: o.Row + d.Row}
}

// Distance returns the number of neighbor steps between a and b.
func Distance(a, b Offset) int {
	d := a.LayoutCube().Sub(b.LayoutCube())
	return max(abs(d.X), abs(d.Y), abs(d.Z))
}

// Line returns the cells on the straight line from a to b, both included.
func Line(a, b Offset) []Offset {
	n := Distance(a, b)
	if n == 0 {
		return []Offset{a}
	}
	ca, cb := a.LayoutCube(), b.LayoutCube()
	line := make([]Offset, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		// nudge off exact edges so ties round consistently
		x := lerp(float64(ca.X)+1e-6, float64(cb.X)+1e-6, t)
		y := lerp(float64(ca.Y)+1e-6, float64(cb.Y)+1e-6, t)
		z := lerp(float64(ca.Z)-2e-6, float64(cb.Z)-2e-6, t)
		line = append(line, FromLayoutCube(cubeRound(x, y, z)))
	}
	return line
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func cubeRound(x, y, z float64) Cube {
	rx, ry, rz := math.Round(x), math.Round(y), math.Round(z)
	dx, dy, dz := math.Abs(rx-x), math.Abs(ry-y), math.Abs(rz-z)
	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return Cube{X: int(rx), Y: int(ry), Z: int(rz)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
