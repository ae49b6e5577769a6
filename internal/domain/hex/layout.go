package hex

import "math"

// Layout holds the pixel geometry of a hexagon with a fixed edge length.
type Layout struct {
	Edge float64
}

// NewLayout creates a layout for the given edge length in pixels.
func NewLayout(edge float64) Layout {
	return Layout{Edge: edge}
}

// Width returns the corner-to-corner width (2E).
func (l Layout) Width() float64 {
	return 2 * l.Edge
}

// Height returns the flat-to-flat height (sqrt(3)·E).
func (l Layout) Height() float64 {
	return math.Sqrt(3) * l.Edge
}

// ToPixel returns the centre of the hexagon at (col, row).
func (l Layout) ToPixel(col, row int) (px, py float64) {
	w, h := l.Width(), l.Height()
	px = float64(col)*w*0.75 + l.Edge
	py = float64(row)*h + float64(col&1)*h/2 + l.Edge
	return px, py
}

// Center returns ToPixel for an offset address.
func (l Layout) Center(o Offset) (px, py float64) {
	return l.ToPixel(o.Col, o.Row)
}

// Corners returns the six corners of the flat-top hexagon centred at (cx, cy),
// starting at the east corner and going clockwise in screen space.
func (l Layout) Corners(cx, cy float64) [6][2]float64 {
	var pts [6][2]float64
	for i := 0; i < 6; i++ {
		angle := math.Pi / 3 * float64(i)
		pts[i] = [2]float64{cx + l.Edge*math.Cos(angle), cy + l.Edge*math.Sin(angle)}
	}
	return pts
}
