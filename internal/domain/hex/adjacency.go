package hex

import "fmt"

// Adjacency selects the neighbor rule used by the grid.
type Adjacency int

const (
	// AdjacencyOffset is the six distinct neighbors of the odd-column layout.
	AdjacencyOffset Adjacency = iota
	// AdjacencyLegacy is the first-release movement table, which repeats
	// (0,1) and never reaches one of the six directions.
	AdjacencyLegacy
)

// String returns the config name of the rule.
func (a Adjacency) String() string {
	switch a {
	case AdjacencyOffset:
		return "offset"
	case AdjacencyLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// ParseAdjacency maps a config name to a rule. Empty means AdjacencyOffset.
func ParseAdjacency(name string) (Adjacency, error) {
	switch name {
	case "", "offset":
		return AdjacencyOffset, nil
	case "legacy":
		return AdjacencyLegacy, nil
	default:
		return AdjacencyOffset, fmt.Errorf("unknown adjacency %q", name)
	}
}

// Neighbor offsets for even and odd columns (odd columns sit half a cell lower).
var (
	evenColumnDirections = [6]Offset{
		{Col: +1, Row: 0}, {Col: +1, Row: -1}, {Col: 0, Row: -1},
		{Col: -1, Row: -1}, {Col: -1, Row: 0}, {Col: 0, Row: +1},
	}
	oddColumnDirections = [6]Offset{
		{Col: +1, Row: +1}, {Col: +1, Row: 0}, {Col: 0, Row: -1},
		{Col: -1, Row: 0}, {Col: -1, Row: +1}, {Col: 0, Row: +1},
	}
)

// LegacyOffsets is the first-release movement table. Neighbors are found at
// (col-dc, row-dr).
var LegacyOffsets = [6]Offset{
	{Col: -1, Row: -1}, {Col: 0, Row: 1}, {Col: 1, Row: -1},
	{Col: 1, Row: 0}, {Col: 0, Row: 1}, {Col: -1, Row: 0},
}

// Neighbors returns the candidate neighbor addresses of o under rule a,
// without any bounds check. Duplicates are collapsed.
func (o Offset) Neighbors(a Adjacency) []Offset {
	out := make([]Offset, 0, 6)
	switch a {
	case AdjacencyLegacy:
		for _, d := range LegacyOffsets {
			n := Offset{Col: o.Col - d.Col, Row: o.Row - d.Row}
			if !containsOffset(out, n) {
				out = append(out, n)
			}
		}
	default:
		dirs := &evenColumnDirections
		if o.Col&1 == 1 {
			dirs = &oddColumnDirections
		}
		for _, d := range dirs {
			out = append(out, o.Add(d))
		}
	}
	return out
}

func containsOffset(list []Offset, o Offset) bool {
	for _, v := range list {
		if v == o {
			return true
		}
	}
	return false
}
