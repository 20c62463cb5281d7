package geometry

import "math"

// Hex is a board cell in axial coordinates. The third cube coordinate is
// implicit: s = -q - r.
type Hex struct {
	Q int `json:"q"`
	R int `json:"r"`
}

const (
	// BoardRadius is the hex distance from the center cell to the rim.
	BoardRadius = 2

	// TileCount is the number of cells on a radius-2 hexagonal board,
	// laid out in rows of 3, 4, 5, 4 and 3.
	TileCount = 19
)

var neighborDirections = [6]Hex{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent axial coordinates, which may fall
// outside the board.
func (h Hex) Neighbors() [6]Hex {
	var result [6]Hex
	for i, dir := range neighborDirections {
		result[i] = Hex{Q: h.Q + dir.Q, R: h.R + dir.R}
	}
	return result
}

// Cells lists the board cells in row-major order: rows top to bottom,
// cells left to right within each row. Position indices 0..18 are defined
// by this ordering.
var Cells = buildCells()

var cellIndex = buildCellIndex()

var adjacency = buildAdjacency()

func buildCells() [TileCount]Hex {
	var cells [TileCount]Hex
	i := 0
	for r := -BoardRadius; r <= BoardRadius; r++ {
		qMin := max(-BoardRadius, -r-BoardRadius)
		qMax := min(BoardRadius, -r+BoardRadius)
		for q := qMin; q <= qMax; q++ {
			cells[i] = Hex{Q: q, R: r}
			i++
		}
	}
	return cells
}

func buildCellIndex() map[Hex]int {
	index := make(map[Hex]int, TileCount)
	for i, cell := range Cells {
		index[cell] = i
	}
	return index
}

func buildAdjacency() [TileCount][]int {
	var graph [TileCount][]int
	for i, cell := range Cells {
		for _, n := range cell.Neighbors() {
			if j, ok := cellIndex[n]; ok {
				graph[i] = append(graph[i], j)
			}
		}
	}
	return graph
}

// IndexOf returns the position index of the given cell, or false if the
// cell is off the board.
func IndexOf(h Hex) (int, bool) {
	i, ok := cellIndex[h]
	return i, ok
}

// Adjacency returns the static edge-sharing graph: for each position index,
// the indices of the on-board cells sharing a hex edge with it. The table
// is computed once at init; callers must not mutate the neighbor slices.
func Adjacency() [TileCount][]int {
	return adjacency
}

// AdjacentTo returns the neighbor indices of one position.
func AdjacentTo(i int) []int {
	return adjacency[i]
}

// Placement is the world-space position of one tile center, on the ground
// plane used by the renderer (x right, z toward the camera).
type Placement struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Placements maps each position index to pointy-top world coordinates for
// hexes of the given size (center-to-corner distance).
func Placements(size float64) [TileCount]Placement {
	var table [TileCount]Placement
	for i, cell := range Cells {
		q, r := float64(cell.Q), float64(cell.R)
		table[i] = Placement{
			X: size * math.Sqrt(3) * (q + r/2),
			Z: size * 1.5 * r,
		}
	}
	return table
}
