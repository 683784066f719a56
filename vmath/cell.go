package vmath

import "math"

// Cell is an integer grid coordinate pair used as a spatial hash key
type Cell struct {
	X, Y int
}

// Offset returns the cell displaced by (dx, dy)
func (c Cell) Offset(dx, dy int) Cell {
	return Cell{c.X + dx, c.Y + dy}
}

// CellOf returns the cell containing point p for square cells of the given size
// Uses floor so negative coordinates map to negative cells rather than collapsing onto 0
func CellOf(p Vec2, cellSize float64) Cell {
	return Cell{
		X: int(math.Floor(p.X / cellSize)),
		Y: int(math.Floor(p.Y / cellSize)),
	}
}

// Chebyshev returns the chessboard distance between two cells
func Chebyshev(a, b Cell) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return max(dx, dy)
}
