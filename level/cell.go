package level

import (
	"fmt"
	"math"
)

// Cell is an integer (column, row) grid coordinate.
type Cell struct {
	X int
	Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ToCell converts a continuous position into the cell containing it. Each axis
// is floor-divided by cellSize; the result is not clamped to any bounds.
func ToCell(px, py, cellSize float64) Cell {
	if cellSize <= 0 {
		return Cell{}
	}
	return Cell{
		X: int(math.Floor(px / cellSize)),
		Y: int(math.Floor(py / cellSize)),
	}
}
