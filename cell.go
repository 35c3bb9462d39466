package astar

import "fmt"

// Cell is a grid position. It is comparable and can be used as a map key.
type Cell struct {
	Row int
	Col int
}

// Less orders cells by row, then column.
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// Add returns the cell offset by the given deltas.
func (c Cell) Add(dRow, dCol int) Cell {
	return Cell{Row: c.Row + dRow, Col: c.Col + dCol}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Path is an ordered sequence of cells from start to end inclusive.
type Path []Cell

// Steps returns the number of moves in the path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}
