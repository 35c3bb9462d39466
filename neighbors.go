package astar

// Orthogonal offsets in expansion order: up, down, left, right.
var orthogonal = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Diagonal offsets in expansion order, each with the indices into
// orthogonal of the two directions that flank it.
var diagonal = [4]struct {
	offset Cell
	flanks [2]int
}{
	{Cell{-1, -1}, [2]int{0, 2}}, // up-left
	{Cell{-1, 1}, [2]int{0, 3}},  // up-right
	{Cell{1, -1}, [2]int{1, 2}},  // down-left
	{Cell{1, 1}, [2]int{1, 3}},   // down-right
}

// Neighbors returns the legal moves from cell. A target must be inside the
// grid, unblocked and not finalized. A diagonal is offered only when at least
// one of its flanking orthogonal moves is itself legal.
func Neighbors(cell Cell, grid *Grid, finalized map[Cell]bool) []Cell {
	out := make([]Cell, 0, 8)
	var open [4]bool
	for i, d := range orthogonal {
		n := cell.Add(d.Row, d.Col)
		if grid.Open(n) && !finalized[n] {
			open[i] = true
			out = append(out, n)
		}
	}
	for _, d := range diagonal {
		if !open[d.flanks[0]] && !open[d.flanks[1]] {
			continue
		}
		n := cell.Add(d.offset.Row, d.offset.Col)
		if grid.Open(n) && !finalized[n] {
			out = append(out, n)
		}
	}
	return out
}
