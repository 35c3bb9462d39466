package astar

import "math"

// Heuristic returns the estimated cost from one cell to another.
type Heuristic func(from Cell, to Cell) float64

// Diagonal is the octile distance, which prices a diagonal step at sqrt(2).
// Moves are charged 1 regardless of direction, so this can overestimate the
// remaining cost when both axes differ.
func Diagonal(from, to Cell) float64 {
	dx, dy := axisDistances(from, to)
	return float64(dx+dy) + (math.Sqrt2-2)*float64(min(dx, dy))
}

// Chebyshev matches the unit-cost eight-way move model exactly.
func Chebyshev(from, to Cell) float64 {
	dx, dy := axisDistances(from, to)
	return float64(max(dx, dy))
}

// Manhattan is the four-way distance.
func Manhattan(from, to Cell) float64 {
	dx, dy := axisDistances(from, to)
	return float64(dx + dy)
}

func axisDistances(a, b Cell) (int, int) {
	dx := a.Row - b.Row
	if dx < 0 {
		dx = -dx
	}
	dy := a.Col - b.Col
	if dy < 0 {
		dy = -dy
	}
	return dx, dy
}
