// Package astar finds routes across binary occupancy grids with A*.
//
// It exposes three entry points:
//
//   - Search and FindPath: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//   - SolveAll: answer many start/goal queries over one grid on a worker pool.
//
// Moves go to the eight surrounding cells and all cost 1. A diagonal move is
// allowed when at least one of the two orthogonal cells beside it can be
// entered. The default Diagonal heuristic prices diagonals at sqrt(2), so the
// returned route is not always the shortest possible one; use Chebyshev for
// guaranteed optimal routes.
package astar
