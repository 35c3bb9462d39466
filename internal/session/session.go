// Package session tracks endpoint selection and barrier painting for one
// solve. It replaces process-wide click counters with a value owned by the
// caller.
package session

import (
	"errors"
	"fmt"

	astar "github.com/pdrpinto/gridastar"
)

var (
	// ErrIncomplete means fewer than two endpoints have been recorded.
	ErrIncomplete = errors.New("start and end have not both been selected")
	// ErrNotOpen means a click landed outside the grid or on a wall.
	ErrNotOpen = errors.New("cell is not an open grid cell")
)

// SelectionSession collects the start and end cells and any extra walls
// painted before the search runs. Only the first two accepted clicks count.
type SelectionSession struct {
	base     *astar.Grid
	points   []astar.Cell
	painting bool
	barriers []astar.Cell
	painted  map[astar.Cell]bool
}

// NewSelectionSession starts a session over base. base is never modified.
func NewSelectionSession(base *astar.Grid) *SelectionSession {
	return &SelectionSession{
		base:    base,
		points:  make([]astar.Cell, 0, 2),
		painted: make(map[astar.Cell]bool),
	}
}

// RecordClick records an endpoint. It returns false without error once both
// endpoints are set.
func (s *SelectionSession) RecordClick(c astar.Cell) (bool, error) {
	if s.IsComplete() {
		return false, nil
	}
	if !s.base.Open(c) || s.painted[c] {
		return false, fmt.Errorf("%w: %s", ErrNotOpen, c)
	}
	s.points = append(s.points, c)
	return true, nil
}

// IsComplete reports whether both endpoints are set.
func (s *SelectionSession) IsComplete() bool { return len(s.points) == 2 }

// Endpoints returns start and end. It fails if either is missing or has
// since been painted over.
func (s *SelectionSession) Endpoints() (astar.Cell, astar.Cell, error) {
	if !s.IsComplete() {
		return astar.Cell{}, astar.Cell{}, ErrIncomplete
	}
	for _, p := range s.points {
		if s.painted[p] {
			return astar.Cell{}, astar.Cell{}, fmt.Errorf("%w: %s was painted over", ErrNotOpen, p)
		}
	}
	return s.points[0], s.points[1], nil
}

// BeginPaint starts a barrier stroke.
func (s *SelectionSession) BeginPaint() { s.painting = true }

// EndPaint finishes the current stroke.
func (s *SelectionSession) EndPaint() { s.painting = false }

// Painting reports whether a stroke is in progress.
func (s *SelectionSession) Painting() bool { return s.painting }

// Paint walls off c if a stroke is in progress and c is inside the grid.
// It reports whether a new barrier was added.
func (s *SelectionSession) Paint(c astar.Cell) bool {
	if !s.painting || !s.base.InBounds(c) || s.painted[c] {
		return false
	}
	s.painted[c] = true
	s.barriers = append(s.barriers, c)
	return true
}

// PaintLine paints every cell on the straight segment from a to b, as a
// dragged stroke would. It returns the number of new barriers.
func (s *SelectionSession) PaintLine(a, b astar.Cell) int {
	n := 0
	for _, c := range Line(a, b) {
		if s.Paint(c) {
			n++
		}
	}
	return n
}

// Barriers returns the painted cells in paint order.
func (s *SelectionSession) Barriers() []astar.Cell {
	return append([]astar.Cell(nil), s.barriers...)
}

// Grid returns the base grid with the painted barriers merged in.
func (s *SelectionSession) Grid() *astar.Grid {
	if len(s.barriers) == 0 {
		return s.base
	}
	return s.base.WithBlocked(s.barriers...)
}

// Line returns the cells of a Bresenham segment from a to b inclusive.
func Line(a, b astar.Cell) []astar.Cell {
	dr, dc := abs(b.Row-a.Row), abs(b.Col-a.Col)
	sr, sc := sign(b.Row-a.Row), sign(b.Col-a.Col)
	out := make([]astar.Cell, 0, max(dr, dc)+1)
	err := dc - dr
	cur := a
	for {
		out = append(out, cur)
		if cur == b {
			return out
		}
		e2 := 2 * err
		if e2 > -dr {
			err -= dr
			cur.Col += sc
		}
		if e2 < dc {
			err += dc
			cur.Row += sr
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
