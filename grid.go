package astar

import (
	"fmt"
	"strings"
)

// Grid is a rectangular occupancy map. A true entry is a wall.
// A Grid is never modified after construction, so it can be shared between
// goroutines running independent searches.
type Grid struct {
	height  int
	width   int
	blocked []bool
}

// NewGrid creates a height x width grid with every cell open except the
// given ones. Out-of-bounds cells in blocked are ignored.
func NewGrid(height, width int, blocked ...Cell) (*Grid, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: grid dimensions must be positive, got %dx%d",
			ErrInvalidInput, height, width)
	}
	size := height * width
	if size/width != height {
		return nil, fmt.Errorf("%w: grid of %dx%d is too large", ErrInvalidInput, height, width)
	}
	g := &Grid{height: height, width: width, blocked: make([]bool, size)}
	for _, c := range blocked {
		if g.InBounds(c) {
			g.blocked[g.index(c)] = true
		}
	}
	return g, nil
}

// NewGridFromRows builds a grid from row-major occupancy values. All rows
// must have the same length.
func NewGridFromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: grid has no cells", ErrInvalidInput)
	}
	g, err := NewGrid(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrInvalidInput, r, len(row), g.width)
		}
		copy(g.blocked[r*g.width:(r+1)*g.width], row)
	}
	return g, nil
}

// ParseGrid reads an ASCII grid. '#' is a wall; '.', 'S' and 'E' are open.
// Blank lines and surrounding whitespace are ignored. The positions of 'S'
// and 'E' are returned as start and end when present.
func ParseGrid(text string) (g *Grid, start, end *Cell, err error) {
	var rows [][]bool
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for col, ch := range line {
			switch ch {
			case '#':
				row = append(row, true)
			case '.':
				row = append(row, false)
			case 'S':
				start = &Cell{Row: len(rows), Col: col}
				row = append(row, false)
			case 'E':
				end = &Cell{Row: len(rows), Col: col}
				row = append(row, false)
			default:
				return nil, nil, nil, fmt.Errorf("%w: unexpected character %q at row %d col %d",
					ErrInvalidInput, ch, len(rows), col)
			}
		}
		rows = append(rows, row)
	}
	g, err = NewGridFromRows(rows)
	if err != nil {
		return nil, nil, nil, err
	}
	return g, start, end, nil
}

// WithBlocked returns a copy of the grid with the extra cells walled off.
// The receiver is left untouched.
func (g *Grid) WithBlocked(cells ...Cell) *Grid {
	out := &Grid{height: g.height, width: g.width, blocked: make([]bool, len(g.blocked))}
	copy(out.blocked, g.blocked)
	for _, c := range cells {
		if out.InBounds(c) {
			out.blocked[out.index(c)] = true
		}
	}
	return out
}

func (g *Grid) Height() int { return g.height }
func (g *Grid) Width() int  { return g.width }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// IsBlocked reports whether c is a wall. Cells outside the grid count as
// blocked.
func (g *Grid) IsBlocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[g.index(c)]
}

// Open reports whether c is inside the grid and traversable.
func (g *Grid) Open(c Cell) bool {
	return g.InBounds(c) && !g.blocked[g.index(c)]
}

// CountBlocked returns the number of walls.
func (g *Grid) CountBlocked() int {
	n := 0
	for _, b := range g.blocked {
		if b {
			n++
		}
	}
	return n
}

// String renders the grid in the format accepted by ParseGrid.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.blocked[r*g.width+c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) index(c Cell) int { return c.Row*g.width + c.Col }
