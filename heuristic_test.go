package astar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagonal(t *testing.T) {
	tests := []struct {
		name string
		a, b Cell
		want float64
	}{
		{"same cell", Cell{3, 3}, Cell{3, 3}, 0},
		{"straight", Cell{0, 0}, Cell{0, 4}, 4},
		{"pure diagonal", Cell{0, 0}, Cell{2, 2}, 2 * math.Sqrt2},
		{"mixed", Cell{0, 0}, Cell{1, 3}, 2 + math.Sqrt2},
		{"negative direction", Cell{5, 5}, Cell{4, 2}, 2 + math.Sqrt2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Diagonal(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.want, Diagonal(tt.b, tt.a), 1e-9, "symmetric")
		})
	}
}

func TestAlternativeHeuristics(t *testing.T) {
	a, b := Cell{1, 1}, Cell{4, 3}
	assert.Equal(t, 3.0, Chebyshev(a, b))
	assert.Equal(t, 5.0, Manhattan(a, b))
}
