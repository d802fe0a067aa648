package fastdtw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullGrid lists every cell of a lenX×lenY grid in row-major order.
func fullGrid(lenX, lenY int) []Coord {
	cells := make([]Coord, 0, lenX*lenY)
	for i := 0; i < lenX; i++ {
		for j := 0; j < lenY; j++ {
			cells = append(cells, Coord{i, j})
		}
	}

	return cells
}

// assertWindowOrdered checks the ordering contract solveWindowed
// relies on: rows ascending, columns strictly ascending within a row,
// all cells in bounds, no duplicates.
func assertWindowOrdered(t *testing.T, w *window, lenX, lenY int) {
	t.Helper()
	seen := make(map[Coord]struct{}, len(w.cells))
	for k, c := range w.cells {
		assert.GreaterOrEqual(t, c.I, 0)
		assert.Less(t, c.I, lenX)
		assert.GreaterOrEqual(t, c.J, 0)
		assert.Less(t, c.J, lenY)
		if k > 0 {
			p := w.cells[k-1]
			ordered := c.I > p.I || (c.I == p.I && c.J > p.J)
			assert.True(t, ordered, "cells must be row-major ordered: %v after %v", c, p)
		}
		_, dup := seen[c]
		assert.False(t, dup, "duplicate cell %v", c)
		seen[c] = struct{}{}
	}
}

// TestExpandWindow_SmallRadiusCoversGrid verifies that a radius-1
// expansion of the coarse path for a 5×3 pair reaches every cell:
// the dilated ball spills past the grid edges, and projection doubles
// it back over the whole fine grid.
func TestExpandWindow_SmallRadiusCoversGrid(t *testing.T) {
	coarse := Path{{0, 0}, {1, 0}}
	w := expandWindow(coarse, 5, 3, 1)

	assert.Equal(t, fullGrid(5, 3), w.cells, "radius 1 must cover the whole 5×3 grid")
}

// TestExpandWindow_RadiusZero pins the exact window of an undilated
// diagonal path at even lengths: only the four children of each coarse
// cell survive.
func TestExpandWindow_RadiusZero(t *testing.T) {
	coarse := Path{{0, 0}, {1, 1}}
	w := expandWindow(coarse, 4, 4, 0)

	want := []Coord{
		{0, 0}, {0, 1},
		{1, 0}, {1, 1},
		{2, 2}, {2, 3},
		{3, 2}, {3, 3},
	}
	assert.Equal(t, want, w.cells)
}

// TestExpandWindow_OddTailRepair verifies that odd-length targets keep
// their last row and column reachable even at radius 0, where the
// dropped tail element has no coarse parent.
func TestExpandWindow_OddTailRepair(t *testing.T) {
	coarse := Path{{0, 0}, {1, 0}}
	w := expandWindow(coarse, 5, 3, 0)

	require.NotEmpty(t, w.cells)
	assert.Contains(t, w.cells, Coord{4, 2}, "terminal cell must stay reachable")
	assert.Equal(t, fullGrid(5, 3), w.cells, "repair extends the span over the dropped rows/columns")
}

// TestExpandWindow_OrderingContract checks the solver's ordering
// contract on a longer staircase path with a wider radius.
func TestExpandWindow_OrderingContract(t *testing.T) {
	coarse := Path{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 3}, {5, 4}}
	lenX, lenY := 12, 10
	w := expandWindow(coarse, lenX, lenY, 2)

	assertWindowOrdered(t, w, lenX, lenY)
}

// TestExpandWindow_SupersetOfRefinement verifies every in-bounds child
// of every coarse path cell is present in the produced window.
func TestExpandWindow_SupersetOfRefinement(t *testing.T) {
	coarse := Path{{0, 0}, {1, 1}, {2, 2}, {3, 2}}
	lenX, lenY := 8, 6
	w := expandWindow(coarse, lenX, lenY, 1)

	have := make(map[Coord]struct{}, len(w.cells))
	for _, c := range w.cells {
		have[c] = struct{}{}
	}
	for _, c := range coarse {
		for _, child := range []Coord{
			{2 * c.I, 2 * c.J},
			{2 * c.I, 2*c.J + 1},
			{2*c.I + 1, 2 * c.J},
			{2*c.I + 1, 2*c.J + 1},
		} {
			if child.I >= lenX || child.J >= lenY {
				continue
			}
			_, ok := have[child]
			assert.True(t, ok, "child %v of coarse cell %v missing from window", child, c)
		}
	}
}
