package fastdtw

import (
	"fmt"
	"math"
)

// The DP grid is padded: padded cell (i,j) with i,j ≥ 1 corresponds to
// input elements x[i-1] and y[j-1]; row 0 and column 0 mean "nothing
// consumed yet". The origin (0,0) has cost 0 and no predecessor.

// cell is one entry of the cumulative-cost table: the minimal cost of
// warping the first i elements of x against the first j of y, plus the
// padded coordinate of the predecessor that achieved it.
type cell struct {
	cost float64
	prev Coord
}

// pickStep selects the predecessor of padded cell (i,j) from the three
// candidate cumulative costs: a from above (i-1,j), b from the left
// (i,j-1), c from the diagonal (i-1,j-1). Unreachable candidates are
// +Inf.
//
// The comparison order decides the path shape on ties and must stay as
// written: a wins over b only strictly, and the diagonal wins any
// non-strict tie against the survivor.
func pickStep(i, j int, a, b, c float64) (float64, Coord) {
	if a < b {
		if a < c {
			return a, Coord{i - 1, j}
		}

		return c, Coord{i - 1, j - 1}
	}
	if b < c {
		return b, Coord{i, j - 1}
	}

	return c, Coord{i - 1, j - 1}
}

// solveExact runs unconstrained DTW over the full padded
// (n+1)×(m+1) grid and reconstructs the optimal alignment path from
// the stored predecessors.
//
// Both inputs must be non-empty; the public entry points validate.
//
// Complexity: O(n·m) time and memory.
func solveExact(x, y []float64, dist DistanceFunc) (float64, Path) {
	n, m := len(x), len(y)
	inf := math.Inf(1)

	// Dense cost + predecessor matrices, everything unreachable except
	// the origin.
	cost := make([][]float64, n+1)
	prev := make([][]Coord, n+1)
	var i, j int
	for i = 0; i <= n; i++ {
		cost[i] = make([]float64, m+1)
		prev[i] = make([]Coord, m+1)
		for j = 0; j <= m; j++ {
			cost[i][j] = inf
		}
	}
	cost[0][0] = 0

	var dt float64
	for i = 1; i <= n; i++ {
		for j = 1; j <= m; j++ {
			dt = dist(x[i-1], y[j-1])
			cost[i][j], prev[i][j] = pickStep(i, j,
				cost[i-1][j]+dt,
				cost[i][j-1]+dt,
				cost[i-1][j-1]+dt,
			)
		}
	}

	// Backtrack from the padded terminal, emitting unpadded coords.
	path := make(Path, 0, n+m)
	at := Coord{n, m}
	for at != (Coord{}) {
		path = append(path, Coord{at.I - 1, at.J - 1})
		at = prev[at.I][at.J]
	}
	reversePath(path)

	return cost[n][m], path
}

// solveWindowed runs DTW restricted to the cells of w. The window's
// cells must be unpadded, in row-major order with columns ascending
// per row, so that every cell is visited after the predecessors it
// depends on; expandWindow guarantees exactly that. Cells outside the
// window cost +Inf (unreachable).
//
// A cell missing from the cost table during backtracking means the
// window is not connected from the origin to the terminal. That is a
// broken construction contract, never an input condition, so it
// panics instead of returning an error.
//
// Complexity: O(|w|) time and memory.
func solveWindowed(x, y []float64, w *window, dist DistanceFunc) (float64, Path) {
	n, m := len(x), len(y)
	inf := math.Inf(1)

	table := make(map[Coord]cell, len(w.cells)+1)
	table[Coord{}] = cell{} // origin: cost 0, no predecessor

	costAt := func(c Coord) float64 {
		if e, ok := table[c]; ok {
			return e.cost
		}

		return inf
	}

	var i, j int
	var dt float64
	var best float64
	var from Coord
	for _, c := range w.cells {
		i, j = c.I+1, c.J+1 // pad
		dt = dist(x[i-1], y[j-1])
		best, from = pickStep(i, j,
			costAt(Coord{i - 1, j})+dt,
			costAt(Coord{i, j - 1})+dt,
			costAt(Coord{i - 1, j - 1})+dt,
		)
		table[Coord{i, j}] = cell{cost: best, prev: from}
	}

	term, ok := table[Coord{n, m}]
	if !ok {
		panic(fmt.Sprintf("fastdtw: window misses terminal cell (%d,%d)", n, m))
	}

	path := make(Path, 0, n+m)
	at := Coord{n, m}
	for at != (Coord{}) {
		e, present := table[at]
		if !present {
			panic(fmt.Sprintf("fastdtw: broken predecessor chain at padded cell (%d,%d)", at.I, at.J))
		}
		path = append(path, Coord{at.I - 1, at.J - 1})
		at = e.prev
	}
	reversePath(path)

	return term.cost, path
}

// reversePath flips p in place so it runs start-to-end.
func reversePath(p Path) {
	for l, r := 0, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
}
