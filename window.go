package fastdtw

// window is the set of grid cells one constrained DP pass may visit,
// stored unpadded in the order the solver requires: rows ascending,
// columns ascending within each row.
type window struct {
	cells []Coord
}

// expandWindow turns a coarse-resolution alignment path into the
// search window for the next finer resolution, wide enough (by radius)
// to very likely still contain the true optimal fine path.
//
// Steps:
//  1. Dilation: every path cell grows into a Chebyshev ball of the
//     given radius. Coordinates are not clamped here; out-of-range
//     cells are dropped later by the bounds of the ordering scan.
//  2. Projection: each dilated cell (i,j) contributes its four
//     children (2i,2j), (2i,2j+1), (2i+1,2j), (2i+1,2j+1) — the
//     inverse of the coarsening step.
//  3. Odd-tail repair: an odd-length input loses its last element to
//     coarsening, so the last fine row/column has no parent at the
//     coarse resolution. Replicate the span of the last covered
//     row/column into it, keeping the terminal cell reachable.
//  4. Ordering scan: rows 0..lenX-1 in order; each row starts at the
//     first column the previous row matched (valid windows are
//     contiguous per row) and stops once a contiguous run of matches
//     ends.
//
// The result is a superset of the coarse path's natural refinement and
// feeds solveWindowed directly.
//
// Complexity: O(len(path)·radius²) set construction plus O(|window|)
// scan; memory proportional to the projected set.
func expandWindow(path Path, lenX, lenY, radius int) *window {
	// 1. Chebyshev dilation of the coarse path.
	ball := 2*radius + 1
	dilated := make(map[Coord]struct{}, len(path)*ball*ball)
	var a, b int
	for _, c := range path {
		for a = -radius; a <= radius; a++ {
			for b = -radius; b <= radius; b++ {
				dilated[Coord{c.I + a, c.J + b}] = struct{}{}
			}
		}
	}

	// 2. Double the resolution.
	projected := make(map[Coord]struct{}, 4*len(dilated))
	for c := range dilated {
		projected[Coord{2 * c.I, 2 * c.J}] = struct{}{}
		projected[Coord{2 * c.I, 2*c.J + 1}] = struct{}{}
		projected[Coord{2*c.I + 1, 2 * c.J}] = struct{}{}
		projected[Coord{2*c.I + 1, 2*c.J + 1}] = struct{}{}
	}

	// 3. Odd-tail repair, rows first, then columns (so the repaired
	//    corner cell is reached through both).
	if lenX%2 == 1 {
		replicateRow(projected, lenX-2, lenX-1)
	}
	if lenY%2 == 1 {
		replicateCol(projected, lenY-2, lenY-1)
	}

	// 4. Row-major contiguous scan into the final ordered cell list.
	w := &window{cells: make([]Coord, 0, len(projected))}
	start := 0
	var i, j, first int
	for i = 0; i < lenX; i++ {
		first = -1
		for j = start; j < lenY; j++ {
			if _, ok := projected[Coord{i, j}]; ok {
				w.cells = append(w.cells, Coord{i, j})
				if first < 0 {
					first = j
				}
			} else if first >= 0 {
				break // contiguous run ended
			}
		}
		if first >= 0 {
			start = first
		}
	}

	return w
}

// replicateRow copies the column span of row src into row dst.
func replicateRow(set map[Coord]struct{}, src, dst int) {
	cols := make([]int, 0, 8)
	for c := range set {
		if c.I == src {
			cols = append(cols, c.J)
		}
	}
	for _, j := range cols {
		set[Coord{dst, j}] = struct{}{}
	}
}

// replicateCol copies the row span of column src into column dst.
func replicateCol(set map[Coord]struct{}, src, dst int) {
	rows := make([]int, 0, 8)
	for c := range set {
		if c.J == src {
			rows = append(rows, c.I)
		}
	}
	for _, i := range rows {
		set[Coord{i, dst}] = struct{}{}
	}
}
