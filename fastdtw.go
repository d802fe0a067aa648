package fastdtw

// FastDTW computes the approximate Dynamic Time Warping distance and
// alignment path between x and y using the multiresolution FastDTW
// scheme with the given search radius.
//
// Radius trades accuracy for cost: 0 is fastest and coarsest, larger
// values widen the refined search window, and any radius ≥
// min(len(x), len(y)) reproduces the exact DTW result.
//
// Returns:
//
//   - distance: cumulative cost of the found path under AbsDistance.
//   - path:     the alignment, from {0 0} to {len(x)-1 len(y)-1}.
//   - err:      ErrEmptyInput or ErrBadRadius on invalid arguments.
//
// The call owns no shared state; concurrent calls are independent.
//
// Complexity: O(N·radius) time and memory per resolution level over
// O(log min(N,M)) levels; resident memory is bounded by the finest
// level because every level drops its scratch buffers before
// returning.
func FastDTW(x, y []float64, radius int) (float64, Path, error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, nil, ErrEmptyInput
	}
	if radius < 0 {
		return 0, nil, ErrBadRadius
	}

	distance, path := approximate(x, y, radius)

	return distance, path, nil
}

// DTW computes the exact O(N·M) Dynamic Time Warping distance and
// alignment path between x and y under the supplied metric. A nil
// metric means AbsDistance.
//
// Returns ErrEmptyInput if either sequence is empty.
func DTW(x, y []float64, metric DistanceFunc) (float64, Path, error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, nil, ErrEmptyInput
	}
	if metric == nil {
		metric = AbsDistance
	}

	distance, path := solveExact(x, y, metric)

	return distance, path, nil
}

// approximate is the recursive multiresolution driver.
//
// BASE: when either sequence is shorter than radius+2 the window would
// be degenerate, so the pair is solved exactly.
//
// RECURSE: coarsen both sequences, solve the coarse pair (only its
// path matters — the coarse distance is discarded), expand that path
// into a search window at the current resolution, and solve the
// current pair constrained to the window.
//
// Every level's coarsened copies, coarse path, window, and cost table
// are local to its frame and unreachable after return, which keeps
// total resident memory at O(N·radius) rather than accumulating
// across the O(log min(N,M)) levels.
func approximate(x, y []float64, radius int) (float64, Path) {
	if min(len(x), len(y)) < radius+2 {
		return solveExact(x, y, AbsDistance)
	}

	shrunkX := coarsen(x)
	shrunkY := coarsen(y)
	_, coarsePath := approximate(shrunkX, shrunkY, radius)

	w := expandWindow(coarsePath, len(x), len(y), radius)

	return solveWindowed(x, y, w, AbsDistance)
}
