// Package fastdtw aligns two numeric time series with the FastDTW
// multiresolution algorithm: near-linear time and memory at a
// caller-chosen accuracy radius, plus an exact O(N·M) reference DTW.
//
// 🚀 What is FastDTW?
//
//	Classic Dynamic Time Warping fills an N×M cost grid, which is
//	prohibitive for long series. FastDTW solves the problem at a
//	halved resolution first, then refines: the coarse alignment path
//	is dilated by `radius` cells, projected back to the finer
//	resolution, and only that narrow window of the grid is solved.
//	Applied recursively this yields O(N) cells of work per level and
//	O(log N) levels, with accuracy controlled by the radius.
//
// ✨ Key features:
//   - FastDTW: approximate distance + full alignment path, O(N·radius)
//     memory per level
//   - DTW: exact full-matrix distance + path, pluggable metric
//   - deterministic tie-breaking, so equal inputs always yield the
//     same path
//   - no global state: calls are independent and safe to run
//     concurrently
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fastdtw"
//
//	dist, path, err := fastdtw.FastDTW(x, y, 2) // radius 2
//	if err != nil { ... }
//
//	// exact reference, custom metric:
//	sq := func(a, b float64) float64 { d := a - b; return d * d }
//	dist, path, err = fastdtw.DTW(x, y, sq)
//
// Performance:
//
//   - FastDTW: O(N·radius) time & memory per resolution level,
//     O(log min(N,M)) levels, total memory bounded by the finest level
//   - DTW:     O(N·M) time & memory
//
// A radius of min(len(x), len(y)) removes the approximation entirely:
// FastDTW then degenerates to the exact solver.
//
// See example_test.go and examples/ for runnable scenarios.
package fastdtw
