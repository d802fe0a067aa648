package fastdtw

import (
	"errors"
	"math"
)

// Sentinel errors returned by the public entry points.
var (
	// ErrEmptyInput indicates one or both input sequences are empty.
	ErrEmptyInput = errors.New("fastdtw: input sequences must be non-empty")

	// ErrBadRadius indicates a negative search radius was supplied.
	ErrBadRadius = errors.New("fastdtw: radius must be non-negative")
)

// Coord addresses one cell of the alignment grid: I indexes the first
// sequence, J the second. It is a plain value type, safe to copy,
// compare, and use as a map key.
type Coord struct {
	I, J int
}

// Path is an ordered alignment between two sequences: element k of a
// path states that x[path[k].I] corresponds to y[path[k].J].
//
// Every path produced by this package starts at {0 0}, ends at
// {len(x)-1 len(y)-1}, and each step advances I, J, or both by exactly
// one (no backward or zero-length steps).
type Path []Coord

// DistanceFunc measures the local cost of matching two elements.
// Implementations must return a non-negative value.
type DistanceFunc func(a, b float64) float64

// AbsDistance is the default metric: the absolute difference |a−b|.
// FastDTW always uses it; DTW uses it when the caller passes nil.
func AbsDistance(a, b float64) float64 {
	return math.Abs(a - b)
}
