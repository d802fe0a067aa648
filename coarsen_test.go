package fastdtw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCoarsen_OddDropsTail verifies pairwise averaging and that a
// trailing unpaired element is dropped.
func TestCoarsen_OddDropsTail(t *testing.T) {
	got := coarsen([]float64{1, 2, 3, 4, 5})
	assert.Equal(t, []float64{1.5, 3.5}, got, "odd tail must be dropped")
}

// TestCoarsen_EvenLength verifies the even-length case halves exactly.
func TestCoarsen_EvenLength(t *testing.T) {
	got := coarsen([]float64{2, 4, 6, 8})
	assert.Equal(t, []float64{3, 7}, got)
}

// TestCoarsen_Degenerate covers empty and single-element inputs, both
// of which coarsen to an empty sequence.
func TestCoarsen_Degenerate(t *testing.T) {
	assert.Empty(t, coarsen(nil), "nil input coarsens to empty")
	assert.Empty(t, coarsen([]float64{7}), "single element coarsens to empty")
}

// TestCoarsen_NoAliasing verifies the result does not share backing
// storage with the input.
func TestCoarsen_NoAliasing(t *testing.T) {
	in := []float64{1, 3, 5, 7}
	out := coarsen(in)
	in[0], in[1] = 100, 100

	assert.Equal(t, []float64{2, 6}, out, "mutating the input must not change the output")
}
