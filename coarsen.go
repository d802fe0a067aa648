package fastdtw

// coarsen halves the resolution of s: element k of the result is the
// average of s[2k] and s[2k+1]. A trailing unpaired element (odd
// length) is dropped. The result is freshly allocated and never
// aliases s.
//
// Complexity: O(n) time, O(n/2) memory.
func coarsen(s []float64) []float64 {
	half := len(s) / 2
	out := make([]float64, half)
	for k := 0; k < half; k++ {
		out[k] = (s[2*k] + s[2*k+1]) / 2
	}

	return out
}
