package council

import "math"

// Phi is the golden ratio (1+√5)/2
const Phi = math.Phi

// GoldenProgression returns n terms of the geometric progression
// 1, φ, φ², ... built by repeated multiplication.
func (r *Responder) GoldenProgression(n int) ([]float64, error) {
	if n <= 0 {
		return nil, invalid("n", "must be at least 1, got %d", n)
	}
	if n > r.maxGoldenTerms {
		return nil, invalid("n", "must be at most %d, got %d", r.maxGoldenTerms, n)
	}

	terms := make([]float64, n)
	terms[0] = 1.0
	for i := 1; i < n; i++ {
		terms[i] = terms[i-1] * Phi
	}
	return terms, nil
}
