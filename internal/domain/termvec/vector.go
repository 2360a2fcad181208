package termvec

import "math"

// Vector is a term-frequency vector indexed by vocabulary position.
type Vector []float64

// IsZero reports whether every component is zero.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Cosine returns the cosine similarity of a and b, computing the dot product
// and both magnitudes in one pass. Vectors must come from the same vocabulary;
// only the common prefix is compared if lengths differ.
// Similarity involving a zero-magnitude vector is 0.
func Cosine(a, b Vector) float64 {
	n := min(len(a), len(b))

	var dot, magA, magB float64
	for i := range n {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}

	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
