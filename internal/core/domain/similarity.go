package domain

import "math"

// CosineDistance returns 1 minus the cosine similarity of two vectors,
// so identical directions yield 0 and orthogonal ones yield 1.
// Vectors of differing length return ErrDimensionMismatch. A vector
// with zero magnitude has no direction, so the distance is 1.
func CosineDistance(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 1, nil
	}

	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB)), nil
}
