package vector

import "math"

// Cosine computes the cosine of the angle between two index-sorted sparse
// vectors using a merge-join. Zero allocations, O(n+m) time.
//
// Indices present in only one vector count toward that vector's norm but not the
// dot product. Returns 0 when either norm is zero, which covers empty vectors.
func Cosine(a, b Sparse) float64 {
	var dot, normA, normB float64
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		switch {
		case a[i].Index == b[j].Index:
			dot += a[i].Value * b[j].Value
			normA += a[i].Value * a[i].Value
			normB += b[j].Value * b[j].Value
			i++
			j++
		case a[i].Index < b[j].Index:
			normA += a[i].Value * a[i].Value
			i++
		default:
			normB += b[j].Value * b[j].Value
			j++
		}
	}

	for ; i < len(a); i++ {
		normA += a[i].Value * a[i].Value
	}
	for ; j < len(b); j++ {
		normB += b[j].Value * b[j].Value
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
