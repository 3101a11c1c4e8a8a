package distance

import (
	"math"
)

// Standard distance functions over equal-length vectors. They panic when the
// lengths differ; the Metric implementations check dimensions first and
// return ErrDimensionMismatch instead.

// EuclideanDistance calculates the L2 distance between vectors
func EuclideanDistance(a, b F64) float64 {
	if len(a) != len(b) {
		panic("vectors must have the same length")
	}

	var sum float64
	for i := 0; i < len(a); i++ {
		diff := a[i] - b[i]
		sum += diff * diff
	}

	return math.Sqrt(sum)
}

// ManhattanDistance calculates the L1 norm (Manhattan distance) between vectors
func ManhattanDistance(a, b F64) float64 {
	if len(a) != len(b) {
		panic("vectors must have the same length")
	}

	var sum float64
	for i := 0; i < len(a); i++ {
		sum += math.Abs(a[i] - b[i])
	}

	return sum
}

// ChessboardDistance calculates the Chebyshev (L-infinity) distance between
// vectors. Empty vectors are at distance 0.
func ChessboardDistance(a, b F64) float64 {
	if len(a) != len(b) {
		panic("vectors must have the same length")
	}

	var largest float64
	for i := 0; i < len(a); i++ {
		if d := math.Abs(a[i] - b[i]); d > largest {
			largest = d
		}
	}

	return largest
}

// MinkowskiDistance calculates the Lp distance between vectors for order p.
// p must be non-zero. Differences are scaled by the largest one so that
// high orders do not overflow.
func MinkowskiDistance(a, b F64, p int) float64 {
	if len(a) != len(b) {
		panic("vectors must have the same length")
	}

	var scale float64
	for i := 0; i < len(a); i++ {
		if d := math.Abs(a[i] - b[i]); d > scale {
			scale = d
		}
	}
	if scale == 0 || math.IsInf(scale, 1) {
		return scale
	}

	order := float64(p)
	var sum float64
	for i := 0; i < len(a); i++ {
		sum += math.Pow(math.Abs(a[i]-b[i])/scale, order)
	}

	return scale * math.Pow(sum, 1/order)
}

// CosineDistance calculates the cosine distance between vectors.
// Lower value means more similar vectors (0 being identical direction). If
// either vector has zero magnitude the distance is 1.
func CosineDistance(a, b F64) float64 {
	if len(a) != len(b) {
		panic("vectors must have the same length")
	}

	var dotProduct, magnitudeA, magnitudeB float64
	for i := 0; i < len(a); i++ {
		dotProduct += a[i] * b[i]
		magnitudeA += a[i] * a[i]
		magnitudeB += b[i] * b[i]
	}

	if magnitudeA == 0 || magnitudeB == 0 {
		return 1
	}

	similarity := dotProduct / (math.Sqrt(magnitudeA) * math.Sqrt(magnitudeB))
	// Clamp similarity to [-1, 1] to account for floating point errors
	if similarity > 1.0 {
		similarity = 1.0
	} else if similarity < -1.0 {
		similarity = -1.0
	}

	return 1.0 - similarity
}

// HammingDistance counts the positions at which the vectors differ.
func HammingDistance(a, b F64) float64 {
	if len(a) != len(b) {
		panic("vectors must have the same length")
	}

	var count int
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			count++
		}
	}

	return float64(count)
}

// Create surfaces for the fixed-parameter distance functions
var (
	EuclideanSurface  = CreateSurface(EuclideanDistance)
	ManhattanSurface  = CreateSurface(ManhattanDistance)
	ChessboardSurface = CreateSurface(ChessboardDistance)
	CosineSurface     = CreateSurface(CosineDistance)
	HammingSurface    = CreateSurface(HammingDistance)
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
