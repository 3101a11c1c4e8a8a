package distance

import (
	"fmt"
	"math"
)

// EuclideanMetric is the straight-line (L2) distance.
type EuclideanMetric struct{}

func (EuclideanMetric) Compute(a, b F64) (float64, error) {
	return EuclideanSurface.Distance(a, b)
}

// Distance truncates the point distance toward zero.
func (EuclideanMetric) Distance(x, y, s, t int) int {
	return int(math.Hypot(float64(x)-float64(s), float64(y)-float64(t)))
}

// ManhattanMetric is the city-block (L1) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Compute(a, b F64) (float64, error) {
	return ManhattanSurface.Distance(a, b)
}

func (ManhattanMetric) Distance(x, y, s, t int) int {
	return abs(x-s) + abs(y-t)
}

// ChessboardMetric is the Chebyshev (L-infinity) distance.
type ChessboardMetric struct{}

func (ChessboardMetric) Compute(a, b F64) (float64, error) {
	return ChessboardSurface.Distance(a, b)
}

func (ChessboardMetric) Distance(x, y, s, t int) int {
	return max(abs(x-s), abs(y-t))
}

// MinkowskiMetric is the Lp distance for a fixed order p. Two values with
// different orders are distinct operators.
type MinkowskiMetric struct {
	order int
}

// NewMinkowski returns a Minkowski metric of order p. p must be at least 1.
func NewMinkowski(p int) (*MinkowskiMetric, error) {
	if p < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrder, p)
	}
	return &MinkowskiMetric{order: p}, nil
}

// Order returns p.
func (m *MinkowskiMetric) Order() int {
	return m.order
}

func (m *MinkowskiMetric) Compute(a, b F64) (float64, error) {
	if err := CheckDimensions(a, b); err != nil {
		return 0, err
	}
	return MinkowskiDistance(a, b, m.order), nil
}

// Distance truncates the point distance toward zero.
func (m *MinkowskiMetric) Distance(x, y, s, t int) int {
	return int(MinkowskiDistance(F64{float64(x), float64(y)}, F64{float64(s), float64(t)}, m.order))
}

// CosineMetric is one minus the cosine similarity. Zero vectors are
// maximally dissimilar (distance 1).
type CosineMetric struct{}

func (CosineMetric) Compute(a, b F64) (float64, error) {
	return CosineSurface.Distance(a, b)
}

// Distance treats the points as 2-D vectors and scales the cosine distance
// by 1000, truncated. The result is a derived score, not a true metric.
func (c CosineMetric) Distance(x, y, s, t int) int {
	d, err := PointSurface(c).Distance(Point{X: x, Y: y}, Point{X: s, Y: t})
	if err != nil {
		// unreachable: points always map to two-element vectors
		return 0
	}
	return int(d * 1000)
}

// HammingMetric counts differing positions.
type HammingMetric struct{}

func (HammingMetric) Compute(a, b F64) (float64, error) {
	return HammingSurface.Distance(a, b)
}

// Distance is 1 per differing coordinate, so it is always 0, 1 or 2.
func (HammingMetric) Distance(x, y, s, t int) int {
	dist := 0
	if x != s {
		dist++
	}
	if y != t {
		dist++
	}
	return dist
}
