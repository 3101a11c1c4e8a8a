package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicSurface_Distance(t *testing.T) {
	tests := []struct {
		name     string
		distFunc DistanceFunc
		vecA     F64
		vecB     F64
		expected float64
	}{
		{
			name:     "Cosine Distance",
			distFunc: CosineDistance,
			vecA:     F64{1, 0, 0},
			vecB:     F64{0, 1, 0},
			expected: 1.0, // Perpendicular vectors have cosine distance of 1
		},
		{
			name:     "Euclidean Distance",
			distFunc: EuclideanDistance,
			vecA:     F64{1, 0, 0},
			vecB:     F64{0, 1, 0},
			expected: math.Sqrt2,
		},
		{
			name: "Custom Distance (Sum)",
			distFunc: func(a, b F64) float64 {
				var sum float64
				for i := range a {
					sum += a[i] + b[i]
				}
				return sum
			},
			vecA:     F64{1, 2, 3},
			vecB:     F64{4, 5, 6},
			expected: 21.0, // 1+2+3+4+5+6 = 21
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := BasicSurface{DistFunc: tt.distFunc}
			result, err := surface.Distance(tt.vecA, tt.vecB)
			require.NoError(t, err)

			if !float64Equals(result, tt.expected, 1e-9) {
				t.Errorf("BasicSurface.Distance(%v, %v) = %v, want %v",
					tt.vecA, tt.vecB, result, tt.expected)
			}
		})
	}
}

func TestBasicSurface_DimensionMismatch(t *testing.T) {
	called := false
	surface := CreateSurface(func(a, b F64) float64 {
		called = true
		return 0
	})

	_, err := surface.Distance(F64{1}, F64{1, 2})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.False(t, called, "distance func must not run on mismatched input")
}

func TestContraMap(t *testing.T) {
	// Measure strings by their length and byte sum.
	type word string
	toVector := func(w word) F64 {
		var sum float64
		for i := 0; i < len(w); i++ {
			sum += float64(w[i])
		}
		return F64{float64(len(w)), sum}
	}

	contraMap := ContraMap[F64, word]{
		Surface:   ManhattanSurface,
		ContraMap: toVector,
	}

	d, err := contraMap.Distance("ab", "ab")
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	d, err = contraMap.Distance("a", "ab")
	require.NoError(t, err)
	assert.Equal(t, 1.0+98.0, d)
}

func TestPointSurface(t *testing.T) {
	surface := PointSurface(EuclideanMetric{})

	d, err := surface.Distance(Point{X: 1, Y: 2}, Point{X: 4, Y: 6})
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	assert.Equal(t, F64{3, -4}, Point{X: 3, Y: -4}.Vector())
}

func TestMetricSurface(t *testing.T) {
	m, err := NewMinkowski(1)
	require.NoError(t, err)

	d, err := MetricSurface{Metric: m}.Distance(F64{1, 2, 3}, F64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 9.0, d)
}
