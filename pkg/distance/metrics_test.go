package distance

import (
	"errors"
	"math"
	"testing"

	"github.com/TFMV/spectra/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMinkowski(t *testing.T, p int) *MinkowskiMetric {
	t.Helper()
	m, err := NewMinkowski(p)
	require.NoError(t, err)
	return m
}

func TestMetric_Compute(t *testing.T) {
	a := F64{1, 2, 3}
	b := F64{4, 5, 6}

	tests := []struct {
		name     string
		metric   Metric
		expected float64
	}{
		{"euclidean", EuclideanMetric{}, math.Sqrt(27)},
		{"manhattan", ManhattanMetric{}, 9},
		{"chessboard", ChessboardMetric{}, 3},
		{"minkowski", mustMinkowski(t, 3), math.Cbrt(81)},
		{"cosine", CosineMetric{}, 1 - 32/(math.Sqrt(14)*math.Sqrt(77))},
		{"hamming", HammingMetric{}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.metric.Compute(a, b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestMetric_ComputeDimensionMismatch(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(string(kind), func(t *testing.T) {
			m, err := New(Spec{Kind: kind, Order: 2})
			require.NoError(t, err)

			_, err = m.Compute(F64{1, 2, 3}, F64{1, 2})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDimensionMismatch))
			assert.Contains(t, err.Error(), "3 != 2")
		})
	}
}

func TestMetric_Distance(t *testing.T) {
	// Points (1,2) and (4,6): dx = 3, dy = 4.
	tests := []struct {
		name     string
		metric   Metric
		expected int
	}{
		{"euclidean", EuclideanMetric{}, 5},
		{"manhattan", ManhattanMetric{}, 7},
		{"chessboard", ChessboardMetric{}, 4},
		{"minkowski p=3", mustMinkowski(t, 3), 4}, // cbrt(91) = 4.49
		{"minkowski p=1", mustMinkowski(t, 1), 7},
		{"cosine", CosineMetric{}, 7}, // 1000 * 0.00772
		{"hamming", HammingMetric{}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.metric.Distance(1, 2, 4, 6))
		})
	}
}

func TestEuclideanMetric_DistanceTruncates(t *testing.T) {
	// sqrt(1 + 1) = 1.414
	assert.Equal(t, 1, EuclideanMetric{}.Distance(0, 0, 1, 1))
	// sqrt(4 + 9) = 3.605
	assert.Equal(t, 3, EuclideanMetric{}.Distance(0, 0, 2, 3))
}

func TestCosineMetric_DistanceZeroPoint(t *testing.T) {
	// The origin has zero norm, so the scaled distance is 1000.
	assert.Equal(t, 1000, CosineMetric{}.Distance(0, 0, 3, 4))
	// Opposite directions.
	assert.Equal(t, 2000, CosineMetric{}.Distance(1, 0, -1, 0))
}

func TestHammingMetric_Distance(t *testing.T) {
	h := HammingMetric{}
	assert.Equal(t, 0, h.Distance(1, 2, 1, 2))
	assert.Equal(t, 1, h.Distance(1, 2, 1, 3))
	assert.Equal(t, 1, h.Distance(1, 2, 0, 2))
	assert.Equal(t, 2, h.Distance(1, 2, 4, 6))
}

func TestMetric_DistanceLargeInputs(t *testing.T) {
	m := mustMinkowski(t, 400)
	assert.Equal(t, 10, m.Distance(0, 0, 10, 0))
	assert.Equal(t, 10, m.Distance(0, 0, 10, 10))

	d, err := m.Compute(F64{0}, F64{10})
	require.NoError(t, err)
	assert.InDelta(t, 10, d, 1e-9)

	assert.Equal(t, 1000000000, mustMinkowski(t, 40).Distance(0, 0, 1000000000, 0))
	assert.Equal(t, 5000000000, EuclideanMetric{}.Distance(0, 0, 3000000000, 4000000000))
}

func TestNewMinkowski(t *testing.T) {
	m, err := NewMinkowski(4)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Order())

	for _, p := range []int{0, -1, -5} {
		_, err := NewMinkowski(p)
		assert.ErrorIs(t, err, ErrInvalidOrder, "p=%d", p)
	}
}

func TestNew(t *testing.T) {
	for _, kind := range Kinds {
		m, err := New(Spec{Kind: kind, Order: 2})
		require.NoError(t, err, kind)
		assert.NotNil(t, m)
	}

	m, err := New(Spec{Kind: "MINKOWSKI", Order: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, m.(*MinkowskiMetric).Order())

	m, err = New(Spec{Kind: Minkowski})
	assert.ErrorIs(t, err, ErrInvalidOrder)
	assert.Nil(t, m)

	_, err = New(Spec{Kind: "nonexistent"})
	assert.ErrorIs(t, err, registry.ErrUnknownOperator)
}

func TestSpec_String(t *testing.T) {
	assert.Equal(t, "minkowski(p=3)", Spec{Kind: Minkowski, Order: 3}.String())
	assert.Equal(t, "cosine", Spec{Kind: Cosine}.String())
}
