package distance

import (
	"errors"
	"testing"

	"github.com/TFMV/spectra/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_Names(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t,
		[]string{"chessboard", "cosine", "euclidean", "hamming", "manhattan", "minkowski"},
		r.Names(),
	)
}

func TestDefaultRegistry_MinkowskiDefaultOrder(t *testing.T) {
	r := DefaultRegistry()

	m, err := r.Instantiate("minkowski", Params{})
	require.NoError(t, err)
	assert.Equal(t, DefaultMinkowskiOrder, m.(*MinkowskiMetric).Order())

	m, err = r.Instantiate("Minkowski", Params{Order: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, m.(*MinkowskiMetric).Order())

	defaults, err := r.Defaults("minkowski")
	require.NoError(t, err)
	assert.Equal(t, Params{Order: 3}, defaults)
}

func TestDefaultRegistry_NegativeOrderRejected(t *testing.T) {
	r := DefaultRegistry()

	_, err := r.Instantiate("minkowski", Params{Order: -2})
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestDefaultRegistry_OtherMetricsIgnoreParams(t *testing.T) {
	r := DefaultRegistry()

	m, err := r.Instantiate("EUCLIDEAN", Params{Order: 7})
	require.NoError(t, err)
	assert.IsType(t, EuclideanMetric{}, m)
}

func TestDefaultRegistry_Unknown(t *testing.T) {
	r := DefaultRegistry()

	_, err := r.Resolve("nonexistent")
	require.Error(t, err)
	assert.True(t, errors.Is(err, registry.ErrUnknownOperator))
	assert.Equal(t, `metric "nonexistent" is not registered`, err.Error())
}

func TestRegistry_CustomMetric(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("l1", KindFactory(Manhattan), Params{}))

	m, err := r.Instantiate("L1", Params{})
	require.NoError(t, err)

	d, err := m.Compute(F64{0, 0}, F64{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	err = r.Register("l1", KindFactory(Euclidean), Params{})
	assert.ErrorIs(t, err, registry.ErrDuplicateOperator)
}
