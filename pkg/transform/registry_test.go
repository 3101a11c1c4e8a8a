package transform

import (
	"testing"

	"github.com/TFMV/spectra/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_Names(t *testing.T) {
	assert.Equal(t,
		[]string{"exponential", "fourier", "log", "negative", "power_law"},
		DefaultRegistry().Names(),
	)
}

func TestDefaultRegistry_PowerLawDefaults(t *testing.T) {
	r := DefaultRegistry()

	tr, err := r.Instantiate("POWER_LAW", Params{})
	require.NoError(t, err)
	assert.Equal(t, DefaultGamma, tr.(*PowerLawTransform).Gamma())

	tr, err = r.Instantiate("power_law", Params{Gamma: 0.5})
	require.NoError(t, err)
	assert.Equal(t, 0.5, tr.(*PowerLawTransform).Gamma())

	_, err = r.Instantiate("power_law", Params{Gamma: -1})
	assert.ErrorIs(t, err, ErrInvalidGamma)
}

func TestDefaultRegistry_FreshInstances(t *testing.T) {
	r := DefaultRegistry()
	a, err := r.Instantiate("power_law", Params{})
	require.NoError(t, err)
	b, err := r.Instantiate("power_law", Params{})
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}

func TestDefaultRegistry_Unknown(t *testing.T) {
	_, err := DefaultRegistry().Instantiate("scaling", Params{})
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrUnknownOperator)

	var unknown *registry.UnknownOperatorError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, Family, unknown.Family)
	assert.Equal(t, "scaling", unknown.Name)
}

func TestRegistry_CustomTransform(t *testing.T) {
	r := DefaultRegistry()
	identity := func(Params) (Transform, error) {
		return Func(func(img *Image) (*Image, error) { return img.Clone(), nil }), nil
	}

	require.NoError(t, r.Register("identity", identity, Params{}))
	assert.ErrorIs(t, r.Register("Identity", identity, Params{}), registry.ErrDuplicateOperator)

	tr, err := r.Instantiate("identity", Params{})
	require.NoError(t, err)
	out, err := tr.Apply(constant(1, 1, 1, 42))
	require.NoError(t, err)
	assert.Equal(t, []float64{42}, out.Pix)

	// Replace overrides a built-in explicitly.
	require.NoError(t, r.Replace("negative", identity, Params{}))
	tr, err = r.Instantiate("negative", Params{})
	require.NoError(t, err)
	out, err = tr.Apply(constant(1, 1, 1, 42))
	require.NoError(t, err)
	assert.Equal(t, []float64{42}, out.Pix)
}
