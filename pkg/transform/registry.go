package transform

import (
	"github.com/TFMV/spectra/pkg/registry"
)

// Family is the operator family name used in registry errors.
const Family = "transform"

// Registry maps transform names to factories.
type Registry = registry.Registry[Transform, Params]

// Factory constructs a transform from merged parameters.
type Factory = registry.Factory[Transform, Params]

// NewRegistry returns an empty transform registry.
func NewRegistry() *Registry {
	return registry.New[Transform, Params](Family, mergeParams)
}

// DefaultRegistry returns a registry holding every built-in transform under
// its Kind name. The power-law gamma defaults to DefaultGamma.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, kind := range Kinds {
		var defaults Params
		if kind == PowerLaw {
			defaults.Gamma = DefaultGamma
		}
		_ = r.Register(string(kind), KindFactory(kind), defaults)
	}
	return r
}

// KindFactory returns a factory that builds the given kind.
func KindFactory(kind Kind) Factory {
	return func(p Params) (Transform, error) {
		return New(Spec{Kind: kind, Gamma: p.Gamma})
	}
}

func mergeParams(defaults, supplied Params) Params {
	if supplied.Gamma != 0 {
		defaults.Gamma = supplied.Gamma
	}
	return defaults
}
