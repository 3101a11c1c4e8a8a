package distance

import (
	"github.com/TFMV/spectra/pkg/registry"
)

// Family is the operator family name used in registry errors.
const Family = "metric"

// Registry maps metric names to factories.
type Registry = registry.Registry[Metric, Params]

// Factory constructs a metric from merged parameters.
type Factory = registry.Factory[Metric, Params]

// NewRegistry returns an empty metric registry.
func NewRegistry() *Registry {
	return registry.New[Metric, Params](Family, mergeParams)
}

// DefaultRegistry returns a registry holding every built-in metric under its
// Kind name. Minkowski defaults to order DefaultMinkowskiOrder.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, kind := range Kinds {
		var defaults Params
		if kind == Minkowski {
			defaults.Order = DefaultMinkowskiOrder
		}
		// Kinds are distinct, so Register cannot fail here.
		_ = r.Register(string(kind), KindFactory(kind), defaults)
	}
	return r
}

// KindFactory returns a factory that builds the given kind.
func KindFactory(kind Kind) Factory {
	return func(p Params) (Metric, error) {
		return New(Spec{Kind: kind, Order: p.Order})
	}
}

func mergeParams(defaults, supplied Params) Params {
	if supplied.Order != 0 {
		defaults.Order = supplied.Order
	}
	return defaults
}
