package transform

import (
	"errors"
	"fmt"

	"github.com/TFMV/spectra/pkg/registry"
)

var (
	// ErrInvalidImage is returned when an image's shape and samples disagree.
	ErrInvalidImage = errors.New("invalid image")
	// ErrDegenerateInput is returned by the log transform for an image whose
	// maximum sample is not positive.
	ErrDegenerateInput = errors.New("degenerate input")
	// ErrInvalidGamma is returned for a power-law gamma that is not positive.
	ErrInvalidGamma = errors.New("gamma must be positive")
)

// Transform maps an image to a new image. Apply never modifies its input.
type Transform interface {
	Apply(img *Image) (*Image, error)
}

// Func adapts a plain function to Transform.
type Func func(img *Image) (*Image, error)

// Apply calls f.
func (f Func) Apply(img *Image) (*Image, error) {
	return f(img)
}

// Kind identifies a transform implementation.
type Kind string

const (
	Negative    Kind = "negative"
	Log         Kind = "log"
	Exponential Kind = "exponential"
	PowerLaw    Kind = "power_law"
	Fourier     Kind = "fourier"
)

// DefaultGamma is the power-law exponent injected by DefaultRegistry.
const DefaultGamma = 2.2

// Kinds lists every built-in transform kind.
var Kinds = []Kind{Negative, Log, Exponential, PowerLaw, Fourier}

// Params are construction parameters. Zero fields are "not supplied".
type Params struct {
	Gamma float64 `json:"gamma,omitempty"`
}

// Spec describes a transform as a kind plus its immutable parameters.
type Spec struct {
	Kind  Kind    `json:"kind"`
	Gamma float64 `json:"gamma,omitempty"`
}

func (s Spec) String() string {
	if s.Kind == PowerLaw {
		return fmt.Sprintf("%s(gamma=%g)", s.Kind, s.Gamma)
	}
	return string(s.Kind)
}

// New constructs the transform a Spec describes.
func New(spec Spec) (Transform, error) {
	switch Kind(registry.Normalize(string(spec.Kind))) {
	case Negative:
		return NegativeTransform{}, nil
	case Log:
		return LogTransform{}, nil
	case Exponential:
		return ExponentialTransform{}, nil
	case PowerLaw:
		t, err := NewPowerLaw(spec.Gamma)
		if err != nil {
			return nil, err
		}
		return t, nil
	case Fourier:
		return FourierTransform{}, nil
	default:
		return nil, &registry.UnknownOperatorError{Family: Family, Name: string(spec.Kind)}
	}
}
