package transform

import (
	"fmt"
	"math"
)

// NegativeTransform inverts intensities: out = 255 - in. Samples are not
// clamped, so applying it twice returns the input exactly.
type NegativeTransform struct{}

func (NegativeTransform) Apply(img *Image) (*Image, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	return mapPix(img, func(v float64) float64 { return 255 - v }), nil
}

// LogTransform compresses the dynamic range with c * ln(1 + in), where c
// scales the brightest sample to 255. Results are rounded then cast to 8 bits.
type LogTransform struct{}

func (LogTransform) Apply(img *Image) (*Image, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	peak := img.Max()
	if peak <= 0 {
		return nil, fmt.Errorf("%w: log transform needs a positive maximum, got %g", ErrDegenerateInput, peak)
	}
	c := 255 / math.Log1p(peak)
	return mapPix(img, func(v float64) float64 {
		return toUint8(math.Round(c * math.Log1p(v)))
	}), nil
}

// ExponentialTransform expands bright values with exp(in/255) - 1,
// rescaled so the largest result maps to 255. An image whose results are
// all zero yields an all-zero image.
type ExponentialTransform struct{}

func (ExponentialTransform) Apply(img *Image) (*Image, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	expanded := mapPix(img, func(v float64) float64 { return math.Expm1(v / 255) })
	peak := expanded.Max()
	if peak == 0 {
		return img.SameShape(), nil
	}
	for i, v := range expanded.Pix {
		expanded.Pix[i] = toUint8(v / peak * 255)
	}
	return expanded, nil
}

// PowerLawTransform applies gamma correction: out = (in/255)^gamma * 255.
// Gamma below 1 brightens; above 1 darkens.
type PowerLawTransform struct {
	gamma float64
}

// NewPowerLaw returns a power-law transform. gamma must be positive.
func NewPowerLaw(gamma float64) (*PowerLawTransform, error) {
	if !(gamma > 0) || math.IsInf(gamma, 1) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidGamma, gamma)
	}
	return &PowerLawTransform{gamma: gamma}, nil
}

// Gamma returns the exponent.
func (p *PowerLawTransform) Gamma() float64 {
	return p.gamma
}

func (p *PowerLawTransform) Apply(img *Image) (*Image, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	return mapPix(img, func(v float64) float64 {
		return toUint8(math.Pow(v/255, p.gamma) * 255)
	}), nil
}
