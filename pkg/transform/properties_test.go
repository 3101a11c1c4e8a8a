package transform

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func pixelsGen() gopter.Gen {
	return gen.SliceOfN(16, gen.IntRange(0, 255)).Map(func(v []int) *Image {
		img := NewImage(4, 4, 1)
		for i, s := range v {
			img.Pix[i] = float64(s)
		}
		return img
	})
}

func TestTransformProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("negative is an involution", prop.ForAll(
		func(img *Image) bool {
			once, err := NegativeTransform{}.Apply(img)
			if err != nil {
				return false
			}
			twice, err := NegativeTransform{}.Apply(once)
			if err != nil {
				return false
			}
			for i := range img.Pix {
				if twice.Pix[i] != img.Pix[i] {
					return false
				}
			}
			return true
		},
		pixelsGen(),
	))

	properties.Property("log is monotone", prop.ForAll(
		func(img *Image) bool {
			if img.Max() == 0 {
				return true
			}
			out, err := LogTransform{}.Apply(img)
			if err != nil {
				return false
			}
			for i := range img.Pix {
				for j := range img.Pix {
					if img.Pix[i] <= img.Pix[j] && out.Pix[i] > out.Pix[j] {
						return false
					}
				}
			}
			return true
		},
		pixelsGen(),
	))

	properties.Property("intensity outputs stay in [0, 255]", prop.ForAll(
		func(img *Image, gamma float64) bool {
			p, err := NewPowerLaw(gamma)
			if err != nil {
				return false
			}
			for _, tr := range []Transform{ExponentialTransform{}, p, FourierTransform{}} {
				out, err := tr.Apply(img)
				if err != nil {
					return false
				}
				for _, v := range out.Pix {
					if v < 0 || v > 255 {
						return false
					}
				}
			}
			return true
		},
		pixelsGen(),
		gen.Float64Range(0.1, 5),
	))

	properties.Property("apply leaves the input untouched", prop.ForAll(
		func(img *Image) bool {
			before := img.Clone()
			for _, kind := range Kinds {
				tr, err := New(Spec{Kind: kind, Gamma: DefaultGamma})
				if err != nil {
					return false
				}
				_, _ = tr.Apply(img)
			}
			for i := range img.Pix {
				if img.Pix[i] != before.Pix[i] {
					return false
				}
			}
			return true
		},
		pixelsGen(),
	))

	properties.TestingRun(t)
}
