// Package transform implements intensity and frequency transforms over
// 8-bit style images held as float64 samples, selectable by name through a
// Registry.
package transform

import (
	"fmt"
	"math"
)

// Image is a height x width grid of samples with one or more channels.
// Pix is row-major and channel-interleaved: the sample for channel c at
// (x, y) lives at Pix[(y*Width+x)*Channels+c]. Channels == 1 is grayscale.
type Image struct {
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Channels int       `json:"channels"`
	Pix      []float64 `json:"pix"`
}

// NewImage allocates a zeroed image.
func NewImage(width, height, channels int) *Image {
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]float64, width*height*channels),
	}
}

// NewGray wraps rows of samples as a single-channel image. Rows must all
// have the same length.
func NewGray(rows [][]float64) (*Image, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidImage)
	}
	img := NewImage(len(rows[0]), len(rows), 1)
	for y, row := range rows {
		if len(row) != img.Width {
			return nil, fmt.Errorf("%w: row %d has %d samples, want %d", ErrInvalidImage, y, len(row), img.Width)
		}
		copy(img.Pix[y*img.Width:], row)
	}
	return img, img.Validate()
}

// Validate checks that the dimensions are positive and agree with len(Pix).
func (img *Image) Validate() error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	if img.Width <= 0 || img.Height <= 0 || img.Channels <= 0 {
		return fmt.Errorf("%w: dimensions %dx%dx%d", ErrInvalidImage, img.Width, img.Height, img.Channels)
	}
	if want := img.Width * img.Height * img.Channels; len(img.Pix) != want {
		return fmt.Errorf("%w: %d samples for %dx%dx%d", ErrInvalidImage, len(img.Pix), img.Width, img.Height, img.Channels)
	}
	return nil
}

// Clone returns a deep copy.
func (img *Image) Clone() *Image {
	out := *img
	out.Pix = append([]float64(nil), img.Pix...)
	return &out
}

// SameShape returns an empty image with img's dimensions.
func (img *Image) SameShape() *Image {
	return NewImage(img.Width, img.Height, img.Channels)
}

// At returns the sample for channel c at (x, y).
func (img *Image) At(x, y, c int) float64 {
	return img.Pix[(y*img.Width+x)*img.Channels+c]
}

// Set stores v as the sample for channel c at (x, y).
func (img *Image) Set(x, y, c int, v float64) {
	img.Pix[(y*img.Width+x)*img.Channels+c] = v
}

// Max returns the largest sample. The image must not be empty.
func (img *Image) Max() float64 {
	largest := math.Inf(-1)
	for _, v := range img.Pix {
		if v > largest {
			largest = v
		}
	}
	return largest
}

// Mean returns the average sample value.
func (img *Image) Mean() float64 {
	if len(img.Pix) == 0 {
		return 0
	}
	var sum float64
	for _, v := range img.Pix {
		sum += v
	}
	return sum / float64(len(img.Pix))
}

// toUint8 converts v the way an unsigned 8-bit cast does: truncate toward
// zero, then wrap modulo 256. NaN and infinities become 0.
func toUint8(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(v), 256)
	if m < 0 {
		m += 256
	}
	return m
}

// mapPix applies fn to every sample of img into a new image.
func mapPix(img *Image, fn func(float64) float64) *Image {
	out := img.SameShape()
	for i, v := range img.Pix {
		out.Pix[i] = fn(v)
	}
	return out
}
