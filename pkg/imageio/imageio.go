// Package imageio converts between image files and transform.Image values.
//
// Decoding accepts PNG, JPEG, GIF, BMP and TIFF. Encoding picks a format from
// the file extension and falls back to PNG.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/TFMV/spectra/pkg/transform"
)

// JPEGQuality is the quality used when saving JPEG files.
const JPEGQuality = 95

// Luma weights for RGB to grayscale conversion.
const (
	RedWeight   = 0.2989
	GreenWeight = 0.5870
	BlueWeight  = 0.1140
)

var (
	// ErrNotRGB is returned by Grayscale for images without exactly three channels.
	ErrNotRGB = errors.New("input image must be an RGB image with 3 channels")
	// ErrUnsupportedChannels is returned when encoding an image that is neither
	// grayscale nor RGB.
	ErrUnsupportedChannels = errors.New("only 1 or 3 channel images can be encoded")
)

// Loaded is a decoded image in both color and grayscale form.
type Loaded struct {
	RGB    *transform.Image
	Gray   *transform.Image
	Format string
}

// Load decodes the image file at path.
func Load(path string) (*Loaded, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads an image from r. Alpha is discarded.
func Decode(r io.Reader) (*Loaded, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	rgb := FromImage(src)
	gray, err := Grayscale(rgb)
	if err != nil {
		return nil, err
	}

	return &Loaded{RGB: rgb, Gray: gray, Format: format}, nil
}

// FromImage copies src into a 3 channel image with 8-bit samples.
func FromImage(src image.Image) *transform.Image {
	bounds := src.Bounds()
	out := transform.NewImage(bounds.Dx(), bounds.Dy(), 3)
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			c := color.NRGBAModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			out.Set(x, y, 0, float64(c.R))
			out.Set(x, y, 1, float64(c.G))
			out.Set(x, y, 2, float64(c.B))
		}
	}
	return out
}

// Grayscale returns the weighted luma of an RGB image. Samples are not
// rounded.
func Grayscale(img *transform.Image) (*transform.Image, error) {
	if img == nil || img.Channels != 3 {
		return nil, ErrNotRGB
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}

	out := transform.NewImage(img.Width, img.Height, 1)
	for i := range out.Pix {
		r, g, b := img.Pix[3*i], img.Pix[3*i+1], img.Pix[3*i+2]
		out.Pix[i] = r*RedWeight + g*GreenWeight + b*BlueWeight
	}
	return out, nil
}

// ToImage converts img to an image.Gray or image.RGBA. Samples are clamped
// to [0, 255] and truncated.
func ToImage(img *transform.Image) (image.Image, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}

	rect := image.Rect(0, 0, img.Width, img.Height)
	switch img.Channels {
	case 1:
		out := image.NewGray(rect)
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				out.SetGray(x, y, color.Gray{Y: clamp8(img.At(x, y, 0))})
			}
		}
		return out, nil
	case 3:
		out := image.NewRGBA(rect)
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				out.SetRGBA(x, y, color.RGBA{
					R: clamp8(img.At(x, y, 0)),
					G: clamp8(img.At(x, y, 1)),
					B: clamp8(img.At(x, y, 2)),
					A: 0xff,
				})
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedChannels, img.Channels)
	}
}

// FormatForPath maps a file extension to an encoding name.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	default:
		return "png"
	}
}

// Encode writes img to w in the named format.
func Encode(w io.Writer, img *transform.Image, format string) error {
	m, err := ToImage(img)
	if err != nil {
		return err
	}

	switch format {
	case "jpeg":
		return jpeg.Encode(w, m, &jpeg.Options{Quality: JPEGQuality})
	case "bmp":
		return bmp.Encode(w, m)
	case "tiff":
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	default:
		return png.Encode(w, m)
	}
}

// Save writes img to path, choosing the format from the extension.
func Save(img *transform.Image, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := Encode(f, img, FormatForPath(path)); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

func clamp8(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
