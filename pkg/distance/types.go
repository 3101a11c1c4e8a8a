package distance

import (
	"errors"
	"fmt"

	"github.com/TFMV/spectra/pkg/registry"
)

var (
	// ErrDimensionMismatch is returned when two vectors have different lengths.
	ErrDimensionMismatch = errors.New("vectors must have the same length")
	// ErrInvalidOrder is returned for a Minkowski order below 1.
	ErrInvalidOrder = errors.New("minkowski order must be a positive integer")
)

// Metric scores the dissimilarity of two vectors, or of two integer points
// (x, y) and (s, t).
type Metric interface {
	// Compute returns the distance between equal-length vectors a and b.
	Compute(a, b F64) (float64, error)
	// Distance returns the distance between points (x, y) and (s, t).
	Distance(x, y, s, t int) int
}

// Kind identifies a metric implementation.
type Kind string

const (
	// Euclidean distance
	Euclidean Kind = "euclidean"
	// Manhattan (city block) distance
	Manhattan Kind = "manhattan"
	// Chessboard (Chebyshev) distance
	Chessboard Kind = "chessboard"
	// Minkowski distance of a configured order
	Minkowski Kind = "minkowski"
	// Cosine distance
	Cosine Kind = "cosine"
	// Hamming distance
	Hamming Kind = "hamming"
)

// DefaultMinkowskiOrder is the order injected by DefaultRegistry when the
// caller does not supply one.
const DefaultMinkowskiOrder = 3

// Kinds lists every built-in metric kind.
var Kinds = []Kind{Euclidean, Manhattan, Chessboard, Minkowski, Cosine, Hamming}

// Params are the construction parameters a metric may take. Zero fields are
// "not supplied".
type Params struct {
	// Order is the Minkowski order p.
	Order int `json:"order,omitempty"`
}

// Spec describes a metric as a kind plus its immutable parameters.
type Spec struct {
	Kind  Kind `json:"kind"`
	Order int  `json:"order,omitempty"`
}

// String returns a readable form such as "minkowski(p=3)".
func (s Spec) String() string {
	if s.Kind == Minkowski {
		return fmt.Sprintf("%s(p=%d)", s.Kind, s.Order)
	}
	return string(s.Kind)
}

// New constructs the metric a Spec describes.
func New(spec Spec) (Metric, error) {
	switch Kind(registry.Normalize(string(spec.Kind))) {
	case Euclidean:
		return EuclideanMetric{}, nil
	case Manhattan:
		return ManhattanMetric{}, nil
	case Chessboard:
		return ChessboardMetric{}, nil
	case Minkowski:
		m, err := NewMinkowski(spec.Order)
		if err != nil {
			return nil, err
		}
		return m, nil
	case Cosine:
		return CosineMetric{}, nil
	case Hamming:
		return HammingMetric{}, nil
	default:
		return nil, &registry.UnknownOperatorError{Family: Family, Name: string(spec.Kind)}
	}
}

// CheckDimensions verifies that two vectors have the same dimensions
func CheckDimensions(a, b F64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}
	return nil
}
