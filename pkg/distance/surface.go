// Package distance provides dissimilarity metrics between numeric vectors and
// between integer-coordinate points, selectable by name through a Registry.
package distance

// F64 is a type alias for []float64 to make it more expressive
type F64 = []float64

// Point is an integer coordinate pair.
type Point struct {
	X, Y int
}

// Vector returns the point as a two-element vector.
func (p Point) Vector() F64 {
	return F64{float64(p.X), float64(p.Y)}
}

// DistanceFunc is a function that computes the distance between two
// equal-length vectors.
type DistanceFunc func(a, b F64) float64

// Surface represents a distance function between two values
type Surface[T any] interface {
	// Distance calculates the distance between a and b
	Distance(a, b T) (float64, error)
}

// ContraMap is a generic adapter that allows applying a distance function to a different type
// by first mapping that type to the vector type the distance function expects
type ContraMap[V, T any] struct {
	// The underlying surface (distance function)
	Surface Surface[V]

	// The mapping function from T to V
	ContraMap func(T) V
}

// Distance implements the Surface interface by first mapping the inputs and then applying the underlying distance function
func (c ContraMap[V, T]) Distance(a, b T) (float64, error) {
	return c.Surface.Distance(c.ContraMap(a), c.ContraMap(b))
}

// BasicSurface wraps a standard distance function and checks dimensions
// before calling it.
type BasicSurface struct {
	DistFunc DistanceFunc
}

// Distance implements the Surface interface for F64 vectors
func (s BasicSurface) Distance(a, b F64) (float64, error) {
	if err := CheckDimensions(a, b); err != nil {
		return 0, err
	}
	return s.DistFunc(a, b), nil
}

// CreateSurface creates a basic surface from a distance function
func CreateSurface(distFunc DistanceFunc) Surface[F64] {
	return BasicSurface{DistFunc: distFunc}
}

// MetricSurface exposes the vector form of a Metric as a Surface.
type MetricSurface struct {
	Metric Metric
}

// Distance implements Surface by delegating to Metric.Compute.
func (s MetricSurface) Distance(a, b F64) (float64, error) {
	return s.Metric.Compute(a, b)
}

// PointSurface returns a surface that measures points as 2-D vectors under m.
func PointSurface(m Metric) Surface[Point] {
	return ContraMap[F64, Point]{
		Surface:   MetricSurface{Metric: m},
		ContraMap: Point.Vector,
	}
}
