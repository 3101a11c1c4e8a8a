// Package spectra dispatches name-selected distance metrics and image
// transforms.
//
// An Engine resolves an operator name through its metric or transform
// registry, constructs a fresh instance with the registered defaults (plus
// any configured overrides) and applies it to one input. Names are matched
// case-insensitively:
//
//	d, err := spectra.Distance([]float64{1, 2, 3}, []float64{4, 5, 6}, "euclidean")
//	n, err := spectra.PointDistance(1, 2, 4, 6, "manhattan")
//	out, err := spectra.ApplyTransform(img, "negative")
//
// The package-level functions use a shared engine built from the default
// registries. Construct an Engine with NewEngine to supply custom
// registries, configuration, logging or metrics.
package spectra

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/TFMV/spectra/pkg/distance"
	"github.com/TFMV/spectra/pkg/metrics"
	"github.com/TFMV/spectra/pkg/registry"
	"github.com/TFMV/spectra/pkg/transform"
)

var (
	// ErrUnknownOperator is matched by errors for names with no registration.
	ErrUnknownOperator = registry.ErrUnknownOperator
	// ErrDimensionMismatch is returned for vectors of different lengths.
	ErrDimensionMismatch = distance.ErrDimensionMismatch
	// ErrDegenerateInput is returned by transforms that cannot handle an input.
	ErrDegenerateInput = transform.ErrDegenerateInput
)

// Engine resolves and applies operators.
type Engine struct {
	metrics    *distance.Registry
	transforms *transform.Registry
	config     Config
	logger     *zap.Logger
	collector  *metrics.Collector
}

// Option configures an Engine.
type Option func(*Engine)

// WithMetricRegistry sets the registry metric names are resolved against.
func WithMetricRegistry(r *distance.Registry) Option {
	return func(e *Engine) { e.metrics = r }
}

// WithTransformRegistry sets the registry transform names are resolved against.
func WithTransformRegistry(r *transform.Registry) Option {
	return func(e *Engine) { e.transforms = r }
}

// WithConfig sets the engine configuration.
func WithConfig(cfg Config) Option {
	return func(e *Engine) { e.config = cfg }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithCollector records every operator call in c.
func WithCollector(c *metrics.Collector) Option {
	return func(e *Engine) { e.collector = c }
}

// NewEngine creates an engine over the default registries unless options
// say otherwise.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{config: DefaultConfig()}
	for _, opt := range opts {
		opt(e)
	}
	if e.metrics == nil {
		e.metrics = distance.DefaultRegistry()
	}
	if e.transforms == nil {
		e.transforms = transform.DefaultRegistry()
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	return e
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Metrics returns the metric registry.
func (e *Engine) Metrics() *distance.Registry {
	return e.metrics
}

// Transforms returns the transform registry.
func (e *Engine) Transforms() *transform.Registry {
	return e.transforms
}

// Metric instantiates the named metric. An empty name selects the
// configured default metric.
func (e *Engine) Metric(name string) (distance.Metric, error) {
	return e.metrics.Instantiate(e.metricName(name), distance.Params{Order: e.config.MinkowskiOrder})
}

// Transform instantiates the named transform. An empty name selects the
// configured default transform.
func (e *Engine) Transform(name string) (transform.Transform, error) {
	return e.transforms.Instantiate(e.transformName(name), transform.Params{Gamma: e.config.Gamma})
}

// Distance computes the named metric between two vectors.
func (e *Engine) Distance(a, b []float64, name string) (float64, error) {
	name = e.metricName(name)
	start := time.Now()

	m, err := e.Metric(name)
	if err != nil {
		e.record(distance.Family, name, start, err)
		return 0, err
	}

	d, err := m.Compute(a, b)
	if err != nil {
		err = fmt.Errorf("%s: %w", name, err)
	}
	e.record(distance.Family, name, start, err)
	return d, err
}

// PointDistance computes the named metric between points (x, y) and (s, t).
func (e *Engine) PointDistance(x, y, s, t int, name string) (int, error) {
	name = e.metricName(name)
	start := time.Now()

	m, err := e.Metric(name)
	if err != nil {
		e.record(distance.Family, name, start, err)
		return 0, err
	}

	d := m.Distance(x, y, s, t)
	e.record(distance.Family, name, start, nil)
	return d, nil
}

// ApplyTransform applies the named transform to img and returns a new image.
func (e *Engine) ApplyTransform(img *transform.Image, name string) (*transform.Image, error) {
	name = e.transformName(name)
	start := time.Now()

	tr, err := e.Transform(name)
	if err != nil {
		e.record(transform.Family, name, start, err)
		return nil, err
	}

	out, err := tr.Apply(img)
	if err != nil {
		err = fmt.Errorf("%s: %w", name, err)
	}
	e.record(transform.Family, name, start, err)
	return out, err
}

func (e *Engine) metricName(name string) string {
	if name == "" {
		return e.config.DefaultMetric
	}
	return name
}

func (e *Engine) transformName(name string) string {
	if name == "" {
		return e.config.DefaultTransform
	}
	return name
}

func (e *Engine) record(family, name string, start time.Time, err error) {
	elapsed := time.Since(start)
	operator := registry.Normalize(name)

	switch {
	case err == nil:
		e.logger.Debug("operator applied",
			zap.String("family", family),
			zap.String("operator", operator),
			zap.Duration("duration", elapsed))
	case errors.Is(err, transform.ErrDegenerateInput):
		e.logger.Warn("degenerate input",
			zap.String("family", family),
			zap.String("operator", operator),
			zap.Error(err))
	default:
		e.logger.Debug("operator failed",
			zap.String("family", family),
			zap.String("operator", operator),
			zap.Error(err))
	}

	if e.collector != nil {
		e.collector.RecordCall(family, operator, elapsed, err)
	}
}

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// Default returns the shared engine used by the package-level functions.
func Default() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewEngine()
	})
	return defaultEngine
}

// Distance computes the named metric between two vectors using the default engine.
func Distance(a, b []float64, name string) (float64, error) {
	return Default().Distance(a, b, name)
}

// PointDistance computes the named metric between two points using the
// default engine.
func PointDistance(x, y, s, t int, name string) (int, error) {
	return Default().PointDistance(x, y, s, t, name)
}

// ApplyTransform applies the named transform using the default engine.
func ApplyTransform(img *transform.Image, name string) (*transform.Image, error) {
	return Default().ApplyTransform(img, name)
}
