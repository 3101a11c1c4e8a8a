package spectra

import (
	"github.com/TFMV/spectra/pkg/distance"
	"github.com/TFMV/spectra/pkg/transform"
)

// Config holds engine and command line settings.
type Config struct {
	// Minkowski order passed to every metric instantiation. Zero keeps the
	// registered default.
	MinkowskiOrder int `json:"minkowski_order" mapstructure:"minkowski_order"`
	// Power-law gamma passed to every transform instantiation. Zero keeps
	// the registered default.
	Gamma float64 `json:"gamma" mapstructure:"gamma"`

	// Operators used when a caller passes an empty name
	DefaultMetric    string `json:"default_metric" mapstructure:"default_metric"`
	DefaultTransform string `json:"default_transform" mapstructure:"default_transform"`

	// Whether the CLI records Prometheus metrics
	EnableMetrics bool `json:"enable_metrics" mapstructure:"enable_metrics"`

	// Logging
	LogLevel  string `json:"log_level" mapstructure:"log_level"`
	LogFormat string `json:"log_format" mapstructure:"log_format"`

	// Image path offered when the CLI prompts for input
	PromptDefault string `json:"prompt_default" mapstructure:"prompt_default"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		DefaultMetric:    string(distance.Euclidean),
		DefaultTransform: string(transform.Negative),
		LogLevel:         "warn",
		LogFormat:        "console",
	}
}
