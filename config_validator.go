package spectra

import (
	"fmt"
	"strings"

	"github.com/TFMV/spectra/internal/logging"
	"github.com/TFMV/spectra/pkg/distance"
	"github.com/TFMV/spectra/pkg/registry"
	"github.com/TFMV/spectra/pkg/transform"
)

// ValidationIssue represents a configuration validation issue
type ValidationIssue struct {
	Field      string             `json:"field"`      // The field with the issue
	Value      interface{}        `json:"value"`      // The current value
	Message    string             `json:"message"`    // Description of the issue
	Severity   ValidationSeverity `json:"severity"`   // How severe the issue is
	Suggestion string             `json:"suggestion"` // Suggested fix
}

// ValidationSeverity indicates how severe a validation issue is
type ValidationSeverity int

const (
	// Error indicates a configuration that will not work
	Error ValidationSeverity = iota
	// Warning indicates a configuration that may cause problems
	Warning
	// Info indicates a configuration that could be improved
	Info
)

// String returns a string representation of the severity
func (s ValidationSeverity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// MarshalText encodes the severity by name.
func (s ValidationSeverity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ValidateConfig checks a configuration against the default registries and
// returns a list of validation issues
func ValidateConfig(config Config) []ValidationIssue {
	var issues []ValidationIssue

	// Validate Minkowski order
	if config.MinkowskiOrder < 0 {
		issues = append(issues, ValidationIssue{
			Field:      "MinkowskiOrder",
			Value:      config.MinkowskiOrder,
			Message:    "MinkowskiOrder must not be negative",
			Severity:   Error,
			Suggestion: fmt.Sprintf("Set MinkowskiOrder to a positive integer, or 0 for the default of %d", distance.DefaultMinkowskiOrder),
		})
	} else if config.MinkowskiOrder == 0 {
		issues = append(issues, ValidationIssue{
			Field:      "MinkowskiOrder",
			Value:      config.MinkowskiOrder,
			Message:    "MinkowskiOrder is unset",
			Severity:   Info,
			Suggestion: fmt.Sprintf("The minkowski metric will use order %d", distance.DefaultMinkowskiOrder),
		})
	} else if config.MinkowskiOrder > 20 {
		issues = append(issues, ValidationIssue{
			Field:      "MinkowskiOrder",
			Value:      config.MinkowskiOrder,
			Message:    "MinkowskiOrder is unusually high",
			Severity:   Warning,
			Suggestion: "Large orders overflow quickly; use the chessboard metric for the limit",
		})
	}

	// Validate gamma
	if config.Gamma < 0 {
		issues = append(issues, ValidationIssue{
			Field:      "Gamma",
			Value:      config.Gamma,
			Message:    "Gamma must not be negative",
			Severity:   Error,
			Suggestion: fmt.Sprintf("Set Gamma to a positive value, or 0 for the default of %g", transform.DefaultGamma),
		})
	} else if config.Gamma > 10 {
		issues = append(issues, ValidationIssue{
			Field:      "Gamma",
			Value:      config.Gamma,
			Message:    "Gamma is unusually high",
			Severity:   Warning,
			Suggestion: "Gamma above 10 maps almost every pixel to black",
		})
	}

	// Validate default operators
	metricNames := distance.DefaultRegistry().Names()
	if config.DefaultMetric == "" {
		issues = append(issues, ValidationIssue{
			Field:      "DefaultMetric",
			Value:      config.DefaultMetric,
			Message:    "DefaultMetric is empty",
			Severity:   Warning,
			Suggestion: "Calls without a metric name will fail; set DefaultMetric to euclidean",
		})
	} else if !contains(metricNames, config.DefaultMetric) {
		issues = append(issues, ValidationIssue{
			Field:      "DefaultMetric",
			Value:      config.DefaultMetric,
			Message:    "Unknown metric",
			Severity:   Error,
			Suggestion: fmt.Sprintf("Use one of: %s", strings.Join(metricNames, ", ")),
		})
	}

	transformNames := transform.DefaultRegistry().Names()
	if config.DefaultTransform == "" {
		issues = append(issues, ValidationIssue{
			Field:      "DefaultTransform",
			Value:      config.DefaultTransform,
			Message:    "DefaultTransform is empty",
			Severity:   Warning,
			Suggestion: "Calls without a transform name will fail; set DefaultTransform to negative",
		})
	} else if !contains(transformNames, config.DefaultTransform) {
		issues = append(issues, ValidationIssue{
			Field:      "DefaultTransform",
			Value:      config.DefaultTransform,
			Message:    "Unknown transform",
			Severity:   Error,
			Suggestion: fmt.Sprintf("Use one of: %s", strings.Join(transformNames, ", ")),
		})
	}

	// Validate logging
	if _, err := logging.ParseLevel(config.LogLevel); err != nil {
		issues = append(issues, ValidationIssue{
			Field:      "LogLevel",
			Value:      config.LogLevel,
			Message:    "Invalid log level",
			Severity:   Error,
			Suggestion: "Use one of: debug, info, warn, error",
		})
	}

	switch strings.ToLower(config.LogFormat) {
	case "", "json", "console", "text":
	default:
		issues = append(issues, ValidationIssue{
			Field:      "LogFormat",
			Value:      config.LogFormat,
			Message:    "Invalid log format",
			Severity:   Error,
			Suggestion: "Use json or console",
		})
	}

	if config.PromptDefault == "" {
		issues = append(issues, ValidationIssue{
			Field:      "PromptDefault",
			Value:      config.PromptDefault,
			Message:    "PromptDefault is empty",
			Severity:   Info,
			Suggestion: "Set PromptDefault to a sample image so a blank answer at the prompt still works",
		})
	}

	return issues
}

// HasErrors reports whether any issue is an Error.
func HasErrors(issues []ValidationIssue) bool {
	for _, issue := range issues {
		if issue.Severity == Error {
			return true
		}
	}
	return false
}

// FormatValidationIssues returns a formatted string representation of validation issues
func FormatValidationIssues(issues []ValidationIssue) string {
	if len(issues) == 0 {
		return "Configuration is valid."
	}

	var errorCount, warningCount, infoCount int
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Found %d configuration issues:\n\n", len(issues)))

	for i, issue := range issues {
		switch issue.Severity {
		case Error:
			errorCount++
		case Warning:
			warningCount++
		case Info:
			infoCount++
		}

		sb.WriteString(fmt.Sprintf("%d. [%s] %s: %v\n", i+1, issue.Severity, issue.Field, issue.Message))
		sb.WriteString(fmt.Sprintf("   Current value: %v\n", issue.Value))
		sb.WriteString(fmt.Sprintf("   Suggestion: %s\n\n", issue.Suggestion))
	}

	sb.WriteString(fmt.Sprintf("Summary: %d errors, %d warnings, %d informational\n",
		errorCount, warningCount, infoCount))

	return sb.String()
}

func contains(names []string, name string) bool {
	key := registry.Normalize(name)
	for _, n := range names {
		if n == key {
			return true
		}
	}
	return false
}
