package metrics

import (
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Status labels an operator call outcome.
type Status string

const (
	// StatusOK marks a call that returned a result
	StatusOK Status = "ok"
	// StatusError marks a call that returned an error
	StatusError Status = "error"
)

// OperatorMetrics holds a running summary of operator calls
type OperatorMetrics struct {
	// Total calls recorded
	Calls uint64
	// Calls that returned an error
	Errors uint64
	// Exponentially smoothed call latency in milliseconds
	AvgLatencyMs float64
	// Family and name of the last operator called
	LastFamily   string
	LastOperator string
	// Time of the last call
	Timestamp time.Time
}

// CallCount is one series of the call counter.
type CallCount struct {
	Family   string `json:"family"`
	Operator string `json:"operator"`
	Status   string `json:"status"`
	Count    uint64 `json:"count"`
}

// Collector manages the collection of operator metrics
type Collector struct {
	// Prometheus registry
	registry *prometheus.Registry
	// Call latency histogram
	latency *prometheus.HistogramVec
	// Call counter
	calls *prometheus.CounterVec
	// Whether Prometheus metrics are enabled
	prometheusEnabled bool
	// Lock for concurrent access
	mu sync.RWMutex
	// Recent metrics
	recentMetrics OperatorMetrics
}

// NewCollector creates a new metrics collector
func NewCollector(prometheusEnabled bool) *Collector {
	c := &Collector{
		prometheusEnabled: prometheusEnabled,
		recentMetrics: OperatorMetrics{
			Timestamp: time.Now(),
		},
	}

	if prometheusEnabled {
		c.registry = prometheus.NewRegistry()

		c.latency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "spectra_operator_latency_seconds",
				Help:    "Operator call latency in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10), // 1µs-262ms
			},
			[]string{"family", "operator"},
		)

		c.calls = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spectra_operator_calls_total",
				Help: "Total number of operator calls",
			},
			[]string{"family", "operator", "status"},
		)

		c.registry.MustRegister(c.latency)
		c.registry.MustRegister(c.calls)
	}

	return c
}

// RecordCall records one operator call and its outcome
func (c *Collector) RecordCall(family, operator string, elapsed time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ms := float64(elapsed) / float64(time.Millisecond)
	if c.recentMetrics.Calls == 0 {
		c.recentMetrics.AvgLatencyMs = ms
	} else {
		c.recentMetrics.AvgLatencyMs = (c.recentMetrics.AvgLatencyMs + ms) / 2
	}
	c.recentMetrics.Calls++
	if err != nil {
		c.recentMetrics.Errors++
	}
	c.recentMetrics.LastFamily = family
	c.recentMetrics.LastOperator = operator
	c.recentMetrics.Timestamp = time.Now()

	if c.prometheusEnabled {
		c.latency.WithLabelValues(family, operator).Observe(elapsed.Seconds())
		c.calls.WithLabelValues(family, operator, string(status)).Inc()
	}
}

// GetRecentMetrics retrieves the most recent metrics
func (c *Collector) GetRecentMetrics() OperatorMetrics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.recentMetrics
}

// GetRegistry returns the Prometheus registry, or nil when disabled
func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}

// CallCounts gathers the call counter, sorted by family, operator and status.
// It returns nil when Prometheus metrics are disabled.
func (c *Collector) CallCounts() ([]CallCount, error) {
	if !c.prometheusEnabled {
		return nil, nil
	}

	families, err := c.registry.Gather()
	if err != nil {
		return nil, err
	}

	var counts []CallCount
	for _, mf := range families {
		if mf.GetName() != "spectra_operator_calls_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			cc := CallCount{Count: uint64(m.GetCounter().GetValue())}
			for _, lp := range m.GetLabel() {
				switch lp.GetName() {
				case "family":
					cc.Family = lp.GetValue()
				case "operator":
					cc.Operator = lp.GetValue()
				case "status":
					cc.Status = lp.GetValue()
				}
			}
			counts = append(counts, cc)
		}
	}

	sort.Slice(counts, func(i, j int) bool {
		a, b := counts[i], counts[j]
		if a.Family != b.Family {
			return a.Family < b.Family
		}
		if a.Operator != b.Operator {
			return a.Operator < b.Operator
		}
		return a.Status < b.Status
	})
	return counts, nil
}
