// Package metrics provides Prometheus observability metrics for the planner.
// It covers redistribution outcomes, name generation, and input parsing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// =============================================================================
// REDISTRIBUTION
// =============================================================================

// RedistributionsTotal counts committed redistributions.
var RedistributionsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "redistribution",
	Name:      "runs_total",
	Help:      "Total number of redistributions committed to a session",
})

// RedistributionsRejected counts redistributions rejected before commit, by error type.
var RedistributionsRejected = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "redistribution",
	Name:      "rejected_total",
	Help:      "Total redistributions rejected during validation by error type",
}, []string{"error_type"})

// RedistributionDurationSeconds tracks time to compute a distribution.
var RedistributionDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "redistribution",
	Name:      "duration_seconds",
	Help:      "Time taken to accumulate, normalize and round a distribution",
	Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
})

// DistributedTotal is the rounded sum of the last committed distribution.
var DistributedTotal = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "redistribution",
	Name:      "distributed_total",
	Help:      "Sum of the buckets of the last committed distribution",
})

// =============================================================================
// NAMES
// =============================================================================

// NamesGeneratedTotal counts unique names handed out for copied groups.
var NamesGeneratedTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "names",
	Name:      "generated_total",
	Help:      "Total unique names generated",
})

// NameProbes tracks how many suffixed candidates were tried per generated name.
var NameProbes = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "names",
	Name:      "probes",
	Help:      "Number of suffixed candidates tried before a free name was found",
	Buckets:   []float64{1, 2, 5, 10, 25, 50, 100},
})

// =============================================================================
// PARSER
// =============================================================================

// ParserErrorsTotal tracks parse errors by error type.
var ParserErrorsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "parser",
	Name:      "errors_total",
	Help:      "Total parse errors by error type",
}, []string{"error_type"})

// ParserRecordsTotal tracks total records successfully parsed.
var ParserRecordsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "parser",
	Name:      "records_total",
	Help:      "Total CSV records successfully parsed",
})

// ParserDurationSeconds tracks time to parse input files.
var ParserDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "parser",
	Name:      "duration_seconds",
	Help:      "Time taken to parse CSV input file",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
})
