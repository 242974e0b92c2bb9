package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "element_phase"

// Metrics holds the Prometheus counters, histograms, and gauges for the phase pipeline.
type Metrics struct {
	ReadingsConsumed prometheus.Counter
	ReadingsProduced prometheus.Counter
	TransformErrors  prometheus.Counter
	PipelineRunning  prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Classification metrics.
	PhaseClassifications  *prometheus.CounterVec // labels: phase={solid,liquid,gas,unknown}
	UnconvertibleReadings prometheus.Counter
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReadingsConsumed,
		m.ReadingsProduced,
		m.TransformErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.PhaseClassifications,
		m.UnconvertibleReadings,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReadingsConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "readings_consumed_total",
			Help:      "Total readings read from the source topic.",
		}),
		ReadingsProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "readings_produced_total",
			Help:      "Total classified readings written to the sink topic.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transform_errors_total",
			Help:      "Total readings skipped because they could not be parsed or serialized.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of readings per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-transform-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		PhaseClassifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "phase_classifications_total",
			Help:      "Classified readings by resulting phase.",
		}, []string{"phase"}),
		UnconvertibleReadings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unconvertible_readings_total",
			Help:      "Readings whose temperature lies below absolute zero for its unit.",
		}),
	}
}
