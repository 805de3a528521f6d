package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the generation service.
// Tracks generated MRN volume, rejected requests and batch latency.
type Metrics struct {
	MrnsGenerated    prometheus.Counter
	RequestsRejected prometheus.Counter
	BatchDuration    prometheus.Histogram
}

// New creates a Metrics instance with all generator metrics registered
// on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		MrnsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "mrn_generated_total",
			Help: "Total number of MRNs generated",
		}),
		RequestsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "mrn_requests_rejected_total",
			Help: "Total number of generation requests rejected for invalid fields or counts",
		}),
		BatchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "mrn_batch_duration_seconds",
			Help:    "Duration of MRN batch generation",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
}

// AddGenerated records n successfully generated MRNs.
func (m *Metrics) AddGenerated(n int) {
	m.MrnsGenerated.Add(float64(n))
}

// IncrementRejected records a rejected generation request.
func (m *Metrics) IncrementRejected() {
	m.RequestsRejected.Inc()
}

// ObserveBatch records the duration of a batch generation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveBatch(start time.Time) {
	m.BatchDuration.Observe(time.Since(start).Seconds())
}
