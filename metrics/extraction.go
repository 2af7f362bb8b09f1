package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Extraction implements phone.Recorder on top of Prometheus collectors.
//
// Metrics registered:
//   - {namespace}_candidates_total - substrings matched by the loose pattern
//   - {namespace}_rejected_total{reason} - candidates dropped by normalization
//   - {namespace}_unique_total - numbers returned after deduplication
//   - {namespace}_last_run_timestamp_seconds - unix time of the last finished extraction
type Extraction struct {
	candidates prometheus.Counter
	rejected   *prometheus.CounterVec
	unique     prometheus.Counter
	lastRun    prometheus.Gauge
}

func registerCollector(reg prometheus.Registerer, c prometheus.Collector) error {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return nil
		}
		return fmt.Errorf("register collector: %w", err)
	}
	return nil
}

// NewExtraction registers the extraction collectors with reg.
// Returns error if reg is nil or registration fails (except AlreadyRegisteredError).
func NewExtraction(reg prometheus.Registerer, namespace string) (*Extraction, error) {
	if reg == nil {
		return nil, errors.New("prometheus registerer is nil")
	}

	m := &Extraction{
		candidates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_total", Help: "Substrings that look like phone numbers",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_total", Help: "Candidates rejected during normalization by reason",
		}, []string{"reason"}),
		unique: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unique_total", Help: "Unique canonical numbers returned",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds", Help: "Unix time of the last finished extraction",
		}),
	}

	for _, c := range []prometheus.Collector{m.candidates, m.rejected, m.unique, m.lastRun} {
		if err := registerCollector(reg, c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Extraction) ObserveCandidates(n int) {
	if n > 0 {
		m.candidates.Add(float64(n))
	}
}

func (m *Extraction) ObserveRejected(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	m.rejected.WithLabelValues(reason).Inc()
}

func (m *Extraction) ObserveUnique(n int) {
	if n > 0 {
		m.unique.Add(float64(n))
	}
	m.lastRun.SetToCurrentTime()
}
