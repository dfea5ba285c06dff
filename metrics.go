package typos

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Search collectors always record; RegisterMetrics exposes them.
var (
	// searchTotal counts searches by algorithm and outcome
	searchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "typos_search_total",
		Help: "Total searches by algorithm and outcome",
	}, []string{"algorithm", "outcome"})

	// searchExpansions tracks node expansions per search
	searchExpansions = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "typos_search_expansions",
		Help:    "Node expansions per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
	}, []string{"algorithm"})

	// searchDuration tracks search latency
	searchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "typos_search_duration_seconds",
		Help:    "Search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
	}, []string{"algorithm"})
)

// RegisterMetrics registers the search collectors with reg. Nothing is
// registered on import, so embedding programs choose the registry.
func RegisterMetrics(reg prometheus.Registerer) error {
	var errs []error
	for _, collector := range []prometheus.Collector{searchTotal, searchExpansions, searchDuration} {
		if err := reg.Register(collector); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func recordSearch(algorithm Algorithm, outcome string, expanded int, elapsed time.Duration) {
	name := algorithm.String()
	searchTotal.WithLabelValues(name, outcome).Inc()
	searchExpansions.WithLabelValues(name).Observe(float64(expanded))
	searchDuration.WithLabelValues(name).Observe(elapsed.Seconds())
}
