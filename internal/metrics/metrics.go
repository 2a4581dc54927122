// Package metrics defines the Prometheus collectors for the birthday book.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "birthdaybook"

// Rejection reasons used as the "reason" label of EntriesRejected.
const (
	ReasonCapacity    = "capacity"
	ReasonInvalidDate = "invalid_date"
)

// Metrics holds the collectors updated by the service layer.
type Metrics struct {
	EntriesAdded    prometheus.Counter
	EntriesRejected *prometheus.CounterVec
	Searches        prometheus.Counter
	SearchMatches   prometheus.Counter
	Snapshots       *prometheus.CounterVec // label "op": save, load
	BookSize        prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EntriesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_added_total",
			Help:      "Entries accepted into the book.",
		}),
		EntriesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_rejected_total",
			Help:      "Entries rejected by the book, by reason.",
		}, []string{"reason"}),
		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Birthday searches by day and month.",
		}),
		SearchMatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_matches_total",
			Help:      "Entries returned by searches.",
		}),
		Snapshots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshots_total",
			Help:      "Snapshots saved and loaded.",
		}, []string{"op"}),
		BookSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "book_size",
			Help:      "Entries currently in the book.",
		}),
	}

	reg.MustRegister(
		m.EntriesAdded,
		m.EntriesRejected,
		m.Searches,
		m.SearchMatches,
		m.Snapshots,
		m.BookSize,
	)

	return m
}
