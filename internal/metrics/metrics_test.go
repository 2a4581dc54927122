package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.EntriesAdded.Inc()
	m.EntriesRejected.WithLabelValues(ReasonCapacity).Inc()
	m.Searches.Inc()
	m.SearchMatches.Inc()
	m.Snapshots.WithLabelValues("save").Inc()
	m.BookSize.Set(3)

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"birthdaybook_entries_added_total",
		"birthdaybook_entries_rejected_total",
		"birthdaybook_searches_total",
		"birthdaybook_search_matches_total",
		"birthdaybook_snapshots_total",
		"birthdaybook_book_size",
	}, names)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.BookSize))
}

func TestNewPanicsOnDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}
