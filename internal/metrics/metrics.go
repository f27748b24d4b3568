package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pagelinks"

// Pagination metrics
var (
	PaginationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paginations_total",
			Help:      "Total number of pagination computations",
		},
		[]string{"status"}, // "ok" or "invalid"
	)

	PageCount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "page_count",
			Help:      "Distribution of computed page counts",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 1000},
		},
	)

	WindowLinks = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "window_links",
			Help:      "Number of page links exposed around the current page",
			Buckets:   []float64{0, 1, 2, 4, 6, 8, 10, 15, 20},
		},
	)
)
