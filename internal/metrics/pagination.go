package metrics

// PaginationCompleted records a successful computation
func PaginationCompleted(pageCount, links int) {
	PaginationsTotal.WithLabelValues("ok").Inc()
	PageCount.Observe(float64(pageCount))
	WindowLinks.Observe(float64(links))
}

// PaginationRejected records a computation refused because of its configuration
func PaginationRejected() {
	PaginationsTotal.WithLabelValues("invalid").Inc()
}
