package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPaginationCompleted(t *testing.T) {
	before := testutil.ToFloat64(PaginationsTotal.WithLabelValues("ok"))

	PaginationCompleted(10, 4)

	assert.Equal(t, before+1, testutil.ToFloat64(PaginationsTotal.WithLabelValues("ok")))
	assert.Equal(t, 1, testutil.CollectAndCount(PageCount))
	assert.Equal(t, 1, testutil.CollectAndCount(WindowLinks))
}

func TestPaginationRejected(t *testing.T) {
	before := testutil.ToFloat64(PaginationsTotal.WithLabelValues("invalid"))

	PaginationRejected()
	PaginationRejected()

	assert.Equal(t, before+2, testutil.ToFloat64(PaginationsTotal.WithLabelValues("invalid")))
}
