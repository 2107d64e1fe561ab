package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveLoad(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveLoad(3, 1, 3)
	m.ObserveLoad(2, 0, 5)

	assert.Equal(t, 5.0, testutil.ToFloat64(m.PropertiesLoaded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PropertiesSkipped))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.StoredProperties))
}

func TestMetrics_ObserveQuery(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveQuery("filter_by_price", time.Now(), nil)
	m.ObserveQuery("filter_by_price", time.Now(), errors.New("empty"))
	m.ObserveQuery("sort", time.Now(), nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues("filter_by_price", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues("filter_by_price", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues("sort", "ok")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.QueryDuration))
}

func TestMetrics_ObserveSelection(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveSelection(4)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SelectionsSaved))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SelectionSize))
}
