// Package metrics exposes Prometheus instrumentation for the property store.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks loads, queries and saved selections.
type Metrics struct {
	PropertiesLoaded  prometheus.Counter
	PropertiesSkipped prometheus.Counter
	StoredProperties  prometheus.Gauge
	Queries           *prometheus.CounterVec
	QueryDuration     *prometheus.HistogramVec
	SelectionsSaved   prometheus.Counter
	SelectionSize     prometheus.Histogram
}

// New registers every metric on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		PropertiesLoaded: factory.NewCounter(prometheus.CounterOpts{
			Name: "estate_properties_loaded_total",
			Help: "Total number of properties added to the store by loads",
		}),
		PropertiesSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "estate_properties_skipped_total",
			Help: "Total number of records skipped because their property type is not supported",
		}),
		StoredProperties: factory.NewGauge(prometheus.GaugeOpts{
			Name: "estate_properties_stored",
			Help: "Number of properties currently held in memory",
		}),
		Queries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "estate_queries_total",
			Help: "Total number of property queries by operation and outcome",
		}, []string{"operation", "outcome"}),
		QueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "estate_query_duration_seconds",
			Help:    "Duration of property queries",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"operation"}),
		SelectionsSaved: factory.NewCounter(prometheus.CounterOpts{
			Name: "estate_selections_saved_total",
			Help: "Total number of selections written to the output snapshot",
		}),
		SelectionSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "estate_selection_size",
			Help:    "Number of properties in saved selections",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
}

// ObserveLoad records the outcome of a load and the resulting store size.
func (m *Metrics) ObserveLoad(loaded, skipped, stored int) {
	m.PropertiesLoaded.Add(float64(loaded))
	m.PropertiesSkipped.Add(float64(skipped))
	m.StoredProperties.Set(float64(stored))
}

// ObserveQuery records a query. Call with time.Now() taken at the start of the operation.
func (m *Metrics) ObserveQuery(operation string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Queries.WithLabelValues(operation, outcome).Inc()
	m.QueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// ObserveSelection records a saved selection.
func (m *Metrics) ObserveSelection(size int) {
	m.SelectionsSaved.Inc()
	m.SelectionSize.Observe(float64(size))
}
