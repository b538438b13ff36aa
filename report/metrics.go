package report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const MetricsNamespace = "dataprovider"

// MetricsSink counts outcomes and observes case durations.
type MetricsSink struct {
	cases    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsSink registers its collectors with reg. A nil reg uses the
// default prometheus registerer.
func NewMetricsSink(reg prometheus.Registerer) *MetricsSink {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &MetricsSink{
		cases: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "cases_total",
			Help:      "Count of parametrized test cases by outcome",
		}, []string{
			"test",
			"status",
		}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: MetricsNamespace,
			Name:      "case_duration_seconds",
			Help:      "Duration of parametrized test cases",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{
			"test",
		}),
	}
}

func (s *MetricsSink) Report(o Outcome) {
	s.cases.WithLabelValues(o.Test(), o.Status.String()).Inc()
	s.duration.WithLabelValues(o.Test()).Observe(o.Duration.Seconds())
}
