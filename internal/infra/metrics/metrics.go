// Package metrics exposes Prometheus metrics of team lookups.
package metrics

import (
	"net/http"
	"time"

	"github.com/andrewshostak/team-lookup-service/internal/app/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "team_lookup"
	stageKey  = "stage"
	statusKey = "status"
)

var lookupDurationBuckets = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

type Recorder struct {
	gatherer prometheus.Gatherer

	stageResults   *prometheus.CounterVec
	lookupDuration prometheus.Histogram
}

// NewRecorder registers lookup metrics on registry.
func NewRecorder(registry *prometheus.Registry) *Recorder {
	auto := promauto.With(registry)

	return &Recorder{
		gatherer: registry,
		stageResults: auto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stage_results_total",
				Help:      "Number of lookup stage results by stage and status",
			},
			[]string{stageKey, statusKey},
		),
		lookupDuration: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "duration_seconds",
			Help:      "Duration of a whole team lookup in seconds",
			Buckets:   lookupDurationBuckets,
		}),
	}
}

func (r *Recorder) ObserveStage(stage models.Stage, status models.ResultStatus) {
	r.stageResults.WithLabelValues(string(stage), string(status)).Inc()
}

func (r *Recorder) ObserveLookup(duration time.Duration) {
	r.lookupDuration.Observe(duration.Seconds())
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
