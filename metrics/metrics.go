package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	WizardStarts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "onboarding_wizard_starts_total",
		Help: "Onboarding sessions started",
	})

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "onboarding_validation_failures_total",
			Help: "Blocked attempts to leave a wizard step, by step",
		},
		[]string{"step"},
	)

	Finalizations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "onboarding_finalizations_total",
		Help: "Onboarding records finalized",
	})

	Reflections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mission_reflections_total",
		Help: "Mission reflections submitted from the dashboard",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
