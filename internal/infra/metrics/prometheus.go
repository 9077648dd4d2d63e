// Package metrics defines the domain Prometheus counters and the registry
// shared with the HTTP metrics middleware.
package metrics

import (
	"strconv"

	"academia/config"
	"academia/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewRegistry returns the registry every collector of the service registers with.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

type prometheusRecorder struct {
	coursesWritten  *prometheus.CounterVec
	usersRegistered *prometheus.CounterVec
	eventsPublished *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec
}

// NewRecorder registers the domain counters, or returns a no-op recorder when metrics are disabled.
func NewRecorder(cfg *config.Config, registry *prometheus.Registry) service.MetricsRecorder {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return noopRecorder{}
	}

	factory := promauto.With(registry)
	namespace := cfg.Metrics.Namespace

	return &prometheusRecorder{
		// courses_written_total{operation}: create, replace, update, deactivate.
		coursesWritten: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "courses_written_total",
			Help:      "Total number of committed course writes.",
		}, []string{"operation"}),
		// users_registered_total{kind}: student, instructor.
		usersRegistered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_registered_total",
			Help:      "Total number of created user accounts.",
		}, []string{"kind"}),
		eventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Total number of domain event publish attempts.",
		}, []string{"type", "success"}),
		cacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "course_cache_lookups_total",
			Help:      "Total number of course cache lookups, labelled by result (hit/miss).",
		}, []string{"result"}),
	}
}

func (r *prometheusRecorder) CourseWritten(operation string) {
	r.coursesWritten.WithLabelValues(operation).Inc()
}

func (r *prometheusRecorder) UserRegistered(kind string) {
	r.usersRegistered.WithLabelValues(kind).Inc()
}

func (r *prometheusRecorder) EventPublished(eventType service.EventType, success bool) {
	r.eventsPublished.WithLabelValues(string(eventType), strconv.FormatBool(success)).Inc()
}

func (r *prometheusRecorder) CacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(result).Inc()
}

type noopRecorder struct{}

func (noopRecorder) CourseWritten(string)                   {}
func (noopRecorder) UserRegistered(string)                  {}
func (noopRecorder) EventPublished(service.EventType, bool) {}
func (noopRecorder) CacheLookup(bool)                       {}
