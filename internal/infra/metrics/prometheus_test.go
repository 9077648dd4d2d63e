package metrics

import (
	"testing"

	"academia/config"
	"academia/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecorder_Disabled(t *testing.T) {
	recorder := NewRecorder(&config.Config{Metrics: &config.MetricsConfig{}}, NewRegistry())

	assert.IsType(t, noopRecorder{}, recorder)
	recorder.CourseWritten("create")
}

func TestPrometheusRecorder_Counters(t *testing.T) {
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Namespace: "academia"}}
	recorder := NewRecorder(cfg, NewRegistry())
	r, ok := recorder.(*prometheusRecorder)
	require.True(t, ok)

	recorder.CourseWritten("create")
	recorder.CourseWritten("create")
	recorder.CourseWritten("replace")
	recorder.UserRegistered("student")
	recorder.EventPublished(service.EventCourseCreated, true)
	recorder.EventPublished(service.EventCourseCreated, false)
	recorder.CacheLookup(true)
	recorder.CacheLookup(false)
	recorder.CacheLookup(false)

	assert.InDelta(t, 2, testutil.ToFloat64(r.coursesWritten.WithLabelValues("create")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.coursesWritten.WithLabelValues("replace")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.usersRegistered.WithLabelValues("student")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.eventsPublished.WithLabelValues("course.created", "false")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.cacheLookups.WithLabelValues("hit")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(r.cacheLookups.WithLabelValues("miss")), 0)
}
