package worker

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"academia/config"
	"academia/internal/delivery/worker/handler"
	"academia/internal/domain/service"
	"academia/internal/infra/metrics"
	"academia/internal/infra/pubsub"
	mockUC "academia/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestWorkerServer(t *testing.T, metricsEnabled bool) (*workerServer, *mockUC.MockEventUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Events:  &config.EventsConfig{Provider: pubsub.ProviderLocal},
		Worker:  &config.WorkerConfig{Port: 8090},
		Metrics: &config.MetricsConfig{Enabled: metricsEnabled, Namespace: "academia"},
	}
	cfg.Env.Env = config.EnvDevelop
	eventUC := mockUC.NewMockEventUsecase(t)

	srv, err := NewServer(ServerParams{
		Lc:       fxtest.NewLifecycle(t),
		Cfg:      cfg,
		Logger:   logger,
		Registry: metrics.NewRegistry(),
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:  cfg,
			Logger:  logger,
			EventUC: eventUC,
		}),
	})
	require.NoError(t, err)

	return srv.(*workerServer), eventUC
}

func TestWorkerServer_LocalPublisherRoundTrip(t *testing.T) {
	srv, eventUC := newTestWorkerServer(t, false)
	ts := httptest.NewServer(srv.server)
	t.Cleanup(ts.Close)

	courseID := uuid.New()
	eventUC.EXPECT().HandleEvent(mock.Anything, mock.MatchedBy(func(e *service.DomainEvent) bool {
		return e.Type == service.EventCourseReplaced && e.AggregateID == courseID.String()
	})).Return(nil)

	publisher := pubsub.NewLocalHTTPPublisher(ts.URL+PushPath, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.Publish(context.Background(), &service.DomainEvent{
		RequestID:   "req-1",
		Type:        service.EventCourseReplaced,
		AggregateID: courseID.String(),
		OccurredAt:  time.Now().UTC(),
	})

	require.NoError(t, err)
}

func TestWorkerServer_Routes(t *testing.T) {
	tests := []struct {
		name           string
		metricsEnabled bool
		method         string
		path           string
		wantStatus     int
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{name: "metrics enabled", metricsEnabled: true, method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{name: "metrics disabled", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusNotFound},
		{name: "push requires POST", method: http.MethodGet, path: PushPath, wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestWorkerServer(t, tt.metricsEnabled)
			rec := httptest.NewRecorder()

			srv.server.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
			}
		})
	}
}
