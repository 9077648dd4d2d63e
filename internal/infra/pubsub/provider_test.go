package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"academia/config"
	"academia/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, events *config.EventsConfig) PublisherParams {
	t.Helper()

	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{Events: events},
		Logger: slog.Default(),
	}
}

func TestNewEventPublisher_Providers(t *testing.T) {
	tests := []struct {
		name    string
		events  *config.EventsConfig
		wantErr string
	}{
		{name: "missing section uses noop", events: nil},
		{name: "none uses noop", events: &config.EventsConfig{Provider: ProviderNone}},
		{name: "local without endpoint", events: &config.EventsConfig{Provider: ProviderLocal}, wantErr: "local endpoint is required"},
		{name: "google without project", events: &config.EventsConfig{Provider: ProviderGoogle}, wantErr: "project ID is required"},
		{name: "google without topic", events: &config.EventsConfig{Provider: ProviderGoogle, ProjectID: "p"}, wantErr: "topic ID is required"},
		{name: "amqp without url", events: &config.EventsConfig{Provider: ProviderAMQP}, wantErr: "amqp URL is required"},
		{name: "amqp without queue", events: &config.EventsConfig{Provider: ProviderAMQP, AMQPURL: "amqp://localhost"}, wantErr: "amqp queue is required"},
		{name: "unknown provider", events: &config.EventsConfig{Provider: "kafka"}, wantErr: "unknown events provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(newParams(t, tt.events))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, &noopPublisher{}, publisher)
			assert.NoError(t, publisher.Publish(context.Background(), &service.DomainEvent{Type: service.EventCourseCreated}))
		})
	}
}

func TestLocalHTTPPublisher_PostsPushMessage(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher, err := NewEventPublisher(newParams(t, &config.EventsConfig{Provider: ProviderLocal, LocalEndpoint: server.URL}))
	require.NoError(t, err)

	event := &service.DomainEvent{
		RequestID:   "req-1",
		Type:        service.EventCourseCreated,
		AggregateID: "course-uuid",
		OccurredAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Payload:     map[string]any{"modules_created": float64(2)},
	}
	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "course.created", received.Message.Attributes["type"])
	assert.Equal(t, "course-uuid", received.Message.Attributes["aggregate_id"])
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, "course-uuid", received.Message.OrderingKey)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.DomainEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.Type, decoded.Type)
	assert.Equal(t, event.Payload, decoded.Payload)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("cache unavailable\n"))
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	err := publisher.Publish(context.Background(), &service.DomainEvent{Type: service.EventUserRegistered})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "user.registered: cache unavailable")
}
