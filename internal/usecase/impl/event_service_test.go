package impl

import (
	"context"
	"testing"

	"academia/internal/domain/service"
	"academia/internal/errors"
	mockSvc "academia/internal/mocks/service"
	"academia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEventService(t *testing.T) (*mockSvc.MockCourseCache, usecase.EventUsecase) {
	t.Helper()

	cache := mockSvc.NewMockCourseCache(t)
	svc := NewEventService(EventServiceParams{
		Cache:  cache,
		Logger: newDiscardLogger(),
	})

	return cache, svc
}

func TestEventService_HandleEvent_InvalidatesCourse(t *testing.T) {
	tests := []struct {
		name      string
		eventType service.EventType
	}{
		{name: "course replaced", eventType: service.EventCourseReplaced},
		{name: "course deactivated", eventType: service.EventCourseDeactivated},
		{name: "module created", eventType: service.EventModuleCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache, svc := newTestEventService(t)
			ctx := context.Background()
			courseID := uuid.New()

			cache.EXPECT().Invalidate(ctx, courseID).Return(nil)

			err := svc.HandleEvent(ctx, &service.DomainEvent{Type: tt.eventType, AggregateID: courseID.String()})

			require.NoError(t, err)
		})
	}
}

func TestEventService_HandleEvent_IgnoresOtherAggregates(t *testing.T) {
	cache, svc := newTestEventService(t)

	err := svc.HandleEvent(context.Background(), &service.DomainEvent{
		Type:        service.EventUserRegistered,
		AggregateID: uuid.NewString(),
	})

	require.NoError(t, err)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestEventService_HandleEvent_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		event *service.DomainEvent
	}{
		{name: "nil event", event: nil},
		{name: "missing type", event: &service.DomainEvent{AggregateID: uuid.NewString()}},
		{name: "aggregate is not a uuid", event: &service.DomainEvent{Type: service.EventCourseUpdated, AggregateID: "42"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc := newTestEventService(t)

			err := svc.HandleEvent(context.Background(), tt.event)

			require.Error(t, err)
			assert.True(t, errors.Is(err, usecase.ErrMalformedEvent))
		})
	}
}

func TestEventService_HandleEvent_CacheFailureIsRetryable(t *testing.T) {
	cache, svc := newTestEventService(t)
	ctx := context.Background()
	courseID := uuid.New()

	cache.EXPECT().Invalidate(ctx, courseID).Return(errors.New("redis unavailable"))

	err := svc.HandleEvent(ctx, &service.DomainEvent{Type: service.EventCourseCreated, AggregateID: courseID.String()})

	require.Error(t, err)
	assert.False(t, errors.Is(err, usecase.ErrMalformedEvent))
}
