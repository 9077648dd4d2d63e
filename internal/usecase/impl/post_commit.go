package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "academia/internal/delivery/context"
	"academia/internal/domain/repository"
	"academia/internal/domain/service"

	"github.com/google/uuid"
)

// postCommit runs the side effects of a successful write. None of them can fail the request.
type postCommit struct {
	publisher service.EventPublisher
	cache     service.CourseCache
	metrics   service.MetricsRecorder
	now       func() time.Time
}

func newPostCommit(publisher service.EventPublisher, cache service.CourseCache, metrics service.MetricsRecorder) *postCommit {
	return &postCommit{
		publisher: publisher,
		cache:     cache,
		metrics:   metrics,
		now:       time.Now,
	}
}

// publish delivers a domain event and records the outcome.
func (pc *postCommit) publish(ctx context.Context, logger *slog.Logger, eventType service.EventType, aggregateID string, payload map[string]any) {
	if pc.publisher == nil {
		return
	}

	event := &service.DomainEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        eventType,
		AggregateID: aggregateID,
		OccurredAt:  pc.now().UTC(),
		Payload:     payload,
	}

	err := pc.publisher.Publish(ctx, event)
	if pc.metrics != nil {
		pc.metrics.EventPublished(eventType, err == nil)
	}
	if err != nil {
		logger.Warn("Failed to publish domain event",
			slog.String("event_type", string(eventType)),
			slog.String("aggregate_id", aggregateID),
			slog.Any("error", err))
	}
}

// invalidateCourse drops the cached tree of a course.
func (pc *postCommit) invalidateCourse(ctx context.Context, logger *slog.Logger, id uuid.UUID) {
	if pc.cache == nil || id == uuid.Nil {
		return
	}

	if err := pc.cache.Invalidate(ctx, id); err != nil {
		logger.Warn("Failed to invalidate course cache", slog.Any("course_uuid", id), slog.Any("error", err))
	}
}

// invalidateCoursesWhere drops the cached trees of every course matching filter,
// for writes to rows the trees embed (category, instructor, instructor user).
func (pc *postCommit) invalidateCoursesWhere(
	ctx context.Context,
	logger *slog.Logger,
	courses repository.CourseRepository,
	filter repository.CourseFilter,
) {
	if pc.cache == nil || courses == nil {
		return
	}

	ids, err := courses.ListUUIDs(ctx, filter)
	if err != nil {
		logger.Warn("Failed to list courses for cache invalidation", slog.Any("error", err))

		return
	}
	for _, id := range ids {
		pc.invalidateCourse(ctx, logger, id)
	}
}

func (pc *postCommit) courseWritten(operation string) {
	if pc.metrics != nil {
		pc.metrics.CourseWritten(operation)
	}
}

func (pc *postCommit) userRegistered(kind string) {
	if pc.metrics != nil {
		pc.metrics.UserRegistered(kind)
	}
}

func (pc *postCommit) cacheLookup(hit bool) {
	if pc.metrics != nil {
		pc.metrics.CacheLookup(hit)
	}
}
