package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "academia/internal/delivery/context"
	"academia/internal/domain/service"
	"academia/internal/errors"
	"academia/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// eventService implements the EventUsecase interface.
type eventService struct {
	cache  service.CourseCache
	logger *slog.Logger
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	Cache  service.CourseCache
	Logger *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		cache:  params.Cache,
		logger: params.Logger,
	}
}

func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleEvent drops the cached tree of every course touched by a course or module event.
// Other event types are acknowledged without work.
func (srv *eventService) HandleEvent(ctx context.Context, event *service.DomainEvent) error {
	if event == nil || event.Type == "" {
		return errors.Wrap(usecase.ErrMalformedEvent, "event type is missing")
	}

	logger := srv.log(ctx).With(
		slog.String("event_type", string(event.Type)),
		slog.String("aggregate_id", event.AggregateID),
	)

	if !touchesCourseTree(event.Type) {
		logger.Debug("Event does not affect cached courses, skipping")

		return nil
	}

	courseID, err := uuid.Parse(event.AggregateID)
	if err != nil {
		return errors.Wrapf(usecase.ErrMalformedEvent, "aggregate id %q is not a course uuid", event.AggregateID)
	}

	if srv.cache == nil {
		return nil
	}

	if err := srv.cache.Invalidate(ctx, courseID); err != nil {
		return errors.Wrap(err, "failed to invalidate course cache")
	}

	logger.Info("Course cache invalidated")

	return nil
}

// touchesCourseTree reports whether the event's aggregate is a course UUID.
func touchesCourseTree(eventType service.EventType) bool {
	name := string(eventType)

	return strings.HasPrefix(name, "course.") || strings.HasPrefix(name, "module.")
}
