package usecase

import (
	"context"

	"academia/internal/domain/service"
	"academia/internal/errors"
)

// ErrMalformedEvent marks an event that can never be processed and must not be redelivered.
var ErrMalformedEvent = errors.New("malformed domain event")

// EventUsecase consumes domain events delivered by the message broker.
type EventUsecase interface {
	HandleEvent(ctx context.Context, event *service.DomainEvent) error
}
