package service

import (
	"context"
	"time"
)

// EventType names a domain event published after a successful commit.
type EventType string

const (
	EventCourseCreated         EventType = "course.created"
	EventCourseReplaced        EventType = "course.replaced"
	EventCourseUpdated         EventType = "course.updated"
	EventCourseDeactivated     EventType = "course.deactivated"
	EventModuleCreated         EventType = "module.created"
	EventUserRegistered        EventType = "user.registered"
	EventProfileCompleted      EventType = "user.profile_completed"
	EventInstructorCreated     EventType = "instructor.created"
	EventInstructorDeactivated EventType = "instructor.deactivated"
)

// DomainEvent is the envelope delivered to every publisher.
type DomainEvent struct {
	RequestID   string         `json:"request_id,omitempty"` // For distributed tracing
	Type        EventType      `json:"type"`
	AggregateID string         `json:"aggregate_id"`
	OccurredAt  time.Time      `json:"occurred_at"`
	Payload     map[string]any `json:"payload,omitempty"`
}

// EventPublisher defines the interface for publishing domain events to a message broker.
type EventPublisher interface {
	// Publish delivers one event. Callers treat failures as best effort.
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
