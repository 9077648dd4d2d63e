package repository

import (
	"context"
	"errors"

	"academia/internal/domain/entity"
)

// ErrLessonNotFound is returned when a lesson is not found.
var ErrLessonNotFound = errors.New("lesson not found")

// LessonFilter narrows a lesson listing.
type LessonFilter struct {
	ModuleID   *uint64
	Search     string // Matches title or content.
	ActiveOnly bool
}

// LessonRepository defines persistence operations for lessons.
// Implementations apply the content type coercion before every write.
type LessonRepository interface {
	// List returns the matching lessons ordered by module and order.
	List(ctx context.Context, filter LessonFilter) ([]*entity.Lesson, error)

	FindByID(ctx context.Context, id uint64) (*entity.Lesson, error)
	Create(ctx context.Context, lesson *entity.Lesson) error
	Update(ctx context.Context, lesson *entity.Lesson) error
}
