package service

import (
	"context"
	"errors"

	"academia/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCacheMiss is returned by CourseCache.Get when no entry exists.
var ErrCacheMiss = errors.New("cache miss")

// CourseCache stores fully loaded course trees keyed by the course UUID.
type CourseCache interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Course, error)
	Set(ctx context.Context, course *entity.Course) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}
