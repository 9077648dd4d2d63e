package repository

import (
	"context"
	"errors"

	"academia/internal/domain/entity"
)

// ErrModuleNotFound is returned when a module is not found.
var ErrModuleNotFound = errors.New("module not found")

// ModuleFilter narrows a module listing.
type ModuleFilter struct {
	CourseID   *uint64
	Search     string // Matches title or description.
	ActiveOnly bool
}

// ModuleRepository defines persistence operations for modules.
type ModuleRepository interface {
	// List returns the matching modules ordered by course and order, with active lessons loaded.
	List(ctx context.Context, filter ModuleFilter) ([]*entity.Module, error)

	// FindByID retrieves a module with its active lessons ordered by order.
	FindByID(ctx context.Context, id uint64) (*entity.Module, error)

	Create(ctx context.Context, module *entity.Module) error
	Update(ctx context.Context, module *entity.Module) error

	// DeleteByCourseID hard-deletes every module of a course; their lessons go with them.
	DeleteByCourseID(ctx context.Context, courseID uint64) (int64, error)
}
