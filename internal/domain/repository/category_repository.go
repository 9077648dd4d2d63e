package repository

import (
	"context"
	"errors"

	"academia/internal/domain/entity"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryOrder is the sort key of a category listing.
type CategoryOrder string

const (
	CategoryOrderName      CategoryOrder = "name"
	CategoryOrderCreatedAt CategoryOrder = "created_at"
)

// CategoryFilter narrows a category listing.
type CategoryFilter struct {
	Search     string // Matches name or description, case-insensitive.
	ActiveOnly bool
	OrderBy    CategoryOrder
	Descending bool
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	// List returns the matching categories with TotalCourses filled in.
	List(ctx context.Context, filter CategoryFilter) ([]*entity.Category, error)

	// FindByID retrieves a category with TotalCourses filled in.
	FindByID(ctx context.Context, id uint64) (*entity.Category, error)

	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
}
