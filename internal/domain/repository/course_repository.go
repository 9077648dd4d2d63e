package repository

import (
	"context"
	"errors"

	"academia/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrCourseNotFound is returned when a course is not found.
var ErrCourseNotFound = errors.New("course not found")

// CourseOrderField is a sortable course column.
type CourseOrderField string

const (
	CourseOrderTitle     CourseOrderField = "title"
	CourseOrderPrice     CourseOrderField = "price"
	CourseOrderCreatedAt CourseOrderField = "created_at"
	CourseOrderRating    CourseOrderField = "rating"
)

// CourseOrder is one sort key. The zero value means featured first, newest first.
type CourseOrder struct {
	Field      CourseOrderField
	Descending bool
}

// CourseFilter narrows a course listing. Nil pointers and empty strings are ignored.
type CourseFilter struct {
	ActiveOnly      bool
	CategoryID      *uint64
	CategoryName    string
	InstructorID    *uint64
	InstructorName  string
	MinPrice        *decimal.Decimal
	MaxPrice        *decimal.Decimal
	MinDuration     *int
	MaxDuration     *int
	MinRating       *decimal.Decimal
	Level           entity.Level
	Modality        entity.Modality
	IsFree          *bool
	Featured        *bool
	FreeAndFeatured bool
	Title           string
	Search          string // Matches title, descriptions, instructor names and specialty.
	Order           CourseOrder
}

// CourseRepository defines persistence operations for courses.
// Implementations normalize the course (free price, defaults) before every write.
type CourseRepository interface {
	// List returns one page of matching courses with category and instructor loaded, plus the total count.
	List(ctx context.Context, filter CourseFilter, page Pagination) ([]*entity.Course, int64, error)

	// FindByID retrieves a course by its internal id, without modules.
	FindByID(ctx context.Context, id uint64) (*entity.Course, error)

	// FindByUUID retrieves a course with its category and instructor, without modules.
	FindByUUID(ctx context.Context, id uuid.UUID) (*entity.Course, error)

	// FindTreeByUUID retrieves a course with its category, instructor, and active modules and
	// lessons ordered by their order field.
	FindTreeByUUID(ctx context.Context, id uuid.UUID) (*entity.Course, error)

	// Create persists a new course. A zero UUID is replaced by a fresh one.
	Create(ctx context.Context, course *entity.Course) error

	Update(ctx context.Context, course *entity.Course) error

	// ListUUIDs returns the public ids of every matching course, unpaginated.
	ListUUIDs(ctx context.Context, filter CourseFilter) ([]uuid.UUID, error)

	// CountActiveByInstructor returns the number of active courses taught by the instructor.
	CountActiveByInstructor(ctx context.Context, instructorID uint64) (int64, error)
}
