package usecase

import (
	"context"

	"academia/internal/domain/entity"
	"academia/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogUsecase defines the single-entity catalog operations.
type CatalogUsecase interface {
	ListCategories(ctx context.Context, filter repository.CategoryFilter) ([]*entity.Category, error)
	GetCategory(ctx context.Context, id uint64) (*entity.Category, error)
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uint64, input *CategoryInput) (*entity.Category, error)
	DeactivateCategory(ctx context.Context, id uint64) error
	ListCategoryCourses(ctx context.Context, id uint64, page repository.Pagination) (*CourseListOutput, error)

	ListCourses(ctx context.Context, filter repository.CourseFilter, page repository.Pagination) (*CourseListOutput, error)
	// GetCourse returns the course with its active modules and lessons.
	GetCourse(ctx context.Context, id uuid.UUID) (*entity.Course, error)
	GetCourseStats(ctx context.Context, id uuid.UUID) (*CourseStats, error)
	ListCoursesByInstructor(ctx context.Context, instructorID uint64, page repository.Pagination) (*CourseListOutput, error)
	CreateCourse(ctx context.Context, input *CourseInput) (*entity.Course, error)
	UpdateCourse(ctx context.Context, id uuid.UUID, input *CourseInput) (*entity.Course, error)
	DeactivateCourse(ctx context.Context, id uuid.UUID) error

	ListModules(ctx context.Context, filter repository.ModuleFilter) ([]*entity.Module, error)
	GetModule(ctx context.Context, id uint64) (*entity.Module, error)
	CreateModule(ctx context.Context, input *ModuleInput) (*entity.Module, error)
	UpdateModule(ctx context.Context, id uint64, input *ModuleInput) (*entity.Module, error)
	DeactivateModule(ctx context.Context, id uint64) error

	ListLessons(ctx context.Context, filter repository.LessonFilter) ([]*entity.Lesson, error)
	GetLesson(ctx context.Context, id uint64) (*entity.Lesson, error)
	CreateLesson(ctx context.Context, input *LessonInput) (*entity.Lesson, error)
	UpdateLesson(ctx context.Context, id uint64, input *LessonInput) (*entity.Lesson, error)
	DeactivateLesson(ctx context.Context, id uint64) error
}

// --- Input DTOs ---
// Nil pointers leave the current value unchanged, so the same input serves create and partial update.

// CategoryInput carries category fields.
type CategoryInput struct {
	Name        *string
	Description *string
	ColorHex    *string
	Active      *bool
}

// ApplyTo copies the provided fields onto category.
func (in *CategoryInput) ApplyTo(category *entity.Category) {
	if in == nil {
		return
	}
	setIfPresent(&category.Name, in.Name)
	setIfPresent(&category.Description, in.Description)
	setIfPresent(&category.ColorHex, in.ColorHex)
	setIfPresent(&category.Active, in.Active)
}

// CourseInput carries course fields.
type CourseInput struct {
	Title            *string
	Description      *string
	ShortDescription *string
	CategoryID       *uint64
	InstructorID     *uint64
	CoverImageURL    *string
	IntroVideoURL    *string
	Modality         *entity.Modality
	Level            *entity.Level
	DurationHours    *int
	Price            *decimal.Decimal
	IsFree           *bool
	Rating           *decimal.Decimal
	Featured         *bool
	Active           *bool
}

// ApplyTo copies the provided fields onto course.
func (in *CourseInput) ApplyTo(course *entity.Course) {
	if in == nil {
		return
	}
	setIfPresent(&course.Title, in.Title)
	setIfPresent(&course.Description, in.Description)
	setIfPresent(&course.ShortDescription, in.ShortDescription)
	setIfPresent(&course.CategoryID, in.CategoryID)
	setIfPresent(&course.InstructorID, in.InstructorID)
	setIfPresent(&course.CoverImageURL, in.CoverImageURL)
	setIfPresent(&course.IntroVideoURL, in.IntroVideoURL)
	setIfPresent(&course.Modality, in.Modality)
	setIfPresent(&course.Level, in.Level)
	setIfPresent(&course.Price, in.Price)
	setIfPresent(&course.IsFree, in.IsFree)
	setIfPresent(&course.Featured, in.Featured)
	setIfPresent(&course.Active, in.Active)
	if in.DurationHours != nil {
		hours := *in.DurationHours
		course.DurationHours = &hours
	}
	if in.Rating != nil {
		rating := *in.Rating
		course.Rating = &rating
	}
}

// ReferencesChanged reports whether the input touches the category or instructor reference.
func (in *CourseInput) ReferencesChanged() bool {
	return in != nil && (in.CategoryID != nil || in.InstructorID != nil)
}

// ModuleInput carries module fields.
type ModuleInput struct {
	CourseID        *uint64
	Title           *string
	Description     *string
	Order           *int
	DurationMinutes *int
	Expandable      *bool
	Active          *bool
}

// ApplyTo copies the provided fields onto module.
func (in *ModuleInput) ApplyTo(module *entity.Module) {
	if in == nil {
		return
	}
	setIfPresent(&module.CourseID, in.CourseID)
	setIfPresent(&module.Title, in.Title)
	setIfPresent(&module.Description, in.Description)
	setIfPresent(&module.Order, in.Order)
	setIfPresent(&module.Expandable, in.Expandable)
	setIfPresent(&module.Active, in.Active)
	if in.DurationMinutes != nil {
		minutes := *in.DurationMinutes
		module.DurationMinutes = &minutes
	}
}

// LessonInput carries lesson fields.
type LessonInput struct {
	ModuleID        *uint64
	Title           *string
	Content         *string
	ContentType     *entity.ContentType
	VideoURL        *string
	DurationMinutes *int
	DurationSeconds *int
	Order           *int
	IsFreePreview   *bool
	Active          *bool
}

// ApplyTo copies the provided fields onto lesson.
func (in *LessonInput) ApplyTo(lesson *entity.Lesson) {
	if in == nil {
		return
	}
	setIfPresent(&lesson.ModuleID, in.ModuleID)
	setIfPresent(&lesson.Title, in.Title)
	setIfPresent(&lesson.Content, in.Content)
	setIfPresent(&lesson.ContentType, in.ContentType)
	setIfPresent(&lesson.VideoURL, in.VideoURL)
	setIfPresent(&lesson.DurationMinutes, in.DurationMinutes)
	setIfPresent(&lesson.DurationSeconds, in.DurationSeconds)
	setIfPresent(&lesson.Order, in.Order)
	setIfPresent(&lesson.IsFreePreview, in.IsFreePreview)
	setIfPresent(&lesson.Active, in.Active)
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// --- Output DTOs ---

// CourseListOutput is one page of courses.
type CourseListOutput struct {
	Courses []*entity.Course
	Total   int64
	Page    repository.Pagination
}

// CourseStats summarizes a course. Enrollment-based figures stay at zero.
type CourseStats struct {
	Course                  *entity.Course
	TotalModules            int
	TotalLessons            int
	TotalStudents           int
	TotalDurationSeconds    int
	FreePreviewLessons      int
	InstructorActiveCourses int64
	CompletionRate          float64
	ActiveStudents          int
}
