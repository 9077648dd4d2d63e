package usecase

import (
	"context"

	"academia/internal/domain/entity"

	"github.com/google/uuid"
)

// CourseBuilderUsecase writes a course together with its module and lesson tree.
// Every operation runs in a single transaction; a failure at any level leaves nothing persisted.
type CourseBuilderUsecase interface {
	CreateFullCourse(ctx context.Context, input *FullCourseInput) (*FullCourseOutput, error)
	ReplaceFullCourse(ctx context.Context, id uuid.UUID, input *FullCourseInput) (*FullCourseOutput, error)
	CreateModuleWithLessons(ctx context.Context, input *ModuleWithLessonsInput) (*ModuleWithLessonsOutput, error)
}

// --- Input DTOs ---

// FullCourseInput is a course plus its nested modules.
// A nil Modules slice means the key was absent; a non-nil empty slice means "no modules".
type FullCourseInput struct {
	Course  *CourseInput
	Modules []ModulePayload
}

// ModulePayload is one module of a composite write.
type ModulePayload struct {
	Title           string
	Description     string
	Order           int
	DurationMinutes *int
	Expandable      *bool
	Active          *bool
	Lessons         []LessonPayload
}

// NewModule builds the module entity for courseID.
func (p *ModulePayload) NewModule(courseID uint64) *entity.Module {
	module := entity.NewModule()
	module.CourseID = courseID
	module.Title = p.Title
	module.Description = p.Description
	module.Order = p.Order
	if p.DurationMinutes != nil {
		minutes := *p.DurationMinutes
		module.DurationMinutes = &minutes
	}
	setIfPresent(&module.Expandable, p.Expandable)
	setIfPresent(&module.Active, p.Active)

	return module
}

// LessonPayload is one lesson of a composite write.
type LessonPayload struct {
	Title           string
	Content         string
	ContentType     entity.ContentType
	VideoURL        string
	DurationMinutes int
	DurationSeconds int
	Order           int
	IsFreePreview   bool
	Active          *bool
}

// NewLesson builds the lesson entity for moduleID.
func (p *LessonPayload) NewLesson(moduleID uint64) *entity.Lesson {
	lesson := entity.NewLesson()
	lesson.ModuleID = moduleID
	lesson.Title = p.Title
	lesson.Content = p.Content
	if p.ContentType != "" {
		lesson.ContentType = p.ContentType
	}
	lesson.VideoURL = p.VideoURL
	lesson.DurationMinutes = p.DurationMinutes
	lesson.DurationSeconds = p.DurationSeconds
	lesson.Order = p.Order
	lesson.IsFreePreview = p.IsFreePreview
	setIfPresent(&lesson.Active, p.Active)

	return lesson
}

// ModuleWithLessonsInput creates one module and its lessons under an existing course.
type ModuleWithLessonsInput struct {
	CourseID uint64
	Module   *ModulePayload
}

// --- Output DTOs ---

// FullCourseOutput returns the persisted tree.
type FullCourseOutput struct {
	Course         *entity.Course
	ModulesCreated int
	ModulesDeleted int64
	LessonsCreated int
}

// ModuleWithLessonsOutput returns the persisted module with its lessons.
type ModuleWithLessonsOutput struct {
	Module         *entity.Module
	LessonsCreated int
}
