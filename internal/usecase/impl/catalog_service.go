package impl

import (
	"context"
	"log/slog"

	deliverycontext "academia/internal/delivery/context"
	"academia/internal/domain/entity"
	domainerrors "academia/internal/domain/errors"
	"academia/internal/domain/repository"
	"academia/internal/domain/service"
	"academia/internal/errors"
	"academia/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager      repository.TransactionManager
	categoryRepo   repository.CategoryRepository
	courseRepo     repository.CourseRepository
	moduleRepo     repository.ModuleRepository
	lessonRepo     repository.LessonRepository
	instructorRepo repository.InstructorRepository
	cache          service.CourseCache
	effects        *postCommit
	logger         *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CategoryRepo   repository.CategoryRepository
	CourseRepo     repository.CourseRepository
	ModuleRepo     repository.ModuleRepository
	LessonRepo     repository.LessonRepository
	InstructorRepo repository.InstructorRepository
	Cache          service.CourseCache
	Publisher      service.EventPublisher
	Metrics        service.MetricsRecorder
	Logger         *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:      params.TxManager,
		categoryRepo:   params.CategoryRepo,
		courseRepo:     params.CourseRepo,
		moduleRepo:     params.ModuleRepo,
		lessonRepo:     params.LessonRepo,
		instructorRepo: params.InstructorRepo,
		cache:          params.Cache,
		effects:        newPostCommit(params.Publisher, params.Cache, params.Metrics),
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Categories ---

// ListCategories returns the active categories matching the filter.
func (srv *catalogService) ListCategories(ctx context.Context, filter repository.CategoryFilter) ([]*entity.Category, error) {
	filter.ActiveOnly = true

	categories, err := srv.categoryRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) GetCategory(ctx context.Context, id uint64) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	return category, nil
}

func (srv *catalogService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	category := entity.NewCategory()
	input.ApplyTo(category)

	if err := category.Validate().Err(); err != nil {
		return nil, err
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}
	srv.log(ctx).Info("Category created", slog.Uint64("category_id", category.ID), slog.String("name", category.Name))

	return category, nil
}

func (srv *catalogService) UpdateCategory(ctx context.Context, id uint64, input *usecase.CategoryInput) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	input.ApplyTo(category)
	if err := category.Validate().Err(); err != nil {
		return nil, err
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.Wrap(translateNotFound(err), "failed to update category")
	}
	srv.effects.invalidateCoursesWhere(ctx, srv.log(ctx), srv.courseRepo, repository.CourseFilter{CategoryID: &id})

	return category, nil
}

// DeactivateCategory hides the category. Its courses are left untouched.
func (srv *catalogService) DeactivateCategory(ctx context.Context, id uint64) error {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return translateNotFound(err)
	}

	category.Active = false
	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return errors.Wrap(translateNotFound(err), "failed to deactivate category")
	}
	srv.effects.invalidateCoursesWhere(ctx, srv.log(ctx), srv.courseRepo, repository.CourseFilter{CategoryID: &id})
	srv.log(ctx).Info("Category deactivated", slog.Uint64("category_id", id))

	return nil
}

// ListCategoryCourses returns one page of the active courses of an existing category.
func (srv *catalogService) ListCategoryCourses(ctx context.Context, id uint64, page repository.Pagination) (*usecase.CourseListOutput, error) {
	if _, err := srv.categoryRepo.FindByID(ctx, id); err != nil {
		return nil, translateNotFound(err)
	}

	return srv.ListCourses(ctx, repository.CourseFilter{CategoryID: &id}, page)
}

// --- Courses ---

// ListCourses returns one page of active courses.
func (srv *catalogService) ListCourses(ctx context.Context, filter repository.CourseFilter, page repository.Pagination) (*usecase.CourseListOutput, error) {
	filter.ActiveOnly = true
	page = page.Normalize()

	courses, total, err := srv.courseRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	return &usecase.CourseListOutput{Courses: courses, Total: total, Page: page}, nil
}

// GetCourse serves the active course tree through the cache.
func (srv *catalogService) GetCourse(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	cached, err := srv.cache.Get(ctx, id)
	srv.effects.cacheLookup(err == nil)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, service.ErrCacheMiss) {
		srv.log(ctx).Warn("Course cache lookup failed", slog.Any("course_uuid", id), slog.Any("error", err))
	}

	course, err := srv.courseRepo.FindTreeByUUID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if !course.Active {
		return nil, domainerrors.ErrCourseNotFound
	}

	if err := srv.cache.Set(ctx, course); err != nil {
		srv.log(ctx).Warn("Failed to cache course", slog.Any("course_uuid", id), slog.Any("error", err))
	}

	return course, nil
}

// GetCourseStats summarizes an active course.
func (srv *catalogService) GetCourseStats(ctx context.Context, id uuid.UUID) (*usecase.CourseStats, error) {
	course, err := srv.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	stats := &usecase.CourseStats{
		Course:        course,
		TotalModules:  course.TotalModules(),
		TotalLessons:  course.TotalLessons(),
		TotalStudents: course.TotalStudents(),
	}
	for _, module := range course.Modules {
		if !module.Active {
			continue
		}
		for _, lesson := range module.Lessons {
			if !lesson.Active {
				continue
			}
			stats.TotalDurationSeconds += lesson.TotalDurationSeconds()
			if lesson.IsFreePreview {
				stats.FreePreviewLessons++
			}
		}
	}

	stats.InstructorActiveCourses, err = srv.courseRepo.CountActiveByInstructor(ctx, course.InstructorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count instructor courses")
	}

	return stats, nil
}

// ListCoursesByInstructor returns one page of the active courses of an existing instructor.
func (srv *catalogService) ListCoursesByInstructor(ctx context.Context, instructorID uint64, page repository.Pagination) (*usecase.CourseListOutput, error) {
	if _, err := srv.instructorRepo.FindByID(ctx, instructorID); err != nil {
		return nil, translateNotFound(err)
	}

	return srv.ListCourses(ctx, repository.CourseFilter{InstructorID: &instructorID}, page)
}

// CreateCourse persists a course without modules.
func (srv *catalogService) CreateCourse(ctx context.Context, input *usecase.CourseInput) (*entity.Course, error) {
	if input == nil {
		return nil, domainerrors.NewRequestShapeError("course", "is required")
	}

	course := entity.NewCourse()
	input.ApplyTo(course)
	course.Normalize()
	if err := course.Validate().Err(); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refs, err := checkCourseReferences(ctx, repoFactory.CategoryRepo(), repoFactory.InstructorRepo(), course, "")
		if err != nil {
			return err
		}

		if err := repoFactory.CourseRepo().Create(ctx, course); err != nil {
			return errors.Wrap(err, "failed to create course")
		}
		course.Category = refs.category
		course.Instructor = refs.instructor

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute course creation transaction")
	}

	srv.effects.courseWritten(opCreate)
	srv.effects.publish(ctx, srv.log(ctx), service.EventCourseCreated, course.UUID.String(), map[string]any{
		"course_id": course.ID,
		"title":     course.Title,
	})

	return course, nil
}

// UpdateCourse applies a partial update to a course.
func (srv *catalogService) UpdateCourse(ctx context.Context, id uuid.UUID, input *usecase.CourseInput) (*entity.Course, error) {
	if input == nil {
		return nil, domainerrors.NewRequestShapeError("course", "is required")
	}

	var course *entity.Course
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		course, err = repoFactory.CourseRepo().FindByUUID(ctx, id)
		if err != nil {
			return translateNotFound(err)
		}

		input.ApplyTo(course)
		course.Normalize()
		if err := course.Validate().Err(); err != nil {
			return err
		}

		if input.ReferencesChanged() {
			refs, err := checkCourseReferences(ctx, repoFactory.CategoryRepo(), repoFactory.InstructorRepo(), course, "")
			if err != nil {
				return err
			}
			course.Category = refs.category
			course.Instructor = refs.instructor
		}

		return repoFactory.CourseRepo().Update(ctx, course)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute course update transaction")
	}

	logger := srv.log(ctx)
	srv.effects.invalidateCourse(ctx, logger, course.UUID)
	srv.effects.courseWritten(opUpdate)
	srv.effects.publish(ctx, logger, service.EventCourseUpdated, course.UUID.String(), map[string]any{"course_id": course.ID})

	return course, nil
}

// DeactivateCourse soft-deletes a course.
func (srv *catalogService) DeactivateCourse(ctx context.Context, id uuid.UUID) error {
	course, err := srv.courseRepo.FindByUUID(ctx, id)
	if err != nil {
		return translateNotFound(err)
	}

	course.Active = false
	if err := srv.courseRepo.Update(ctx, course); err != nil {
		return errors.Wrap(translateNotFound(err), "failed to deactivate course")
	}

	logger := srv.log(ctx)
	srv.effects.invalidateCourse(ctx, logger, course.UUID)
	srv.effects.courseWritten(opDeactivate)
	srv.effects.publish(ctx, logger, service.EventCourseDeactivated, course.UUID.String(), map[string]any{"course_id": course.ID})
	logger.Info("Course deactivated", slog.Any("course_uuid", id))

	return nil
}

// --- Modules ---

func (srv *catalogService) ListModules(ctx context.Context, filter repository.ModuleFilter) ([]*entity.Module, error) {
	modules, err := srv.moduleRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list modules")
	}

	return modules, nil
}

func (srv *catalogService) GetModule(ctx context.Context, id uint64) (*entity.Module, error) {
	module, err := srv.moduleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	return module, nil
}

func (srv *catalogService) CreateModule(ctx context.Context, input *usecase.ModuleInput) (*entity.Module, error) {
	if input == nil || input.CourseID == nil {
		return nil, domainerrors.NewValidationError("course_id", "is required")
	}

	module := entity.NewModule()
	input.ApplyTo(module)
	if err := module.Validate().Err(); err != nil {
		return nil, err
	}

	course, err := srv.courseRepo.FindByID(ctx, module.CourseID)
	if err != nil {
		return nil, referenceError(err, domainerrors.ErrCourseNotFound, "course_id")
	}

	if err := srv.moduleRepo.Create(ctx, module); err != nil {
		return nil, errors.Wrap(err, "failed to create module")
	}

	srv.effects.invalidateCourse(ctx, srv.log(ctx), course.UUID)
	srv.effects.courseWritten(opCreateModule)

	return module, nil
}

func (srv *catalogService) UpdateModule(ctx context.Context, id uint64, input *usecase.ModuleInput) (*entity.Module, error) {
	module, err := srv.moduleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	previousCourseID := module.CourseID

	input.ApplyTo(module)
	if err := module.Validate().Err(); err != nil {
		return nil, err
	}

	course, err := srv.courseRepo.FindByID(ctx, module.CourseID)
	if err != nil {
		return nil, referenceError(err, domainerrors.ErrCourseNotFound, "course_id")
	}

	if err := srv.moduleRepo.Update(ctx, module); err != nil {
		return nil, errors.Wrap(translateNotFound(err), "failed to update module")
	}

	logger := srv.log(ctx)
	srv.effects.invalidateCourse(ctx, logger, course.UUID)
	if previousCourseID != module.CourseID {
		srv.invalidateCourseByID(ctx, previousCourseID)
	}
	srv.effects.courseWritten(opUpdate)

	return module, nil
}

// DeactivateModule hides a module and, through the tree queries, its lessons.
func (srv *catalogService) DeactivateModule(ctx context.Context, id uint64) error {
	module, err := srv.moduleRepo.FindByID(ctx, id)
	if err != nil {
		return translateNotFound(err)
	}

	module.Active = false
	if err := srv.moduleRepo.Update(ctx, module); err != nil {
		return errors.Wrap(translateNotFound(err), "failed to deactivate module")
	}

	srv.invalidateCourseByID(ctx, module.CourseID)
	srv.effects.courseWritten(opDeactivate)

	return nil
}

// --- Lessons ---

func (srv *catalogService) ListLessons(ctx context.Context, filter repository.LessonFilter) ([]*entity.Lesson, error) {
	lessons, err := srv.lessonRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list lessons")
	}

	return lessons, nil
}

func (srv *catalogService) GetLesson(ctx context.Context, id uint64) (*entity.Lesson, error) {
	lesson, err := srv.lessonRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	return lesson, nil
}

// CreateLesson persists a lesson. A video lesson without a URL is stored as text.
func (srv *catalogService) CreateLesson(ctx context.Context, input *usecase.LessonInput) (*entity.Lesson, error) {
	if input == nil || input.ModuleID == nil {
		return nil, domainerrors.NewValidationError("module_id", "is required")
	}

	lesson := entity.NewLesson()
	input.ApplyTo(lesson)
	if err := lesson.Validate().Err(); err != nil {
		return nil, err
	}

	module, err := srv.moduleRepo.FindByID(ctx, lesson.ModuleID)
	if err != nil {
		return nil, referenceError(err, domainerrors.ErrModuleNotFound, "module_id")
	}

	if err := srv.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, errors.Wrap(err, "failed to create lesson")
	}

	srv.invalidateCourseByID(ctx, module.CourseID)
	srv.effects.courseWritten(opCreate)

	return lesson, nil
}

func (srv *catalogService) UpdateLesson(ctx context.Context, id uint64, input *usecase.LessonInput) (*entity.Lesson, error) {
	lesson, err := srv.lessonRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	previousModuleID := lesson.ModuleID

	input.ApplyTo(lesson)
	if err := lesson.Validate().Err(); err != nil {
		return nil, err
	}

	module, err := srv.moduleRepo.FindByID(ctx, lesson.ModuleID)
	if err != nil {
		return nil, referenceError(err, domainerrors.ErrModuleNotFound, "module_id")
	}

	if err := srv.lessonRepo.Update(ctx, lesson); err != nil {
		return nil, errors.Wrap(translateNotFound(err), "failed to update lesson")
	}

	srv.invalidateCourseByID(ctx, module.CourseID)
	if previousModuleID != lesson.ModuleID {
		if previous, err := srv.moduleRepo.FindByID(ctx, previousModuleID); err == nil {
			srv.invalidateCourseByID(ctx, previous.CourseID)
		}
	}
	srv.effects.courseWritten(opUpdate)

	return lesson, nil
}

func (srv *catalogService) DeactivateLesson(ctx context.Context, id uint64) error {
	lesson, err := srv.lessonRepo.FindByID(ctx, id)
	if err != nil {
		return translateNotFound(err)
	}

	lesson.Active = false
	if err := srv.lessonRepo.Update(ctx, lesson); err != nil {
		return errors.Wrap(translateNotFound(err), "failed to deactivate lesson")
	}

	if module, err := srv.moduleRepo.FindByID(ctx, lesson.ModuleID); err == nil {
		srv.invalidateCourseByID(ctx, module.CourseID)
	}
	srv.effects.courseWritten(opDeactivate)

	return nil
}

// invalidateCourseByID resolves the course UUID before dropping its cache entry.
func (srv *catalogService) invalidateCourseByID(ctx context.Context, courseID uint64) {
	course, err := srv.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve course for cache invalidation", slog.Uint64("course_id", courseID), slog.Any("error", err))

		return
	}

	srv.effects.invalidateCourse(ctx, srv.log(ctx), course.UUID)
}

// referenceError reports a missing parent record on field, or wraps any other failure.
func referenceError(err error, notFound *domainerrors.BaseError, field string) error {
	if translated := translateNotFound(err); errors.Is(translated, notFound) {
		return notFound.WithField(field, "does not exist")
	}

	return errors.Wrapf(err, "failed to load %s", field)
}
