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

// courseBuilderService implements the CourseBuilderUsecase interface.
type courseBuilderService struct {
	txManager repository.TransactionManager
	effects   *postCommit
	logger    *slog.Logger
}

// CourseBuilderServiceParams holds dependencies for CourseBuilderService, injected by Fx.
type CourseBuilderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Cache     service.CourseCache
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewCourseBuilderService is the constructor for courseBuilderService.
func NewCourseBuilderService(params CourseBuilderServiceParams) usecase.CourseBuilderUsecase {
	return &courseBuilderService{
		txManager: params.TxManager,
		effects:   newPostCommit(params.Publisher, params.Cache, params.Metrics),
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *courseBuilderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateFullCourse persists a course, its modules and their lessons in one transaction.
func (srv *courseBuilderService) CreateFullCourse(ctx context.Context, input *usecase.FullCourseInput) (*usecase.FullCourseOutput, error) {
	if input == nil || input.Course == nil {
		return nil, domainerrors.NewRequestShapeError("course", "is required")
	}
	if input.Modules == nil {
		return nil, domainerrors.NewRequestShapeError("modules", "is required")
	}
	if len(input.Modules) == 0 {
		return nil, domainerrors.NewRequestShapeError("modules", "must contain at least one module")
	}

	course := entity.NewCourse()
	input.Course.ApplyTo(course)
	course.Normalize()

	errs := domainerrors.FieldErrors{}
	errs.Merge("course", course.Validate())
	errs.Merge("", validateModulePayloads(input.Modules))
	if err := errs.Err(); err != nil {
		srv.log(ctx).Debug("Full course rejected by validation", slog.Any("fields", errs.Paths()))

		return nil, err
	}

	srv.log(ctx).Info("Creating full course",
		slog.String("title", course.Title),
		slog.Int("modules", len(input.Modules)))

	output := &usecase.FullCourseOutput{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refs, err := checkCourseReferences(ctx, repoFactory.CategoryRepo(), repoFactory.InstructorRepo(), course, "course")
		if err != nil {
			return err
		}

		if err := repoFactory.CourseRepo().Create(ctx, course); err != nil {
			return errors.Wrap(err, "failed to create course")
		}
		course.Category = refs.category
		course.Instructor = refs.instructor

		lessons, err := srv.createModules(ctx, repoFactory, course, input.Modules)
		if err != nil {
			return err
		}

		output.ModulesCreated = len(course.Modules)
		output.LessonsCreated = lessons

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create full course", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute full course creation transaction")
	}

	output.Course = course
	srv.afterWrite(ctx, course, opCreate, service.EventCourseCreated, output)

	return output, nil
}

// ReplaceFullCourse partially updates a course and, when modules are given, replaces its whole
// module tree. Existing modules are deleted, never reconciled.
func (srv *courseBuilderService) ReplaceFullCourse(ctx context.Context, id uuid.UUID, input *usecase.FullCourseInput) (*usecase.FullCourseOutput, error) {
	if input == nil || (input.Course == nil && input.Modules == nil) {
		return nil, domainerrors.NewRequestShapeError("course", "course or modules is required")
	}
	if errs := validateModulePayloads(input.Modules); !errs.Empty() {
		return nil, errs.Err()
	}

	srv.log(ctx).Info("Replacing full course",
		slog.Any("course_uuid", id),
		slog.Bool("replace_modules", input.Modules != nil))

	var course *entity.Course
	output := &usecase.FullCourseOutput{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.CourseRepo()

		var err error
		course, err = courseRepo.FindByUUID(ctx, id)
		if err != nil {
			return translateNotFound(err)
		}
		if !course.Active {
			return domainerrors.ErrCourseNotFound
		}

		if input.Course != nil {
			if err := srv.updateCourse(ctx, repoFactory, course, input.Course); err != nil {
				return err
			}
		}

		if input.Modules == nil {
			tree, err := courseRepo.FindTreeByUUID(ctx, id)
			if err != nil {
				return errors.Wrap(err, "failed to reload course tree")
			}
			course.Modules = tree.Modules

			return nil
		}

		deleted, err := repoFactory.ModuleRepo().DeleteByCourseID(ctx, course.ID)
		if err != nil {
			return errors.Wrap(err, "failed to delete course modules")
		}
		output.ModulesDeleted = deleted

		course.Modules = nil
		lessons, err := srv.createModules(ctx, repoFactory, course, input.Modules)
		if err != nil {
			return err
		}
		output.ModulesCreated = len(course.Modules)
		output.LessonsCreated = lessons

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to replace full course", slog.Any("course_uuid", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute full course replacement transaction")
	}

	output.Course = course
	srv.afterWrite(ctx, course, opReplace, service.EventCourseReplaced, output)

	return output, nil
}

func (srv *courseBuilderService) updateCourse(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	course *entity.Course,
	input *usecase.CourseInput,
) error {
	input.ApplyTo(course)
	course.Normalize()

	errs := domainerrors.FieldErrors{}
	errs.Merge("course", course.Validate())
	if err := errs.Err(); err != nil {
		return err
	}

	if input.ReferencesChanged() {
		refs, err := checkCourseReferences(ctx, repoFactory.CategoryRepo(), repoFactory.InstructorRepo(), course, "course")
		if err != nil {
			return err
		}
		course.Category = refs.category
		course.Instructor = refs.instructor
	}

	if err := repoFactory.CourseRepo().Update(ctx, course); err != nil {
		return errors.Wrap(err, "failed to update course")
	}

	return nil
}

// createModules inserts the modules in payload order and then each module's lessons.
// It returns the number of lessons created.
func (srv *courseBuilderService) createModules(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	course *entity.Course,
	payloads []usecase.ModulePayload,
) (int, error) {
	lessons := 0
	for i := range payloads {
		module, err := srv.createModule(ctx, repoFactory, course.ID, &payloads[i], domainerrors.IndexPath("modules", i))
		if err != nil {
			return 0, err
		}
		course.Modules = append(course.Modules, module)
		lessons += len(module.Lessons)
	}

	return lessons, nil
}

func (srv *courseBuilderService) createModule(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	courseID uint64,
	payload *usecase.ModulePayload,
	path string,
) (*entity.Module, error) {
	module := payload.NewModule(courseID)
	if err := repoFactory.ModuleRepo().Create(ctx, module); err != nil {
		return nil, errors.Wrapf(prefixOrderConflict(err, path), "failed to create %s", pathOrSelf(path, "module"))
	}

	lessonRepo := repoFactory.LessonRepo()
	for j := range payload.Lessons {
		lesson := payload.Lessons[j].NewLesson(module.ID)
		lessonPath := domainerrors.JoinPath(path, domainerrors.IndexPath("lessons", j))
		if err := lessonRepo.Create(ctx, lesson); err != nil {
			return nil, errors.Wrapf(prefixOrderConflict(err, lessonPath), "failed to create %s", lessonPath)
		}
		module.Lessons = append(module.Lessons, lesson)
	}

	return module, nil
}

func pathOrSelf(path, fallback string) string {
	if path == "" {
		return fallback
	}

	return path
}

// CreateModuleWithLessons adds one module and its lessons to an existing course.
func (srv *courseBuilderService) CreateModuleWithLessons(ctx context.Context, input *usecase.ModuleWithLessonsInput) (*usecase.ModuleWithLessonsOutput, error) {
	if input == nil || input.Module == nil {
		return nil, domainerrors.NewRequestShapeError("module", "is required")
	}
	if input.CourseID == 0 {
		return nil, domainerrors.NewValidationError("course_id", "is required")
	}
	if errs := validateModulePayload(input.Module); !errs.Empty() {
		return nil, errs.Err()
	}

	var course *entity.Course
	output := &usecase.ModuleWithLessonsOutput{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		course, err = repoFactory.CourseRepo().FindByID(ctx, input.CourseID)
		if err != nil && !errors.Is(err, repository.ErrCourseNotFound) {
			return errors.Wrap(err, "failed to load course")
		}
		// An inactive course takes no new content, same as in ReplaceFullCourse.
		if err != nil || !course.Active {
			return domainerrors.ErrCourseNotFound.WithField("course_id", "does not exist")
		}

		module, err := srv.createModule(ctx, repoFactory, course.ID, input.Module, "")
		if err != nil {
			return err
		}
		output.Module = module
		output.LessonsCreated = len(module.Lessons)

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create module with lessons", slog.Uint64("course_id", input.CourseID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute module creation transaction")
	}

	srv.effects.invalidateCourse(ctx, srv.log(ctx), course.UUID)
	srv.effects.courseWritten(opCreateModule)
	srv.effects.publish(ctx, srv.log(ctx), service.EventModuleCreated, course.UUID.String(), map[string]any{
		"module_id":       output.Module.ID,
		"lessons_created": output.LessonsCreated,
	})

	return output, nil
}

func (srv *courseBuilderService) afterWrite(
	ctx context.Context,
	course *entity.Course,
	operation string,
	eventType service.EventType,
	output *usecase.FullCourseOutput,
) {
	logger := srv.log(ctx)
	srv.effects.invalidateCourse(ctx, logger, course.UUID)
	srv.effects.courseWritten(operation)
	srv.effects.publish(ctx, logger, eventType, course.UUID.String(), map[string]any{
		"course_id":       course.ID,
		"title":           course.Title,
		"modules_created": output.ModulesCreated,
		"modules_deleted": output.ModulesDeleted,
		"lessons_created": output.LessonsCreated,
	})

	logger.Info("Course tree written",
		slog.String("operation", operation),
		slog.Any("course_uuid", course.UUID),
		slog.Int("modules_created", output.ModulesCreated),
		slog.Int("lessons_created", output.LessonsCreated))
}
