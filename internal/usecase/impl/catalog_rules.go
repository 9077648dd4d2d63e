package impl

import (
	"context"

	"academia/internal/domain/entity"
	domainerrors "academia/internal/domain/errors"
	"academia/internal/domain/repository"
	"academia/internal/errors"
	"academia/internal/usecase"
)

// Operations reported to the courses_written_total counter.
const (
	opCreate       = "create"
	opReplace      = "replace"
	opUpdate       = "update"
	opDeactivate   = "deactivate"
	opCreateModule = "create_module"
)

var notFoundErrors = []struct {
	repoErr   error
	domainErr *domainerrors.BaseError
}{
	{repository.ErrUserNotFound, domainerrors.ErrUserNotFound},
	{repository.ErrInstructorNotFound, domainerrors.ErrInstructorNotFound},
	{repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound},
	{repository.ErrCourseNotFound, domainerrors.ErrCourseNotFound},
	{repository.ErrModuleNotFound, domainerrors.ErrModuleNotFound},
	{repository.ErrLessonNotFound, domainerrors.ErrLessonNotFound},
}

// translateNotFound turns a repository not-found sentinel into its domain error.
// Any other error is returned unchanged.
func translateNotFound(err error) error {
	for _, pair := range notFoundErrors {
		if errors.Is(err, pair.repoErr) {
			return pair.domainErr
		}
	}

	return err
}

// courseReferences holds the records a course points to.
type courseReferences struct {
	category   *entity.Category
	instructor *entity.Instructor
}

// checkCourseReferences verifies that the course's category exists and is active and that its
// instructor can teach: active user, complete user profile, complete instructor profile.
// Field paths are reported under prefix.
func checkCourseReferences(
	ctx context.Context,
	categoryRepo repository.CategoryRepository,
	instructorRepo repository.InstructorRepository,
	course *entity.Course,
	prefix string,
) (*courseReferences, error) {
	category, err := categoryRepo.FindByID(ctx, course.CategoryID)
	switch {
	case errors.Is(err, repository.ErrCategoryNotFound), err == nil && !category.Active:
		return nil, domainerrors.ErrCategoryNotFound.WithField(
			domainerrors.JoinPath(prefix, "category_id"), "does not exist or is inactive")
	case err != nil:
		return nil, errors.Wrap(err, "failed to load course category")
	}

	instructor, err := instructorRepo.FindByID(ctx, course.InstructorID)
	switch {
	case errors.Is(err, repository.ErrInstructorNotFound), err == nil && !canTeach(instructor):
		return nil, domainerrors.ErrInstructorNotFound.WithField(
			domainerrors.JoinPath(prefix, "instructor_id"), "does not exist, is inactive or has an incomplete profile")
	case err != nil:
		return nil, errors.Wrap(err, "failed to load course instructor")
	}

	return &courseReferences{category: category, instructor: instructor}, nil
}

func canTeach(instructor *entity.Instructor) bool {
	return instructor.IsAvailable() && instructor.ProfileComplete()
}

// validateModulePayloads checks every module and lesson of a composite write and reports
// failures with their full path, e.g. "modules[1].lessons[0].order". Duplicate orders are errors.
func validateModulePayloads(modules []usecase.ModulePayload) domainerrors.FieldErrors {
	errs := domainerrors.FieldErrors{}
	seenOrders := make(map[int]int, len(modules))

	for i := range modules {
		path := domainerrors.IndexPath("modules", i)
		errs.Merge(path, validateModulePayload(&modules[i]))

		order := modules[i].Order
		if first, dup := seenOrders[order]; dup {
			errs.Add(domainerrors.JoinPath(path, "order"),
				"duplicates the order of "+domainerrors.IndexPath("modules", first))
		} else {
			seenOrders[order] = i
		}
	}

	return errs
}

// validateModulePayload checks one module and its lessons. Paths are relative to the module.
func validateModulePayload(payload *usecase.ModulePayload) domainerrors.FieldErrors {
	errs := payload.NewModule(0).Validate()
	seenOrders := make(map[int]int, len(payload.Lessons))

	for j := range payload.Lessons {
		path := domainerrors.IndexPath("lessons", j)
		errs.Merge(path, payload.Lessons[j].NewLesson(0).Validate())

		order := payload.Lessons[j].Order
		if first, dup := seenOrders[order]; dup {
			errs.Add(domainerrors.JoinPath(path, "order"),
				"duplicates the order of "+domainerrors.IndexPath("lessons", first))
		} else {
			seenOrders[order] = j
		}
	}

	return errs
}

// prefixOrderConflict re-targets a store-level order conflict to the path of the offending item.
func prefixOrderConflict(err error, path string) error {
	if errors.Is(err, domainerrors.ErrOrderConflict) {
		return domainerrors.ErrOrderConflict.WithField(domainerrors.JoinPath(path, "order"), "is already used")
	}

	return err
}
