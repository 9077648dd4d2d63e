package impl

import (
	"context"
	"testing"

	"academia/internal/domain/entity"
	domainerrors "academia/internal/domain/errors"
	"academia/internal/domain/repository"
	"academia/internal/domain/service"
	"academia/internal/errors"
	mockRepo "academia/internal/mocks/repository"
	mockSvc "academia/internal/mocks/service"
	"academia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	txManager   *mockRepo.MockTransactionManager
	repos       *txRepos
	categories  *mockRepo.MockCategoryRepository
	courses     *mockRepo.MockCourseRepository
	modules     *mockRepo.MockModuleRepository
	lessons     *mockRepo.MockLessonRepository
	instructors *mockRepo.MockInstructorRepository
	cache       *mockSvc.MockCourseCache
	publisher   *mockSvc.MockEventPublisher
	metrics     *mockSvc.MockMetricsRecorder
	service     usecase.CatalogUsecase
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()

	f := &catalogFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		repos:       newTxRepos(t),
		categories:  mockRepo.NewMockCategoryRepository(t),
		courses:     mockRepo.NewMockCourseRepository(t),
		modules:     mockRepo.NewMockModuleRepository(t),
		lessons:     mockRepo.NewMockLessonRepository(t),
		instructors: mockRepo.NewMockInstructorRepository(t),
		cache:       mockSvc.NewMockCourseCache(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		metrics:     mockSvc.NewMockMetricsRecorder(t),
	}
	f.service = NewCatalogService(CatalogServiceParams{
		TxManager:      f.txManager,
		CategoryRepo:   f.categories,
		CourseRepo:     f.courses,
		ModuleRepo:     f.modules,
		LessonRepo:     f.lessons,
		InstructorRepo: f.instructors,
		Cache:          f.cache,
		Publisher:      f.publisher,
		Metrics:        f.metrics,
		Logger:         newDiscardLogger(),
	})

	return f
}

func courseTree(id uuid.UUID) *entity.Course {
	return &entity.Course{
		ID:           10,
		UUID:         id,
		Title:        "Go in Production",
		InstructorID: 2,
		Active:       true,
		Modules: []*entity.Module{
			{ID: 1, Active: true, Lessons: []*entity.Lesson{
				{ID: 1, Active: true, DurationMinutes: 2, DurationSeconds: 30, IsFreePreview: true},
				{ID: 2, Active: false, DurationMinutes: 60},
			}},
			{ID: 2, Active: true, Lessons: []*entity.Lesson{
				{ID: 3, Active: true, DurationSeconds: 45},
			}},
			{ID: 3, Active: false, Lessons: []*entity.Lesson{
				{ID: 4, Active: true, DurationMinutes: 10},
			}},
		},
	}
}

func TestCatalogService_GetCourse_CacheHit(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.cache.EXPECT().Get(ctx, id).Return(courseTree(id), nil)
	f.metrics.EXPECT().CacheLookup(true).Return()

	course, err := f.service.GetCourse(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, id, course.UUID)
	f.courses.AssertNotCalled(t, "FindTreeByUUID", mock.Anything, mock.Anything)
}

func TestCatalogService_GetCourse_CacheMissLoadsAndStores(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	id := uuid.New()
	tree := courseTree(id)

	f.cache.EXPECT().Get(ctx, id).Return(nil, service.ErrCacheMiss)
	f.metrics.EXPECT().CacheLookup(false).Return()
	f.courses.EXPECT().FindTreeByUUID(ctx, id).Return(tree, nil)
	f.cache.EXPECT().Set(ctx, tree).Return(nil)

	course, err := f.service.GetCourse(ctx, id)

	require.NoError(t, err)
	assert.Same(t, tree, course)
}

func TestCatalogService_GetCourse_CacheFailureFallsBackToStore(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	id := uuid.New()
	tree := courseTree(id)

	f.cache.EXPECT().Get(ctx, id).Return(nil, errors.New("connection refused"))
	f.metrics.EXPECT().CacheLookup(false).Return()
	f.courses.EXPECT().FindTreeByUUID(ctx, id).Return(tree, nil)
	f.cache.EXPECT().Set(ctx, tree).Return(errors.New("connection refused"))

	course, err := f.service.GetCourse(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, id, course.UUID)
}

func TestCatalogService_GetCourse_InactiveIsNotFound(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	id := uuid.New()
	tree := courseTree(id)
	tree.Active = false

	f.cache.EXPECT().Get(ctx, id).Return(nil, service.ErrCacheMiss)
	f.metrics.EXPECT().CacheLookup(false).Return()
	f.courses.EXPECT().FindTreeByUUID(ctx, id).Return(tree, nil)

	_, err := f.service.GetCourse(ctx, id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCourseNotFound))
	f.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestCatalogService_GetCourseStats(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.cache.EXPECT().Get(ctx, id).Return(courseTree(id), nil)
	f.metrics.EXPECT().CacheLookup(true).Return()
	f.courses.EXPECT().CountActiveByInstructor(ctx, uint64(2)).Return(int64(4), nil)

	stats, err := f.service.GetCourseStats(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalModules)
	assert.Equal(t, 2, stats.TotalLessons)
	assert.Equal(t, 0, stats.TotalStudents)
	assert.Equal(t, 150+45, stats.TotalDurationSeconds)
	assert.Equal(t, 1, stats.FreePreviewLessons)
	assert.Equal(t, int64(4), stats.InstructorActiveCourses)
}

func TestCatalogService_ListCourses_ForcesActiveAndNormalizesPage(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	f.courses.EXPECT().
		List(ctx, repository.CourseFilter{ActiveOnly: true}, repository.Pagination{Page: 1, PageSize: repository.DefaultPageSize}).
		Return([]*entity.Course{{ID: 1}}, int64(1), nil)

	output, err := f.service.ListCourses(ctx, repository.CourseFilter{}, repository.Pagination{})

	require.NoError(t, err)
	assert.Len(t, output.Courses, 1)
	assert.Equal(t, int64(1), output.Total)
	assert.Equal(t, 1, output.Page.Page)
}

func TestCatalogService_ListCategoryCourses_UnknownCategory(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	f.categories.EXPECT().FindByID(ctx, uint64(9)).Return(nil, repository.ErrCategoryNotFound)

	_, err := f.service.ListCategoryCourses(ctx, 9, repository.Pagination{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCatalogService_CreateCategory(t *testing.T) {
	t.Run("applies the default color", func(t *testing.T) {
		f := newCatalogFixture(t)
		ctx := context.Background()

		f.categories.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)

		category, err := f.service.CreateCategory(ctx, &usecase.CategoryInput{Name: ptr("Backend")})

		require.NoError(t, err)
		assert.Equal(t, entity.DefaultCategoryColor, category.ColorHex)
		assert.True(t, category.Active)
	})

	t.Run("rejects a malformed color", func(t *testing.T) {
		f := newCatalogFixture(t)

		_, err := f.service.CreateCategory(context.Background(), &usecase.CategoryInput{
			Name:     ptr("Backend"),
			ColorHex: ptr("blue"),
		})

		require.Error(t, err)
		assert.Contains(t, fieldsOf(t, err), "color_hex")
	})
}

func TestCatalogService_UpdateCategory_InvalidatesItsCourses(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	category := &entity.Category{ID: 3, Name: "Backend", ColorHex: entity.DefaultCategoryColor, Active: true}
	first, second := uuid.New(), uuid.New()

	f.categories.EXPECT().FindByID(ctx, uint64(3)).Return(category, nil)
	f.categories.EXPECT().Update(ctx, category).Return(nil)
	f.courses.EXPECT().ListUUIDs(ctx, mock.MatchedBy(func(filter repository.CourseFilter) bool {
		return filter.CategoryID != nil && *filter.CategoryID == 3 && filter.InstructorID == nil
	})).Return([]uuid.UUID{first, second}, nil)
	f.cache.EXPECT().Invalidate(ctx, first).Return(nil)
	f.cache.EXPECT().Invalidate(ctx, second).Return(errors.New("redis down"))

	got, err := f.service.UpdateCategory(ctx, 3, &usecase.CategoryInput{Name: ptr("Platform")})

	require.NoError(t, err)
	assert.Equal(t, "Platform", got.Name)
}

func TestCatalogService_DeactivateCategory_ListFailureDoesNotFail(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	category := &entity.Category{ID: 3, Name: "Backend", ColorHex: entity.DefaultCategoryColor, Active: true}

	f.categories.EXPECT().FindByID(ctx, uint64(3)).Return(category, nil)
	f.categories.EXPECT().Update(ctx, category).Return(nil)
	f.courses.EXPECT().ListUUIDs(ctx, mock.AnythingOfType("repository.CourseFilter")).Return(nil, errors.New("db gone"))

	err := f.service.DeactivateCategory(ctx, 3)

	require.NoError(t, err)
	assert.False(t, category.Active)
	f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestCatalogService_CreateCourse_IncompleteInstructor(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	expectTx(f.txManager, f.repos.factory)
	f.repos.categories.EXPECT().FindByID(ctx, uint64(1)).Return(&entity.Category{ID: 1, Active: true}, nil)
	f.repos.instructors.EXPECT().FindByID(ctx, uint64(2)).Return(&entity.Instructor{
		ID:   2,
		User: &entity.User{Active: true, ProfileComplete: true},
	}, nil)

	_, err := f.service.CreateCourse(ctx, validCourseInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInstructorNotFound))
	assert.Contains(t, fieldsOf(t, err), "instructor_id")
}

func TestCatalogService_CreateCourse_PaidCourseKeepsPrice(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	expectTx(f.txManager, f.repos.factory)
	f.repos.categories.EXPECT().FindByID(ctx, uint64(1)).Return(&entity.Category{ID: 1, Active: true}, nil)
	f.repos.instructors.EXPECT().FindByID(ctx, uint64(2)).Return(&entity.Instructor{
		ID:          2,
		Specialty:   "Go",
		ExtendedBio: "Bio",
		User:        &entity.User{Active: true, ProfileComplete: true},
	}, nil)
	f.repos.courses.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Course")).Return(nil)
	f.metrics.EXPECT().CourseWritten(opCreate).Return()
	f.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).Return(nil)
	f.metrics.EXPECT().EventPublished(service.EventCourseCreated, true).Return()

	input := validCourseInput()
	input.IsFree = ptr(false)

	course, err := f.service.CreateCourse(ctx, input)

	require.NoError(t, err)
	assert.False(t, course.IsFree)
	assert.NotNil(t, course.Instructor)
}

func TestCatalogService_DeactivateCourse_InvalidatesCache(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	id := uuid.New()
	course := &entity.Course{ID: 10, UUID: id, Active: true}

	f.courses.EXPECT().FindByUUID(ctx, id).Return(course, nil)
	f.courses.EXPECT().Update(ctx, course).Return(nil)
	f.cache.EXPECT().Invalidate(ctx, id).Return(nil)
	f.metrics.EXPECT().CourseWritten(opDeactivate).Return()
	f.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).Return(errors.New("broker down"))
	f.metrics.EXPECT().EventPublished(service.EventCourseDeactivated, false).Return()

	err := f.service.DeactivateCourse(ctx, id)

	require.NoError(t, err)
	assert.False(t, course.Active)
}

func TestCatalogService_CreateModule_UnknownCourse(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	f.courses.EXPECT().FindByID(ctx, uint64(99)).Return(nil, repository.ErrCourseNotFound)

	_, err := f.service.CreateModule(ctx, &usecase.ModuleInput{CourseID: ptr(uint64(99)), Title: ptr("Intro")})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCourseNotFound))
	assert.Equal(t, "does not exist", fieldsOf(t, err)["course_id"])
}

func TestCatalogService_CreateLesson_InvalidatesOwningCourse(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	courseUUID := uuid.New()

	f.modules.EXPECT().FindByID(ctx, uint64(5)).Return(&entity.Module{ID: 5, CourseID: 10}, nil)
	f.lessons.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Lesson")).Return(nil)
	f.courses.EXPECT().FindByID(ctx, uint64(10)).Return(&entity.Course{ID: 10, UUID: courseUUID}, nil)
	f.cache.EXPECT().Invalidate(ctx, courseUUID).Return(nil)
	f.metrics.EXPECT().CourseWritten(opCreate).Return()

	lesson, err := f.service.CreateLesson(ctx, &usecase.LessonInput{ModuleID: ptr(uint64(5)), Title: ptr("Channels")})

	require.NoError(t, err)
	assert.Equal(t, uint64(5), lesson.ModuleID)
}
