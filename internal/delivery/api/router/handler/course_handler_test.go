package handler

import (
	"net/http"
	"testing"

	"academia/internal/domain/entity"
	domainerrors "academia/internal/domain/errors"
	"academia/internal/domain/repository"
	mockUC "academia/internal/mocks/usecase"
	"academia/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type courseFixture struct {
	api       *testAPI
	catalogUC *mockUC.MockCatalogUsecase
	builderUC *mockUC.MockCourseBuilderUsecase
}

func newCourseFixture(t *testing.T) *courseFixture {
	t.Helper()

	f := &courseFixture{
		api:       newTestAPI(t),
		catalogUC: mockUC.NewMockCatalogUsecase(t),
		builderUC: mockUC.NewMockCourseBuilderUsecase(t),
	}
	h := NewCourseHandler(CatalogHandlerParams{CatalogUC: f.catalogUC, BuilderUC: f.builderUC, Logger: newDiscardLogger()})

	courses := f.api.e.Group("/api/v1/courses")
	courses.GET("", h.ListCourses)
	courses.GET("/:uuid", h.GetCourse)
	courses.GET("/:uuid/stats", h.GetCourseStats)
	courses.POST("/full", h.CreateFullCourse)
	courses.PUT("/:uuid/full", h.ReplaceFullCourse)
	courses.PATCH("/:uuid/full", h.ReplaceFullCourse)

	return f
}

func sampleCourse() *entity.Course {
	rating := decimal.RequireFromString("4.5")
	lesson := &entity.Lesson{ID: 3, Title: "Goroutines", DurationMinutes: 5, DurationSeconds: 30, Active: true}

	return &entity.Course{
		ID:       1,
		UUID:     uuid.MustParse("8f14e45f-ceea-467a-9af1-7a1c0c1c2b3d"),
		Title:    "Concurrency in Go",
		Price:    decimal.RequireFromString("19.9"),
		Rating:   &rating,
		Category: &entity.Category{ID: 2, Name: "Backend", ColorHex: "#112233"},
		Modules: []*entity.Module{
			{ID: 10, Title: "Basics", Order: 1, Active: true, Lessons: []*entity.Lesson{lesson}},
		},
		Active: true,
	}
}

func TestCourseHandler_ListCourses(t *testing.T) {
	f := newCourseFixture(t)

	f.catalogUC.EXPECT().ListCourses(mock.Anything,
		mock.MatchedBy(func(filter repository.CourseFilter) bool {
			return filter.Level == entity.Level("beginner") &&
				filter.MinPrice != nil && filter.MinPrice.Equal(decimal.RequireFromString("10.5")) &&
				filter.IsFree != nil && *filter.IsFree &&
				filter.Order.Field == repository.CourseOrderPrice && filter.Order.Descending
		}),
		repository.Pagination{Page: 2, PageSize: 5},
	).Return(&usecase.CourseListOutput{
		Courses: []*entity.Course{sampleCourse()},
		Total:   11,
		Page:    repository.Pagination{Page: 2, PageSize: 5},
	}, nil)

	rec := f.api.do(http.MethodGet, "/api/v1/courses?level=beginner&min_price=10.5&is_free=true&ordering=-price&page=2&page_size=5", "", false)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Meta.Pagination)
	assert.Equal(t, int64(11), env.Meta.Pagination.Total)
	assert.Equal(t, int64(3), env.Meta.Pagination.TotalPages)

	courses := decodeData[[]map[string]any](t, rec)
	require.Len(t, courses, 1)
	assert.Equal(t, "8f14e45f-ceea-467a-9af1-7a1c0c1c2b3d", courses[0]["id"])
	assert.Equal(t, "19.90", courses[0]["price"])
	assert.Equal(t, "4.50", courses[0]["rating"])
	assert.NotContains(t, courses[0], "modules")
}

func TestCourseHandler_ListCourses_InvalidQuery(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantFields []string
	}{
		{name: "bad level and price", query: "?level=expert&min_price=cheap", wantFields: []string{"level", "min_price"}},
		{name: "unknown ordering", query: "?ordering=popularity", wantFields: []string{"ordering"}},
		{name: "non numeric page", query: "?page=first", wantFields: []string{"page"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCourseFixture(t)

			rec := f.api.do(http.MethodGet, "/api/v1/courses"+tt.query, "", false)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
			fields := errorFields(t, rec)
			for _, field := range tt.wantFields {
				assert.Contains(t, fields, field)
			}
		})
	}
}

func TestCourseHandler_GetCourse(t *testing.T) {
	t.Run("returns the tree", func(t *testing.T) {
		f := newCourseFixture(t)
		course := sampleCourse()

		f.catalogUC.EXPECT().GetCourse(mock.Anything, course.UUID).Return(course, nil)

		rec := f.api.do(http.MethodGet, "/api/v1/courses/"+course.UUID.String(), "", false)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		got := decodeData[CourseResponse](t, rec)
		assert.Equal(t, 1, got.TotalModules)
		assert.Equal(t, 1, got.TotalLessons)
		require.Len(t, got.Modules, 1)
		require.Len(t, got.Modules[0].Lessons, 1)
		assert.Equal(t, 330, got.Modules[0].Lessons[0].TotalDurationSeconds)
	})

	t.Run("malformed uuid", func(t *testing.T) {
		f := newCourseFixture(t)

		rec := f.api.do(http.MethodGet, "/api/v1/courses/42", "", false)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, errorFields(t, rec), "uuid")
	})

	t.Run("not found", func(t *testing.T) {
		f := newCourseFixture(t)
		id := uuid.New()

		f.catalogUC.EXPECT().GetCourse(mock.Anything, id).Return(nil, domainerrors.ErrCourseNotFound)

		rec := f.api.do(http.MethodGet, "/api/v1/courses/"+id.String(), "", false)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "COURSE_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestCourseHandler_CreateFullCourse(t *testing.T) {
	f := newCourseFixture(t)
	body := `{
		"course": {"title": "Concurrency in Go", "category_id": 2, "instructor_id": 7, "price": "19.90", "level": "beginner"},
		"modules": [
			{"title": "Basics", "order": 1, "lessons": [{"title": "Goroutines", "order": 1, "content_type": "video"}]},
			{"title": "Channels", "order": 2, "lessons": []}
		]
	}`

	f.builderUC.EXPECT().CreateFullCourse(mock.Anything, mock.MatchedBy(func(in *usecase.FullCourseInput) bool {
		return in.Course != nil && *in.Course.Title == "Concurrency in Go" &&
			*in.Course.Level == entity.Level("beginner") &&
			in.Course.Price.Equal(decimal.RequireFromString("19.9")) &&
			len(in.Modules) == 2 && len(in.Modules[0].Lessons) == 1 &&
			in.Modules[0].Lessons[0].ContentType == entity.ContentType("video")
	})).Return(&usecase.FullCourseOutput{Course: sampleCourse(), ModulesCreated: 2, LessonsCreated: 1}, nil)

	rec := f.api.do(http.MethodPost, "/api/v1/courses/full", body, false)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	got := decodeData[CompositeWriteResponse](t, rec)
	assert.Equal(t, 2, got.ModulesCreated)
	assert.Equal(t, 1, got.LessonsCreated)
}

func TestCourseHandler_CreateFullCourse_RejectsBadEnums(t *testing.T) {
	f := newCourseFixture(t)
	body := `{
		"course": {"title": "Concurrency in Go", "modality": "offline"},
		"modules": [{"title": "Basics", "lessons": [{"title": "Intro", "content_type": "podcast"}]}]
	}`

	rec := f.api.do(http.MethodPost, "/api/v1/courses/full", body, false)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	fields := errorFields(t, rec)
	assert.Contains(t, fields, "course.modality")
	assert.Contains(t, fields, "modules[0].lessons[0].content_type")
}

func TestCourseHandler_CreateFullCourse_MalformedJSON(t *testing.T) {
	f := newCourseFixture(t)

	rec := f.api.do(http.MethodPost, "/api/v1/courses/full", `{"course": [}`, false)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeEnvelope(t, rec).Error.Code)
}

func TestCourseHandler_ReplaceFullCourse(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		body        string
		wantModules bool
	}{
		{name: "put with modules", method: http.MethodPut, body: `{"course": {"title": "New"}, "modules": []}`, wantModules: true},
		{name: "patch without modules key", method: http.MethodPatch, body: `{"course": {"featured": true}}`, wantModules: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCourseFixture(t)
			course := sampleCourse()

			f.builderUC.EXPECT().ReplaceFullCourse(mock.Anything, course.UUID, mock.MatchedBy(func(in *usecase.FullCourseInput) bool {
				return (in.Modules != nil) == tt.wantModules
			})).Return(&usecase.FullCourseOutput{Course: course, ModulesDeleted: 1}, nil)

			rec := f.api.do(tt.method, "/api/v1/courses/"+course.UUID.String()+"/full", tt.body, false)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, int64(1), decodeData[CompositeWriteResponse](t, rec).ModulesDeleted)
		})
	}
}

func TestCourseHandler_ReplaceFullCourse_ShapeErrorFromUsecase(t *testing.T) {
	f := newCourseFixture(t)
	id := uuid.New()

	f.builderUC.EXPECT().ReplaceFullCourse(mock.Anything, id, mock.Anything).
		Return(nil, domainerrors.NewRequestShapeError("course", "either course or modules must be provided"))

	rec := f.api.do(http.MethodPut, "/api/v1/courses/"+id.String()+"/full", `{}`, false)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorFields(t, rec), "course")
}

func TestCourseHandler_GetCourseStats(t *testing.T) {
	f := newCourseFixture(t)
	course := sampleCourse()

	f.catalogUC.EXPECT().GetCourseStats(mock.Anything, course.UUID).Return(&usecase.CourseStats{
		Course:                  course,
		TotalModules:            1,
		TotalLessons:            1,
		TotalDurationSeconds:    330,
		InstructorActiveCourses: 4,
	}, nil)

	rec := f.api.do(http.MethodGet, "/api/v1/courses/"+course.UUID.String()+"/stats", "", false)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeData[CourseStatsResponse](t, rec)
	assert.Equal(t, course.UUID, got.CourseID)
	assert.Equal(t, 330, got.TotalDurationSeconds)
	assert.Equal(t, int64(4), got.InstructorActiveCourses)
	assert.Zero(t, got.TotalStudents)
}

