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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type moduleFixture struct {
	api       *testAPI
	catalogUC *mockUC.MockCatalogUsecase
	builderUC *mockUC.MockCourseBuilderUsecase
}

func newModuleFixture(t *testing.T) *moduleFixture {
	t.Helper()

	f := &moduleFixture{
		api:       newTestAPI(t),
		catalogUC: mockUC.NewMockCatalogUsecase(t),
		builderUC: mockUC.NewMockCourseBuilderUsecase(t),
	}
	h := NewModuleHandler(CatalogHandlerParams{CatalogUC: f.catalogUC, BuilderUC: f.builderUC, Logger: newDiscardLogger()})

	modules := f.api.e.Group("/api/v1/modules")
	modules.GET("", h.ListModules)
	modules.GET("/:id", h.GetModule)
	adminOnly := f.api.auth.RequireRole(entity.RoleAdmin)
	modules.POST("", h.CreateModule, f.api.auth.Authenticate, adminOnly)
	modules.POST("/with-lessons", h.CreateModuleWithLessons, f.api.auth.Authenticate, adminOnly)
	modules.PATCH("/:id", h.UpdateModule, f.api.auth.Authenticate, adminOnly)
	modules.DELETE("/:id", h.DeactivateModule, f.api.auth.Authenticate, adminOnly)

	return f
}

func sampleModule() *entity.Module {
	return &entity.Module{
		ID:         3,
		CourseID:   1,
		Title:      "Foundations",
		Order:      1,
		Expandable: true,
		Active:     true,
		Lessons: []*entity.Lesson{
			{ID: 10, ModuleID: 3, Title: "Intro", ContentType: entity.ContentTypeVideo, DurationMinutes: 2, Active: true},
			{ID: 11, ModuleID: 3, Title: "Setup", ContentType: entity.ContentTypeText, Order: 1, Active: true},
		},
	}
}

func TestModuleHandler_ListModules(t *testing.T) {
	f := newModuleFixture(t)
	courseID := uint64(1)

	f.catalogUC.EXPECT().ListModules(mock.Anything, repository.ModuleFilter{
		CourseID:   &courseID,
		Search:     "found",
		ActiveOnly: true,
	}).Return([]*entity.Module{sampleModule()}, nil)

	rec := f.api.do(http.MethodGet, "/api/v1/modules?course=1&search=found", "", false)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeData[[]ModuleResponse](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].TotalLessons)
}

func TestModuleHandler_ListModules_InvalidCourse(t *testing.T) {
	f := newModuleFixture(t)

	rec := f.api.do(http.MethodGet, "/api/v1/modules?course=first", "", false)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, errorFields(t, rec), "course")
}

func TestModuleHandler_GetModule(t *testing.T) {
	t.Run("lessons in order", func(t *testing.T) {
		f := newModuleFixture(t)

		f.catalogUC.EXPECT().GetModule(mock.Anything, uint64(3)).Return(sampleModule(), nil)

		rec := f.api.do(http.MethodGet, "/api/v1/modules/3", "", false)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		got := decodeData[ModuleResponse](t, rec)
		require.Len(t, got.Lessons, 2)
		assert.Equal(t, "Intro", got.Lessons[0].Title)
		assert.Equal(t, 120, got.Lessons[0].TotalDurationSeconds)
	})

	t.Run("missing", func(t *testing.T) {
		f := newModuleFixture(t)

		f.catalogUC.EXPECT().GetModule(mock.Anything, uint64(9)).Return(nil, domainerrors.ErrModuleNotFound)

		rec := f.api.do(http.MethodGet, "/api/v1/modules/9", "", false)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "MODULE_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestModuleHandler_CreateModule(t *testing.T) {
	f := newModuleFixture(t)
	f.api.loginAs(uuid.New(), entity.RoleAdmin)

	f.catalogUC.EXPECT().CreateModule(mock.Anything, mock.MatchedBy(func(in *usecase.ModuleInput) bool {
		return in.CourseID != nil && *in.CourseID == 1 &&
			in.Title != nil && *in.Title == "Foundations" &&
			in.Expandable == nil
	})).Return(sampleModule(), nil)

	rec := f.api.do(http.MethodPost, "/api/v1/modules", `{"course_id":1,"title":"Foundations","order":1}`, true)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, uint64(3), decodeData[ModuleResponse](t, rec).ID)
}

func TestModuleHandler_CreateModule_OrderConflict(t *testing.T) {
	f := newModuleFixture(t)
	f.api.loginAs(uuid.New(), entity.RoleAdmin)

	f.catalogUC.EXPECT().CreateModule(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrOrderConflict)

	rec := f.api.do(http.MethodPost, "/api/v1/modules", `{"course_id":1,"title":"Again","order":1}`, true)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ORDER_CONFLICT", decodeEnvelope(t, rec).Error.Code)
}

func TestModuleHandler_CreateModule_StudentForbidden(t *testing.T) {
	f := newModuleFixture(t)
	f.api.loginAs(uuid.New(), entity.RoleStudent)

	rec := f.api.do(http.MethodPost, "/api/v1/modules", `{"course_id":1,"title":"Foundations"}`, true)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestModuleHandler_CreateModuleWithLessons(t *testing.T) {
	f := newModuleFixture(t)
	f.api.loginAs(uuid.New(), entity.RoleAdmin)

	f.builderUC.EXPECT().CreateModuleWithLessons(mock.Anything, mock.MatchedBy(func(in *usecase.ModuleWithLessonsInput) bool {
		return in.CourseID == 1 &&
			in.Module.Title == "Foundations" &&
			len(in.Module.Lessons) == 2 &&
			in.Module.Lessons[1].ContentType == entity.ContentTypeText
	})).Return(&usecase.ModuleWithLessonsOutput{Module: sampleModule(), LessonsCreated: 2}, nil)

	body := `{
		"course_id": 1,
		"title": "Foundations",
		"order": 1,
		"lessons": [
			{"title": "Intro", "content_type": "video", "duration_minutes": 2},
			{"title": "Setup", "content_type": "text", "order": 1}
		]
	}`
	rec := f.api.do(http.MethodPost, "/api/v1/modules/with-lessons", body, true)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	got := decodeData[ModuleWithLessonsResponse](t, rec)
	assert.Equal(t, 2, got.LessonsCreated)
	require.NotNil(t, got.Module)
	assert.Len(t, got.Module.Lessons, 2)
}

func TestModuleHandler_CreateModuleWithLessons_RequestShape(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantField  string
	}{
		{
			name:       "course id missing",
			body:       `{"title":"Foundations","lessons":[]}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "course_id",
		},
		{
			name:       "unknown lesson content type",
			body:       `{"course_id":1,"title":"Foundations","lessons":[{"title":"Intro","content_type":"podcast"}]}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantField:  "lessons[0].content_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newModuleFixture(t)
			f.api.loginAs(uuid.New(), entity.RoleAdmin)

			rec := f.api.do(http.MethodPost, "/api/v1/modules/with-lessons", tt.body, true)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Contains(t, errorFields(t, rec), tt.wantField)
		})
	}
}

func TestModuleHandler_UpdateAndDeactivate(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		f := newModuleFixture(t)
		f.api.loginAs(uuid.New(), entity.RoleAdmin)
		updated := sampleModule()
		updated.Expandable = false

		f.catalogUC.EXPECT().UpdateModule(mock.Anything, uint64(3), mock.MatchedBy(func(in *usecase.ModuleInput) bool {
			return in.Expandable != nil && !*in.Expandable && in.Title == nil
		})).Return(updated, nil)

		rec := f.api.do(http.MethodPatch, "/api/v1/modules/3", `{"expandable":false}`, true)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.False(t, decodeData[ModuleResponse](t, rec).Expandable)
	})

	t.Run("negative order", func(t *testing.T) {
		f := newModuleFixture(t)
		f.api.loginAs(uuid.New(), entity.RoleAdmin)

		rec := f.api.do(http.MethodPatch, "/api/v1/modules/3", `{"order":-1}`, true)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, errorFields(t, rec), "order")
	})

	t.Run("deactivate", func(t *testing.T) {
		f := newModuleFixture(t)
		f.api.loginAs(uuid.New(), entity.RoleAdmin)

		f.catalogUC.EXPECT().DeactivateModule(mock.Anything, uint64(3)).Return(nil)

		rec := f.api.do(http.MethodDelete, "/api/v1/modules/3", "", true)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
