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

func newLessonFixture(t *testing.T) (*testAPI, *mockUC.MockCatalogUsecase) {
	t.Helper()

	api := newTestAPI(t)
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewLessonHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()})

	lessons := api.e.Group("/api/v1/lessons")
	lessons.GET("", h.ListLessons)
	lessons.GET("/:id", h.GetLesson)
	adminOnly := api.auth.RequireRole(entity.RoleAdmin)
	lessons.POST("", h.CreateLesson, api.auth.Authenticate, adminOnly)
	lessons.PATCH("/:id", h.UpdateLesson, api.auth.Authenticate, adminOnly)
	lessons.DELETE("/:id", h.DeactivateLesson, api.auth.Authenticate, adminOnly)

	return api, catalogUC
}

func sampleLesson() *entity.Lesson {
	return &entity.Lesson{
		ID:              10,
		ModuleID:        3,
		Title:           "Intro",
		ContentType:     entity.ContentTypeVideo,
		VideoURL:        "https://videos.example.com/intro.mp4",
		DurationMinutes: 4,
		DurationSeconds: 15,
		IsFreePreview:   true,
		Active:          true,
	}
}

func TestLessonHandler_ListLessons(t *testing.T) {
	api, catalogUC := newLessonFixture(t)
	moduleID := uint64(3)

	catalogUC.EXPECT().ListLessons(mock.Anything, repository.LessonFilter{
		ModuleID:   &moduleID,
		ActiveOnly: true,
	}).Return([]*entity.Lesson{sampleLesson()}, nil)

	rec := api.do(http.MethodGet, "/api/v1/lessons?module=3", "", false)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeData[[]LessonResponse](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, 255, got[0].TotalDurationSeconds)
	assert.True(t, got[0].IsFreePreview)
}

func TestLessonHandler_GetLesson(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(uc *mockUC.MockCatalogUsecase)
		wantStatus int
	}{
		{
			name: "found",
			path: "/api/v1/lessons/10",
			setup: func(uc *mockUC.MockCatalogUsecase) {
				uc.EXPECT().GetLesson(mock.Anything, uint64(10)).Return(sampleLesson(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing",
			path: "/api/v1/lessons/11",
			setup: func(uc *mockUC.MockCatalogUsecase) {
				uc.EXPECT().GetLesson(mock.Anything, uint64(11)).Return(nil, domainerrors.ErrLessonNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "zero id",
			path:       "/api/v1/lessons/0",
			setup:      func(*mockUC.MockCatalogUsecase) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, catalogUC := newLessonFixture(t)
			tt.setup(catalogUC)

			rec := api.do(http.MethodGet, tt.path, "", false)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLessonHandler_CreateLesson(t *testing.T) {
	api, catalogUC := newLessonFixture(t)
	api.loginAs(uuid.New(), entity.RoleAdmin)

	catalogUC.EXPECT().CreateLesson(mock.Anything, mock.MatchedBy(func(in *usecase.LessonInput) bool {
		return in.ModuleID != nil && *in.ModuleID == 3 &&
			in.ContentType != nil && *in.ContentType == entity.ContentTypeVideo &&
			in.DurationSeconds != nil && *in.DurationSeconds == 15
	})).Return(sampleLesson(), nil)

	body := `{"module_id":3,"title":"Intro","content_type":"video","duration_minutes":4,"duration_seconds":15,"is_free_preview":true}`
	rec := api.do(http.MethodPost, "/api/v1/lessons", body, true)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	got := decodeData[LessonResponse](t, rec)
	assert.Equal(t, entity.ContentTypeVideo, got.ContentType)
}

func TestLessonHandler_CreateLesson_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		roles      []entity.Role
		body       string
		wantStatus int
	}{
		{
			name:       "unknown content type",
			roles:      []entity.Role{entity.RoleAdmin},
			body:       `{"module_id":3,"title":"Intro","content_type":"podcast"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "negative duration",
			roles:      []entity.Role{entity.RoleAdmin},
			body:       `{"module_id":3,"title":"Intro","duration_seconds":-5}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "instructor is not an administrator",
			roles:      []entity.Role{entity.RoleInstructor},
			body:       `{"module_id":3,"title":"Intro"}`,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "wrong json type",
			roles:      []entity.Role{entity.RoleAdmin},
			body:       `{"module_id":"three"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, _ := newLessonFixture(t)
			api.loginAs(uuid.New(), tt.roles...)

			rec := api.do(http.MethodPost, "/api/v1/lessons", tt.body, true)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestLessonHandler_UpdateAndDeactivate(t *testing.T) {
	t.Run("move to another module", func(t *testing.T) {
		api, catalogUC := newLessonFixture(t)
		api.loginAs(uuid.New(), entity.RoleAdmin)
		moved := sampleLesson()
		moved.ModuleID = 4

		catalogUC.EXPECT().UpdateLesson(mock.Anything, uint64(10), mock.MatchedBy(func(in *usecase.LessonInput) bool {
			return in.ModuleID != nil && *in.ModuleID == 4 && in.Title == nil && in.ContentType == nil
		})).Return(moved, nil)

		rec := api.do(http.MethodPatch, "/api/v1/lessons/10", `{"module_id":4}`, true)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, uint64(4), decodeData[LessonResponse](t, rec).ModuleID)
	})

	t.Run("deactivate unknown lesson", func(t *testing.T) {
		api, catalogUC := newLessonFixture(t)
		api.loginAs(uuid.New(), entity.RoleAdmin)

		catalogUC.EXPECT().DeactivateLesson(mock.Anything, uint64(99)).Return(domainerrors.ErrLessonNotFound)

		rec := api.do(http.MethodDelete, "/api/v1/lessons/99", "", true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
