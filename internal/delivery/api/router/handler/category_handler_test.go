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

func newCategoryFixture(t *testing.T) (*testAPI, *mockUC.MockCatalogUsecase) {
	t.Helper()

	api := newTestAPI(t)
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCategoryHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()})

	categories := api.e.Group("/api/v1/categories")
	categories.GET("", h.ListCategories)
	categories.GET("/:id", h.GetCategory)
	categories.GET("/:id/courses", h.ListCategoryCourses)
	categories.POST("", h.CreateCategory, api.auth.Authenticate)
	categories.PUT("/:id", h.UpdateCategory, api.auth.Authenticate)
	categories.DELETE("/:id", h.DeactivateCategory, api.auth.Authenticate)

	return api, catalogUC
}

func TestCategoryHandler_ListCategories(t *testing.T) {
	api, catalogUC := newCategoryFixture(t)

	catalogUC.EXPECT().ListCategories(mock.Anything, repository.CategoryFilter{
		Search:     "back",
		OrderBy:    repository.CategoryOrderName,
		Descending: true,
	}).Return([]*entity.Category{{ID: 1, Name: "Backend", ColorHex: "#112233", Active: true, TotalCourses: 4}}, nil)

	rec := api.do(http.MethodGet, "/api/v1/categories?search=back&ordering=-name", "", false)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeData[[]CategoryResponse](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "Backend", got[0].Name)
	assert.Equal(t, 4, got[0].TotalCourses)
}

func TestCategoryHandler_ListCategories_UnknownOrdering(t *testing.T) {
	api, _ := newCategoryFixture(t)

	rec := api.do(http.MethodGet, "/api/v1/categories?ordering=popularity", "", false)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, errorFields(t, rec), "ordering")
}

func TestCategoryHandler_GetCategory(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(uc *mockUC.MockCatalogUsecase)
		wantStatus int
	}{
		{
			name: "found",
			path: "/api/v1/categories/1",
			setup: func(uc *mockUC.MockCatalogUsecase) {
				uc.EXPECT().GetCategory(mock.Anything, uint64(1)).Return(&entity.Category{ID: 1, Name: "Backend"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing",
			path: "/api/v1/categories/9",
			setup: func(uc *mockUC.MockCatalogUsecase) {
				uc.EXPECT().GetCategory(mock.Anything, uint64(9)).Return(nil, domainerrors.ErrCategoryNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{name: "zero id", path: "/api/v1/categories/0", setup: func(*mockUC.MockCatalogUsecase) {}, wantStatus: http.StatusUnprocessableEntity},
		{name: "non numeric id", path: "/api/v1/categories/abc", setup: func(*mockUC.MockCatalogUsecase) {}, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, catalogUC := newCategoryFixture(t)
			tt.setup(catalogUC)

			rec := api.do(http.MethodGet, tt.path, "", false)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestCategoryHandler_ListCategoryCourses(t *testing.T) {
	api, catalogUC := newCategoryFixture(t)

	catalogUC.EXPECT().ListCategoryCourses(mock.Anything, uint64(3), repository.Pagination{Page: 1, PageSize: repository.DefaultPageSize}).
		Return(&usecase.CourseListOutput{Courses: []*entity.Course{}, Total: 0, Page: repository.Pagination{Page: 1}}, nil)

	rec := api.do(http.MethodGet, "/api/v1/categories/3/courses", "", false)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)
	assert.JSONEq(t, `[]`, string(env.Data))
	assert.Equal(t, int64(0), env.Meta.Pagination.TotalPages)
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		api, _ := newCategoryFixture(t)

		rec := api.do(http.MethodPost, "/api/v1/categories", `{"name":"Data"}`, false)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_TOKEN", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("created by any authenticated user", func(t *testing.T) {
		api, catalogUC := newCategoryFixture(t)
		api.loginAs(uuid.New(), entity.RoleStudent)

		catalogUC.EXPECT().CreateCategory(mock.Anything, mock.MatchedBy(func(in *usecase.CategoryInput) bool {
			return *in.Name == "Data" && *in.ColorHex == "#A1B2C3" && in.Active == nil
		})).Return(&entity.Category{ID: 5, Name: "Data", ColorHex: "#A1B2C3", Active: true}, nil)

		rec := api.do(http.MethodPost, "/api/v1/categories", `{"name":"Data","color_hex":"#A1B2C3"}`, true)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, uint64(5), decodeData[CategoryResponse](t, rec).ID)
	})

	t.Run("invalid color", func(t *testing.T) {
		api, _ := newCategoryFixture(t)
		api.loginAs(uuid.New(), entity.RoleStudent)

		rec := api.do(http.MethodPost, "/api/v1/categories", `{"name":"Data","color_hex":"blue"}`, true)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, errorFields(t, rec), "color_hex")
	})
}

func TestCategoryHandler_DeactivateCategory(t *testing.T) {
	api, catalogUC := newCategoryFixture(t)
	api.loginAs(uuid.New(), entity.RoleAdmin)

	catalogUC.EXPECT().DeactivateCategory(mock.Anything, uint64(2)).Return(nil)

	rec := api.do(http.MethodDelete, "/api/v1/categories/2", "", true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
