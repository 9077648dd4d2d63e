package handler

import (
	"net/http"
	"testing"
	"time"

	"academia/internal/domain/entity"
	domainerrors "academia/internal/domain/errors"
	mockUC "academia/internal/mocks/usecase"
	"academia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInstructorFixture(t *testing.T) (*testAPI, *mockUC.MockInstructorUsecase) {
	t.Helper()

	api := newTestAPI(t)
	instructorUC := mockUC.NewMockInstructorUsecase(t)
	h := NewInstructorHandler(InstructorHandlerParams{InstructorUC: instructorUC, Logger: newDiscardLogger()})

	admin := api.e.Group("/api/v1/admin/instructors", api.auth.Authenticate, api.auth.RequireRole(entity.RoleAdmin))
	admin.POST("", h.CreateInstructor)
	admin.GET("", h.ListInstructors)
	admin.GET("/:id", h.GetInstructor)
	admin.PATCH("/:id", h.UpdateInstructor)
	admin.DELETE("/:id", h.DeactivateInstructor)

	public := api.e.Group("/api/v1/instructors")
	public.GET("", h.ListPublicInstructors)
	public.GET("/:id", h.GetPublicInstructor)

	return api, instructorUC
}

func sampleInstructor() *entity.Instructor {
	return &entity.Instructor{
		ID:              7,
		Specialty:       "Distributed systems",
		ExtendedBio:     "Fifteen years building backends",
		ExperienceYears: 15,
		GitHubURL:       "https://github.com/lperez",
		User: &entity.User{
			ID:              uuid.New(),
			Email:           "luis.perez@example.com",
			Username:        "luis.perez",
			FirstName:       "Luis",
			LastName:        "Perez",
			Role:            entity.RoleInstructor,
			Active:          true,
			ProfileComplete: true,
		},
	}
}

const createInstructorBody = `{
	"email": "luis.perez@example.com",
	"username": "luis.perez",
	"first_name": "Luis",
	"last_name": "Perez",
	"birth_date": "1980-01-01",
	"country": "MX",
	"password": "Str0ng!pass",
	"confirm_password": "Str0ng!pass",
	"specialty": "Distributed systems",
	"extended_bio": "Fifteen years building backends",
	"experience_years": 15
}`

func TestInstructorHandler_CreateInstructor(t *testing.T) {
	api, instructorUC := newInstructorFixture(t)
	adminID := uuid.New()
	api.loginAs(adminID, entity.RoleAdmin)

	instructorUC.EXPECT().CreateInstructor(mock.Anything,
		mock.MatchedBy(func(a *usecase.Actor) bool { return a.UserID == adminID && a.IsAdmin() }),
		mock.MatchedBy(func(in *usecase.CreateInstructorInput) bool {
			return in.Email == "luis.perez@example.com" &&
				in.ExperienceYears == 15 &&
				in.BirthDate.Equal(time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC))
		}),
	).Return(sampleInstructor(), nil)

	rec := api.do(http.MethodPost, "/api/v1/admin/instructors", createInstructorBody, true)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	got := decodeData[InstructorResponse](t, rec)
	assert.Equal(t, uint64(7), got.ID)
	assert.Equal(t, "Luis Perez", got.FullName)
	require.NotNil(t, got.User)
	assert.Equal(t, "luis.perez@example.com", got.User.Email)
	assert.Equal(t, "https://github.com/lperez", got.SocialLinks["github"])
	assert.True(t, got.InstructorProfileComplete)
}

func TestInstructorHandler_CreateInstructor_Validation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "experience years missing",
			body:      `{"email":"a@b.co","username":"a","first_name":"A","last_name":"B","birth_date":"1980-01-01","country":"MX","password":"x","confirm_password":"x","specialty":"Go","extended_bio":"Bio"}`,
			wantField: "experience_years",
		},
		{
			name:      "experience years out of range",
			body:      `{"email":"a@b.co","username":"a","first_name":"A","last_name":"B","birth_date":"1980-01-01","country":"MX","password":"x","confirm_password":"x","specialty":"Go","extended_bio":"Bio","experience_years":61}`,
			wantField: "experience_years",
		},
		{
			name:      "birth date not a date",
			body:      `{"email":"a@b.co","username":"a","first_name":"A","last_name":"B","birth_date":"01/01/1980","country":"MX","password":"x","confirm_password":"x","specialty":"Go","extended_bio":"Bio","experience_years":3}`,
			wantField: "birth_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, _ := newInstructorFixture(t)
			api.loginAs(uuid.New(), entity.RoleAdmin)

			rec := api.do(http.MethodPost, "/api/v1/admin/instructors", tt.body, true)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
			assert.Contains(t, errorFields(t, rec), tt.wantField)
		})
	}
}

func TestInstructorHandler_AdminRoutesRejectStudents(t *testing.T) {
	routes := []struct {
		method string
		path   string
		body   string
	}{
		{method: http.MethodPost, path: "/api/v1/admin/instructors", body: createInstructorBody},
		{method: http.MethodGet, path: "/api/v1/admin/instructors"},
		{method: http.MethodGet, path: "/api/v1/admin/instructors/7"},
		{method: http.MethodPatch, path: "/api/v1/admin/instructors/7", body: `{"specialty":"Go"}`},
		{method: http.MethodDelete, path: "/api/v1/admin/instructors/7"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			api, _ := newInstructorFixture(t)
			api.loginAs(uuid.New(), entity.RoleStudent)

			rec := api.do(rt.method, rt.path, rt.body, true)

			assert.Equal(t, http.StatusForbidden, rec.Code)
			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, "FORBIDDEN", env.Error.Code)
		})
	}
}

func TestInstructorHandler_AdminRoutesRequireToken(t *testing.T) {
	api, _ := newInstructorFixture(t)

	rec := api.do(http.MethodGet, "/api/v1/admin/instructors", "", false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInstructorHandler_UpdateInstructor(t *testing.T) {
	api, instructorUC := newInstructorFixture(t)
	api.loginAs(uuid.New(), entity.RoleAdmin)
	updated := sampleInstructor()
	updated.Specialty = "Cloud"

	instructorUC.EXPECT().UpdateInstructor(mock.Anything, mock.AnythingOfType("*usecase.Actor"), uint64(7),
		mock.MatchedBy(func(in *usecase.UpdateInstructorInput) bool {
			return in.Specialty != nil && *in.Specialty == "Cloud" && in.ExtendedBio == nil
		}),
	).Return(updated, nil)

	rec := api.do(http.MethodPatch, "/api/v1/admin/instructors/7", `{"specialty":"Cloud"}`, true)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Cloud", decodeData[InstructorResponse](t, rec).Specialty)
}

func TestInstructorHandler_DeactivateInstructor(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deactivated", wantStatus: http.StatusNoContent},
		{name: "unknown instructor", err: domainerrors.ErrInstructorNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, instructorUC := newInstructorFixture(t)
			api.loginAs(uuid.New(), entity.RoleAdmin)

			instructorUC.EXPECT().DeactivateInstructor(mock.Anything, mock.AnythingOfType("*usecase.Actor"), uint64(7)).Return(tt.err)

			rec := api.do(http.MethodDelete, "/api/v1/admin/instructors/7", "", true)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestInstructorHandler_PublicDirectory(t *testing.T) {
	t.Run("list hides user accounts", func(t *testing.T) {
		api, instructorUC := newInstructorFixture(t)

		instructorUC.EXPECT().ListPublicInstructors(mock.Anything).Return([]*entity.Instructor{sampleInstructor()}, nil)

		rec := api.do(http.MethodGet, "/api/v1/instructors", "", false)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), `"email"`)
		got := decodeData[[]InstructorResponse](t, rec)
		require.Len(t, got, 1)
		assert.Equal(t, "Luis Perez", got[0].FullName)
		assert.Nil(t, got[0].User)
	})

	t.Run("hidden instructor", func(t *testing.T) {
		api, instructorUC := newInstructorFixture(t)

		instructorUC.EXPECT().GetPublicInstructor(mock.Anything, uint64(2)).Return(nil, domainerrors.ErrInstructorNotFound)

		rec := api.do(http.MethodGet, "/api/v1/instructors/2", "", false)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non numeric id", func(t *testing.T) {
		api, _ := newInstructorFixture(t)

		rec := api.do(http.MethodGet, "/api/v1/instructors/abc", "", false)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, errorFields(t, rec), "id")
	})
}
