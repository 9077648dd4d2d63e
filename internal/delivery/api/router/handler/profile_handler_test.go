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

func newProfileFixture(t *testing.T) (*testAPI, *mockUC.MockProfileUsecase, uuid.UUID) {
	t.Helper()

	api := newTestAPI(t)
	profileUC := mockUC.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Logger: newDiscardLogger()})

	users := api.e.Group("/api/v1/users", api.auth.Authenticate)
	users.GET("/me", h.GetProfile)
	users.PATCH("/me", h.UpdateProfile)
	users.GET("/me/complete-profile", h.GetCompleteProfile)
	users.PUT("/me/complete-profile", h.CompleteProfile)
	users.PATCH("/me/complete-profile", h.CompleteProfile)
	users.GET("/me/profile-status", h.ProfileStatus)
	users.GET("/handle-availability", h.HandleAvailability)

	userID := uuid.New()
	api.loginAs(userID, entity.RoleStudent)

	return api, profileUC, userID
}

func TestProfileHandler_CompleteProfile(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		wantPartial bool
	}{
		{name: "put completes every field", method: http.MethodPut, wantPartial: false},
		{name: "patch completes some fields", method: http.MethodPatch, wantPartial: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, profileUC, userID := newProfileFixture(t)
			user := &entity.User{ID: userID, Handle: "ana.lopez", ProfileComplete: !tt.wantPartial}

			profileUC.EXPECT().CompleteProfile(mock.Anything, userID, mock.MatchedBy(func(in *usecase.CompleteProfileInput) bool {
				return *in.FirstName == "Ana" &&
					in.BirthDate != nil && in.BirthDate.Equal(time.Date(1995, time.March, 4, 0, 0, 0, 0, time.UTC)) &&
					*in.Biography == "Backend developer"
			}), tt.wantPartial).Return(user, nil)

			rec := api.do(tt.method, "/api/v1/users/me/complete-profile",
				`{"first_name":"Ana","birth_date":"1995-03-04","biography":"Backend developer"}`, true)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			got := decodeData[map[string]any](t, rec)
			if tt.wantPartial {
				assert.Equal(t, usecase.NextStepCompleteProfile, got["next_step"])
			} else {
				assert.Nil(t, got["next_step"])
			}
		})
	}
}

func TestProfileHandler_CompleteProfile_BadDate(t *testing.T) {
	api, _, _ := newProfileFixture(t)

	rec := api.do(http.MethodPut, "/api/v1/users/me/complete-profile", `{"birth_date":"04/03/1995"}`, true)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, errorFields(t, rec), "birth_date")
}

func TestProfileHandler_CompleteProfile_AlreadyComplete(t *testing.T) {
	api, profileUC, userID := newProfileFixture(t)

	profileUC.EXPECT().CompleteProfile(mock.Anything, userID, mock.Anything, false).Return(nil, domainerrors.ErrProfileAlreadyComplete)

	rec := api.do(http.MethodPut, "/api/v1/users/me/complete-profile", `{"first_name":"Ana"}`, true)

	assert.Equal(t, domainerrors.ErrProfileAlreadyComplete.HTTPCode(), rec.Code)
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	api, profileUC, userID := newProfileFixture(t)

	profileUC.EXPECT().UpdateProfile(mock.Anything, userID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
		return in.FirstName == nil && *in.Country == "MX" && *in.Phone == "+525512345678"
	})).Return(&entity.User{ID: userID, Country: "MX"}, nil)

	rec := api.do(http.MethodPatch, "/api/v1/users/me", `{"country":"MX","phone":"+525512345678","handle":"ignored"}`, true)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "MX", decodeData[UserResponse](t, rec).Country)
}

func TestProfileHandler_ProfileStatus(t *testing.T) {
	api, profileUC, userID := newProfileFixture(t)

	profileUC.EXPECT().ProfileStatus(mock.Anything, userID).Return(&usecase.ProfileStatusOutput{
		MissingFields:   []string{"first_name", "birth_date"},
		NextStep:        usecase.NextStepCompleteProfile,
		SuggestedHandle: "ana.lopez",
	}, nil)

	rec := api.do(http.MethodGet, "/api/v1/users/me/profile-status", "", true)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeData[ProfileStatusResponse](t, rec)
	assert.False(t, got.ProfileComplete)
	assert.Equal(t, []string{"first_name", "birth_date"}, got.MissingFields)
	require.NotNil(t, got.SuggestedHandle)
	assert.Equal(t, "ana.lopez", *got.SuggestedHandle)
	assert.Nil(t, got.InstructorProfileComplete)
}

func TestProfileHandler_GetCompleteProfile(t *testing.T) {
	api, profileUC, userID := newProfileFixture(t)

	profileUC.EXPECT().GetProfile(mock.Anything, userID).Return(&entity.User{ID: userID, ProfileComplete: true}, nil)
	profileUC.EXPECT().ProfileStatus(mock.Anything, userID).Return(&usecase.ProfileStatusOutput{ProfileComplete: true}, nil)

	rec := api.do(http.MethodGet, "/api/v1/users/me/complete-profile", "", true)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeData[map[string]map[string]any](t, rec)
	assert.Equal(t, true, got["profile_status"]["profile_complete"])
	assert.Equal(t, []any{}, got["profile_status"]["missing_fields"])
	assert.Nil(t, got["profile_status"]["next_step"])
}

func TestProfileHandler_HandleAvailability(t *testing.T) {
	api, profileUC, userID := newProfileFixture(t)

	profileUC.EXPECT().CheckHandleAvailability(mock.Anything, userID, "ana.lopez").
		Return(&usecase.HandleAvailabilityOutput{Handle: "ana.lopez", Available: false, Message: "Handle is already taken"}, nil)

	rec := api.do(http.MethodGet, "/api/v1/users/handle-availability?handle=ana.lopez", "", true)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeData[map[string]any](t, rec)
	assert.Equal(t, false, got["available"])
}

func TestProfileHandler_RequiresToken(t *testing.T) {
	api, _, _ := newProfileFixture(t)

	rec := api.do(http.MethodGet, "/api/v1/users/me", "", false)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", decodeEnvelope(t, rec).Error.Code)
}
