package handler

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"academia/internal/domain/entity"
	domainerrors "academia/internal/domain/errors"
	mockUC "academia/internal/mocks/usecase"
	"academia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	api       *testAPI
	userUC    *mockUC.MockUserUsecase
	sessionUC *mockUC.MockSessionUsecase
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	f := &authFixture{
		api:       newTestAPI(t),
		userUC:    mockUC.NewMockUserUsecase(t),
		sessionUC: mockUC.NewMockSessionUsecase(t),
	}
	h := NewAuthHandler(AuthHandlerParams{UserUC: f.userUC, SessionUC: f.sessionUC, Logger: newDiscardLogger()})

	auth := f.api.e.Group("/api/v1/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/refresh", h.RefreshToken)
	auth.POST("/logout", h.Logout)
	auth.GET("/email-exists", h.EmailExists)
	auth.GET("/sessions", h.GetSessions, f.api.auth.Authenticate)
	auth.DELETE("/sessions/:id", h.RevokeSession, f.api.auth.Authenticate)
	auth.POST("/logout-all", h.LogoutAll, f.api.auth.Authenticate)

	return f
}

func TestAuthHandler_Register(t *testing.T) {
	f := newAuthFixture(t)
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", Role: entity.RoleStudent, Active: true}

	f.userUC.EXPECT().RegisterStep1(mock.Anything, &usecase.RegisterStep1Input{
		Email:           "ana@example.com",
		Password:        "Str0ng!pass",
		ConfirmPassword: "Str0ng!pass",
	}).Return(&usecase.RegisterOutput{User: user, NextStep: usecase.NextStepCompleteProfile}, nil)

	rec := f.api.do(http.MethodPost, "/api/v1/auth/register",
		`{"email":"ana@example.com","password":"Str0ng!pass","confirm_password":"Str0ng!pass"}`, false)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	got := decodeData[map[string]any](t, rec)
	assert.Equal(t, usecase.NextStepCompleteProfile, got["next_step"])
	assert.Equal(t, user.ID.String(), got["user"].(map[string]any)["id"])
}

func TestAuthHandler_Register_Errors(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		f := newAuthFixture(t)

		rec := f.api.do(http.MethodPost, "/api/v1/auth/register", `{"email":"nope","password":"x","confirm_password":"x"}`, false)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, errorFields(t, rec), "email")
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userUC.EXPECT().RegisterStep1(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmailAlreadyExists)

		rec := f.api.do(http.MethodPost, "/api/v1/auth/register",
			`{"email":"ana@example.com","password":"Str0ng!pass","confirm_password":"Str0ng!pass"}`, false)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "EMAIL_ALREADY_EXISTS", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	longAgent := strings.Repeat("a", 300)

	tests := []struct {
		name       string
		body       string
		wantDevice string
	}{
		{name: "explicit device", body: `{"email":"ana@example.com","password":"pw","device_info":"laptop"}`, wantDevice: "laptop"},
		{name: "user agent fallback is truncated", body: `{"email":"ana@example.com","password":"pw"}`, wantDevice: longAgent[:maxDeviceInfoLength]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			user := &entity.User{ID: uuid.New(), Email: "ana@example.com", ProfileComplete: true}

			f.userUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{
				Email:      "ana@example.com",
				Password:   "pw",
				DeviceInfo: tt.wantDevice,
			}).Return(&usecase.LoginOutput{AccessToken: "access", RefreshToken: "refresh", User: user}, nil)

			f.api.e.Pre(func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					c.Request().Header.Set("User-Agent", longAgent)

					return next(c)
				}
			})
			rec := f.api.do(http.MethodPost, "/api/v1/auth/login", tt.body, false)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			got := decodeData[TokenResponse](t, rec)
			assert.Equal(t, "Bearer", got.TokenType)
			assert.Equal(t, "access", got.AccessToken)
			assert.Empty(t, got.NextStep)
		})
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	f := newAuthFixture(t)

	f.userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := f.api.do(http.MethodPost, "/api/v1/auth/login", `{"email":"ana@example.com","password":"bad"}`, false)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestAuthHandler_RefreshAndLogout(t *testing.T) {
	f := newAuthFixture(t)

	f.userUC.EXPECT().RefreshToken(mock.Anything, &usecase.RefreshTokenInput{RefreshToken: "old"}).
		Return(&usecase.RefreshTokenOutput{AccessToken: "a2", RefreshToken: "r2"}, nil)
	f.userUC.EXPECT().Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "r2"}).Return(nil)

	rec := f.api.do(http.MethodPost, "/api/v1/auth/refresh", `{"refresh_token":"old"}`, false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "r2", decodeData[TokenResponse](t, rec).RefreshToken)

	rec = f.api.do(http.MethodPost, "/api/v1/auth/logout", `{"refresh_token":"r2"}`, false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.api.do(http.MethodPost, "/api/v1/auth/logout", `{}`, false)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, errorFields(t, rec), "refresh_token")
}

func TestAuthHandler_EmailExists(t *testing.T) {
	t.Run("normalizes the echoed email", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userUC.EXPECT().CheckEmailExists(mock.Anything, "Ana@Example.com").Return(true, nil)

		rec := f.api.do(http.MethodGet, "/api/v1/auth/email-exists?email=Ana@Example.com", "", false)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		got := decodeData[map[string]any](t, rec)
		assert.Equal(t, "ana@example.com", got["email"])
		assert.Equal(t, true, got["exists"])
	})

	t.Run("missing email is a shape error", func(t *testing.T) {
		f := newAuthFixture(t)

		rec := f.api.do(http.MethodGet, "/api/v1/auth/email-exists", "", false)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorFields(t, rec), "email")
	})
}

func TestAuthHandler_Sessions(t *testing.T) {
	userID := uuid.New()
	sessionID := uuid.New()

	t.Run("list", func(t *testing.T) {
		f := newAuthFixture(t)
		f.api.loginAs(userID, entity.RoleStudent)

		f.sessionUC.EXPECT().GetActiveSessions(mock.Anything, userID).Return([]*entity.RefreshToken{
			{ID: sessionID, UserID: userID, DeviceInfo: "laptop", ExpiresAt: time.Now().Add(time.Hour)},
		}, nil)

		rec := f.api.do(http.MethodGet, "/api/v1/auth/sessions", "", true)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		got := decodeData[[]SessionResponse](t, rec)
		require.Len(t, got, 1)
		assert.Equal(t, sessionID, got[0].ID)
	})

	t.Run("revoke foreign session is not found", func(t *testing.T) {
		f := newAuthFixture(t)
		f.api.loginAs(userID, entity.RoleStudent)

		f.sessionUC.EXPECT().RevokeSession(mock.Anything, userID, sessionID).Return(domainerrors.ErrNotFound)

		rec := f.api.do(http.MethodDelete, "/api/v1/auth/sessions/"+sessionID.String(), "", true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("logout all", func(t *testing.T) {
		f := newAuthFixture(t)
		f.api.loginAs(userID, entity.RoleStudent)

		f.sessionUC.EXPECT().RevokeAllSessions(mock.Anything, userID).Return(nil)

		rec := f.api.do(http.MethodPost, "/api/v1/auth/logout-all", "", true)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		f := newAuthFixture(t)

		rec := f.api.do(http.MethodGet, "/api/v1/auth/sessions", "", false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
