package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"academia/internal/domain/entity"
	"academia/internal/domain/service"
	"academia/internal/errors"
	mockSvc "academia/internal/mocks/service"
	"academia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(e *echo.Echo, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(tokens *mockSvc.MockTokenService)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			setup:      func(*mockSvc.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "MISSING_TOKEN",
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			setup:      func(*mockSvc.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "expired token",
			header: "Bearer expired",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "refresh token used as access token",
			header: "Bearer refresh",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateToken("refresh").Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "no subject",
			header: "Bearer anonymous",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateToken("anonymous").Return(&service.Claims{Type: service.TokenTypeAccess}, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "valid access token",
			header: "Bearer good",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateToken("good").Return(&service.Claims{
					UserID:          userID,
					Roles:           []string{"student", "admin"},
					ProfileComplete: true,
					Type:            service.TokenTypeAccess,
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			tt.setup(tokens)
			auth := NewAuthMiddleware(tokens)

			var actor *usecase.Actor
			var complete bool
			e := echo.New()
			e.GET("/protected", func(c echo.Context) error {
				actor = GetActor(c)
				complete = IsProfileComplete(c)

				return c.NoContent(http.StatusOK)
			}, auth.Authenticate)

			rec := serve(e, tt.header)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), `"code":"`+tt.wantCode+`"`)
				assert.Nil(t, actor)

				return
			}
			require.NotNil(t, actor)
			assert.Equal(t, userID, actor.UserID)
			assert.True(t, actor.Roles.Contains(entity.RoleAdmin))
			assert.True(t, complete)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name       string
		roles      []string
		wantStatus int
	}{
		{name: "admin passes", roles: []string{"admin"}, wantStatus: http.StatusOK},
		{name: "one of several roles", roles: []string{"student", "admin"}, wantStatus: http.StatusOK},
		{name: "student rejected", roles: []string{"student"}, wantStatus: http.StatusForbidden},
		{name: "no roles", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			tokens.EXPECT().ValidateToken("good").Return(&service.Claims{
				UserID: uuid.New(),
				Roles:  tt.roles,
				Type:   service.TokenTypeAccess,
			}, nil)
			auth := NewAuthMiddleware(tokens)

			e := echo.New()
			e.GET("/protected", func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}, auth.Authenticate, auth.RequireRole(entity.RoleAdmin))

			rec := serve(e, "Bearer good")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_RequireRoleWithoutAuthenticate(t *testing.T) {
	auth := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, auth.RequireRole(entity.RoleAdmin))

	rec := serve(e, "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "role information missing")
}

func TestGetActor_Anonymous(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Nil(t, GetActor(c))
	_, ok := GetUserID(c)
	assert.False(t, ok)
}
