package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"academia/internal/delivery/api/middleware"
	"academia/internal/delivery/api/response"
	"academia/internal/delivery/api/validator"
	"academia/internal/domain/entity"
	"academia/internal/domain/service"
	mockSvc "academia/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testToken = "test-access-token"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testAPI is an echo instance configured like the API server.
type testAPI struct {
	e      *echo.Echo
	tokens *mockSvc.MockTokenService
	auth   *middleware.AuthMiddleware
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	tokens := mockSvc.NewMockTokenService(t)

	return &testAPI{e: e, tokens: tokens, auth: middleware.NewAuthMiddleware(tokens)}
}

// loginAs makes testToken resolve to userID with the given roles.
func (a *testAPI) loginAs(userID uuid.UUID, roles ...entity.Role) {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.String())
	}
	a.tokens.EXPECT().ValidateToken(testToken).Return(&service.Claims{
		UserID:          userID,
		Roles:           names,
		ProfileComplete: true,
		Type:            service.TokenTypeAccess,
	}, nil).Maybe()
}

func (a *testAPI) do(method, target, body string, authenticated bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authenticated {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Meta  *response.MetaInfo  `json:"meta"`
	Error *response.ErrorInfo `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))

	return out
}

// errorFields returns the field map of a validation or request-shape error.
func errorFields(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error, rec.Body.String())
	details, ok := env.Error.Details.(map[string]any)
	require.True(t, ok, "error details missing: %s", rec.Body.String())
	fields, ok := details["fields"].(map[string]any)
	require.True(t, ok, "error fields missing: %s", rec.Body.String())

	return fields
}

func ptr[T any](v T) *T {
	return &v
}

