package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "academia/internal/delivery/context"
	domainerrors "academia/internal/domain/errors"
	"academia/internal/domain/repository"
	"academia/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-123")

	return c, rec
}

func TestNewPaginationInfo(t *testing.T) {
	tests := []struct {
		name  string
		page  repository.Pagination
		total int64
		want  PaginationInfo
	}{
		{
			name:  "partial last page",
			page:  repository.Pagination{Page: 2, PageSize: 5},
			total: 11,
			want:  PaginationInfo{Page: 2, PageSize: 5, Total: 11, TotalPages: 3},
		},
		{
			name:  "defaults applied",
			page:  repository.Pagination{},
			total: 40,
			want:  PaginationInfo{Page: 1, PageSize: repository.DefaultPageSize, Total: 40, TotalPages: 2},
		},
		{
			name:  "page size clamped",
			page:  repository.Pagination{Page: 1, PageSize: 1000},
			total: 250,
			want:  PaginationInfo{Page: 1, PageSize: repository.MaxPageSize, Total: 250, TotalPages: 3},
		},
		{
			name:  "empty result",
			page:  repository.Pagination{Page: 1, PageSize: 10},
			total: 0,
			want:  PaginationInfo{Page: 1, PageSize: 10, Total: 0, TotalPages: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, *NewPaginationInfo(tt.page, tt.total))
		})
	}
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"name": "Backend"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"name":"Backend"},"meta":{"request_id":"req-123"}}`, rec.Body.String())
}

func TestPaginated(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Paginated(c, []int{1, 2}, repository.Pagination{Page: 1, PageSize: 2}, 3))

	assert.JSONEq(t, `{
		"data": [1, 2],
		"meta": {
			"request_id": "req-123",
			"pagination": {"page": 1, "page_size": 2, "total": 3, "total_pages": 2}
		}
	}`, rec.Body.String())
}

func TestError_DetailsSuppression(t *testing.T) {
	details := map[string]string{"field": "title"}

	tests := []struct {
		status      int
		wantDetails bool
	}{
		{status: http.StatusBadRequest, wantDetails: true},
		{status: http.StatusUnprocessableEntity, wantDetails: true},
		{status: http.StatusUnauthorized, wantDetails: false},
		{status: http.StatusForbidden, wantDetails: false},
		{status: http.StatusServiceUnavailable, wantDetails: false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", details))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "req-123", body.Meta.RequestID)
			assert.Equal(t, tt.wantDetails, body.Error.Details != nil)
		})
	}
}

func TestHandleAppError(t *testing.T) {
	t.Run("client error is rendered", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, HandleAppError(c, errors.Wrap(domainerrors.ErrCategoryNotFound, "get category")))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"CATEGORY_NOT_FOUND"`)
	})

	t.Run("server error is passed on", func(t *testing.T) {
		c, rec := newContext()
		cause := errors.New("disk full")

		err := HandleAppError(c, cause)

		require.Error(t, err)
		assert.True(t, errors.Is(err, cause))
		assert.False(t, c.Response().Committed)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("transaction failure is passed on", func(t *testing.T) {
		c, _ := newContext()

		err := HandleAppError(c, domainerrors.ErrTransactionFailed)

		require.Error(t, err)
		assert.False(t, c.Response().Committed)
	})
}
