package handler

import (
	"context"
	"net/http"
	"testing"

	"academia/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthBody struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

func TestHealthHandler_HealthCheck(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		checks     map[string]healthCheck
		wantStatus int
		want       healthBody
	}{
		{
			name:       "all dependencies up",
			checks:     map[string]healthCheck{"postgres": up, "redis": up},
			wantStatus: http.StatusOK,
			want:       healthBody{Status: "ok", Components: map[string]string{"postgres": "up", "redis": "up"}},
		},
		{
			name:       "redis down",
			checks:     map[string]healthCheck{"postgres": up, "redis": down},
			wantStatus: http.StatusServiceUnavailable,
			want:       healthBody{Status: "degraded", Components: map[string]string{"postgres": "up", "redis": "down"}},
		},
		{
			name:       "nothing configured",
			checks:     map[string]healthCheck{},
			wantStatus: http.StatusOK,
			want:       healthBody{Status: "ok", Components: map[string]string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			h := &HealthHandler{checks: tt.checks, logger: newDiscardLogger()}
			api.e.GET("/health", h.HealthCheck)

			rec := api.do(http.MethodGet, "/health", "", false)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.want, decodeData[healthBody](t, rec))
		})
	}
}

func TestNewHealthHandler_SkipsMissingStores(t *testing.T) {
	h := NewHealthHandler(HealthHandlerParams{Logger: newDiscardLogger()})

	assert.Empty(t, h.checks)
}
