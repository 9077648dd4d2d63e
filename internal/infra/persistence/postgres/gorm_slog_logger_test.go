package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"academia/config"
	deliverycontext "academia/internal/delivery/context"
	"academia/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var record map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &record))

	return record
}

func sqlFn() (string, int64) {
	return `INSERT INTO "modules" ...`, 0
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		elapsed   time.Duration
		wantLevel string
		wantMsg   string
		wantNone  bool
	}{
		{
			name:      "duplicate module order",
			err:       &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintModulesCourseOrder},
			wantLevel: "WARN",
			wantMsg:   "GORM constraint violated",
		},
		{
			name:      "driver failure",
			err:       errors.New("conn closed"),
			wantLevel: "ERROR",
			wantMsg:   "GORM query failed",
		},
		{
			name:     "missing row",
			err:      gorm.ErrRecordNotFound,
			wantNone: true,
		},
		{
			name:      "slow query",
			elapsed:   time.Second,
			wantLevel: "WARN",
			wantMsg:   "GORM slow query",
		},
		{
			name:     "fast query outside debug",
			wantNone: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, buf := captureLogger()
			cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: 200 * time.Millisecond}}
			l := newGormSlogLogger(base, cfg)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn, tt.err)

			if tt.wantNone {
				assert.Empty(t, buf.String())

				return
			}
			record := lastRecord(t, buf)
			assert.Equal(t, tt.wantLevel, record["level"])
			assert.Equal(t, tt.wantMsg, record["msg"])
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	base, buf := captureLogger()
	l := newGormSlogLogger(base, &config.Config{}).LogMode(logger.Info)
	ctx, _ := deliverycontext.WithRequestScope(context.Background(), base, "req-9")

	l.Trace(ctx, time.Now(), sqlFn, nil)

	record := lastRecord(t, buf)
	assert.Equal(t, "GORM query", record["msg"])
	assert.Equal(t, "req-9", record["request_id"])
}
