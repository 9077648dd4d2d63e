package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"academia/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	t.Run("no new waits", func(t *testing.T) {
		_, _, waited := poolWait(prev, prev)

		assert.False(t, waited)
	})

	t.Run("short waits are debug", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond}

		level, attrs, waited := poolWait(prev, cur)

		assert.True(t, waited)
		assert.Equal(t, slog.LevelDebug, level)
		assert.Contains(t, attrs, slog.Duration("avg_wait", 5*time.Millisecond))
	})

	t.Run("long waits warn", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 11, WaitDuration: time.Second + 80*time.Millisecond, MaxOpenConnections: 10, InUse: 10}

		level, attrs, waited := poolWait(prev, cur)

		assert.True(t, waited)
		assert.Equal(t, slog.LevelWarn, level)
		assert.Contains(t, attrs, slog.Int("in_use", 10))
	})
}

func TestConstraintViolations(t *testing.T) {
	orderClash := errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintLessonsModuleOrder}, "insert lesson")

	assert.True(t, isUniqueConstraintViolation(orderClash))
	assert.Equal(t, constraintLessonsModuleOrder, violatedConstraint(orderClash))

	missingCategory := &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: constraintCoursesCategory}
	assert.True(t, isForeignKeyConstraintViolation(missingCategory))
	assert.False(t, isUniqueConstraintViolation(missingCategory))

	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.Empty(t, violatedConstraint(gorm.ErrDuplicatedKey))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgNotNullViolation}))

	_, ok := asConstraintViolation(errors.New("timeout"))
	assert.False(t, ok)
}
