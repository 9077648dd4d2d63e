package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"academia/config"
	"academia/internal/domain/entity"
	"academia/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourseCache_WithoutClientIsNoop(t *testing.T) {
	cache := NewCourseCache(CourseCacheParams{
		Config: &config.Config{Redis: &config.RedisConfig{}},
		Logger: slog.Default(),
	})

	id := uuid.New()
	_, err := cache.Get(context.Background(), id)
	assert.ErrorIs(t, err, service.ErrCacheMiss)
	assert.NoError(t, cache.Set(context.Background(), &entity.Course{UUID: id}))
	assert.NoError(t, cache.Invalidate(context.Background(), id))
}

func TestCourseKey(t *testing.T) {
	id := uuid.MustParse("0b7e2f5c-6a43-4b8e-9f3e-0d5d2c8d9a11")

	assert.Equal(t, "course:tree:0b7e2f5c-6a43-4b8e-9f3e-0d5d2c8d9a11", courseKey(id))
}

func TestDecodeCourse_KeepsTree(t *testing.T) {
	rating := decimal.RequireFromString("4.50")
	course := &entity.Course{
		UUID:   uuid.New(),
		Title:  "Go in practice",
		Price:  decimal.RequireFromString("19.90"),
		Rating: &rating,
		Modules: []*entity.Module{
			{Title: "Basics", Order: 1, Active: true, Lessons: []*entity.Lesson{
				{Title: "Hello", ContentType: entity.ContentTypeText, Order: 1, Active: true},
			}},
		},
	}
	raw, err := json.Marshal(course)
	require.NoError(t, err)

	decoded, err := decodeCourse(raw)
	require.NoError(t, err)

	assert.Equal(t, course.UUID, decoded.UUID)
	assert.True(t, course.Price.Equal(decoded.Price))
	require.NotNil(t, decoded.Rating)
	assert.True(t, rating.Equal(*decoded.Rating))
	require.Len(t, decoded.Modules, 1)
	assert.Equal(t, 1, decoded.TotalLessons())
}

func TestDecodeCourse_RejectsGarbage(t *testing.T) {
	_, err := decodeCourse([]byte("{not json"))
	assert.Error(t, err)
}
