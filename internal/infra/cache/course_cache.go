package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"academia/config"
	"academia/internal/domain/entity"
	"academia/internal/domain/service"
	"academia/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const courseKeyPrefix = "course:tree:"

// CourseCacheParams defines the dependencies of the course cache.
type CourseCacheParams struct {
	fx.In

	Client  *redis.Client
	Config  *config.Config
	Logger  *slog.Logger
	Metrics service.MetricsRecorder
}

type redisCourseCache struct {
	client  *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
	metrics service.MetricsRecorder
}

// NewCourseCache returns a Redis-backed course cache, or a no-op cache when Redis is disabled.
func NewCourseCache(params CourseCacheParams) service.CourseCache {
	if params.Client == nil {
		return noopCourseCache{}
	}

	return &redisCourseCache{
		client:  params.Client,
		ttl:     params.Config.Redis.CacheTTL,
		logger:  params.Logger,
		metrics: params.Metrics,
	}
}

func courseKey(id uuid.UUID) string {
	return courseKeyPrefix + id.String()
}

// Get returns the cached course tree or service.ErrCacheMiss.
func (c *redisCourseCache) Get(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	raw, err := c.client.Get(ctx, courseKey(id)).Bytes()
	if err != nil {
		c.metrics.CacheLookup(false)
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrCacheMiss
		}

		return nil, errors.Wrap(err, "failed to read course cache")
	}

	course, err := decodeCourse(raw)
	if err != nil {
		c.metrics.CacheLookup(false)
		c.logger.WarnContext(ctx, "Dropping undecodable course cache entry",
			slog.String("courseUUID", id.String()),
			slog.Any("error", err),
		)
		_ = c.client.Del(ctx, courseKey(id)).Err()

		return nil, service.ErrCacheMiss
	}
	c.metrics.CacheLookup(true)

	return course, nil
}

// Set stores the course tree under its UUID for the configured TTL.
func (c *redisCourseCache) Set(ctx context.Context, course *entity.Course) error {
	raw, err := json.Marshal(course)
	if err != nil {
		return errors.Wrap(err, "failed to encode course for cache")
	}

	if err := c.client.Set(ctx, courseKey(course.UUID), raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write course cache")
	}

	return nil
}

// Invalidate removes the cached tree of a course.
func (c *redisCourseCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, courseKey(id)).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate course cache")
	}

	return nil
}

func decodeCourse(raw []byte) (*entity.Course, error) {
	var course entity.Course
	if err := json.Unmarshal(raw, &course); err != nil {
		return nil, errors.WithStack(err)
	}

	return &course, nil
}

type noopCourseCache struct{}

func (noopCourseCache) Get(context.Context, uuid.UUID) (*entity.Course, error) {
	return nil, service.ErrCacheMiss
}

func (noopCourseCache) Set(context.Context, *entity.Course) error { return nil }

func (noopCourseCache) Invalidate(context.Context, uuid.UUID) error { return nil }
