package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/vmaslov2018/course-api/internal/logger"
	"github.com/vmaslov2018/course-api/internal/models"
)

// ErrCacheMiss is returned when the requested key is not cached.
var ErrCacheMiss = errors.New("cache miss")

const courseListKey = "courses:all"

func courseKey(courseID uuid.UUID) string {
	return "course:" + courseID.String()
}

// CourseCacheRepository is a Redis read-side cache for course records.
// Postgres stays the source of truth: every mutation must invalidate the
// touched course key and the list key.
type CourseCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewCourseCacheRepository(client *redis.Client, expiration time.Duration) *CourseCacheRepository {
	return &CourseCacheRepository{client: client, exp: expiration}
}

// GetByID returns the cached course, or ErrCacheMiss.
func (r *CourseCacheRepository) GetByID(ctx context.Context, courseID uuid.UUID) (*models.CourseWithOwner, error) {
	key := courseKey(courseID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var course models.CourseWithOwner
	if err := json.Unmarshal([]byte(val), &course); err != nil {
		logger.Log.Warnw("corrupt cache entry", "key", key, "error", err)
		return nil, ErrCacheMiss
	}
	return &course, nil
}

// SetByID caches a single course for the configured TTL.
func (r *CourseCacheRepository) SetByID(ctx context.Context, course models.CourseWithOwner) error {
	data, err := json.Marshal(course)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, courseKey(course.CourseID), data, r.exp).Err()
}

// GetList returns the cached course list, or ErrCacheMiss.
func (r *CourseCacheRepository) GetList(ctx context.Context) ([]models.CourseWithOwner, error) {
	val, err := r.client.Get(ctx, courseListKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var courses []models.CourseWithOwner
	if err := json.Unmarshal([]byte(val), &courses); err != nil {
		logger.Log.Warnw("corrupt cache entry", "key", courseListKey, "error", err)
		return nil, ErrCacheMiss
	}
	return courses, nil
}

// SetList caches the full course list for the configured TTL.
func (r *CourseCacheRepository) SetList(ctx context.Context, courses []models.CourseWithOwner) error {
	data, err := json.Marshal(courses)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, courseListKey, data, r.exp).Err()
}

// Invalidate drops the cached course and the cached list after a mutation.
func (r *CourseCacheRepository) Invalidate(ctx context.Context, courseID uuid.UUID) error {
	return r.client.Del(ctx, courseKey(courseID), courseListKey).Err()
}
