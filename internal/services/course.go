package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/vmaslov2018/course-api/internal/logger"
	"github.com/vmaslov2018/course-api/internal/models"
)

// ErrCourseNotFound is returned when the referenced course does not exist.
var ErrCourseNotFound = errors.New("course not found")

// CourseReader defines read operations for courses.
type CourseReader interface {
	List(ctx context.Context) ([]models.CourseWithOwner, error)
	GetByID(ctx context.Context, courseID uuid.UUID) (*models.CourseWithOwner, error)
}

// CourseWriter defines write operations for courses.
type CourseWriter interface {
	Save(ctx context.Context, courseID uuid.UUID, title, description string, userID uuid.UUID) error
	Update(ctx context.Context, courseID uuid.UUID, title, description string, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, courseID uuid.UUID) (int64, error)
}

// CourseCache is a read-side cache with explicit invalidation.
type CourseCache interface {
	GetByID(ctx context.Context, courseID uuid.UUID) (*models.CourseWithOwner, error)
	SetByID(ctx context.Context, course models.CourseWithOwner) error
	GetList(ctx context.Context) ([]models.CourseWithOwner, error)
	SetList(ctx context.Context, courses []models.CourseWithOwner) error
	Invalidate(ctx context.Context, courseID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// CourseService handles course CRUD, caching and event publishing.
type CourseService struct {
	readRepo    CourseReader
	writeRepo   CourseWriter
	cache       CourseCache
	kafkaWriter KafkaWriter
}

// NewCourseService creates a new CourseService. Both cache and kafkaWriter
// may be nil, which disables caching and event publishing respectively.
func NewCourseService(
	readRepo CourseReader,
	writeRepo CourseWriter,
	cache CourseCache,
	kafkaWriter KafkaWriter,
) *CourseService {
	return &CourseService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a course change event. Failures are logged and
// never fail the request.
func (s *CourseService) publishEvent(ctx context.Context, action string, courseID, userID uuid.UUID) {
	if s.kafkaWriter == nil {
		return
	}

	event := models.CourseEvent{
		EventID:   uuid.NewString(),
		Action:    action,
		CourseID:  courseID.String(),
		UserID:    userID.String(),
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal course event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.CourseID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish course event", "event_id", event.EventID, "action", action, "error", err)
	} else {
		logger.Log.Infow("course event published", "event_id", event.EventID, "action", action, "course_id", event.CourseID)
	}
}

// invalidateCache drops cache entries touched by a mutation.
func (s *CourseService) invalidateCache(ctx context.Context, courseID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, courseID); err != nil {
		logger.Log.Warnw("failed to invalidate course cache", "course_id", courseID, "error", err)
	}
}

// List returns all courses with their owners, served from cache when possible.
func (s *CourseService) List(ctx context.Context) ([]models.CourseWithOwner, error) {
	if s.cache != nil {
		if courses, err := s.cache.GetList(ctx); err == nil {
			return courses, nil
		}
	}

	courses, err := s.readRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list courses", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, courses); err != nil {
			logger.Log.Warnw("failed to cache course list", "error", err)
		}
	}

	return courses, nil
}

// Get returns the course with the given id, served from cache when possible.
func (s *CourseService) Get(ctx context.Context, courseID uuid.UUID) (*models.CourseWithOwner, error) {
	if s.cache != nil {
		if course, err := s.cache.GetByID(ctx, courseID); err == nil {
			return course, nil
		}
	}

	course, err := s.readRepo.GetByID(ctx, courseID)
	if err != nil {
		logger.Log.Errorw("failed to get course", "course_id", courseID, "error", err)
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	if s.cache != nil {
		if err := s.cache.SetByID(ctx, *course); err != nil {
			logger.Log.Warnw("failed to cache course", "course_id", courseID, "error", err)
		}
	}

	return course, nil
}

// Create persists a new course under a server-generated id and returns it.
func (s *CourseService) Create(ctx context.Context, title, description string, userID uuid.UUID) (uuid.UUID, error) {
	courseID := uuid.New()

	if err := s.writeRepo.Save(ctx, courseID, title, description, userID); err != nil {
		logger.Log.Errorw("failed to save course", "user_id", userID, "error", err)
		return uuid.Nil, err
	}

	s.invalidateCache(ctx, courseID)
	s.publishEvent(ctx, models.CourseCreated, courseID, userID)

	return courseID, nil
}

// Update overwrites an existing course's fields.
// Returns ErrCourseNotFound when the id matches no record.
func (s *CourseService) Update(ctx context.Context, courseID uuid.UUID, title, description string, userID uuid.UUID) error {
	rowsAffected, err := s.writeRepo.Update(ctx, courseID, title, description, userID)
	if err != nil {
		logger.Log.Errorw("failed to update course", "course_id", courseID, "error", err)
		return err
	}
	if rowsAffected == 0 {
		return ErrCourseNotFound
	}

	s.invalidateCache(ctx, courseID)
	s.publishEvent(ctx, models.CourseUpdated, courseID, userID)

	return nil
}

// Delete removes an existing course.
// Returns ErrCourseNotFound when the id matches no record.
func (s *CourseService) Delete(ctx context.Context, courseID uuid.UUID, actorID uuid.UUID) error {
	rowsAffected, err := s.writeRepo.Delete(ctx, courseID)
	if err != nil {
		logger.Log.Errorw("failed to delete course", "course_id", courseID, "error", err)
		return err
	}
	if rowsAffected == 0 {
		return ErrCourseNotFound
	}

	s.invalidateCache(ctx, courseID)
	s.publishEvent(ctx, models.CourseDeleted, courseID, actorID)

	return nil
}
