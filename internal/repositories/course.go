package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vmaslov2018/course-api/internal/logger"
	"github.com/vmaslov2018/course-api/internal/models"
)

// courseRow is the flat projection of a course joined with its owner.
type courseRow struct {
	CourseID       uuid.UUID `db:"course_id"`
	Title          string    `db:"title"`
	Description    string    `db:"description"`
	UserID         uuid.UUID `db:"user_id"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
	OwnerUserID    uuid.UUID `db:"owner_user_id"`
	OwnerFirstName string    `db:"owner_first_name"`
	OwnerLastName  string    `db:"owner_last_name"`
	OwnerEmail     string    `db:"owner_email"`
}

func (row courseRow) toModel() models.CourseWithOwner {
	return models.CourseWithOwner{
		CourseDB: models.CourseDB{
			CourseID:    row.CourseID,
			Title:       row.Title,
			Description: row.Description,
			UserID:      row.UserID,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		},
		Owner: models.CourseOwner{
			UserID:    row.OwnerUserID,
			FirstName: row.OwnerFirstName,
			LastName:  row.OwnerLastName,
			Email:     row.OwnerEmail,
		},
	}
}

const courseSelect = `
	SELECT c.course_id, c.title, c.description, c.user_id, c.created_at, c.updated_at,
	       u.user_id AS owner_user_id, u.first_name AS owner_first_name,
	       u.last_name AS owner_last_name, u.email AS owner_email
	FROM courses c
	JOIN users u ON u.user_id = c.user_id
`

// CourseReadRepository handles course read operations.
// Every read resolves the owning user in the same query.
type CourseReadRepository struct {
	db *sqlx.DB
}

func NewCourseReadRepository(db *sqlx.DB) *CourseReadRepository {
	return &CourseReadRepository{db: db}
}

// List returns all courses with their owners, oldest first.
func (r *CourseReadRepository) List(ctx context.Context) ([]models.CourseWithOwner, error) {
	query := courseSelect + ` ORDER BY c.created_at, c.course_id`

	var rows []courseRow
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Debugw("course list",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	courses := make([]models.CourseWithOwner, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, row.toModel())
	}
	return courses, nil
}

// GetByID returns the course with the given id and its owner,
// or (nil, nil) when no such course exists.
func (r *CourseReadRepository) GetByID(ctx context.Context, courseID uuid.UUID) (*models.CourseWithOwner, error) {
	query := courseSelect + ` WHERE c.course_id = $1`

	var row courseRow
	err := r.db.GetContext(ctx, &row, query, courseID)

	logger.Log.Debugw("course select",
		"query", strings.Join(strings.Fields(query), " "),
		"course_id", courseID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	course := row.toModel()
	return &course, nil
}

// CourseWriteRepository handles course write operations. When the request
// context carries a transaction (see middlewares.TxMiddleware), statements
// run on it; otherwise they run on the pool.
type CourseWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCourseWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CourseWriteRepository {
	return &CourseWriteRepository{db: db, txGetter: txGetter}
}

func (r *CourseWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new course under the given id.
func (r *CourseWriteRepository) Save(ctx context.Context, courseID uuid.UUID, title, description string, userID uuid.UUID) error {
	const query = `
		INSERT INTO courses (course_id, title, description, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, courseID, title, description, userID)

	logger.Log.Debugw("course insert",
		"query", strings.Join(strings.Fields(query), " "),
		"course_id", courseID,
		"user_id", userID,
		"error", err,
	)

	return err
}

// Update overwrites title, description and owner of an existing course.
// Returns the number of rows affected; zero means no such course.
func (r *CourseWriteRepository) Update(ctx context.Context, courseID uuid.UUID, title, description string, userID uuid.UUID) (int64, error) {
	const query = `
		UPDATE courses
		SET title = $2, description = $3, user_id = $4, updated_at = NOW()
		WHERE course_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, courseID, title, description, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("course update",
		"query", strings.Join(strings.Fields(query), " "),
		"course_id", courseID,
		"rows", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Delete removes a course. Returns the number of rows affected;
// zero means no such course.
func (r *CourseWriteRepository) Delete(ctx context.Context, courseID uuid.UUID) (int64, error) {
	const query = `DELETE FROM courses WHERE course_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, courseID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("course delete",
		"query", query,
		"course_id", courseID,
		"rows", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
