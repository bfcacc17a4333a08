package models

import (
	"time"

	"github.com/google/uuid"
)

// CourseDB represents a course record in the database.
// UserID references the owning user; ownership is by foreign key.
type CourseDB struct {
	CourseID    uuid.UUID `db:"course_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	UserID      uuid.UUID `db:"user_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// CourseOwner is the subset of the owning user joined into course reads.
// The password hash is deliberately not part of this projection.
type CourseOwner struct {
	UserID    uuid.UUID `db:"owner_user_id"`
	FirstName string    `db:"owner_first_name"`
	LastName  string    `db:"owner_last_name"`
	Email     string    `db:"owner_email"`
}

// CourseWithOwner is a course record with its owning user resolved at query time.
type CourseWithOwner struct {
	CourseDB
	Owner CourseOwner
}
