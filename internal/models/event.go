package models

// Course change event actions published to Kafka.
const (
	CourseCreated = "course.created"
	CourseUpdated = "course.updated"
	CourseDeleted = "course.deleted"
)

// CourseEvent is the message published for every course mutation.
type CourseEvent struct {
	EventID   string `json:"event_id"`
	Action    string `json:"action"`
	CourseID  string `json:"course_id"`
	UserID    string `json:"user_id"` // owning user at the time of the mutation
	Timestamp int64  `json:"timestamp"`
}
