package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/vmaslov2018/course-api/internal/models"
)

// MessageResponse is the generic single-message body used for auth,
// not-found, conflict and internal errors
// swagger:model MessageResponse
type MessageResponse struct {
	// Message
	// default: Access Denied
	Message string `json:"message"`
}

// ValidationErrorResponse lists every violated field rule in one response
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	// Violation messages, in field order
	Errors []string `json:"errors"`
}

// CourseOwnerResponse is the owning user embedded in course responses.
// The password hash is never serialized.
// swagger:model CourseOwnerResponse
type CourseOwnerResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"emailAddress"`
}

// CourseResponse represents a course record with its owner
// swagger:model CourseResponse
type CourseResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	UserID      string              `json:"userId"`
	Owner       CourseOwnerResponse `json:"owner"`
}

func toCourseResponse(course models.CourseWithOwner) CourseResponse {
	return CourseResponse{
		ID:          course.CourseID.String(),
		Title:       course.Title,
		Description: course.Description,
		UserID:      course.UserID.String(),
		Owner: CourseOwnerResponse{
			ID:        course.Owner.UserID.String(),
			FirstName: course.Owner.FirstName,
			LastName:  course.Owner.LastName,
			Email:     course.Owner.Email,
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Internal server error"})
}
