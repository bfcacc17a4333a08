package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/vmaslov2018/course-api/internal/logger"
	"github.com/vmaslov2018/course-api/internal/validation"
)

// CourseCreator defines the interface that the service must implement.
type CourseCreator interface {
	Create(ctx context.Context, title, description string, userID uuid.UUID) (uuid.UUID, error)
}

// CreateCourseRequest represents the JSON body for course creation.
// swagger:model CreateCourseRequest
type CreateCourseRequest struct {
	// Title
	// required: true
	// default: Build a Basics Bookcase
	Title *string `json:"title" validate:"required"`

	// Description
	// required: true
	Description *string `json:"description" validate:"required"`

	// Id of the owning user
	// required: true
	UserID *string `json:"userId" errname:"userID" validate:"required"`
}

// NewCreateCourseHandler returns an HTTP handler for course creation.
// @Summary Create course
// @Description Creates a course owned by the given user and sets the Location header to the new course URI
// @Tags courses
// @Accept json
// @Produce json
// @Param createCourseRequest body handlers.CreateCourseRequest true "Course creation request"
// @Success 201 "Created, Location header set to /courses/{id}"
// @Failure 400 {object} handlers.ValidationErrorResponse "Missing fields"
// @Failure 401 {object} handlers.MessageResponse "Access denied"
// @Router /courses [post]
// @Security BasicAuth
func NewCreateCourseHandler(svc CourseCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCourseRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Errors: []string{"invalid request body"},
			})
			return
		}

		if messages := validation.CheckRequired(req); messages != nil {
			writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: messages})
			return
		}

		userID, err := uuid.Parse(*req.UserID)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Errors: []string{`Please provide a valid id for "userID"`},
			})
			return
		}

		courseID, err := svc.Create(r.Context(), *req.Title, *req.Description, userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "error", err)
			writeInternalError(w)
			return
		}

		w.Header().Set("Location", "/courses/"+courseID.String())
		w.WriteHeader(http.StatusCreated)
	}
}
