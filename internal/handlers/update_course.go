package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vmaslov2018/course-api/internal/logger"
	"github.com/vmaslov2018/course-api/internal/services"
	"github.com/vmaslov2018/course-api/internal/validation"
)

// CourseUpdater defines the interface that the service must implement.
type CourseUpdater interface {
	Update(ctx context.Context, courseID uuid.UUID, title, description string, userID uuid.UUID) error
}

// UpdateCourseRequest represents the JSON body for course updates.
// swagger:model UpdateCourseRequest
type UpdateCourseRequest struct {
	// Title
	// required: true
	Title *string `json:"title" validate:"required"`

	// Description
	// required: true
	Description *string `json:"description" validate:"required"`

	// Id of the owning user
	// required: true
	UserID *string `json:"userId" errname:"userID" validate:"required"`
}

// NewUpdateCourseHandler returns an HTTP handler for course updates.
// Validation failures short-circuit before any mutation.
// @Summary Update course
// @Description Overwrites title, description and owner of an existing course
// @Tags courses
// @Accept json
// @Param id path string true "Course id"
// @Param updateCourseRequest body handlers.UpdateCourseRequest true "Course update request"
// @Success 204 "Updated, no content"
// @Failure 400 {object} handlers.ValidationErrorResponse "Missing fields"
// @Failure 401 {object} handlers.MessageResponse "Access denied"
// @Failure 404 {object} handlers.MessageResponse "No such course"
// @Router /courses/{id} [put]
// @Security BasicAuth
func NewUpdateCourseHandler(svc CourseUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courseID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, MessageResponse{
				Message: "No courses found to Update",
			})
			return
		}

		var req UpdateCourseRequest
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

		if err := svc.Update(r.Context(), courseID, *req.Title, *req.Description, userID); err != nil {
			switch {
			case errors.Is(err, services.ErrCourseNotFound):
				writeJSON(w, http.StatusNotFound, MessageResponse{
					Message: "No courses found to Update",
				})
			default:
				logger.Log.Errorw("internal server error", "error", err)
				writeInternalError(w)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
