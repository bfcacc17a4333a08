package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vmaslov2018/course-api/internal/logger"
	"github.com/vmaslov2018/course-api/internal/middlewares"
	"github.com/vmaslov2018/course-api/internal/services"
)

// CourseDeleter defines the interface that the service must implement.
type CourseDeleter interface {
	Delete(ctx context.Context, courseID uuid.UUID, actorID uuid.UUID) error
}

// NewDeleteCourseHandler returns an HTTP handler for course deletion.
// @Summary Delete course
// @Description Removes the course with the given id
// @Tags courses
// @Param id path string true "Course id"
// @Success 204 "Deleted, no content"
// @Failure 401 {object} handlers.MessageResponse "Access denied"
// @Failure 404 {object} handlers.MessageResponse "No such course"
// @Router /courses/{id} [delete]
// @Security BasicAuth
func NewDeleteCourseHandler(svc CourseDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			writeJSON(w, http.StatusUnauthorized, MessageResponse{Message: "Access Denied"})
			return
		}

		courseID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, MessageResponse{
				Message: "No courses found to Delete",
			})
			return
		}

		if err := svc.Delete(r.Context(), courseID, user.UserID); err != nil {
			switch {
			case errors.Is(err, services.ErrCourseNotFound):
				writeJSON(w, http.StatusNotFound, MessageResponse{
					Message: "No courses found to Delete",
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
