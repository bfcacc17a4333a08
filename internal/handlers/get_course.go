package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vmaslov2018/course-api/internal/logger"
	"github.com/vmaslov2018/course-api/internal/models"
	"github.com/vmaslov2018/course-api/internal/services"
)

// CourseGetter defines the interface that the service must implement.
type CourseGetter interface {
	Get(ctx context.Context, courseID uuid.UUID) (*models.CourseWithOwner, error)
}

// NewGetCourseHandler returns an HTTP handler reading a single course.
// @Summary Get course by id
// @Description Returns the course with the given id, with its owning user
// @Tags courses
// @Produce json
// @Param id path string true "Course id"
// @Success 200 {object} handlers.CourseResponse "Course"
// @Failure 404 {object} handlers.MessageResponse "No such course"
// @Router /courses/{id} [get]
func NewGetCourseHandler(svc CourseGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// A non-UUID id cannot match any record.
		courseID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, MessageResponse{
				Message: "There is no course associated with this id",
			})
			return
		}

		course, err := svc.Get(r.Context(), courseID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCourseNotFound):
				writeJSON(w, http.StatusNotFound, MessageResponse{
					Message: "There is no course associated with this id",
				})
			default:
				logger.Log.Errorw("internal server error", "error", err)
				writeInternalError(w)
			}
			return
		}

		writeJSON(w, http.StatusOK, toCourseResponse(*course))
	}
}
