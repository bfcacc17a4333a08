package handlers

import (
	"context"
	"net/http"

	"github.com/vmaslov2018/course-api/internal/logger"
	"github.com/vmaslov2018/course-api/internal/models"
)

// CourseLister defines the interface that the service must implement.
type CourseLister interface {
	List(ctx context.Context) ([]models.CourseWithOwner, error)
}

// NewListCoursesHandler returns an HTTP handler listing all courses.
// @Summary List courses
// @Description Returns every course, each with its owning user
// @Tags courses
// @Produce json
// @Success 200 {array} handlers.CourseResponse "Course list"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /courses [get]
func NewListCoursesHandler(svc CourseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courses, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "error", err)
			writeInternalError(w)
			return
		}

		resp := make([]CourseResponse, 0, len(courses))
		for _, course := range courses {
			resp = append(resp, toCourseResponse(course))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
