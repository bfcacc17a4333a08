package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/vmaslov2018/course-api/internal/models"
)

func newTestCourse(title string) models.CourseWithOwner {
	return models.CourseWithOwner{
		CourseDB: models.CourseDB{
			CourseID:    uuid.New(),
			Title:       title,
			Description: "A course about " + title,
			UserID:      uuid.New(),
		},
		Owner: models.CourseOwner{
			UserID:    uuid.New(),
			FirstName: "Joe",
			LastName:  "Smith",
			Email:     "joe@example.com",
		},
	}
}

func TestListCoursesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns all courses with owners", func(t *testing.T) {
		courses := []models.CourseWithOwner{newTestCourse("Go"), newTestCourse("SQL")}

		mockSvc := NewMockCourseLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return(courses, nil)

		handler := NewListCoursesHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/courses", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []CourseResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
		assert.Equal(t, "Go", resp[0].Title)
		assert.Equal(t, courses[0].CourseID.String(), resp[0].ID)
		assert.Equal(t, "joe@example.com", resp[0].Owner.Email)
	})

	t.Run("empty collection serializes as an empty array", func(t *testing.T) {
		mockSvc := NewMockCourseLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, nil)

		handler := NewListCoursesHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/courses", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockCourseLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("database failure"))

		handler := NewListCoursesHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/courses", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"message":"Internal server error"}`, rr.Body.String())
	})
}
