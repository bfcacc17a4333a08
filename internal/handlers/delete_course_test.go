package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/vmaslov2018/course-api/internal/middlewares"
	"github.com/vmaslov2018/course-api/internal/models"
	"github.com/vmaslov2018/course-api/internal/services"
)

func TestDeleteCourseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := &models.UserDB{UserID: uuid.New(), FirstName: "Joe", LastName: "Smith"}
	courseID := uuid.New()

	tests := []struct {
		name         string
		courseID     string
		withUser     bool
		mockSetup    func(m *MockCourseDeleter)
		expectedCode int
		expectedBody string
	}{
		{
			name:     "success",
			courseID: courseID.String(),
			withUser: true,
			mockSetup: func(m *MockCourseDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), courseID, actor.UserID).
					Return(nil)
			},
			expectedCode: 204,
		},
		{
			name:     "unknown id is 404",
			courseID: courseID.String(),
			withUser: true,
			mockSetup: func(m *MockCourseDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), courseID, actor.UserID).
					Return(services.ErrCourseNotFound)
			},
			expectedCode: 404,
			expectedBody: `{"message":"No courses found to Delete"}`,
		},
		{
			name:         "non-uuid id is 404 without a service call",
			courseID:     "not-a-uuid",
			withUser:     true,
			expectedCode: 404,
			expectedBody: `{"message":"No courses found to Delete"}`,
		},
		{
			name:         "access denied without a context user",
			courseID:     courseID.String(),
			withUser:     false,
			expectedCode: 401,
			expectedBody: `{"message":"Access Denied"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCourseDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Delete("/courses/{id}", NewDeleteCourseHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, "/courses/"+tt.courseID, nil)
			if tt.withUser {
				req = req.WithContext(middlewares.SetUserToContext(req.Context(), actor))
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			} else {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}
