package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateCourseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	courseID := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *MockCourseCreator)
		expectedCode   int
		expectedBody   string
		expectLocation string
	}{
		{
			name: "success",
			body: `{"title":"Go","description":"Learn Go","userId":"` + ownerID.String() + `"}`,
			mockSetup: func(m *MockCourseCreator) {
				m.EXPECT().
					Create(gomock.Any(), "Go", "Learn Go", ownerID).
					Return(courseID, nil)
			},
			expectedCode:   201,
			expectLocation: "/courses/" + courseID.String(),
		},
		{
			name:         "all fields missing",
			body:         `{}`,
			expectedCode: 400,
			expectedBody: `{"errors":["Please provide a value for \"title\"","Please provide a value for \"description\"","Please provide a value for \"userID\""]}`,
		},
		{
			name:         "missing userId only",
			body:         `{"title":"Go","description":"Learn Go"}`,
			expectedCode: 400,
			expectedBody: `{"errors":["Please provide a value for \"userID\""]}`,
		},
		{
			name:         "userId present but not an id",
			body:         `{"title":"Go","description":"Learn Go","userId":"42"}`,
			expectedCode: 400,
			expectedBody: `{"errors":["Please provide a valid id for \"userID\""]}`,
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: 400,
			expectedBody: `{"errors":["invalid request body"]}`,
		},
		{
			name: "internal server error",
			body: `{"title":"Go","description":"Learn Go","userId":"` + ownerID.String() + `"}`,
			mockSetup: func(m *MockCourseCreator) {
				m.EXPECT().
					Create(gomock.Any(), "Go", "Learn Go", ownerID).
					Return(uuid.Nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCourseCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateCourseHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/courses", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			} else {
				assert.Empty(t, rr.Body.String())
			}
			if tt.expectLocation != "" {
				assert.Equal(t, tt.expectLocation, rr.Header().Get("Location"))
			}
		})
	}
}
