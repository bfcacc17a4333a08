package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/vmaslov2018/course-api/internal/services"
)

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *MockUserCreator)
		expectedCode   int
		expectedBody   string
		expectLocation string
	}{
		{
			name: "success",
			body: `{"firstName":"Joe","lastName":"Smith","emailAddress":"joe@example.com","password":"secret"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Register(gomock.Any(), "Joe", "Smith", "joe@example.com", "secret").
					Return(nil)
			},
			expectedCode:   201,
			expectLocation: "/",
		},
		{
			name:         "missing single field",
			body:         `{"firstName":"Joe","lastName":"Smith","password":"secret"}`,
			expectedCode: 400,
			expectedBody: `{"errors":["Please provide a value for \"email\""]}`,
		},
		{
			name:         "empty body lists every missing field",
			body:         "",
			expectedCode: 400,
			expectedBody: `{"errors":["Please provide a value for \"firstName\"","Please provide a value for \"lastName\"","Please provide a value for \"email\"","Please provide a value for \"password\""]}`,
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: 400,
			expectedBody: `{"errors":["invalid request body"]}`,
		},
		{
			name: "duplicate email",
			body: `{"firstName":"Joe","lastName":"Smith","emailAddress":"joe@example.com","password":"secret"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Register(gomock.Any(), "Joe", "Smith", "joe@example.com", "secret").
					Return(services.ErrEmailAlreadyExists)
			},
			expectedCode: 400,
			expectedBody: `{"message":"This email is already in use"}`,
		},
		{
			name: "internal server error",
			body: `{"firstName":"Joe","lastName":"Smith","emailAddress":"joe@example.com","password":"secret"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Register(gomock.Any(), "Joe", "Smith", "joe@example.com", "secret").
					Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateUserHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(tt.body))
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

func TestCreateUserHandler_ValidationErrorOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewCreateUserHandler(NewMockUserCreator(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 400, rr.Code)

	var resp struct {
		Errors []string `json:"errors"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []string{
		`Please provide a value for "firstName"`,
		`Please provide a value for "lastName"`,
		`Please provide a value for "email"`,
		`Please provide a value for "password"`,
	}, resp.Errors)
}
