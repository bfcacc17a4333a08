package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/vmaslov2018/course-api/internal/logger"
	"github.com/vmaslov2018/course-api/internal/services"
	"github.com/vmaslov2018/course-api/internal/validation"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Register(ctx context.Context, firstName, lastName, email, password string) error
}

// CreateUserRequest represents the JSON body for user creation.
// Fields are pointers so presence can be checked independently of content.
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// First name
	// required: true
	// default: Joe
	FirstName *string `json:"firstName" validate:"required"`

	// Last name
	// required: true
	// default: Smith
	LastName *string `json:"lastName" validate:"required"`

	// Email address, unique per user
	// required: true
	// default: joe@example.com
	Email *string `json:"emailAddress" errname:"email" validate:"required"`

	// Password, stored only as a bcrypt hash
	// required: true
	// default: secret123
	Password *string `json:"password" validate:"required"`
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create user
// @Description Creates a user account. The email address must be unique. The password is hashed before storing.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User creation request"
// @Success 201 "Created, Location header set to /"
// @Failure 400 {object} handlers.ValidationErrorResponse "Missing fields"
// @Failure 400 {object} handlers.MessageResponse "Email already in use"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest

		// An empty body falls through to validation so the client gets
		// the full list of missing fields rather than a parse error.
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

		err := svc.Register(r.Context(), *req.FirstName, *req.LastName, *req.Email, *req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeJSON(w, http.StatusBadRequest, MessageResponse{
					Message: "This email is already in use",
				})
			default:
				logger.Log.Errorw("internal server error", "error", err)
				writeInternalError(w)
			}
			return
		}

		w.Header().Set("Location", "/")
		w.WriteHeader(http.StatusCreated)
	}
}
