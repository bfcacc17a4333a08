package handlers

import (
	"net/http"

	"github.com/vmaslov2018/course-api/internal/middlewares"
)

// CurrentUserResponse represents the authenticated user.
// Key casing is part of the API contract.
// swagger:model CurrentUserResponse
type CurrentUserResponse struct {
	// User id
	Id string `json:"Id"`

	// Display name composed from first and last name
	// default: Joe Smith
	Name string `json:"Name"`

	// Email address
	// default: joe@example.com
	Email string `json:"Email"`
}

// NewCurrentUserHandler returns an HTTP handler for reading the
// currently authenticated user.
// @Summary Get current user
// @Description Returns the user resolved by Basic Authentication
// @Tags users
// @Produce json
// @Success 200 {object} handlers.CurrentUserResponse "Current user"
// @Failure 401 {object} handlers.MessageResponse "Access denied"
// @Router /users [get]
// @Security BasicAuth
func NewCurrentUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			writeJSON(w, http.StatusUnauthorized, MessageResponse{Message: "Access Denied"})
			return
		}

		writeJSON(w, http.StatusOK, CurrentUserResponse{
			Id:    user.UserID.String(),
			Name:  user.FirstName + " " + user.LastName,
			Email: user.Email,
		})
	}
}
