package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vmaslov2018/course-api/internal/logger"
	"github.com/vmaslov2018/course-api/internal/models"
	"github.com/vmaslov2018/course-api/internal/services"
)

// Authenticator resolves a Basic-Auth credential pair to a user record.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.UserDB, error)
}

// accessDeniedResponse is the only body an unauthenticated caller ever sees.
// The concrete failure reason stays in the logs.
type accessDeniedResponse struct {
	Message string `json:"message"`
}

// BasicAuthMiddleware returns a middleware enforcing HTTP Basic Authentication.
// On success the resolved user is stored in the request context for handlers.
func BasicAuthMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			email, password, ok := r.BasicAuth()
			if !ok {
				logger.Log.Infow("authentication failed", "reason", "auth header not found")
				writeAccessDenied(w)
				return
			}

			user, err := auth.Authenticate(ctx, email, password)
			if err != nil {
				switch {
				case errors.Is(err, services.ErrUserDoesNotExist):
					logger.Log.Infow("authentication failed", "reason", "user not found")
					writeAccessDenied(w)
				case errors.Is(err, services.ErrInvalidCredentials):
					logger.Log.Infow("authentication failed", "reason", "password mismatch", "email", email)
					writeAccessDenied(w)
				default:
					logger.Log.Errorw("authentication error", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(accessDeniedResponse{Message: "Internal server error"})
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}

func writeAccessDenied(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(accessDeniedResponse{Message: "Access Denied"})
}

// userContextKey is an unexported type for the current-user context key.
type userContextKey struct{}

var userKey = userContextKey{}

// SetUserToContext stores the authenticated user in the context.
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the authenticated user, or nil when the
// request did not pass the Basic-Auth middleware.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}
