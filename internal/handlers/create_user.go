package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	CreateOrGetUser(ctx context.Context, username string) (models.User, error)
}

// CreateUserRequest represents the body for user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`
}

// CreateUserErrorResponse represents an error response for user creation
// swagger:model CreateUserErrorResponse
type CreateUserErrorResponse struct {
	// Error message
	// default: Username is required
	Error string `json:"error"`
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// Creating a user with a username that already exists returns the existing
// record instead of a duplicate. Domain errors are returned as 200 responses
// with an error payload, matching the original public contract.
// @Summary Create a user
// @Description Creates a new user, or returns the existing record when the username is already taken
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User creation request"
// @Success 200 {object} models.User "Created or existing user"
// @Router /api/users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest

		if isJSONRequest(r) {
			// A malformed body leaves the username empty and falls through
			// to the validation error below.
			_ = json.NewDecoder(r.Body).Decode(&req)
		} else {
			_ = r.ParseForm()
			req.Username = r.PostFormValue("username")
		}

		w.Header().Set("Content-Type", "application/json")

		user, err := svc.CreateOrGetUser(r.Context(), req.Username)
		if err != nil {
			switch err {
			case services.ErrUsernameRequired:
				json.NewEncoder(w).Encode(CreateUserErrorResponse{
					Error: "Username is required",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				json.NewEncoder(w).Encode(CreateUserErrorResponse{
					Error: "Server error",
				})
			}
			return
		}

		json.NewEncoder(w).Encode(user)
	}
}
