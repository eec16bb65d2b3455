package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
)

// ExerciseAdder defines the interface that the service must implement.
type ExerciseAdder interface {
	AddExercise(ctx context.Context, userID, description, duration, date string) (models.ExerciseView, error)
}

// AddExerciseRequest represents the body for logging an exercise
// swagger:model AddExerciseRequest
type AddExerciseRequest struct {
	// Description
	// required: true
	// default: morning run
	Description string `json:"description"`

	// Duration, as a string or number
	// required: true
	// default: 30
	Duration FlexString `json:"duration"`

	// Date, optional, defaults to today
	// default: 2024-01-15
	Date string `json:"date"`
}

// AddExerciseErrorResponse represents an error response for exercise logging
// swagger:model AddExerciseErrorResponse
type AddExerciseErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewAddExerciseHandler returns an HTTP handler that logs an exercise for a
// user. Domain errors are returned as 200 responses with an error payload,
// matching the original public contract.
// @Summary Log an exercise
// @Description Appends an exercise to the user's log and returns the user's identity with the new record
// @Tags exercises
// @Accept json
// @Produce json
// @Param _id path string true "User identifier"
// @Param addExerciseRequest body handlers.AddExerciseRequest true "Exercise to log"
// @Success 200 {object} models.ExerciseView "Recorded exercise"
// @Router /api/users/{_id}/exercises [post]
func NewAddExerciseHandler(svc ExerciseAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "_id")

		var req AddExerciseRequest
		if isJSONRequest(r) {
			// A malformed body leaves the fields empty and falls through
			// to the validation error below.
			_ = json.NewDecoder(r.Body).Decode(&req)
		} else {
			_ = r.ParseForm()
			req.Description = r.PostFormValue("description")
			req.Duration = FlexString(r.PostFormValue("duration"))
			req.Date = r.PostFormValue("date")
		}

		w.Header().Set("Content-Type", "application/json")

		view, err := svc.AddExercise(r.Context(), userID, req.Description, string(req.Duration), req.Date)
		if err != nil {
			switch err {
			case services.ErrUserNotFound:
				json.NewEncoder(w).Encode(AddExerciseErrorResponse{
					Error: "User not found",
				})
			case services.ErrExerciseFieldsRequired:
				json.NewEncoder(w).Encode(AddExerciseErrorResponse{
					Error: "Description and duration are required",
				})
			case services.ErrInvalidDate:
				json.NewEncoder(w).Encode(AddExerciseErrorResponse{
					Error: "Invalid date",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				json.NewEncoder(w).Encode(AddExerciseErrorResponse{
					Error: "Server error",
				})
			}
			return
		}

		json.NewEncoder(w).Encode(view)
	}
}
