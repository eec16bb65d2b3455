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

// LogGetter defines the interface that the service must implement.
type LogGetter interface {
	GetLog(ctx context.Context, userID, from, to, limit string) (models.Log, error)
}

// GetLogErrorResponse represents an error response for log queries
// swagger:model GetLogErrorResponse
type GetLogErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewGetLogHandler returns an HTTP handler for querying a user's exercise
// log. Domain errors are returned as 200 responses with an error payload,
// matching the original public contract.
// @Summary Get exercise log
// @Description Returns the user's exercises filtered by optional inclusive from/to date bounds and truncated to limit entries
// @Tags exercises
// @Produce json
// @Param _id path string true "User identifier"
// @Param from query string false "Inclusive lower date bound (e.g. 2024-01-01)"
// @Param to query string false "Inclusive upper date bound (e.g. 2024-12-31)"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} models.Log "Filtered exercise log"
// @Router /api/users/{_id}/logs [get]
func NewGetLogHandler(svc LogGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "_id")
		query := r.URL.Query()

		w.Header().Set("Content-Type", "application/json")

		log, err := svc.GetLog(r.Context(), userID, query.Get("from"), query.Get("to"), query.Get("limit"))
		if err != nil {
			switch err {
			case services.ErrUserNotFound:
				json.NewEncoder(w).Encode(GetLogErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				json.NewEncoder(w).Encode(GetLogErrorResponse{
					Error: "Server error",
				})
			}
			return
		}

		json.NewEncoder(w).Encode(log)
	}
}
