package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse represents the health check payload
// swagger:model HealthResponse
type HealthResponse struct {
	// Service status
	// default: OK
	Status string `json:"status"`

	// Current server time in RFC 3339 format
	Timestamp string `json:"timestamp"`
}

// NewHealthHandler returns an HTTP handler for the health check route.
// @Summary Health check
// @Description Returns service status and the current server time
// @Tags meta
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service healthy"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(HealthResponse{
			Status:    "OK",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
