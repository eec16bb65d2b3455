package handlers

import (
	"encoding/json"
	"net/http"
)

// RootResponse represents the service banner returned at the root route
// swagger:model RootResponse
type RootResponse struct {
	// Banner message
	// default: Exercise Tracker API - Working
	Message string `json:"message"`
}

// NewRootHandler returns an HTTP handler for the root route.
// @Summary Service banner
// @Description Returns a static banner confirming the API is up
// @Tags meta
// @Produce json
// @Success 200 {object} handlers.RootResponse "Service banner"
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(RootResponse{
			Message: "Exercise Tracker API - Working",
		})
	}
}
