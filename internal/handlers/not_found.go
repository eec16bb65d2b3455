package handlers

import (
	"encoding/json"
	"net/http"
)

// NotFoundErrorResponse represents the payload returned for unmatched routes
// swagger:model NotFoundErrorResponse
type NotFoundErrorResponse struct {
	// Error message
	// default: Endpoint not found
	Error string `json:"error"`
}

// NewNotFoundHandler returns the fallback handler for unmatched routes.
// This is the only place the service returns a non-2xx status.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(NotFoundErrorResponse{
			Error: "Endpoint not found",
		})
	}
}
