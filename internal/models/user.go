package models

// User represents a tracked user held in the in-memory store.
type User struct {
	ID       string `json:"_id"`      // Opaque identifier, assigned at creation
	Username string `json:"username"` // Unique username
}
