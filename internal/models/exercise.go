package models

import "time"

// Exercise represents a single logged exercise. Records are append-only and
// immutable once stored.
type Exercise struct {
	ID          string    // Opaque identifier, assigned at creation
	UserID      string    // References User.ID; users are never deleted
	Description string    // What was done
	Duration    int       // Duration value, unit-agnostic
	Date        time.Time // Calendar date, normalized to UTC midnight
}

// LogEntry is the reduced exercise view returned inside a log response.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// ExerciseView combines a user's identity fields with a freshly recorded
// exercise, matching the add-exercise response shape.
type ExerciseView struct {
	UserID      string `json:"_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// Log is the filtered, ordered, optionally limited list of a user's
// exercises together with its size.
type Log struct {
	UserID   string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Entries  []LogEntry `json:"log"`
}
