package models

// ExerciseEvent is the message published when an exercise is recorded.
type ExerciseEvent struct {
	EventID     string `json:"event_id"`    // EventID is a unique identifier for the event.
	Timestamp   int64  `json:"timestamp"`   // Timestamp is the Unix timestamp (in seconds) when the exercise was recorded.
	UserID      string `json:"user_id"`     // UserID is the identifier of the user the exercise belongs to.
	ExerciseID  string `json:"exercise_id"` // ExerciseID is the identifier of the recorded exercise.
	Description string `json:"description"` // Description is what the user did.
	Duration    int    `json:"duration"`    // Duration is the exercise duration value.
	Date        string `json:"date"`        // Date is the rendered calendar date of the exercise.
}
