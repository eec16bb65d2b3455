package repositories

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// ExerciseRepository is the in-memory exercise store. Records are
// append-only and immutable once stored.
type ExerciseRepository struct {
	mu        sync.RWMutex
	exercises []models.Exercise
	nextID    int
}

// NewExerciseRepository creates an empty exercise store.
func NewExerciseRepository() *ExerciseRepository {
	return &ExerciseRepository{nextID: 1}
}

// Save allocates the next identifier and appends a new exercise record in
// one critical section. The stored record is returned.
func (r *ExerciseRepository) Save(ctx context.Context, userID, description string, duration int, date time.Time) (models.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	exercise := models.Exercise{
		ID:          strconv.Itoa(r.nextID),
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        models.NormalizeDate(date),
	}
	r.nextID++
	r.exercises = append(r.exercises, exercise)

	logger.Log.Debugw("exercise saved",
		"id", exercise.ID,
		"user_id", exercise.UserID,
		"description", exercise.Description,
	)
	return exercise, nil
}

// ListByUserID returns the user's exercises in the order they were recorded.
func (r *ExerciseRepository) ListByUserID(ctx context.Context, userID string) ([]models.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Exercise
	for _, exercise := range r.exercises {
		if exercise.UserID == userID {
			out = append(out, exercise)
		}
	}
	return out, nil
}

// Count returns the total number of stored exercises.
func (r *ExerciseRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.exercises), nil
}
