package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrExerciseFieldsRequired = errors.New("description and duration are required")
	ErrInvalidDate            = errors.New("invalid date")
)

// UserGetter defines the user lookup needed before touching exercises.
type UserGetter interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// ExerciseStore defines the store operations for exercises.
type ExerciseStore interface {
	Save(ctx context.Context, userID, description string, duration int, date time.Time) (models.Exercise, error)
	ListByUserID(ctx context.Context, userID string) ([]models.Exercise, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ExerciseService records exercises and computes filtered logs.
type ExerciseService struct {
	users       UserGetter
	exercises   ExerciseStore
	kafkaWriter KafkaWriter
}

// NewExerciseService creates a new ExerciseService. kafkaWriter may be nil,
// in which case event publishing is skipped.
func NewExerciseService(users UserGetter, exercises ExerciseStore, kafkaWriter KafkaWriter) *ExerciseService {
	return &ExerciseService{
		users:       users,
		exercises:   exercises,
		kafkaWriter: kafkaWriter,
	}
}

// publishExerciseRecorded publishes an exercise-recorded event to Kafka.
func (svc *ExerciseService) publishExerciseRecorded(ctx context.Context, event models.ExerciseEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "exercise_id", event.ExerciseID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal exercise event for Kafka", "exercise_id", event.ExerciseID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish exercise event to Kafka", "exercise_id", event.ExerciseID, "error", err)
	} else {
		logger.Log.Infow("Exercise event published to Kafka", "exercise_id", event.ExerciseID, "user_id", event.UserID)
	}
}

// AddExercise validates and appends an exercise for the given user, then
// returns the composite view of the user's identity and the new record.
// The user lookup happens before any validation or mutation, matching the
// order of the public error contract.
func (svc *ExerciseService) AddExercise(ctx context.Context, userID, description, duration, date string) (models.ExerciseView, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to look up user", "userID", userID, "err", err)
		return models.ExerciseView{}, err
	}
	if user == nil {
		logger.Log.Errorw("user not found", "userID", userID)
		return models.ExerciseView{}, ErrUserNotFound
	}

	if description == "" || duration == "" {
		return models.ExerciseView{}, ErrExerciseFieldsRequired
	}
	durationValue, err := strconv.Atoi(duration)
	if err != nil {
		logger.Log.Errorw("duration is not an integer", "duration", duration)
		return models.ExerciseView{}, ErrExerciseFieldsRequired
	}

	exerciseDate := models.NormalizeDate(time.Now())
	if date != "" {
		exerciseDate, err = models.ParseDate(date)
		if err != nil {
			logger.Log.Errorw("unparseable exercise date", "date", date)
			return models.ExerciseView{}, ErrInvalidDate
		}
	}

	exercise, err := svc.exercises.Save(ctx, user.ID, description, durationValue, exerciseDate)
	if err != nil {
		logger.Log.Errorw("failed to save exercise", "userID", user.ID, "err", err)
		return models.ExerciseView{}, err
	}

	svc.publishExerciseRecorded(ctx, models.ExerciseEvent{
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().Unix(),
		UserID:      user.ID,
		ExerciseID:  exercise.ID,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        models.FormatDate(exercise.Date),
	})

	return models.ExerciseView{
		UserID:      user.ID,
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        models.FormatDate(exercise.Date),
	}, nil
}

// GetLog returns the user's exercises in insertion order, filtered by the
// optional inclusive from/to calendar-date bounds and truncated to limit
// entries. Bounds and limit that do not parse are treated as absent.
func (svc *ExerciseService) GetLog(ctx context.Context, userID, from, to, limit string) (models.Log, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to look up user", "userID", userID, "err", err)
		return models.Log{}, err
	}
	if user == nil {
		logger.Log.Errorw("user not found", "userID", userID)
		return models.Log{}, ErrUserNotFound
	}

	exercises, err := svc.exercises.ListByUserID(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to list exercises", "userID", user.ID, "err", err)
		return models.Log{}, err
	}

	var fromDate, toDate time.Time
	hasFrom, hasTo := false, false
	if from != "" {
		if fromDate, err = models.ParseDate(from); err == nil {
			hasFrom = true
		}
	}
	if to != "" {
		if toDate, err = models.ParseDate(to); err == nil {
			hasTo = true
		}
	}

	entries := make([]models.LogEntry, 0, len(exercises))
	for _, exercise := range exercises {
		if hasFrom && exercise.Date.Before(fromDate) {
			continue
		}
		if hasTo && exercise.Date.After(toDate) {
			continue
		}
		entries = append(entries, models.LogEntry{
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        models.FormatDate(exercise.Date),
		})
	}

	if limit != "" {
		if n, convErr := strconv.Atoi(limit); convErr == nil && n >= 0 && n < len(entries) {
			entries = entries[:n]
		}
	}

	return models.Log{
		UserID:   user.ID,
		Username: user.Username,
		Count:    len(entries),
		Entries:  entries,
	}, nil
}
