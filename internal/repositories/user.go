package repositories

import (
	"context"
	"strconv"
	"sync"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// UserRepository is the in-memory user store. Records are append-only and
// live for the lifetime of the process.
type UserRepository struct {
	mu         sync.RWMutex
	users      []models.User
	byUsername map[string]int
	byID       map[string]int
	nextID     int
}

// NewUserRepository creates an empty user store.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byUsername: make(map[string]int),
		byID:       make(map[string]int),
		nextID:     1,
	}
}

// CreateOrGet returns the existing user for username, or appends a new one
// with the next identifier. The lookup and the append happen under one lock
// so concurrent calls never allocate the same identifier. The boolean is
// true when a new record was created.
func (r *UserRepository) CreateOrGet(ctx context.Context, username string) (models.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx, ok := r.byUsername[username]; ok {
		return r.users[idx], false, nil
	}

	user := models.User{
		ID:       strconv.Itoa(r.nextID),
		Username: username,
	}
	r.nextID++

	r.byUsername[username] = len(r.users)
	r.byID[user.ID] = len(r.users)
	r.users = append(r.users, user)

	logger.Log.Debugw("user created", "id", user.ID, "username", user.Username)
	return user, true, nil
}

// GetByID returns the user with the given identifier, or nil when absent.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	user := r.users[idx]
	return &user, nil
}

// List returns all users in creation order.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}
