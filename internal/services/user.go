package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// Error variables
var (
	ErrUsernameRequired = errors.New("username is required")
	ErrUserNotFound     = errors.New("user not found")
)

// UserStore defines the store operations needed for user management.
type UserStore interface {
	CreateOrGet(ctx context.Context, username string) (models.User, bool, error)
	List(ctx context.Context) ([]models.User, error)
}

// UserService handles user creation and listing.
type UserService struct {
	users UserStore
}

// NewUserService creates a new UserService instance.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// CreateOrGetUser returns the user with the given username, creating it if
// necessary. Calling it again with the same username returns the original
// record unchanged.
func (svc *UserService) CreateOrGetUser(ctx context.Context, username string) (models.User, error) {
	if username == "" {
		logger.Log.Errorw("username missing in create user request")
		return models.User{}, ErrUsernameRequired
	}

	user, created, err := svc.users.CreateOrGet(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to create or get user", "username", username, "err", err)
		return models.User{}, err
	}
	if created {
		logger.Log.Infow("user created", "id", user.ID, "username", user.Username)
	}

	return user, nil
}

// ListUsers returns all users in creation order.
func (svc *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := svc.users.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}
