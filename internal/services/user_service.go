package services

import (
	"context"
	"strings"

	"github.com/wordbin/wordbin/internal/errors"
	"github.com/wordbin/wordbin/internal/logger"
	"github.com/wordbin/wordbin/internal/models"
	"github.com/wordbin/wordbin/internal/repository"
)

// UserService handles user provisioning and lookup
type UserService interface {
	CreateUser(ctx context.Context, username string) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) CreateUser(ctx context.Context, username string) (*models.User, error) {
	log := logger.FromContext(ctx)
	username = strings.ToLower(strings.TrimSpace(username))
	log.Debug("creating user: username=%s", username)

	if username == "" {
		return nil, errors.NewValidationError("username", "cannot be empty")
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		log.Error("failed to check username: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if existing != nil {
		return nil, errors.NewValidationError("username", "already taken")
	}

	// New users start with the default scheduler configuration.
	user, err := s.users.Insert(ctx, username, models.DefaultSchedulerConfig())
	if err != nil {
		log.Error("failed to create user: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("user created: id=%d, username=%s", user.ID, user.Username)
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting user: id=%d", id)

	user, err := s.users.Get(ctx, id)
	if err != nil {
		log.Error("failed to get user: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if user == nil {
		return nil, errors.NewNotFoundError("user", id)
	}
	return user, nil
}
