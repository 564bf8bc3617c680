package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wordbin/wordbin/internal/models"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Get(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Insert(ctx context.Context, username string, cfg models.SchedulerConfig) (*models.User, error) {
	args := m.Called(ctx, username, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateConfigWithRecompute(ctx context.Context, userID int64, cfg models.SchedulerConfig, recompute func(models.LearningItem) (models.LearningItem, bool)) (int, error) {
	args := m.Called(ctx, userID, cfg, recompute)
	return args.Int(0), args.Error(1)
}
