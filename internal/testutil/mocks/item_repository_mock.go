package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/wordbin/wordbin/internal/models"
)

// MockItemRepository is a mock implementation of repository.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Get(ctx context.Context, userID int64, conceptID, languageCode string) (*models.LearningItem, error) {
	args := m.Called(ctx, userID, conceptID, languageCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LearningItem), args.Error(1)
}

func (m *MockItemRepository) Insert(ctx context.Context, item models.LearningItem) (int64, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) InsertBatch(ctx context.Context, items []models.LearningItem) (int, error) {
	args := m.Called(ctx, items)
	return args.Int(0), args.Error(1)
}

func (m *MockItemRepository) UpdateScheduling(ctx context.Context, item models.LearningItem) (bool, error) {
	args := m.Called(ctx, item)
	return args.Bool(0), args.Error(1)
}

func (m *MockItemRepository) List(ctx context.Context, filter models.ItemFilter) ([]models.LearningItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LearningItem), args.Error(1)
}

func (m *MockItemRepository) DistributionCounts(ctx context.Context, userID int64, languageCode string, now time.Time) ([]models.BinCount, error) {
	args := m.Called(ctx, userID, languageCode, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BinCount), args.Error(1)
}

func (m *MockItemRepository) InsertReviewHistory(ctx context.Context, itemID int64, outcome models.ReviewOutcome, binBefore, binAfter int, reviewedAt time.Time) error {
	args := m.Called(ctx, itemID, outcome, binBefore, binAfter, reviewedAt)
	return args.Error(0)
}
