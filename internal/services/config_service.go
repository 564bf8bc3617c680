package services

import (
	"context"

	"github.com/wordbin/wordbin/internal/errors"
	"github.com/wordbin/wordbin/internal/logger"
	"github.com/wordbin/wordbin/internal/models"
	"github.com/wordbin/wordbin/internal/repository"
	"github.com/wordbin/wordbin/internal/scheduler"
)

// ConfigService validates scheduler configuration changes and runs the
// recompute job that rebuilds every due date the user owns.
type ConfigService interface {
	GetConfig(ctx context.Context, userID int64) (*models.SchedulerConfig, error)
	// UpdateConfig validates newCfg, then atomically persists it together
	// with the rescheduled item set. On any failure the previous config and
	// item states remain visible; nothing is partially applied.
	UpdateConfig(ctx context.Context, userID int64, newCfg models.SchedulerConfig) (int, error)
}

type configService struct {
	users repository.UserRepository
}

// NewConfigService creates a new ConfigService
func NewConfigService(users repository.UserRepository) ConfigService {
	return &configService{users: users}
}

func (s *configService) GetConfig(ctx context.Context, userID int64) (*models.SchedulerConfig, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting scheduler config: user_id=%d", userID)

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		log.Error("failed to load user: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if user == nil {
		return nil, errors.NewNotFoundError("user", userID)
	}
	return &user.Config, nil
}

func (s *configService) UpdateConfig(ctx context.Context, userID int64, newCfg models.SchedulerConfig) (int, error) {
	log := logger.FromContext(ctx)
	log.Debug("updating scheduler config: user_id=%d, max_bins=%d, interval_start=%d, algorithm=%s",
		userID, newCfg.MaxBins, newCfg.IntervalStartHours, newCfg.Algorithm)

	// Reject before any state is touched.
	if err := newCfg.Validate(); err != nil {
		log.Warn("invalid scheduler config: %v", err)
		return 0, err
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		log.Error("failed to load user: %v", err)
		return 0, errors.NewInternalError(err)
	}
	if user == nil {
		return 0, errors.NewNotFoundError("user", userID)
	}

	updated, err := s.users.UpdateConfigWithRecompute(ctx, userID, newCfg, func(item models.LearningItem) (models.LearningItem, bool) {
		return scheduler.Recompute(item, newCfg)
	})
	if err != nil {
		// The transaction rolled back; the prior config and item states are
		// still what the caller sees, so the whole operation may be retried.
		log.Error("config recompute rolled back: %v", err)
		return 0, errors.NewTransactionError("config recompute", err)
	}

	log.Info("scheduler config updated: user_id=%d, %d items rescheduled", userID, updated)
	return updated, nil
}
