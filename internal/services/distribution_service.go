package services

import (
	"context"
	"time"

	"github.com/wordbin/wordbin/internal/errors"
	"github.com/wordbin/wordbin/internal/logger"
	"github.com/wordbin/wordbin/internal/models"
	"github.com/wordbin/wordbin/internal/repository"
)

// DistributionService builds the per-bin due/not-due report used by the
// client's progress charts. Read-only; safe for concurrent callers.
type DistributionService interface {
	Distribution(ctx context.Context, userID int64, languageCode string) (models.BinDistribution, error)
}

type distributionService struct {
	users repository.UserRepository
	items repository.ItemRepository
	now   func() time.Time
}

// NewDistributionService creates a new DistributionService
func NewDistributionService(users repository.UserRepository, items repository.ItemRepository, now func() time.Time) DistributionService {
	return &distributionService{users: users, items: items, now: now}
}

func (s *distributionService) Distribution(ctx context.Context, userID int64, languageCode string) (models.BinDistribution, error) {
	log := logger.FromContext(ctx)
	log.Debug("building distribution: user_id=%d, language=%s", userID, languageCode)

	if languageCode == "" {
		return nil, errors.NewValidationError("language_code", "cannot be empty")
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		log.Error("failed to load user: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if user == nil {
		return nil, errors.NewNotFoundError("user", userID)
	}

	counts, err := s.items.DistributionCounts(ctx, userID, languageCode, s.now())
	if err != nil {
		log.Error("failed to count distribution: %v", err)
		return nil, errors.NewInternalError(err)
	}

	byBin := make(map[int]models.BinCount, len(counts))
	for _, c := range counts {
		byBin[c.Bin] = c
	}

	// Every bin 1..maxBins is present, empty ones as zero. A language with
	// no items at all still yields the full range.
	dist := make(models.BinDistribution, 0, user.Config.MaxBins)
	for bin := 1; bin <= user.Config.MaxBins; bin++ {
		c := byBin[bin]
		c.Bin = bin
		dist = append(dist, c)
	}

	log.Debug("distribution built: %d bins", len(dist))
	return dist, nil
}
