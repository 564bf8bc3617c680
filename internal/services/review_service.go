package services

import (
	"context"
	"time"

	"github.com/wordbin/wordbin/internal/errors"
	"github.com/wordbin/wordbin/internal/logger"
	"github.com/wordbin/wordbin/internal/models"
	"github.com/wordbin/wordbin/internal/repository"
	"github.com/wordbin/wordbin/internal/scheduler"
)

// ReviewService orchestrates a single review event: read the item, apply
// the bin transition and interval table, write the updated scheduling state.
type ReviewService interface {
	ProcessReview(ctx context.Context, userID int64, conceptID, languageCode string, outcome models.ReviewOutcome) (*models.LearningItem, error)
}

type reviewService struct {
	users repository.UserRepository
	items repository.ItemRepository
	now   func() time.Time
}

// NewReviewService creates a new ReviewService. now is the clock source used
// to stamp reviews and schedule the next one.
func NewReviewService(users repository.UserRepository, items repository.ItemRepository, now func() time.Time) ReviewService {
	return &reviewService{users: users, items: items, now: now}
}

func (s *reviewService) ProcessReview(ctx context.Context, userID int64, conceptID, languageCode string, outcome models.ReviewOutcome) (*models.LearningItem, error) {
	log := logger.FromContext(ctx)
	log.Debug("processing review: user_id=%d, concept_id=%s, outcome=%s", userID, conceptID, outcome)

	if _, ok := models.ParseReviewOutcome(string(outcome)); !ok {
		return nil, errors.NewValidationError("outcome", `must be one of "correct", "incorrect", "hint_used"`)
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		log.Error("failed to load user: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if user == nil {
		return nil, errors.NewNotFoundError("user", userID)
	}

	item, err := s.items.Get(ctx, userID, conceptID, languageCode)
	if err != nil {
		log.Error("failed to load item: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if item == nil {
		return nil, errors.NewNotFoundError("item", conceptID)
	}

	binBefore := item.Bin
	now := s.now()
	updated := scheduler.ApplyReview(*item, outcome, user.Config, now)

	log.Debug("applied review, bin %d -> %d, next review in %dh", binBefore, updated.Bin, scheduler.Interval(updated.Bin, user.Config))

	ok, err := s.items.UpdateScheduling(ctx, updated)
	if err != nil {
		log.Error("failed to update item: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if !ok {
		// The item was removed between read and write: skip recording the
		// review, nothing was scheduled.
		log.Warn("item removed mid-review: id=%d", item.ID)
		return nil, errors.NewNotFoundError("item", conceptID)
	}

	// Audit trail is best-effort; a failed history insert never fails the review.
	if err := s.items.InsertReviewHistory(ctx, updated.ID, outcome, binBefore, updated.Bin, now); err != nil {
		log.Warn("failed to store review history: %v", err)
	}

	log.Info("review processed: item_id=%d, bin=%d", updated.ID, updated.Bin)
	return &updated, nil
}
