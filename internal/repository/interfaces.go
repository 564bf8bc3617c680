package repository

import (
	"context"
	"time"

	"github.com/wordbin/wordbin/internal/models"
)

// UserRepository handles user and scheduler configuration data access
type UserRepository interface {
	Get(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Insert(ctx context.Context, username string, cfg models.SchedulerConfig) (*models.User, error)
	// UpdateConfigWithRecompute rewrites the user's scheduler configuration
	// and reschedules every item the user owns in one transaction: the new
	// config and the recomputed items become visible together or not at all.
	// recompute reports whether the item needs a write; the returned count is
	// the number of items rewritten.
	UpdateConfigWithRecompute(ctx context.Context, userID int64, cfg models.SchedulerConfig, recompute func(models.LearningItem) (models.LearningItem, bool)) (int, error)
}

// ItemRepository handles learning item data access
type ItemRepository interface {
	Get(ctx context.Context, userID int64, conceptID, languageCode string) (*models.LearningItem, error)
	Insert(ctx context.Context, item models.LearningItem) (int64, error)
	// InsertBatch introduces many concepts at once; triples that already
	// exist are skipped. Returns the number of newly created items.
	InsertBatch(ctx context.Context, items []models.LearningItem) (int, error)
	// UpdateScheduling writes bin, last_review_time and next_review_at in a
	// single statement. Returns false when the row no longer exists (the
	// item was removed between read and write).
	UpdateScheduling(ctx context.Context, item models.LearningItem) (bool, error)
	List(ctx context.Context, filter models.ItemFilter) ([]models.LearningItem, error)
	DistributionCounts(ctx context.Context, userID int64, languageCode string, now time.Time) ([]models.BinCount, error)
	InsertReviewHistory(ctx context.Context, itemID int64, outcome models.ReviewOutcome, binBefore, binAfter int, reviewedAt time.Time) error
}
