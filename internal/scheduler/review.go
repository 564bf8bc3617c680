package scheduler

import (
	"time"

	"github.com/wordbin/wordbin/internal/models"
)

// ApplyReview updates item scheduling for one review event: move the item
// to its next bin, stamp the review time and schedule the next one. The
// returned item replaces the stored scheduling state as a whole; a reader
// must never see the new bin paired with the old due date.
func ApplyReview(item models.LearningItem, outcome models.ReviewOutcome, cfg models.SchedulerConfig, now time.Time) models.LearningItem {
	newBin := NextBin(item.Bin, outcome, cfg.MaxBins)
	hours := Interval(newBin, cfg)

	reviewed := now
	due := now.Add(time.Duration(hours) * time.Hour)

	item.Bin = newBin
	item.LastReviewTime = &reviewed
	item.NextReviewAt = &due
	return item
}

// Recompute rebuilds an item's due date against a new configuration without
// re-running review logic: the bin is only clamped when the new maxBins
// shrank below it, and the due date is re-derived from the unchanged
// lastReviewTime. Never-reviewed items keep their nil timestamps; only the
// bin clamp applies. The second return reports whether anything changed, so
// running it twice with the same config is a no-op (idempotence).
func Recompute(item models.LearningItem, cfg models.SchedulerConfig) (models.LearningItem, bool) {
	changed := false

	if item.Bin > cfg.MaxBins {
		item.Bin = cfg.MaxBins
		changed = true
	}

	if item.LastReviewTime == nil {
		return item, changed
	}

	hours := Interval(item.Bin, cfg)
	due := item.LastReviewTime.Add(time.Duration(hours) * time.Hour)
	if item.NextReviewAt == nil || !item.NextReviewAt.Equal(due) {
		item.NextReviewAt = &due
		changed = true
	}
	return item, changed
}
