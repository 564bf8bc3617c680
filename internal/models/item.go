package models

import "time"

// LearningItem is the scheduling state for one (user, concept, language)
// triple. Both timestamps are nil for an item that was introduced but never
// reviewed; nil means "never reviewed" and "not scheduled", not epoch zero.
type LearningItem struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	ConceptID      string     `json:"concept_id"`
	LanguageCode   string     `json:"language_code"`
	Bin            int        `json:"bin"`
	LastReviewTime *time.Time `json:"last_review_time"`
	NextReviewAt   *time.Time `json:"next_review_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

// IsDue reports whether the item is scheduled and its next review time has
// passed. Never-reviewed items are not due.
func (i LearningItem) IsDue(now time.Time) bool {
	return i.NextReviewAt != nil && !i.NextReviewAt.After(now)
}

// ItemFilter narrows item listings.
type ItemFilter struct {
	UserID       int64
	LanguageCode string
	DueBefore    *time.Time
	Limit        int
	Offset       int
}

// ReviewOutcome is the result of one exercise attempt.
type ReviewOutcome string

const (
	OutcomeCorrect   ReviewOutcome = "correct"
	OutcomeIncorrect ReviewOutcome = "incorrect"
	OutcomeHintUsed  ReviewOutcome = "hint_used"
)

// ParseReviewOutcome maps a wire value onto the closed outcome set.
func ParseReviewOutcome(s string) (ReviewOutcome, bool) {
	switch ReviewOutcome(s) {
	case OutcomeCorrect, OutcomeIncorrect, OutcomeHintUsed:
		return ReviewOutcome(s), true
	}
	return "", false
}
