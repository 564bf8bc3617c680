package scheduler

import "github.com/wordbin/wordbin/internal/models"

// NextBin applies the bin transition rules for one review outcome:
// correct promotes by one, incorrect demotes by two, a hint leaves the item
// in place. The result saturates at both ends of [1, maxBins].
func NextBin(currentBin int, outcome models.ReviewOutcome, maxBins int) int {
	next := currentBin
	switch outcome {
	case models.OutcomeCorrect:
		next = currentBin + 1
	case models.OutcomeIncorrect:
		next = currentBin - 2
	case models.OutcomeHintUsed:
		// unchanged
	}
	if next > maxBins {
		next = maxBins
	}
	if next < 1 {
		next = 1
	}
	return next
}
