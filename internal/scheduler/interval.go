// Package scheduler implements the Leitner spaced-repetition engine: the
// interval table, the bin transition rules and the per-review state update.
// Everything here is pure; persistence is the caller's concern.
package scheduler

import "github.com/wordbin/wordbin/internal/models"

// Interval returns the review interval in hours for an item in the given
// bin. bin must already be clamped to [1, cfg.MaxBins]; callers validate the
// config before it ever reaches here, so this is a total function.
func Interval(bin int, cfg models.SchedulerConfig) int {
	switch cfg.Algorithm {
	case models.AlgorithmFibonacci:
		return fibonacciInterval(bin, cfg.IntervalStartHours)
	default:
		// Unsupported tags are rejected by SchedulerConfig.Validate before
		// any scheduling runs; fibonacci is the only arm today.
		return fibonacciInterval(bin, cfg.IntervalStartHours)
	}
}

// fibonacciInterval seeds the classic recurrence with (s, s) rather than
// (s, 2s): bins 1 and 2 are equal-length on purpose, so a new item gets one
// grace repetition before intervals start growing.
func fibonacciInterval(bin, startHours int) int {
	if bin <= 2 {
		return startHours
	}
	prev, curr := startHours, startHours
	for i := 3; i <= bin; i++ {
		prev, curr = curr, prev+curr
	}
	return curr
}
