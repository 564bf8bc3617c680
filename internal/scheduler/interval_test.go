package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wordbin/wordbin/internal/models"
	"github.com/wordbin/wordbin/internal/scheduler"
)

func fibConfig(maxBins, startHours int) models.SchedulerConfig {
	return models.SchedulerConfig{
		MaxBins:            maxBins,
		IntervalStartHours: startHours,
		Algorithm:          models.AlgorithmFibonacci,
	}
}

func TestInterval_FirstTwoBinsEqualStart(t *testing.T) {
	for _, start := range []int{1, 6, 12, 24} {
		cfg := fibConfig(10, start)
		assert.Equal(t, start, scheduler.Interval(1, cfg), "bin 1 should equal start hours")
		assert.Equal(t, start, scheduler.Interval(2, cfg), "bin 2 should equal start hours")
	}
}

func TestInterval_FibonacciSequence(t *testing.T) {
	// start=23: 23, 23, 46, 69, 115, ...
	cfg := fibConfig(10, 23)

	tests := []struct {
		bin      int
		expected int
	}{
		{1, 23},
		{2, 23},
		{3, 46},
		{4, 69},
		{5, 115},
		{6, 184},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, scheduler.Interval(tt.bin, cfg), "bin %d", tt.bin)
	}
}

func TestInterval_Monotonic(t *testing.T) {
	for _, start := range []int{1, 7, 24} {
		cfg := fibConfig(models.MaxBinsLimit, start)
		for bin := 1; bin < cfg.MaxBins; bin++ {
			assert.LessOrEqual(t,
				scheduler.Interval(bin, cfg),
				scheduler.Interval(bin+1, cfg),
				"intervals must be non-decreasing, start=%d bin=%d", start, bin)
		}
	}
}
