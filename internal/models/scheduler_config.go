package models

import "github.com/wordbin/wordbin/internal/errors"

// Algorithm selects the interval sequence used by the scheduler.
// Closed set: adding a variant means a new constant plus a new arm in the
// interval calculator.
type Algorithm string

const (
	AlgorithmFibonacci Algorithm = "fibonacci"
)

// SchedulerConfig is the per-user scheduling configuration. It is passed
// explicitly into every engine call; there is no ambient shared config.
type SchedulerConfig struct {
	MaxBins            int       `json:"max_bins"`
	IntervalStartHours int       `json:"interval_start_hours"`
	Algorithm          Algorithm `json:"algorithm"`
}

const (
	MinBins              = 5
	MaxBinsLimit         = 20
	MinIntervalStart     = 1
	MaxIntervalStart     = 24
	DefaultMaxBins       = 10
	DefaultIntervalStart = 6
)

// DefaultSchedulerConfig is the configuration a user is provisioned with.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		MaxBins:            DefaultMaxBins,
		IntervalStartHours: DefaultIntervalStart,
		Algorithm:          AlgorithmFibonacci,
	}
}

// Validate checks all fields and reports the first offending one with its
// allowed range. An invalid config is rejected wholesale; nothing is applied.
func (c SchedulerConfig) Validate() error {
	if c.MaxBins < MinBins || c.MaxBins > MaxBinsLimit {
		return errors.NewValidationError("max_bins", "must be between 5 and 20")
	}
	if c.IntervalStartHours < MinIntervalStart || c.IntervalStartHours > MaxIntervalStart {
		return errors.NewValidationError("interval_start_hours", "must be between 1 and 24")
	}
	if c.Algorithm != AlgorithmFibonacci {
		return errors.NewValidationError("algorithm", `must be "fibonacci"`)
	}
	return nil
}
