package chow

import (
	"fmt"

	"github.com/arloliu/breakscan/internal/options"
)

// Config holds configuration for breakpoint scans and detection.
type Config struct {
	// MinSegment is the minimum observations required on each side of a
	// candidate breakpoint.
	MinSegment int
	// Confidence is the confidence level used to derive the critical value
	// from the F-distribution when no explicit value is pinned.
	Confidence float64
	// Critical pins an explicit critical value; zero derives it from
	// Confidence instead.
	Critical float64
	// Workers is the number of goroutines evaluating candidates; 1 scans
	// sequentially.
	Workers int
}

// defaultConfig returns the default config (minimum segment 10, 95%
// confidence, derived critical value, sequential scan).
func defaultConfig() Config {
	return Config{
		MinSegment: 10,
		Confidence: 0.95,
		Critical:   0,
		Workers:    1,
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithMinSegment sets the minimum segment length on each side of a
// candidate breakpoint.
func WithMinSegment(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 1 {
			return fmt.Errorf("min segment length must be positive, got %d", n)
		}
		cfg.MinSegment = n

		return nil
	})
}

// WithConfidence sets the confidence level for the derived critical value.
func WithConfidence(confidence float64) Option {
	return options.New(func(cfg *Config) error {
		if confidence <= 0 || confidence >= 1 {
			return fmt.Errorf("confidence must be in (0, 1), got %v", confidence)
		}
		cfg.Confidence = confidence

		return nil
	})
}

// WithCriticalValue pins an explicit critical value, bypassing the
// F-distribution quantile.
func WithCriticalValue(critical float64) Option {
	return options.New(func(cfg *Config) error {
		if critical <= 0 {
			return fmt.Errorf("critical value must be positive, got %v", critical)
		}
		cfg.Critical = critical

		return nil
	})
}

// WithWorkers sets the number of goroutines used to evaluate candidates.
func WithWorkers(workers int) Option {
	return options.New(func(cfg *Config) error {
		if workers < 1 {
			return fmt.Errorf("workers must be positive, got %d", workers)
		}
		cfg.Workers = workers

		return nil
	})
}
