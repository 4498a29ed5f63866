// Package series provides the immutable univariate time-series container used
// by the regression and break-detection packages.
//
// A Series holds ordered float64 observations with an implicit regression time
// axis 1..n, an optional name, and optional per-observation timestamps. All
// validation happens at construction time: downstream packages can assume a
// Series contains at least one finite observation and, when timestamps are
// present, that they are aligned and ascending.
package series

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/breakscan/internal/hash"
)

// Series is an immutable ordered sequence of real-valued observations.
//
// The observation at position i (0-based) is observation i+1 on the
// regression time axis. Accessors return read-only views; callers must not
// modify returned slices.
type Series struct {
	name        string
	values      []float64
	times       []time.Time
	index       []float64
	fingerprint uint64
}

// New creates a Series from a name and observation values.
//
// The values are copied, so the caller may reuse its slice. Construction
// fails if the series is empty or contains NaN or infinite values; cleaning
// (e.g. dropping missing observations) is the loader's job, not the
// container's.
//
// Parameters:
//   - name: Human-readable series name (may be empty)
//   - values: Observations in time order
//
// Returns:
//   - *Series: The constructed series.
//   - error: An error if the observations are empty or non-finite.
//
// Example:
//
//	s, err := series.New("pcepi", []float64{101.2, 101.9, 102.4})
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(name string, values []float64) (*Series, error) {
	if len(values) == 0 {
		return nil, errors.New("series must contain at least one observation")
	}
	if err := validateValues(values); err != nil {
		return nil, err
	}

	vals := make([]float64, len(values))
	copy(vals, values)

	return &Series{
		name:        name,
		values:      vals,
		index:       buildIndex(len(vals)),
		fingerprint: hash.Fingerprint(vals),
	}, nil
}

// NewTimed creates a Series with per-observation timestamps.
//
// Timestamps let break reports translate the selected breakpoint back into a
// calendar date. They must be aligned one-to-one with the values and in
// ascending (non-decreasing) order; sorting unordered input is the loader's
// job.
//
// Parameters:
//   - name: Human-readable series name (may be empty)
//   - values: Observations in time order
//   - times: Observation timestamps, len(times) == len(values)
//
// Returns:
//   - *Series: The constructed series.
//   - error: An error if validation of values or timestamps fails.
func NewTimed(name string, values []float64, times []time.Time) (*Series, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("mismatched lengths: %d values vs %d timestamps", len(values), len(times))
	}
	for i := 1; i < len(times); i++ {
		if times[i].Before(times[i-1]) {
			return nil, fmt.Errorf("timestamps must be in ascending order: index %d precedes index %d", i, i-1)
		}
	}

	s, err := New(name, values)
	if err != nil {
		return nil, err
	}

	s.times = make([]time.Time, len(times))
	copy(s.times, times)

	return s, nil
}

// Name returns the series name.
func (s *Series) Name() string {
	return s.name
}

// Len returns the number of observations n.
func (s *Series) Len() int {
	return len(s.values)
}

// Values returns the observations as a read-only view.
func (s *Series) Values() []float64 {
	return s.values
}

// Value returns the observation at position i (0-based).
func (s *Series) Value(i int) float64 {
	return s.values[i]
}

// Index returns the regression time axis [1, 2, ..., n] as a read-only view.
//
// The axis is built once at construction, so repeated scans over the same
// series share a single allocation.
func (s *Series) Index() []float64 {
	return s.index
}

// Timed reports whether the series carries per-observation timestamps.
func (s *Series) Timed() bool {
	return len(s.times) > 0
}

// Times returns the observation timestamps as a read-only view.
// The result is nil for an untimed series.
func (s *Series) Times() []time.Time {
	return s.times
}

// TimeAt returns the timestamp of the observation at position i (0-based).
// The second return value is false when the series is untimed or i is out
// of range.
func (s *Series) TimeAt(i int) (time.Time, bool) {
	if i < 0 || i >= len(s.times) {
		return time.Time{}, false
	}

	return s.times[i], true
}

// Fingerprint returns the xxHash64 digest of the observation values.
//
// Two series with identical observations share a fingerprint regardless of
// name or timestamps, which makes it suitable for tagging reports with the
// exact data they were computed from.
func (s *Series) Fingerprint() uint64 {
	return s.fingerprint
}

// Mean returns the arithmetic mean of the observations.
func (s *Series) Mean() float64 {
	return stat.Mean(s.values, nil)
}

// StdDev returns the sample standard deviation of the observations.
// It returns NaN for a single-observation series.
func (s *Series) StdDev() float64 {
	return stat.StdDev(s.values, nil)
}

// Min returns the smallest observation.
func (s *Series) Min() float64 {
	return floats.Min(s.values)
}

// Max returns the largest observation.
func (s *Series) Max() float64 {
	return floats.Max(s.values)
}

// String returns a short human-readable summary of the series.
func (s *Series) String() string {
	if s.Timed() {
		first := s.times[0].Format("2006-01-02")
		last := s.times[len(s.times)-1].Format("2006-01-02")

		return fmt.Sprintf("Series{Name: %s, Len: %d, Span: %s..%s}", s.name, s.Len(), first, last)
	}

	return fmt.Sprintf("Series{Name: %s, Len: %d}", s.name, s.Len())
}

func buildIndex(n int) []float64 {
	index := make([]float64, n)
	for i := range index {
		index[i] = float64(i + 1)
	}

	return index
}

func validateValues(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) {
			return fmt.Errorf("non-finite observation at index %d: NaN", i)
		}
		if math.IsInf(v, 0) {
			return fmt.Errorf("non-finite observation at index %d: %v", i, v)
		}
	}

	return nil
}
