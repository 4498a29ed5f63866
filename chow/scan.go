package chow

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/breakscan/internal/options"
	"github.com/arloliu/breakscan/series"
)

// Scan evaluates every admissible candidate breakpoint of the series.
//
// With minimum segment length L, the candidates are every t in [L, n-L]
// inclusive: n-2L+1 of them, ascending. Candidates that cannot be evaluated
// (degenerate segment, invalid degrees of freedom) are recorded on the
// result and skipped; the scan itself fails only when the search space is
// empty or every candidate was skipped.
//
// With WithWorkers(w > 1) candidates are evaluated concurrently. Each
// worker writes into its own pre-assigned slot, so the result is identical
// to a sequential scan regardless of scheduling.
//
// Parameters:
//   - s: The series to scan
//   - opts: Optional configuration (WithMinSegment, WithWorkers)
//
// Returns:
//   - *ScanResult: Per-candidate statistics and skips, ascending by
//     breakpoint.
//   - error: An option validation error, ErrEmptySearchSpace (wrapped) when
//     2L > n, or ErrEmptyScanResult (wrapped) when no candidate survived.
//
// Example:
//
//	result, err := chow.Scan(s, chow.WithMinSegment(12))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	best, _ := result.Max()
func Scan(s *series.Series, opts ...Option) (*ScanResult, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return scanWithConfig(s, cfg)
}

func scanWithConfig(s *series.Series, cfg Config) (*ScanResult, error) {
	n := s.Len()
	minSeg := cfg.MinSegment
	if 2*minSeg > n {
		return nil, fmt.Errorf("%w: min segment %d needs at least %d observations, series has %d",
			ErrEmptySearchSpace, minSeg, 2*minSeg, n)
	}

	// Candidates t in [minSeg, n-minSeg], both ends inclusive.
	first := minSeg
	count := n - 2*minSeg + 1

	stats := make([]Statistic, count)
	failures := make([]error, count)

	if cfg.Workers > 1 {
		var g errgroup.Group
		g.SetLimit(cfg.Workers)
		for i := 0; i < count; i++ {
			i := i
			g.Go(func() error {
				stats[i], failures[i] = Evaluate(s, first+i)
				return nil
			})
		}
		// Evaluation failures land in their slots, never in the group.
		_ = g.Wait()
	} else {
		for i := 0; i < count; i++ {
			stats[i], failures[i] = Evaluate(s, first+i)
		}
	}

	result := &ScanResult{
		N:          n,
		MinSegment: minSeg,
		Candidates: make([]Statistic, 0, count),
	}
	for i := 0; i < count; i++ {
		if failures[i] != nil {
			result.Skipped = append(result.Skipped, Skip{Breakpoint: first + i, Reason: failures[i]})
			continue
		}
		result.Candidates = append(result.Candidates, stats[i])
	}

	if len(result.Candidates) == 0 {
		return nil, fmt.Errorf("%w: all %d candidates skipped, first reason: %v",
			ErrEmptyScanResult, count, result.Skipped[0].Reason)
	}

	return result, nil
}

// Select judges the scan result against a critical value.
//
// The maximizing candidate is chosen with a strict comparison, so ties
// resolve to the earliest breakpoint. The decision fields always describe
// that candidate; Detected is true only when its F strictly exceeds the
// critical value.
//
// Parameters:
//   - result: A scan result with at least one evaluated candidate
//   - critical: The threshold to judge the maximum against
//
// Returns:
//   - Decision: The verdict for the series.
//   - error: ErrEmptyScanResult (wrapped) when the result holds no
//     evaluated candidates.
func Select(result *ScanResult, critical float64) (Decision, error) {
	if result == nil {
		return Decision{}, fmt.Errorf("%w: nil scan result", ErrEmptyScanResult)
	}

	best, ok := result.Max()
	if !ok {
		return Decision{}, fmt.Errorf("%w: no evaluated candidates to select from", ErrEmptyScanResult)
	}

	return Decision{
		Detected:   best.F > critical,
		Breakpoint: best.Breakpoint,
		F:          best.F,
		PValue:     best.PValue,
		Critical:   critical,
	}, nil
}
