package chow

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/arloliu/breakscan/regress"
	"github.com/arloliu/breakscan/series"
)

// K is the number of estimated parameters per regression regime: intercept
// and slope. The test statistic has K and n-2K degrees of freedom.
const K = 2

// ErrInvalidDegreesOfFreedom reports a series too short for the statistic's
// denominator degrees of freedom (n - 2K <= 0).
var ErrInvalidDegreesOfFreedom = errors.New("invalid degrees of freedom")

// ErrEmptySearchSpace reports a minimum segment length that admits no
// candidate breakpoint at all (2L > n).
var ErrEmptySearchSpace = errors.New("empty search space")

// ErrEmptyScanResult reports a scan in which every candidate breakpoint was
// skipped, leaving nothing to select from.
var ErrEmptyScanResult = errors.New("empty scan result")

// Evaluate computes the Chow statistic for a single candidate breakpoint.
//
// The candidate t splits the series into observations 1..t and t+1..n. Three
// least-squares lines are fitted (full sample, pre segment, post segment)
// and combined into the F-statistic; the p-value comes from the F(K, n-2K)
// survival function.
//
// Evaluate is referentially transparent: the same series and breakpoint
// always produce the same statistic, and nothing is mutated.
//
// Parameters:
//   - s: The series under test
//   - t: Candidate breakpoint, 1 <= t <= n-1
//
// Returns:
//   - Statistic: The breakpoint with its F-statistic and p-value.
//   - error: ErrInvalidDegreesOfFreedom (wrapped) when n-2K <= 0, a plain
//     error for an out-of-range t, or a wrapped regress.ErrDegenerateSegment
//     when a segment cannot be fitted.
func Evaluate(s *series.Series, t int) (Statistic, error) {
	n := s.Len()
	if n-2*K <= 0 {
		return Statistic{}, fmt.Errorf("%w: series length %d leaves n-2k = %d", ErrInvalidDegreesOfFreedom, n, n-2*K)
	}
	if t < 1 || t >= n {
		return Statistic{}, fmt.Errorf("breakpoint %d out of range [1, %d]", t, n-1)
	}

	x := s.Index()
	y := s.Values()

	full, err := regress.Linear(x, y)
	if err != nil {
		return Statistic{}, fmt.Errorf("full sample fit: %w", err)
	}

	pre, err := regress.Linear(x[:t], y[:t])
	if err != nil {
		return Statistic{}, fmt.Errorf("pre segment [1..%d]: %w", t, err)
	}

	post, err := regress.Linear(x[t:], y[t:])
	if err != nil {
		return Statistic{}, fmt.Errorf("post segment [%d..%d]: %w", t+1, n, err)
	}

	f := fStatistic(full.RSS, pre.RSS+post.RSS, n)

	return Statistic{
		Breakpoint: t,
		F:          f,
		PValue:     pValue(f, n),
	}, nil
}

// fStatistic combines the pooled and split residual sums of squares into the
// Chow F-statistic.
//
// The split regression can never fit worse than the pooled one, so a
// negative improvement is pure floating-point noise and clamps to zero. A
// zero split RSS with a real improvement means both segments fit exactly
// while the pooled line does not: the statistic diverges to +Inf.
func fStatistic(pooled, split float64, n int) float64 {
	improvement := pooled - split
	if improvement <= 0 {
		return 0
	}
	if split == 0 {
		return math.Inf(1)
	}

	return (improvement / K) / (split / float64(n-2*K))
}

// pValue returns the survival of F(K, n-2K) at f.
func pValue(f float64, n int) float64 {
	if math.IsInf(f, 1) {
		return 0
	}
	if f <= 0 {
		return 1
	}

	dist := distuv.F{D1: float64(K), D2: float64(n - 2*K)}

	return dist.Survival(f)
}

// CriticalValue returns the F(K, n-2K) quantile at the given confidence
// level, the default threshold a maximum statistic must exceed to count as
// a structural break.
//
// Parameters:
//   - confidence: Confidence level in (0, 1), e.g. 0.95
//   - n: Series length
//
// Returns:
//   - float64: The critical value.
//   - error: An error for a confidence outside (0, 1), or
//     ErrInvalidDegreesOfFreedom (wrapped) when n-2K <= 0.
func CriticalValue(confidence float64, n int) (float64, error) {
	if confidence <= 0 || confidence >= 1 {
		return 0, fmt.Errorf("confidence must be in (0, 1), got %v", confidence)
	}
	df2 := n - 2*K
	if df2 <= 0 {
		return 0, fmt.Errorf("%w: series length %d leaves n-2k = %d", ErrInvalidDegreesOfFreedom, n, df2)
	}

	dist := distuv.F{D1: float64(K), D2: float64(df2)}

	return dist.Quantile(confidence), nil
}
