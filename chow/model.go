package chow

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Statistic represents the Chow test outcome for one candidate breakpoint.
//
// Fields:
//   - Breakpoint: The candidate t; the series splits into observations 1..t
//     and t+1..n
//   - F: The Chow F-statistic (always >= 0, may be +Inf for a perfect split)
//   - PValue: Survival of F(k, n-2k) at the statistic
type Statistic struct {
	// Breakpoint is the pre-segment length t of the evaluated split.
	Breakpoint int `json:"breakpoint"`
	// F is the Chow F-statistic.
	F float64 `json:"f_stat"`
	// PValue is the probability of an F at least this large under no break.
	PValue float64 `json:"p_value"`
}

// String returns a string representation of the statistic.
func (s Statistic) String() string {
	return fmt.Sprintf("Statistic{t: %d, F: %.4f, p: %.6f}", s.Breakpoint, s.F, s.PValue)
}

// MarshalJSON encodes the statistic. encoding/json rejects non-finite floats
// and a perfect split legitimately produces F = +Inf, so an infinite F is
// rendered as a string.
func (s Statistic) MarshalJSON() ([]byte, error) {
	if !math.IsInf(s.F, 0) {
		type plain Statistic

		return json.Marshal(plain(s))
	}

	return json.Marshal(struct {
		Breakpoint int     `json:"breakpoint"`
		F          string  `json:"f_stat"`
		PValue     float64 `json:"p_value"`
	}{s.Breakpoint, strconv.FormatFloat(s.F, 'g', -1, 64), s.PValue})
}

// Skip records a candidate breakpoint that could not be evaluated and why.
//
// Skips are expected at the edges of noisy or flat series; they become fatal
// only when every candidate in the search space is skipped.
type Skip struct {
	// Breakpoint is the candidate that was skipped.
	Breakpoint int
	// Reason is the evaluation error, matchable with errors.Is.
	Reason error
}

// String returns a string representation of the skipped candidate.
func (s Skip) String() string {
	return fmt.Sprintf("Skip{t: %d, reason: %v}", s.Breakpoint, s.Reason)
}

// ScanResult represents the outcome of scanning all candidate breakpoints.
//
// Candidates and Skipped are both ordered by ascending breakpoint, and the
// ordering is identical whether the scan ran sequentially or in parallel.
type ScanResult struct {
	// N is the series length the scan ran over.
	N int `json:"n"`
	// MinSegment is the minimum segment length constraint L.
	MinSegment int `json:"min_segment"`
	// Candidates holds one Statistic per successfully evaluated breakpoint,
	// ascending by breakpoint.
	Candidates []Statistic `json:"candidates"`
	// Skipped holds the candidates that failed evaluation, ascending by
	// breakpoint.
	Skipped []Skip `json:"-"`
}

// Max returns the candidate with the largest F-statistic.
//
// When several candidates share the maximum, the earliest breakpoint wins,
// so the result is deterministic. The second return value is false when no
// candidate was evaluated.
func (r *ScanResult) Max() (Statistic, bool) {
	if len(r.Candidates) == 0 {
		return Statistic{}, false
	}

	best := r.Candidates[0]
	for _, c := range r.Candidates[1:] {
		if c.F > best.F {
			best = c
		}
	}

	return best, true
}

// String returns a string representation of the scan result.
func (r *ScanResult) String() string {
	return fmt.Sprintf("ScanResult{N: %d, MinSegment: %d, Candidates: %d, Skipped: %d}",
		r.N, r.MinSegment, len(r.Candidates), len(r.Skipped))
}

// Decision represents the break verdict for a series.
//
// The Breakpoint, F and PValue fields always describe the maximizing
// candidate, whether or not it cleared the critical value; Detected carries
// the significance judgment.
type Decision struct {
	// Detected is true when the maximum F strictly exceeds the critical value.
	Detected bool `json:"detected"`
	// Breakpoint is the arg-max candidate t.
	Breakpoint int `json:"breakpoint"`
	// F is the maximum F-statistic over all evaluated candidates.
	F float64 `json:"f_stat"`
	// PValue is the p-value of the maximizing candidate.
	PValue float64 `json:"p_value"`
	// Critical is the threshold the maximum was judged against.
	Critical float64 `json:"critical_value"`
}

// String returns a string representation of the decision.
func (d Decision) String() string {
	if d.Detected {
		return fmt.Sprintf("BreakAt{t: %d, F: %.4f, critical: %.4f}", d.Breakpoint, d.F, d.Critical)
	}

	return fmt.Sprintf("NoBreak{maxF: %.4f at t: %d, critical: %.4f}", d.F, d.Breakpoint, d.Critical)
}

// MarshalJSON encodes the decision, rendering an infinite F as a string the
// same way Statistic does.
func (d Decision) MarshalJSON() ([]byte, error) {
	if !math.IsInf(d.F, 0) {
		type plain Decision

		return json.Marshal(plain(d))
	}

	return json.Marshal(struct {
		Detected   bool    `json:"detected"`
		Breakpoint int     `json:"breakpoint"`
		F          string  `json:"f_stat"`
		PValue     float64 `json:"p_value"`
		Critical   float64 `json:"critical_value"`
	}{d.Detected, d.Breakpoint, strconv.FormatFloat(d.F, 'g', -1, 64), d.PValue, d.Critical})
}
