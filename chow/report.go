package chow

import (
	"fmt"
	"strings"
	"time"

	"github.com/arloliu/breakscan/internal/options"
	"github.com/arloliu/breakscan/regress"
	"github.com/arloliu/breakscan/series"
)

// Report represents the complete outcome of break detection on one series:
// the verdict plus the regression lines refitted at the maximizing
// breakpoint, ready for rendering or export.
type Report struct {
	// Series is the series name.
	Series string `json:"series"`
	// Fingerprint is the xxHash64 digest of the observations, hex encoded.
	Fingerprint string `json:"fingerprint"`
	// N is the series length.
	N int `json:"n"`
	// MinSegment is the minimum segment length used by the scan.
	MinSegment int `json:"min_segment"`
	// Confidence is the configured confidence level. When an explicit
	// critical value was pinned, Decision.Critical is authoritative.
	Confidence float64 `json:"confidence"`
	// Decision is the break verdict.
	Decision Decision `json:"decision"`
	// Full is the full-sample fit.
	Full regress.Fit `json:"full"`
	// Pre is the fit over observations 1..t at the maximizing breakpoint.
	Pre regress.Fit `json:"pre"`
	// Post is the fit over observations t+1..n at the maximizing breakpoint.
	Post regress.Fit `json:"post"`
	// BreakTime is the timestamp of the first post-break observation, when
	// the series carries timestamps.
	BreakTime *time.Time `json:"break_time,omitempty"`
	// Scan holds the full per-candidate table for plotting and export.
	Scan *ScanResult `json:"-"`
}

// Detect runs the complete detection pipeline on a series: scan all
// candidates, judge the maximum against the critical value, and refit the
// three regression lines at the selected breakpoint.
//
// The critical value defaults to the F(K, n-2K) quantile at the configured
// confidence level; WithCriticalValue pins an explicit threshold instead.
//
// Parameters:
//   - s: The series under test
//   - opts: Optional configuration (WithMinSegment, WithConfidence,
//     WithCriticalValue, WithWorkers)
//
// Returns:
//   - *Report: The verdict with per-regime fits and the candidate table.
//   - error: An option validation error, or any error surfaced by the scan
//     or selection (see Scan and Select).
//
// Example:
//
//	report, err := chow.Detect(s, chow.WithMinSegment(24))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if report.Decision.Detected {
//	    fmt.Printf("break at t=%d\n", report.Decision.Breakpoint)
//	}
func Detect(s *series.Series, opts ...Option) (*Report, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	result, err := scanWithConfig(s, cfg)
	if err != nil {
		return nil, err
	}

	critical := cfg.Critical
	if critical == 0 {
		critical, err = CriticalValue(cfg.Confidence, s.Len())
		if err != nil {
			return nil, err
		}
	}

	decision, err := Select(result, critical)
	if err != nil {
		return nil, err
	}

	report, err := buildReport(s, cfg, result, decision)
	if err != nil {
		return nil, err
	}

	return report, nil
}

// buildReport refits the three regimes at the decided breakpoint and
// assembles the report. The fits repeat work already done during
// evaluation, so failures here indicate a bug rather than bad data; they
// are propagated regardless.
func buildReport(s *series.Series, cfg Config, result *ScanResult, decision Decision) (*Report, error) {
	x := s.Index()
	y := s.Values()
	t := decision.Breakpoint

	full, err := regress.Linear(x, y)
	if err != nil {
		return nil, fmt.Errorf("refit full sample: %w", err)
	}
	pre, err := regress.Linear(x[:t], y[:t])
	if err != nil {
		return nil, fmt.Errorf("refit pre segment: %w", err)
	}
	post, err := regress.Linear(x[t:], y[t:])
	if err != nil {
		return nil, fmt.Errorf("refit post segment: %w", err)
	}

	report := &Report{
		Series:      s.Name(),
		Fingerprint: fmt.Sprintf("%016x", s.Fingerprint()),
		N:           s.Len(),
		MinSegment:  cfg.MinSegment,
		Confidence:  cfg.Confidence,
		Decision:    decision,
		Full:        full,
		Pre:         pre,
		Post:        post,
		Scan:        result,
	}

	// The first post-break observation dates the regime change.
	if bt, ok := s.TimeAt(t); ok {
		report.BreakTime = &bt
	}

	return report, nil
}

// String renders the report as a human-readable summary block.
func (r *Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Series: %s (n=%d, fingerprint=%s)\n", r.Series, r.N, r.Fingerprint)

	d := r.Decision
	if d.Detected {
		fmt.Fprintf(&b, "Break detected at t=%d", d.Breakpoint)
		if r.BreakTime != nil {
			fmt.Fprintf(&b, " (%s)", r.BreakTime.Format("2006-01-02"))
		}
		fmt.Fprintf(&b, ": F=%.4f > critical=%.4f\n", d.F, d.Critical)
	} else {
		fmt.Fprintf(&b, "No break detected: max F=%.4f at t=%d, critical=%.4f\n", d.F, d.Breakpoint, d.Critical)
	}

	fmt.Fprintf(&b, "p-value: %.6f under F(%d, %d)\n", d.PValue, K, r.N-2*K)
	fmt.Fprintf(&b, "Full:  %s\n", r.Full)
	fmt.Fprintf(&b, "Pre:   %s\n", r.Pre)
	fmt.Fprintf(&b, "Post:  %s\n", r.Post)

	if r.Scan != nil {
		fmt.Fprintf(&b, "Candidates evaluated: %d, skipped: %d", len(r.Scan.Candidates), len(r.Scan.Skipped))
	}

	return b.String()
}
