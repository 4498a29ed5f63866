// Package breakscan detects structural breaks in univariate time series
// using the Chow test.
//
// A structural break is a point where the linear trend of a series changes:
// the observations before the break follow one regression line and the
// observations after it follow another. Breakscan scans every admissible
// breakpoint, fits ordinary least squares lines to the pooled sample and to
// both segments, and computes the Chow F-statistic from the residual sum of
// squares improvement. The breakpoint with the largest statistic is judged
// against a critical value from the F-distribution.
//
// # Core Features
//
//   - Exhaustive breakpoint scan under a minimum segment length constraint
//   - Chow F-statistic and p-value per candidate breakpoint
//   - Significance judgment against a derived or pinned critical value
//   - Per-regime regression fits (full, pre-break, post-break) in the report
//   - Timestamped series support: the report dates the detected break
//   - Optional parallel scanning for long series
//   - CSV ingestion and curve/report export through the dataset package
//
// # Basic Usage
//
// Detecting a break in raw observations:
//
//	import "github.com/arloliu/breakscan"
//
//	report, err := breakscan.Detect(values)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if report.Decision.Detected {
//	    fmt.Printf("break after observation %d (F=%.2f)\n",
//	        report.Decision.Breakpoint, report.Decision.F)
//	}
//
// Detecting a break in a dated series loaded from disk:
//
//	s, err := dataset.LoadCSV("pcepi.csv",
//	    dataset.WithValueColumn("PCEPI"),
//	    dataset.WithTimeColumn("observation_date"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := breakscan.DetectSeries(s, chow.WithMinSegment(24))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the chow
// package, simplifying the most common use cases. For fine-grained control
// (standalone candidate evaluation, raw scan tables, custom selection
// thresholds), use the chow, series and regress packages directly.
package breakscan

import (
	"github.com/arloliu/breakscan/chow"
	"github.com/arloliu/breakscan/internal/hash"
	"github.com/arloliu/breakscan/series"
)

// Detect runs break detection over raw observations.
//
// The observations are wrapped in an unnamed series with the implicit time
// axis 1..n. Use DetectSeries to attach a name or real timestamps to the
// report.
//
// Parameters:
//   - values: Observation values, ordered; must be finite and non-empty
//   - opts: Optional configuration (chow.WithMinSegment, chow.WithConfidence,
//     chow.WithCriticalValue, chow.WithWorkers)
//
// Returns:
//   - *chow.Report: The verdict with per-regime fits and the candidate table.
//   - error: A series validation error, an option validation error, or any
//     error surfaced by the scan.
//
// Example:
//
//	report, err := breakscan.Detect(values, chow.WithMinSegment(24))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Decision)
func Detect(values []float64, opts ...chow.Option) (*chow.Report, error) {
	s, err := series.New("", values)
	if err != nil {
		return nil, err
	}

	return chow.Detect(s, opts...)
}

// DetectSeries runs break detection over a constructed series.
//
// Use this instead of Detect when the series carries a name or timestamps;
// the report then includes the fingerprint-tagged name and dates the break.
//
// Parameters:
//   - s: The series under test
//   - opts: Optional configuration (see Detect)
//
// Returns:
//   - *chow.Report: The verdict with per-regime fits and the candidate table.
//   - error: An option validation error or any error surfaced by the scan.
//
// Example:
//
//	s, err := series.NewTimed("pcepi", values, times)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := breakscan.DetectSeries(s)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if report.BreakTime != nil {
//	    fmt.Printf("regime change on %s\n", report.BreakTime.Format("2006-01-02"))
//	}
func DetectSeries(s *series.Series, opts ...chow.Option) (*chow.Report, error) {
	return chow.Detect(s, opts...)
}

// Scan evaluates the Chow statistic at every admissible breakpoint of raw
// observations without judging significance.
//
// Use this when you want the full F-statistic curve, for plotting or for a
// custom selection rule. Detect wraps the same scan and adds the verdict.
//
// Parameters:
//   - values: Observation values, ordered; must be finite and non-empty
//   - opts: Optional configuration (see Detect)
//
// Returns:
//   - *chow.ScanResult: One statistic per evaluated candidate, ascending by
//     breakpoint.
//   - error: A series validation error, an option validation error, or a
//     scan failure (empty search space, all candidates skipped).
//
// Example:
//
//	result, err := breakscan.Scan(values)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range result.Candidates {
//	    fmt.Printf("t=%d F=%.4f\n", c.Breakpoint, c.F)
//	}
func Scan(values []float64, opts ...chow.Option) (*chow.ScanResult, error) {
	s, err := series.New("", values)
	if err != nil {
		return nil, err
	}

	return chow.Scan(s, opts...)
}

// ScanSeries evaluates the Chow statistic at every admissible breakpoint of
// a constructed series without judging significance.
//
// Parameters:
//   - s: The series under test
//   - opts: Optional configuration (see Detect)
//
// Returns:
//   - *chow.ScanResult: One statistic per evaluated candidate, ascending by
//     breakpoint.
//   - error: An option validation error or a scan failure.
func ScanSeries(s *series.Series, opts ...chow.Option) (*chow.ScanResult, error) {
	return chow.Scan(s, opts...)
}

// SeriesID converts a series name to its 64-bit hash identifier.
//
// Breakscan uses xxHash64 to derive fixed-size IDs from human-readable
// names, for keying reports and scan artifacts in external stores.
//
// The hash function guarantees:
//   - Deterministic: same input always produces same output
//   - Collision-resistant: extremely low probability of collisions
//   - Fast: ~1-2 ns per hash on modern CPUs
//
// Example:
//
//	id := breakscan.SeriesID("pcepi.monthly")
func SeriesID(name string) uint64 {
	return hash.ID(name)
}

// Fingerprint computes the 64-bit content fingerprint of observation values.
//
// The fingerprint depends on the values and their order but not on the
// series name or timestamps, so re-running a detection on the same data
// yields a report with the same fingerprint. Report.Fingerprint carries
// this value hex encoded.
//
// Example:
//
//	fp := breakscan.Fingerprint(values)
//	fmt.Printf("%016x\n", fp)
func Fingerprint(values []float64) uint64 {
	return hash.Fingerprint(values)
}
