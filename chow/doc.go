// Package chow implements single structural-break detection for univariate
// time series using the classical Chow test.
//
// The package answers two questions about a series observed at times 1..n:
// is there a point where the linear trend changes, and if so, where? It does
// this by comparing one least-squares line fitted to the whole sample
// against two lines fitted to the sub-samples before and after a candidate
// breakpoint, for every admissible candidate.
//
// # Key Features
//
//   - Per-candidate Chow F-statistics with exact degrees-of-freedom guards
//   - Exhaustive breakpoint scan under a minimum-segment-length constraint
//   - Deterministic arg-max selection (ties resolve to the earliest index)
//   - Significance judgment against an F-distribution quantile or a pinned
//     critical value
//   - Optional parallel evaluation with output identical to the sequential scan
//
// # The Statistic
//
// For a candidate breakpoint t the series splits into observations 1..t and
// t+1..n. With RSS_pooled the residual sum of squares of the full-sample fit
// and RSS_split the sum of the two segment RSS values, the statistic is
//
//	F = ((RSS_pooled - RSS_split) / k) / (RSS_split / (n - 2k))
//
// where k = 2 parameters (intercept and slope) per regime. Large values mean
// the split explains the data far better than a single line. Under the null
// hypothesis of no break, F follows an F(k, n-2k) distribution, which
// supplies both per-candidate p-values and the default critical value.
//
// # Usage
//
// One-call detection with defaults (minimum segment 10, 95% confidence):
//
//	s, _ := series.New("pcepi", values)
//	report, err := chow.Detect(s)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report)
//
// Fine-grained control over the scan and selection:
//
//	result, err := chow.Scan(s, chow.WithMinSegment(24), chow.WithWorkers(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	decision, err := chow.Select(result, 5.0)
//
// # Failure Modes
//
// Per-candidate failures (a segment too short or flat to fit, or too few
// residual degrees of freedom) are recorded on the ScanResult and skipped;
// they never abort a scan. Two conditions are fatal and always surface as
// errors rather than empty results:
//
//   - ErrEmptySearchSpace: the minimum segment length admits no candidate at
//     all (2L > n)
//   - ErrEmptyScanResult: every candidate in a non-empty search space was
//     skipped
//
// Callers should treat a NoBreak decision as evidence, and an error as the
// absence of evidence.
package chow
