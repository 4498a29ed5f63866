// Package regress implements ordinary least squares fitting of a straight
// line, the regression primitive underlying structural-break detection.
package regress

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateSegment reports a segment no line can be fitted to: fewer
// than two observations, or zero variance in the regressor.
var ErrDegenerateSegment = errors.New("degenerate segment")

// Fit represents a fitted line y = Intercept + Slope*x together with its
// residual sum of squares over the fitted observations.
type Fit struct {
	// Intercept is the fitted intercept a.
	Intercept float64 `json:"intercept"`
	// Slope is the fitted slope b.
	Slope float64 `json:"slope"`
	// RSS is the residual sum of squares of the fit.
	RSS float64 `json:"rss"`
	// N is the number of observations the line was fitted to.
	N int `json:"n"`
}

// Predict evaluates the fitted line at x.
func (f Fit) Predict(x float64) float64 {
	return f.Intercept + f.Slope*x
}

// String returns a human-readable representation of the fitted line.
func (f Fit) String() string {
	return fmt.Sprintf("y = %.4f + %.4f*x (RSS=%.4f, n=%d)", f.Intercept, f.Slope, f.RSS, f.N)
}

// Linear fits the model y = a + b*x by ordinary least squares.
//
// The coefficients are computed from the closed-form normal equations and
// the residual sum of squares in a second pass over the data. The function
// is pure: it reads the input slices and modifies nothing.
//
// Parameters:
//   - x: Regressor values (for break detection, the time axis 1..n)
//   - y: Observed values, len(y) == len(x)
//
// Returns:
//   - Fit: The fitted intercept, slope, RSS and observation count.
//   - error: ErrDegenerateSegment (wrapped) if the segment has fewer than
//     two observations or the regressor has zero variance, or a plain error
//     on mismatched input lengths.
//
// Example:
//
//	fit, err := regress.Linear([]float64{1, 2, 3, 4}, []float64{2.1, 3.9, 6.0, 8.1})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	yhat := fit.Predict(5.0)
func Linear(x, y []float64) (Fit, error) {
	n := len(x)
	if n != len(y) {
		return Fit{}, fmt.Errorf("mismatched data lengths: %d x vs %d y", n, len(y))
	}
	if n < 2 {
		return Fit{}, fmt.Errorf("%w: need at least 2 observations, got %d", ErrDegenerateSegment, n)
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i := 0; i < n; i++ {
		xi := x[i]
		yi := y[i]
		sumX += xi
		sumY += yi
		sumXY += xi * yi
		sumX2 += xi * xi
	}

	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	denom := sumX2 - float64(n)*meanX*meanX
	if math.Abs(denom) < 1e-10 {
		return Fit{}, fmt.Errorf("%w: zero variance in regressor", ErrDegenerateSegment)
	}

	b := (sumXY - float64(n)*meanX*meanY) / denom
	a := meanY - b*meanX

	var rss float64
	for i := 0; i < n; i++ {
		residual := y[i] - (a + b*x[i])
		rss += residual * residual
	}

	return Fit{Intercept: a, Slope: b, RSS: rss, N: n}, nil
}
