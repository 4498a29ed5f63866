package chow

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/arloliu/breakscan/regress"
	"github.com/arloliu/breakscan/series"
)

// plantedBreakValues returns a 20-point series that follows y = x for the
// first ten observations and jumps to a steeper line afterwards.
func plantedBreakValues() []float64 {
	values := make([]float64, 0, 20)
	for i := 1; i <= 10; i++ {
		values = append(values, float64(i))
	}
	for i := 0; i < 10; i++ {
		values = append(values, float64(20+2*i))
	}

	return values
}

func mustSeries(t *testing.T, name string, values []float64) *series.Series {
	t.Helper()
	s, err := series.New(name, values)
	if err != nil {
		t.Fatalf("series.New failed: %v", err)
	}

	return s
}

func TestEvaluatePlantedBreak(t *testing.T) {
	s := mustSeries(t, "planted", plantedBreakValues())

	stat, err := Evaluate(s, 10)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	// Both segments are exactly collinear, so the split RSS is exactly zero
	// while the pooled line misses badly: the statistic diverges.
	if !math.IsInf(stat.F, 1) {
		t.Errorf("F = %v, want +Inf", stat.F)
	}
	if stat.PValue != 0 {
		t.Errorf("PValue = %v, want 0", stat.PValue)
	}
	if stat.Breakpoint != 10 {
		t.Errorf("Breakpoint = %d, want 10", stat.Breakpoint)
	}
}

func TestEvaluatePerfectLine(t *testing.T) {
	values := make([]float64, 20)
	for i := range values {
		values[i] = float64(i + 1)
	}
	s := mustSeries(t, "line", values)

	for _, bp := range []int{5, 10, 15} {
		stat, err := Evaluate(s, bp)
		if err != nil {
			t.Fatalf("Evaluate(%d) failed: %v", bp, err)
		}
		// Pooled and split fits are both exact: no improvement, no break.
		if stat.F != 0 {
			t.Errorf("Evaluate(%d): F = %v, want 0", bp, stat.F)
		}
		if stat.PValue != 1 {
			t.Errorf("Evaluate(%d): PValue = %v, want 1", bp, stat.PValue)
		}
	}
}

func TestEvaluateDegreesOfFreedomGuard(t *testing.T) {
	s := mustSeries(t, "short", []float64{1, 2, 3, 4})

	_, err := Evaluate(s, 2)
	if err == nil {
		t.Fatal("expected error for n-2k <= 0")
	}
	if !errors.Is(err, ErrInvalidDegreesOfFreedom) {
		t.Errorf("error = %v, want ErrInvalidDegreesOfFreedom", err)
	}
}

func TestEvaluateBreakpointRange(t *testing.T) {
	s := mustSeries(t, "range", []float64{1, 2, 4, 8, 16})

	for _, bp := range []int{0, -1, 5, 6} {
		if _, err := Evaluate(s, bp); err == nil {
			t.Errorf("Evaluate(%d): expected out-of-range error", bp)
		}
	}
}

func TestEvaluateDegenerateSegment(t *testing.T) {
	s := mustSeries(t, "edge", []float64{1, 2, 4, 8, 16})

	// t=1 leaves a single-observation pre segment.
	_, err := Evaluate(s, 1)
	if err == nil {
		t.Fatal("expected error for single-observation segment")
	}
	if !errors.Is(err, regress.ErrDegenerateSegment) {
		t.Errorf("error = %v, want regress.ErrDegenerateSegment", err)
	}
}

func TestFStatistic(t *testing.T) {
	tests := []struct {
		name   string
		pooled float64
		split  float64
		n      int
		want   float64
	}{
		{"known value", 10, 4, 20, 12}, // ((10-4)/2) / (4/16)
		{"no improvement", 4, 4, 20, 0},
		{"negative improvement", 4, 10, 20, 0},
		{"both zero", 0, 0, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fStatistic(tt.pooled, tt.split, tt.n); got != tt.want {
				t.Errorf("fStatistic(%v, %v, %d) = %v, want %v", tt.pooled, tt.split, tt.n, got, tt.want)
			}
		})
	}

	t.Run("perfect split", func(t *testing.T) {
		if got := fStatistic(5, 0, 20); !math.IsInf(got, 1) {
			t.Errorf("fStatistic(5, 0, 20) = %v, want +Inf", got)
		}
	})
}

func TestPValue(t *testing.T) {
	// Larger statistics must yield smaller tail probabilities.
	p1 := pValue(1, 20)
	p5 := pValue(5, 20)
	p50 := pValue(50, 20)

	if !(p1 > p5 && p5 > p50) {
		t.Errorf("p-values not decreasing in F: p(1)=%v p(5)=%v p(50)=%v", p1, p5, p50)
	}
	for _, p := range []float64{p1, p5, p50} {
		if p < 0 || p > 1 {
			t.Errorf("p-value out of [0, 1]: %v", p)
		}
	}

	if got := pValue(math.Inf(1), 20); got != 0 {
		t.Errorf("pValue(+Inf) = %v, want 0", got)
	}
	if got := pValue(0, 20); got != 1 {
		t.Errorf("pValue(0) = %v, want 1", got)
	}
}

func TestCriticalValue(t *testing.T) {
	// Standard table values for the F(2, 16) distribution.
	got, err := CriticalValue(0.95, 20)
	if err != nil {
		t.Fatalf("CriticalValue failed: %v", err)
	}
	if math.Abs(got-3.634) > 0.01 {
		t.Errorf("CriticalValue(0.95, 20) = %v, want ~3.634", got)
	}

	got99, err := CriticalValue(0.99, 20)
	if err != nil {
		t.Fatalf("CriticalValue failed: %v", err)
	}
	if math.Abs(got99-6.226) > 0.01 {
		t.Errorf("CriticalValue(0.99, 20) = %v, want ~6.226", got99)
	}

	if got99 <= got {
		t.Errorf("critical value must grow with confidence: %v <= %v", got99, got)
	}
}

func TestCriticalValueGuards(t *testing.T) {
	for _, confidence := range []float64{0, 1, -0.5, 1.5} {
		if _, err := CriticalValue(confidence, 20); err == nil {
			t.Errorf("CriticalValue(%v, 20): expected error", confidence)
		}
	}

	_, err := CriticalValue(0.95, 4)
	if err == nil {
		t.Fatal("expected error for n-2k <= 0")
	}
	if !errors.Is(err, ErrInvalidDegreesOfFreedom) {
		t.Errorf("error = %v, want ErrInvalidDegreesOfFreedom", err)
	}
}

func TestStatisticString(t *testing.T) {
	stat := Statistic{Breakpoint: 10, F: 12.5, PValue: 0.000123}
	want := "Statistic{t: 10, F: 12.5000, p: 0.000123}"
	if got := stat.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStatisticMarshalJSON(t *testing.T) {
	finite := Statistic{Breakpoint: 10, F: 12.5, PValue: 0.25}
	data, err := json.Marshal(finite)
	if err != nil {
		t.Fatalf("marshal finite statistic: %v", err)
	}
	want := `{"breakpoint":10,"f_stat":12.5,"p_value":0.25}`
	if string(data) != want {
		t.Errorf("finite statistic = %s, want %s", data, want)
	}

	infinite := Statistic{Breakpoint: 10, F: math.Inf(1), PValue: 0}
	data, err = json.Marshal(infinite)
	if err != nil {
		t.Fatalf("marshal infinite statistic: %v", err)
	}
	want = `{"breakpoint":10,"f_stat":"+Inf","p_value":0}`
	if string(data) != want {
		t.Errorf("infinite statistic = %s, want %s", data, want)
	}
}

func TestDecisionMarshalJSON(t *testing.T) {
	finite := Decision{Detected: true, Breakpoint: 10, F: 12.5, PValue: 0.25, Critical: 3.5}
	data, err := json.Marshal(finite)
	if err != nil {
		t.Fatalf("marshal finite decision: %v", err)
	}
	want := `{"detected":true,"breakpoint":10,"f_stat":12.5,"p_value":0.25,"critical_value":3.5}`
	if string(data) != want {
		t.Errorf("finite decision = %s, want %s", data, want)
	}

	infinite := Decision{Detected: true, Breakpoint: 10, F: math.Inf(1), PValue: 0, Critical: 3.5}
	data, err = json.Marshal(infinite)
	if err != nil {
		t.Fatalf("marshal infinite decision: %v", err)
	}
	want = `{"detected":true,"breakpoint":10,"f_stat":"+Inf","p_value":0,"critical_value":3.5}`
	if string(data) != want {
		t.Errorf("infinite decision = %s, want %s", data, want)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	values := make([]float64, 500)
	for i := range values {
		values[i] = 0.3*float64(i+1) + math.Sin(float64(i))
	}
	s, err := series.New("bench", values)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Evaluate(s, 250); err != nil {
			b.Fatal(err)
		}
	}
}
