package chow_test

import (
	"fmt"
	"log"

	"github.com/arloliu/breakscan/chow"
	"github.com/arloliu/breakscan/series"
)

// ExampleDetect demonstrates one-call break detection on a series with an
// obvious regime change.
func ExampleDetect() {
	// Ten observations on y = x, then ten on a steeper line.
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 20, 22, 24, 26, 28, 30, 32, 34, 36, 38}

	s, err := series.New("demo", values)
	if err != nil {
		log.Fatal(err)
	}

	report, err := chow.Detect(s, chow.WithMinSegment(5), chow.WithCriticalValue(5.0))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("detected=%v breakpoint=%d\n", report.Decision.Detected, report.Decision.Breakpoint)
	fmt.Printf("pre slope=%.1f post slope=%.1f\n", report.Pre.Slope, report.Post.Slope)

	// Output:
	// detected=true breakpoint=10
	// pre slope=1.0 post slope=2.0
}

// ExampleScan demonstrates the two-step scan-then-select flow for callers
// that want the full candidate table.
func ExampleScan() {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 20, 22, 24, 26, 28, 30, 32, 34, 36, 38}

	s, err := series.New("demo", values)
	if err != nil {
		log.Fatal(err)
	}

	result, err := chow.Scan(s, chow.WithMinSegment(5))
	if err != nil {
		log.Fatal(err)
	}

	decision, err := chow.Select(result, 5.0)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("candidates=%d\n", len(result.Candidates))
	fmt.Println(decision.Detected, decision.Breakpoint)

	// Output:
	// candidates=11
	// true 10
}
