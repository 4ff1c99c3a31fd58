package listbench

import (
	"fmt"
	"math"
	"testing"
)

// AssertOrdered fails t unless s is strictly ascending and duplicate free.
func AssertOrdered(t testing.TB, s *OrderedSet) {
	t.Helper()

	vals := s.Values()
	for i := 1; i < len(vals); i++ {
		if vals[i-1] >= vals[i] {
			t.Fatalf("Set not strictly ascending at index %d: %d then %d", i, vals[i-1], vals[i])
		}
	}
	if len(vals) != s.Len() {
		t.Fatalf("Set length mismatch: chain has %d nodes, Len reports %d", len(vals), s.Len())
	}
}

// AssertBalancedSplit verifies the static split of p: per class, the worker
// shares add up to the global target and differ by at most one.
func AssertBalancedSplit(t testing.TB, p Plan) {
	t.Helper()

	var failures []string
	for _, op := range Ops {
		sum, lo, hi := 0, math.MaxInt, math.MinInt
		for i := 0; i < p.Threads; i++ {
			share := SplitQuota(p.Targets[op], p.Threads, i)
			sum += share
			lo = min(lo, share)
			hi = max(hi, share)
		}
		if sum != p.Targets[op] {
			failures = append(failures, fmt.Sprintf("  %v: shares sum to %d, target %d", op, sum, p.Targets[op]))
		}
		if hi-lo > 1 {
			failures = append(failures, fmt.Sprintf("  %v: shares range %d..%d", op, lo, hi))
		}
	}
	if len(failures) > 0 {
		t.Errorf("Unbalanced split over %d threads:\n%s", p.Threads, failures)
	}
}

// AssertRequiredSamples recomputes mean, population standard deviation and
// the required-sample estimate from samples and compares them with s.
func AssertRequiredSamples(t testing.TB, s Summary, samples []Sample) {
	t.Helper()

	if s.Samples != len(samples) {
		t.Fatalf("Summary covers %d samples, have %d", s.Samples, len(samples))
	}

	var mean float64
	for _, x := range samples {
		mean += x.Elapsed.Seconds()
	}
	mean /= float64(len(samples))

	var variance float64
	for _, x := range samples {
		d := x.Elapsed.Seconds() - mean
		variance += d * d
	}
	std := math.Sqrt(variance / float64(len(samples)))

	want := 0.0
	if mean != 0 {
		want = math.Pow(39.2*std/mean, 2)
	}

	if !closeTo(s.Mean, mean) {
		t.Errorf("Mean: got %g, recomputed %g", s.Mean, mean)
	}
	if !closeTo(s.StdDev, std) {
		t.Errorf("StdDev: got %g, recomputed %g", s.StdDev, std)
	}
	if !closeTo(s.RequiredSamples, want) {
		t.Errorf("RequiredSamples: got %g, recomputed (39.2·σ/μ)² = %g", s.RequiredSamples, want)
	}
}

func closeTo(got, want float64) bool {
	return math.Abs(got-want) <= 1e-9*math.Max(1, math.Abs(want))
}

// PrintSummary writes r to the test log.
func PrintSummary(t testing.TB, r Result) {
	t.Helper()

	s := r.Summary
	t.Logf("=== %s ===", r.Strategy.Label())
	t.Logf("  threads=%d samples=%d n=%d m=%d", r.Config.Threads, s.Samples, r.Config.InitialSize, r.Config.Operations)
	t.Logf("  mean=%.6fs std=%.6fs required=%.1f", s.Mean, s.StdDev, s.RequiredSamples)
	t.Logf("  min=%v p50=%v p95=%v max=%v", s.Min, s.P50, s.P95, s.Max)
	t.Logf("  throughput=%.0f ops/sec", s.Throughput)
}

// PrintSweep fits the USL to points and writes the analysis to the test log.
func PrintSweep(t testing.TB, kind StrategyKind, points []SweepPoint) {
	t.Helper()

	t.Logf("=== %s sweep ===", kind.Label())
	t.Logf("  N    Throughput    Mean(s)")
	for _, p := range points {
		t.Logf("  %-4d %12.0f  %9.6f", p.Threads, p.Throughput, p.Summary.Mean)
	}

	c, err := FitUSL(points)
	if err != nil {
		t.Logf("  (no USL fit: %v)", err)
		return
	}
	t.Logf("  λ=%.0f α=%.6f β=%.6f R²=%.4f", c.Lambda, c.Alpha, c.Beta, c.RSquared)
	switch {
	case c.Alpha < 0.01:
		t.Logf("  low contention (α < 0.01)")
	case c.Alpha < 0.05:
		t.Logf("  moderate contention (α < 0.05)")
	default:
		t.Logf("  high contention (α ≥ 0.05)")
	}
}
