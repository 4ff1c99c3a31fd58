package listbench

import (
	"math"
	"testing"
	"time"
)

func samplesOf(ds ...time.Duration) []Sample {
	out := make([]Sample, len(ds))
	for i, d := range ds {
		out[i] = Sample{Elapsed: d, Operations: 1000}
	}
	return out
}

// TestSummarize verifies mean, population standard deviation and percentiles.
func TestSummarize(t *testing.T) {
	samples := samplesOf(
		100*time.Microsecond,
		200*time.Microsecond,
		300*time.Microsecond,
		400*time.Microsecond,
		500*time.Microsecond,
	)

	s := Summarize(samples)

	if !closeTo(s.Mean, 300e-6) {
		t.Errorf("Mean: expected 300µs, got %gs", s.Mean)
	}

	// population variance: (200² + 100² + 0 + 100² + 200²) / 5 = 20000 µs²
	wantStd := math.Sqrt(20000) * 1e-6
	if !closeTo(s.StdDev, wantStd) {
		t.Errorf("StdDev: expected %g, got %g", wantStd, s.StdDev)
	}

	wantReq := math.Pow(39.2*wantStd/300e-6, 2)
	if !closeTo(s.RequiredSamples, wantReq) {
		t.Errorf("RequiredSamples: expected %g, got %g", wantReq, s.RequiredSamples)
	}

	if s.P50 != 300*time.Microsecond {
		t.Errorf("P50: expected 300µs, got %v", s.P50)
	}
	if s.Min != 100*time.Microsecond || s.Max != 500*time.Microsecond {
		t.Errorf("Min/Max: got %v/%v", s.Min, s.Max)
	}

	if want := 1000 / 300e-6; !closeTo(s.Throughput, want) {
		t.Errorf("Throughput: expected %g, got %g", want, s.Throughput)
	}

	AssertRequiredSamples(t, s, samples)
	t.Logf("Stats: mean=%gs std=%gs required=%.2f p50=%v p95=%v",
		s.Mean, s.StdDev, s.RequiredSamples, s.P50, s.P95)
}

func TestSummarize_PopulationNotSampleDeviation(t *testing.T) {
	s := Summarize(samplesOf(time.Second, 3*time.Second))
	// population: sqrt(((1-2)² + (3-2)²) / 2) = 1; sample deviation would be √2
	if !closeTo(s.StdDev, 1) {
		t.Errorf("StdDev = %g, want 1", s.StdDev)
	}
}

func TestSummarize_ConstantSamples(t *testing.T) {
	s := Summarize(samplesOf(time.Millisecond, time.Millisecond, time.Millisecond))
	if s.StdDev != 0 || s.RequiredSamples != 0 {
		t.Errorf("constant samples: std=%g required=%g, want 0, 0", s.StdDev, s.RequiredSamples)
	}
}

func TestSummarize_ZeroMean(t *testing.T) {
	s := Summarize(samplesOf(0, 0))
	if math.IsNaN(s.RequiredSamples) || s.RequiredSamples != 0 {
		t.Errorf("RequiredSamples = %g, want 0", s.RequiredSamples)
	}
	if s.Throughput != 0 {
		t.Errorf("Throughput = %g, want 0", s.Throughput)
	}
}

func TestSummarize_Empty(t *testing.T) {
	if s := Summarize(nil); s != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero", s)
	}
}

func TestRequiredSamples(t *testing.T) {
	// σ/μ = 0.1 → (39.2 · 0.1)² = 15.3664
	if got := RequiredSamples(2, 0.2); !closeTo(got, 15.3664) {
		t.Errorf("RequiredSamples(2, 0.2) = %g, want 15.3664", got)
	}
	if got := RequiredSamples(0, 1); got != 0 {
		t.Errorf("RequiredSamples(0, 1) = %g, want 0", got)
	}
}
