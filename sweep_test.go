package listbench

import (
	"errors"
	"math"
	"testing"
)

// TestFitUSL_LinearScaling fits ideal linear data: C(N) = 1000·N.
func TestFitUSL_LinearScaling(t *testing.T) {
	points := []SweepPoint{
		{Threads: 1, Throughput: 1000},
		{Threads: 2, Throughput: 2000},
		{Threads: 4, Throughput: 4000},
		{Threads: 8, Throughput: 8000},
	}

	c, err := FitUSL(points)
	if err != nil {
		t.Fatalf("FitUSL failed: %v", err)
	}
	t.Logf("Coefficients: λ=%.2f, α=%.6f, β=%.6f, R²=%.4f", c.Lambda, c.Alpha, c.Beta, c.RSquared)

	if math.Abs(c.Lambda-1000) > 1 {
		t.Errorf("Expected λ ≈ 1000, got %.2f", c.Lambda)
	}
	if math.Abs(c.Alpha) > 0.01 || math.Abs(c.Beta) > 0.01 {
		t.Errorf("Expected α, β ≈ 0, got α=%.6f β=%.6f", c.Alpha, c.Beta)
	}
	for _, p := range points {
		if e := c.Efficiency(p.Threads); math.Abs(e-1) > 0.01 {
			t.Errorf("N=%d: efficiency %.3f, want ≈ 1", p.Threads, e)
		}
	}
}

// TestFitUSL_WithContention fits C(N) = λN / (1 + 0.1(N-1)).
func TestFitUSL_WithContention(t *testing.T) {
	lambda, alpha := 1000.0, 0.1

	var points []SweepPoint
	for _, n := range []int{1, 2, 4, 8, 16} {
		x := float64(n)
		points = append(points, SweepPoint{Threads: n, Throughput: lambda * x / (1 + alpha*(x-1))})
	}

	c, err := FitUSL(points)
	if err != nil {
		t.Fatalf("FitUSL failed: %v", err)
	}
	t.Logf("Coefficients: λ=%.2f, α=%.6f, β=%.6f, R²=%.4f", c.Lambda, c.Alpha, c.Beta, c.RSquared)

	if c.Alpha < 0.09 || c.Alpha > 0.11 {
		t.Errorf("Expected α ≈ 0.1, got α=%.6f", c.Alpha)
	}
	if c.RSquared < 0.99 {
		t.Errorf("Expected a near-perfect fit, got R²=%.4f", c.RSquared)
	}
	if !math.IsInf(c.PeakThreads(), 1) && c.PeakThreads() < 16 {
		t.Errorf("contention-only data should not peak before N=16, got %.1f", c.PeakThreads())
	}
}

func TestFitUSL_Retrograde(t *testing.T) {
	c0 := USLCoefficients{Lambda: 1000, Alpha: 0.05, Beta: 0.01}
	var points []SweepPoint
	for _, n := range []int{1, 2, 4, 8, 16, 32} {
		points = append(points, SweepPoint{Threads: n, Throughput: c0.PredictThroughput(n)})
	}

	c, err := FitUSL(points)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(c.Beta-0.01) > 1e-3 {
		t.Errorf("Expected β ≈ 0.01, got %.6f", c.Beta)
	}
	// sqrt(0.95 / 0.01) ≈ 9.7
	if peak := c.PeakThreads(); peak < 9 || peak > 10.5 {
		t.Errorf("PeakThreads = %.2f, want ≈ 9.7", peak)
	}
}

func TestFitUSL_TooFewPoints(t *testing.T) {
	_, err := FitUSL([]SweepPoint{{Threads: 1, Throughput: 1}, {Threads: 2, Throughput: 2}})
	if err == nil {
		t.Fatal("expected error for two points")
	}
}

func TestSweep_SerialOnlyAtOneThread(t *testing.T) {
	_, err := Sweep(Serial, smallConfig(), []int{1, 2})
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("got %v, want ErrConfig", err)
	}
}

func TestSweep_InvalidLevel(t *testing.T) {
	_, err := Sweep(ReaderWriter, smallConfig(), []int{1, 0}, WithLogger(quietLogger()))
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("got %v, want ErrConfig", err)
	}
}

func TestSweep_Strategies(t *testing.T) {
	cfg := smallConfig()
	cfg.Samples = 3
	levels := []int{1, 2, 4}

	for _, kind := range []StrategyKind{GlobalExclusive, ReaderWriter} {
		points, err := Sweep(kind, cfg, levels, WithLogger(quietLogger()))
		if err != nil {
			t.Fatalf("%v: %v", kind, err)
		}
		if len(points) != len(levels) {
			t.Fatalf("%v: got %d points, want %d", kind, len(points), len(levels))
		}
		for i, p := range points {
			if p.Threads != levels[i] {
				t.Errorf("%v: point %d has N=%d, want %d", kind, i, p.Threads, levels[i])
			}
			if p.Throughput <= 0 {
				t.Errorf("%v: N=%d throughput %g", kind, p.Threads, p.Throughput)
			}
		}
		PrintSweep(t, kind, points)
	}
}
