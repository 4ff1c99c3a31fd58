package listbench

import (
	"math"
	"slices"
	"time"
)

// Confidence parameters of the required-sample estimate: a 95% confidence
// interval (z = 1.96) within 5% of the mean.
const (
	zScore          = 1.96
	accuracyPercent = 5.0
)

// Sample is one timed repetition.
type Sample struct {
	Elapsed    time.Duration // Wall clock from first worker start to last worker exit
	Operations int           // Operations executed by all workers
	FinalSize  int           // Set size after the run
}

// Summary aggregates the samples of one run.
type Summary struct {
	Samples         int
	Mean            float64 // Seconds
	StdDev          float64 // Seconds, population (divisor Samples)
	RequiredSamples float64 // Samples needed for 95% confidence at 5% accuracy
	Throughput      float64 // Operations per second at the mean sample time

	Min time.Duration
	Max time.Duration
	P50 time.Duration
	P95 time.Duration
	P99 time.Duration
}

// Summarize computes the mean, population standard deviation, required
// sample count and percentiles of samples.
func Summarize(samples []Sample) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	n := float64(len(samples))
	var sum float64
	var ops int
	for _, s := range samples {
		sum += s.Elapsed.Seconds()
		ops += s.Operations
	}
	mean := sum / n

	var variance float64
	for _, s := range samples {
		d := s.Elapsed.Seconds() - mean
		variance += d * d
	}
	std := math.Sqrt(variance / n)

	sorted := make([]time.Duration, len(samples))
	for i, s := range samples {
		sorted[i] = s.Elapsed
	}
	slices.Sort(sorted)

	summary := Summary{
		Samples:         len(samples),
		Mean:            mean,
		StdDev:          std,
		RequiredSamples: RequiredSamples(mean, std),
		Min:             sorted[0],
		Max:             sorted[len(sorted)-1],
		P50:             sorted[len(sorted)*50/100],
		P95:             sorted[len(sorted)*95/100],
		P99:             sorted[len(sorted)*99/100],
	}
	if mean > 0 {
		summary.Throughput = float64(ops) / n / mean
	}
	return summary
}

// RequiredSamples returns (100·z·std / (accuracy·mean))², the number of
// samples needed to estimate the mean within 5% at 95% confidence, assuming
// normally distributed sample times. It returns 0 when mean is 0.
func RequiredSamples(mean, std float64) float64 {
	if mean == 0 {
		return 0
	}
	r := 100 * zScore * std / (accuracyPercent * mean)
	return r * r
}
