package listbench

import (
	"fmt"
	"math"
)

// DefaultLevels are the thread counts a sweep visits when none are given.
var DefaultLevels = []int{1, 2, 4, 8, 16}

// SweepPoint is the outcome of one thread count in a sweep.
type SweepPoint struct {
	Threads    int
	Summary    Summary
	Throughput float64 // Operations per second
}

// USLCoefficients are the fitted Universal Scalability Law parameters.
type USLCoefficients struct {
	Lambda   float64 // λ: throughput of one worker (ops/sec)
	Alpha    float64 // α: contention
	Beta     float64 // β: coherency
	RSquared float64 // R²: goodness of fit
}

// Sweep runs a full harness for kind at each thread count in levels.
// Serial is only meaningful at one thread and rejects any other level.
func Sweep(kind StrategyKind, cfg Config, levels []int, opts ...Option) ([]SweepPoint, error) {
	if len(levels) == 0 {
		levels = DefaultLevels
	}

	points := make([]SweepPoint, 0, len(levels))
	for _, n := range levels {
		if kind == Serial && n != 1 {
			return nil, configErrorf("threads", "serial runs with exactly 1 thread, got level %d", n)
		}
		c := cfg
		c.Threads = n
		h, err := NewHarness(kind, c, opts...)
		if err != nil {
			return nil, fmt.Errorf("sweep at N=%d: %w", n, err)
		}
		res := h.Run()
		points = append(points, SweepPoint{
			Threads:    n,
			Summary:    res.Summary,
			Throughput: res.Summary.Throughput,
		})
	}
	return points, nil
}

// FitUSL fits C(N) = λN / (1 + α(N-1) + βN(N-1)) to points by least squares
// on the linear form
//
//	N/C(N) = 1/λ + (α/λ)(N-1) + (β/λ)N(N-1)
//
// A negative β is treated as fitting noise and the contention-only model
// (β = 0) is fitted instead. At least three points are required.
func FitUSL(points []SweepPoint) (USLCoefficients, error) {
	if len(points) < 3 {
		return USLCoefficients{}, fmt.Errorf("need at least 3 sweep points, got %d", len(points))
	}

	// Normal equations A·b = y for the basis [1, N-1, N(N-1)].
	var a [3][3]float64
	var y [3]float64
	for _, p := range points {
		if p.Throughput <= 0 {
			continue
		}
		n := float64(p.Threads)
		x := [3]float64{1, n - 1, n * (n - 1)}
		obs := n / p.Throughput
		for i := range x {
			for j := range x {
				a[i][j] += x[i] * x[j]
			}
			y[i] += x[i] * obs
		}
	}

	b, ok := solve3(a, y)
	if !ok {
		return USLCoefficients{Lambda: points[0].Throughput}, nil
	}
	lambda, alpha, beta := 1/b[0], b[1]/b[0], b[2]/b[0]

	if beta < 0 && alpha > 0 {
		det := a[0][0]*a[1][1] - a[0][1]*a[1][0]
		if math.Abs(det) > 1e-10 {
			b0 := (a[1][1]*y[0] - a[0][1]*y[1]) / det
			b1 := (a[0][0]*y[1] - a[1][0]*y[0]) / det
			lambda, alpha, beta = 1/b0, b1/b0, 0
		}
	}

	c := USLCoefficients{Lambda: lambda, Alpha: alpha, Beta: beta}
	c.RSquared = rSquared(points, c)
	return c, nil
}

// solve3 solves a 3x3 system by Cramer's rule. It reports false when the
// system is (nearly) singular.
func solve3(a [3][3]float64, y [3]float64) ([3]float64, bool) {
	det := det3(a)
	if math.Abs(det) < 1e-10 {
		return [3]float64{}, false
	}
	var out [3]float64
	for col := range out {
		m := a
		for row := range m {
			m[row][col] = y[row]
		}
		out[col] = det3(m) / det
	}
	return out, true
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func rSquared(points []SweepPoint, c USLCoefficients) float64 {
	var mean float64
	for _, p := range points {
		mean += p.Throughput
	}
	mean /= float64(len(points))

	var ssRes, ssTot float64
	for _, p := range points {
		d := p.Throughput - c.PredictThroughput(p.Threads)
		ssRes += d * d
		ssTot += (p.Throughput - mean) * (p.Throughput - mean)
	}
	if ssTot == 0 {
		return 1
	}
	return 1 - ssRes/ssTot
}

// PredictThroughput returns the modelled throughput at n workers.
func (c USLCoefficients) PredictThroughput(n int) float64 {
	x := float64(n)
	return c.Lambda * x / (1 + c.Alpha*(x-1) + c.Beta*x*(x-1))
}

// Efficiency is modelled throughput over ideal linear throughput at n.
func (c USLCoefficients) Efficiency(n int) float64 {
	ideal := c.Lambda * float64(n)
	if ideal == 0 {
		return 0
	}
	return c.PredictThroughput(n) / ideal
}

// PeakThreads is the worker count with the highest modelled throughput,
// sqrt((1-α)/β). It is +Inf when β is not positive.
func (c USLCoefficients) PeakThreads() float64 {
	if c.Beta <= 0 {
		return math.Inf(1)
	}
	return math.Sqrt((1 - c.Alpha) / c.Beta)
}
