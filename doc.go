// Package listbench measures how synchronization granularity affects the
// throughput of a shared sorted linked list under mixed read/write traffic.
//
// # Overview
//
// A benchmark run repeats one sample S times. Each sample builds a fresh
// [OrderedSet], populates it with n random values, then lets T workers
// execute m operations (Member, Insert, Delete) drawn at random in the
// configured proportions. The elapsed time of every sample is collected and
// reduced to a mean, a population standard deviation and the minimum number
// of samples needed for a 95% confidence, 5% accuracy estimate of the mean.
//
// # Strategies
//
// Three synchronization disciplines are compared:
//
//   - Serial:          no locking, a single worker (baseline)
//   - GlobalExclusive: one mutex around every operation and its quota bookkeeping
//   - ReaderWriter:    RWMutex, shared for Member, exclusive for Insert/Delete
//
// GlobalExclusive shares one quota ledger between all workers, so the mutex
// also serializes the "is this class finished" check. ReaderWriter splits the
// quotas statically across workers up front, so only the list itself is
// contended.
//
// # Quick Start
//
//	cfg := listbench.DefaultConfig()
//	cfg.Threads = 8
//
//	h, err := listbench.NewHarness(listbench.ReaderWriter, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res := h.Run()
//	fmt.Printf("mean=%.6fs std=%.6fs need=%.1f samples\n",
//	    res.Summary.Mean, res.Summary.StdDev, res.Summary.RequiredSamples)
//
// # Required samples
//
// The sample-size estimate assumes normally distributed sample times:
//
//	n = (100 · 1.96 · σ / (5 · μ))²
//
// It is reported, never enforced. If n exceeds the configured sample count,
// rerun with more samples.
//
// # Scalability
//
// [Sweep] runs the same workload at several thread counts and [FitUSL] fits
// the Universal Scalability Law to the resulting throughput:
//
//	C(N) = λN / (1 + α(N-1) + βN(N-1))
//
// α is the contention coefficient. A whole-list mutex is expected to show a
// much larger α than a reader/writer lock under read-heavy workloads.
package listbench
