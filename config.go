package listbench

// Fractions is the share of each operation class in a workload.
type Fractions struct {
	Member float64
	Insert float64
	Delete float64
}

// total adds the fractions in single precision, the width the command line
// parses them at.
func (f Fractions) total() float32 {
	return float32(f.Member) + float32(f.Insert) + float32(f.Delete)
}

// Of returns the fraction for op.
func (f Fractions) Of(op Op) float64 {
	switch op {
	case OpMember:
		return f.Member
	case OpInsert:
		return f.Insert
	case OpDelete:
		return f.Delete
	}
	return 0
}

// Config controls a benchmark run.
type Config struct {
	Samples     int       // Number of timed repetitions (S)
	InitialSize int       // Values inserted before timing starts (n)
	Operations  int       // Operations executed per sample (m)
	Threads     int       // Worker count (T); forced to 1 for Serial
	Fractions   Fractions // Mix of Member/Insert/Delete, sums to exactly 1.0 as float32
	Seed        uint64    // Random seed (0 = seed from the clock)
}

// DefaultConfig returns the read-heavy mix used throughout the test suite.
func DefaultConfig() Config {
	return Config{
		Samples:     30,
		InitialSize: 1000,
		Operations:  10000,
		Threads:     4,
		Fractions:   Fractions{Member: 0.99, Insert: 0.005, Delete: 0.005},
	}
}

// Validate checks c for use with the given strategy. The fraction sum is
// taken in single precision and compared with 1.0 exactly, without a
// tolerance, so 0.7/0.2/0.1 is accepted while 0.6/0.3/0.05 is not.
func (c Config) Validate(kind StrategyKind) error {
	if !kind.valid() {
		return configErrorf("strategy", "unknown strategy %v", kind)
	}
	if c.Samples <= 0 {
		return configErrorf("samples", "must be > 0, got %d", c.Samples)
	}
	if c.InitialSize <= 0 {
		return configErrorf("n", "must be > 0, got %d", c.InitialSize)
	}
	if c.InitialSize > ValueRange {
		return configErrorf("n", "must be <= %d distinct values, got %d", ValueRange, c.InitialSize)
	}
	if c.Operations <= 0 {
		return configErrorf("m", "must be > 0, got %d", c.Operations)
	}

	f := c.Fractions
	if f.Member < 0 || f.Insert < 0 || f.Delete < 0 {
		return configErrorf("fractions", "must not be negative (%v, %v, %v)", f.Member, f.Insert, f.Delete)
	}
	if sum := f.total(); sum != 1.0 {
		return configErrorf("fractions", "must total 1.0, got %v", sum)
	}

	if kind != Serial && (c.Threads <= 0 || c.Threads > MaxThreads) {
		return configErrorf("threads", "must be in [1, %d], got %d", MaxThreads, c.Threads)
	}
	return nil
}

// normalize returns c with Threads fixed to what kind actually runs.
func (c Config) normalize(kind StrategyKind) Config {
	if kind == Serial {
		c.Threads = 1
	}
	return c
}
