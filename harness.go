package listbench

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/creachadair/taskgroup"
)

// Result is the record of one benchmark run.
type Result struct {
	Strategy StrategyKind
	Config   Config
	Summary  Summary
	Samples  []Sample
}

// Harness runs repeated samples of one strategy and configuration.
// A Harness is not safe for concurrent use.
type Harness struct {
	kind        StrategyKind
	newStrategy func(*OrderedSet) Strategy
	cfg         Config
	rng         *rand.Rand // population values and per-sample worker seeds
	logger      *slog.Logger
	observe     func(i int, s Sample, set *OrderedSet)
}

// An Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger for sample and summary records. The default is
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithObserver registers f to be called after every sample with the sample
// index, the recorded sample and the final set. f runs outside the timed
// region.
func WithObserver(f func(i int, s Sample, set *OrderedSet)) Option {
	return func(h *Harness) { h.observe = f }
}

// NewHarness validates cfg for kind and returns a harness ready to Run.
// Threads is forced to 1 for Serial.
func NewHarness(kind StrategyKind, cfg Config, opts ...Option) (*Harness, error) {
	if err := cfg.Validate(kind); err != nil {
		return nil, err
	}
	cfg = cfg.normalize(kind)
	newStrategy, err := strategyFor(kind)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	h := &Harness{
		kind:        kind,
		newStrategy: newStrategy,
		cfg:         cfg,
		rng:         rand.New(rand.NewPCG(seed, seed>>32)),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Config returns the normalized configuration the harness runs with.
func (h *Harness) Config() Config { return h.cfg }

// Strategy returns the strategy the harness measures.
func (h *Harness) Strategy() StrategyKind { return h.kind }

// Run executes every sample and summarizes them.
func (h *Harness) Run() Result {
	samples := make([]Sample, h.cfg.Samples)
	for i := range samples {
		samples[i] = h.RunSample(i)
	}

	res := Result{
		Strategy: h.kind,
		Config:   h.cfg,
		Summary:  Summarize(samples),
		Samples:  samples,
	}
	h.logger.Info("run complete",
		"strategy", h.kind.String(),
		"threads", h.cfg.Threads,
		"samples", res.Summary.Samples,
		"mean", res.Summary.Mean,
		"std", res.Summary.StdDev,
		"required_samples", res.Summary.RequiredSamples)
	if res.Summary.RequiredSamples > float64(h.cfg.Samples) {
		h.logger.Warn("sample count below confidence estimate",
			"samples", h.cfg.Samples,
			"required_samples", res.Summary.RequiredSamples)
	}
	return res
}

// RunAndRecord runs the benchmark and writes the result to sink. The result
// is returned even when the sink fails.
func (h *Harness) RunAndRecord(sink Sink) (Result, error) {
	res := h.Run()
	if err := sink.Write(res); err != nil {
		return res, fmt.Errorf("record %s result: %w", h.kind, err)
	}
	return res, nil
}

// RunSample runs one repetition: build and populate a fresh set, reset the
// quotas, then time the workers from creation until the last one finishes.
func (h *Harness) RunSample(i int) Sample {
	set := NewOrderedSet()
	set.Populate(h.cfg.InitialSize, h.rng)

	strategy := h.newStrategy(set)
	plan := NewPlan(h.cfg.Operations, h.cfg.Fractions, h.cfg.Threads, h.kind.Policy())
	gates := strategy.Gates(plan)
	seed := h.rng.Uint64()

	start := time.Now()
	ops := execute(gates, seed)
	elapsed := time.Since(start)

	s := Sample{Elapsed: elapsed, Operations: ops, FinalSize: set.Len()}
	h.logger.Debug("sample",
		"strategy", h.kind.String(),
		"index", i,
		"elapsed", elapsed,
		"operations", ops,
		"size", s.FinalSize)
	if h.observe != nil {
		h.observe(i, s, set)
	}
	return s
}

// execute runs one worker per gate and waits for all of them. A single
// worker runs on the calling goroutine.
func execute(gates []Gate, seed uint64) int {
	if len(gates) == 1 {
		return newWorker(0, gates[0], seed).run()
	}

	var total int
	g := taskgroup.New(nil)
	c := taskgroup.Gather(g.Go, func(n int) { total += n })
	for i, gate := range gates {
		c.Run(newWorker(i, gate, seed).run)
	}
	g.Wait()
	return total
}
