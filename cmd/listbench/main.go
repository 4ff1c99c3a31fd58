// Binary listbench benchmarks a sorted linked list under three
// synchronization strategies and appends the timing statistics to a results
// file.
//
// Usage:
//
//	listbench -strategy serial samples n m mMember mInsert mDelete
//	listbench -strategy mutex  samples n m threads mMember mInsert mDelete
//	listbench -strategy rwlock samples n m threads mMember mInsert mDelete
//	listbench -strategy rwlock -sweep 1,2,4,8 samples n m threads mMember mInsert mDelete
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alexshd/listbench"
	"github.com/lmittmann/tint"
)

var (
	strategyName = flag.String("strategy", "rwlock", "Synchronization strategy: serial, mutex or rwlock")
	outPath      = flag.String("out", listbench.DefaultResultsFile, "Results file to append to")
	seed         = flag.Uint64("seed", 0, "Random seed (0 = seed from the clock)")
	sweepLevels  = flag.String("sweep", "", "Comma separated thread counts; fit the USL instead of a single run")
	logLevel     = flag.String("log-level", "info", "Log level: debug, info, warn or error")
)

// Exit codes.
const (
	exitOK          = 0
	exitPersistence = 1
	exitUsage       = 2
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] samples n m [threads] mMember mInsert mDelete\n\n"+
				"The threads argument is omitted for -strategy serial.\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	os.Exit(run())
}

func run() int {
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q: %v\n", *logLevel, err)
		return exitUsage
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
	slog.SetDefault(logger)

	kind, err := listbench.ParseStrategy(*strategyName)
	if err != nil {
		logger.Error("bad strategy", "err", err)
		return exitUsage
	}
	cfg, err := parseArgs(kind, flag.Args())
	if err != nil {
		logger.Error("bad arguments", "err", err)
		flag.Usage()
		return exitUsage
	}
	cfg.Seed = *seed

	if *sweepLevels != "" {
		return runSweep(logger, kind, cfg)
	}

	h, err := listbench.NewHarness(kind, cfg, listbench.WithLogger(logger))
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return exitUsage
	}

	sink := listbench.MultiSink{
		listbench.TextSink{Path: *outPath},
		listbench.LogSink{Logger: logger, Level: slog.LevelInfo},
	}
	if _, err := h.RunAndRecord(sink); err != nil {
		logger.Error("results lost", "path", *outPath, "err", err)
		return exitPersistence
	}
	return exitOK
}

func runSweep(logger *slog.Logger, kind listbench.StrategyKind, cfg listbench.Config) int {
	levels, err := parseLevels(*sweepLevels)
	if err != nil {
		logger.Error("bad -sweep", "err", err)
		return exitUsage
	}
	points, err := listbench.Sweep(kind, cfg, levels, listbench.WithLogger(logger))
	if err != nil {
		logger.Error("sweep failed", "err", err)
		return exitUsage
	}
	for _, p := range points {
		logger.Info("sweep point",
			"strategy", kind.String(),
			"threads", p.Threads,
			"mean", p.Summary.Mean,
			"std", p.Summary.StdDev,
			"ops_per_sec", p.Throughput)
	}
	c, err := listbench.FitUSL(points)
	if err != nil {
		logger.Warn("no USL fit", "err", err)
		return exitOK
	}
	logger.Info("usl fit",
		"strategy", kind.String(),
		"lambda", c.Lambda,
		"alpha", c.Alpha,
		"beta", c.Beta,
		"r2", c.RSquared,
		"peak_threads", c.PeakThreads())
	return exitOK
}

// parseArgs reads the positional arguments in the order
// samples n m [threads] mMember mInsert mDelete.
func parseArgs(kind listbench.StrategyKind, args []string) (listbench.Config, error) {
	want := 7
	if kind == listbench.Serial {
		want = 6
	}
	if len(args) != want {
		return listbench.Config{}, fmt.Errorf("want %d arguments, got %d", want, len(args))
	}

	ints := []string{"samples", "n", "m", "threads"}
	if kind == listbench.Serial {
		ints = ints[:3]
	}
	vals := make([]int, 4)
	vals[3] = 1
	for i, name := range ints {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return listbench.Config{}, fmt.Errorf("%s: %w", name, err)
		}
		vals[i] = v
	}

	var fr [3]float64
	for i, name := range []string{"mMember", "mInsert", "mDelete"} {
		v, err := strconv.ParseFloat(args[len(ints)+i], 64)
		if err != nil {
			return listbench.Config{}, fmt.Errorf("%s: %w", name, err)
		}
		fr[i] = v
	}

	return listbench.Config{
		Samples:     vals[0],
		InitialSize: vals[1],
		Operations:  vals[2],
		Threads:     vals[3],
		Fractions:   listbench.Fractions{Member: fr[0], Insert: fr[1], Delete: fr[2]},
	}, nil
}

func parseLevels(s string) ([]int, error) {
	var levels []int
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("level %q: %w", f, err)
		}
		levels = append(levels, n)
	}
	return levels, nil
}
