package listbench

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// A Sink persists finished results.
type Sink interface {
	Write(Result) error
}

// TextSink appends one human readable block per result to a file.
type TextSink struct {
	Path string
}

// DefaultResultsFile is where the CLI appends results unless told otherwise.
const DefaultResultsFile = "results.txt"

// Write appends r to s.Path, creating the file if needed.
func (s TextSink) Write(r Result) error {
	path := s.Path
	if path == "" {
		path = DefaultResultsFile
	}

	var buf bytes.Buffer
	FormatResult(&buf, r)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %w", ErrPersistence, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrPersistence, path, err)
	}
	return nil
}

// FormatResult writes the text record for r to w.
func FormatResult(w io.Writer, r Result) {
	fmt.Fprintf(w, "\n === %s === \n\n", r.Strategy.Label())
	fmt.Fprintf(w, "Member Fraction = %.3f\n", r.Config.Fractions.Member)
	fmt.Fprintf(w, "Insert Fraction = %.3f\n", r.Config.Fractions.Insert)
	fmt.Fprintf(w, "Delete Fraction = %.3f\n", r.Config.Fractions.Delete)
	fmt.Fprintf(w, "Number of Threads = %d\n", r.Config.Threads)
	fmt.Fprintf(w, "Number of Samples = %d\n", r.Summary.Samples)
	fmt.Fprintf(w, "Min number of samples needed = %f\n", r.Summary.RequiredSamples)
	fmt.Fprintf(w, "Mean = %f\n", r.Summary.Mean)
	fmt.Fprintf(w, "Standard Deviation = %f\n", r.Summary.StdDev)
	fmt.Fprintf(w, "________________________________________ \n\n")
}

// LogSink writes each result as one structured log record.
type LogSink struct {
	Logger *slog.Logger
	Level  slog.Level
}

func (s LogSink) Write(r Result) error {
	l := s.Logger
	if l == nil {
		l = slog.Default()
	}
	l.Log(context.Background(), s.Level, "result",
		slog.String("strategy", r.Strategy.String()),
		slog.Group("fractions",
			slog.Float64("member", r.Config.Fractions.Member),
			slog.Float64("insert", r.Config.Fractions.Insert),
			slog.Float64("delete", r.Config.Fractions.Delete)),
		slog.Int("threads", r.Config.Threads),
		slog.Int("samples", r.Summary.Samples),
		slog.Float64("required_samples", r.Summary.RequiredSamples),
		slog.Float64("mean", r.Summary.Mean),
		slog.Float64("std", r.Summary.StdDev),
		slog.Float64("ops_per_sec", r.Summary.Throughput))
	return nil
}

// MultiSink writes to every sink in order and stops at the first failure.
type MultiSink []Sink

func (m MultiSink) Write(r Result) error {
	for _, s := range m {
		if err := s.Write(r); err != nil {
			return err
		}
	}
	return nil
}
