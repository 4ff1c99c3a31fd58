package listbench

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is wrapped by every ConfigError. A configuration error is
	// reported before any sample runs.
	ErrConfig = errors.New("invalid configuration")

	// ErrPersistence is wrapped by sinks that fail to store a result. The
	// computed statistics are lost.
	ErrPersistence = errors.New("result not persisted")
)

// ConfigError describes a rejected configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

func configErrorf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
