package game

import (
	"errors"
	"fmt"
)

var (
	// ErrUnconfiguredDifficulty means the difficulty has no speed table entry.
	ErrUnconfiguredDifficulty = errors.New("unconfigured difficulty")

	// ErrInvalidTransition is returned by lifecycle commands that do not apply
	// to the current match status (double start, pause after end, ...).
	ErrInvalidTransition = errors.New("invalid match transition")
)

// ConfigError reports a configuration value the core refuses to start with.
type ConfigError struct {
	Field string
	Value string
	cause error
}

func (e *ConfigError) Error() string {
	if e == nil {
		return "invalid configuration"
	}
	if e.cause != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.cause)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error { return e.cause }

func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}
