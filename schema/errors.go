package schema

import (
	"errors"
	"fmt"
)

// ConfigError reports an invalid configuration value, such as a malformed
// query window or an unknown enumerator. It is returned before any history
// query is issued.
type ConfigError struct {
	msg string
}

// NewConfigError builds a ConfigError with a formatted message.
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.msg
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// SourceError reports that the history source could not answer a query.
// It is propagated to the caller unchanged; the engine never retries.
type SourceError struct {
	Op  string
	Err error
}

// NewSourceError wraps a source failure for the given operation.
func NewSourceError(op string, err error) *SourceError {
	return &SourceError{Op: op, Err: err}
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("history source unavailable during %s: %v", e.Op, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// IsSourceError reports whether err is (or wraps) a SourceError.
func IsSourceError(err error) bool {
	var se *SourceError
	return errors.As(err, &se)
}
