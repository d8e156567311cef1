package failure

import (
	"errors"
	"fmt"
)

// Process exit codes. External tool failures carry the tool's own status instead.
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitUsage        = 64
	ExitConfig       = 78
	ExitToolNotFound = 127
)

// UsageError malformed or unknown command-line input
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func NewUsageError(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ConfigError missing settings file or a settings path that does not exist
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

func NewConfigError(format string, args ...any) error {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}

// ExternalToolError a configure or build invocation that did not succeed.
type ExternalToolError struct {
	Phase      string
	Status     int
	Signal     string
	NotStarted bool
	Err        error
}

func (e *ExternalToolError) Error() string {
	switch {
	case e.NotStarted:
		return fmt.Sprintf("%s failed: %v", e.Phase, e.Err)
	case e.Signal != "":
		return fmt.Sprintf("%s terminated by signal: %s", e.Phase, e.Signal)
	}
	return fmt.Sprintf("%s failed with exit status %d", e.Phase, e.Status)
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}

func NewToolNotStarted(phase string, err error) error {
	return &ExternalToolError{Phase: phase, NotStarted: true, Err: err}
}

func NewToolFailed(phase string, status int) error {
	return &ExternalToolError{Phase: phase, Status: status}
}

// NewToolSignaled status is the shell convention 128+signal number.
func NewToolSignaled(phase string, status int, signal string) error {
	return &ExternalToolError{Phase: phase, Status: status, Signal: signal}
}

func IsUsage(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}

// ExitCode maps an error returned by the dispatcher to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}

	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return ExitConfig
	}

	var toolErr *ExternalToolError
	if errors.As(err, &toolErr) {
		if toolErr.NotStarted {
			return ExitToolNotFound
		}
		return toolErr.Status
	}

	return ExitFailure
}
