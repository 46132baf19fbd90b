package errors

import (
	"errors"
	"fmt"
)

// Exit codes for karabiner-gen
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitConfigError   = 2
	ExitTableNotFound = 3
	ExitInvalidTable  = 4
	ExitWriteFailed   = 5
)

// GenError is the base error type for karabiner-gen
type GenError struct {
	Code    int
	Message string
	Cause   error
}

func (e *GenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *GenError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the process exit code for this error
func (e *GenError) ExitCode() int {
	return e.Code
}

// New creates a new GenError
func New(code int, message string) *GenError {
	return &GenError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a GenError
func Wrap(code int, message string, cause error) *GenError {
	return &GenError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ConfigError returns an error for settings file problems
func ConfigError(message string, cause error) *GenError {
	return Wrap(ExitConfigError, message, cause)
}

// TableNotFound returns an error for a rule table or layer missing from the catalog
func TableNotFound(name string) *GenError {
	return New(ExitTableNotFound, fmt.Sprintf("rule table not found: %s", name))
}

// InvalidTable returns an error for a table that failed to parse or validate
func InvalidTable(name string, cause error) *GenError {
	return Wrap(ExitInvalidTable, fmt.Sprintf("invalid rule table %s", name), cause)
}

// WriteFailed returns an error for the output write. The OS error stays
// in the chain so callers can still match fs.ErrPermission and friends.
func WriteFailed(path string, cause error) *GenError {
	return Wrap(ExitWriteFailed, fmt.Sprintf("failed to write %s", path), cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *GenError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var genErr *GenError
	if errors.As(err, &genErr) {
		return genErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
