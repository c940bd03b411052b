package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, subprocess, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrUnknownEnvironment indicates the requested environment name is not
	// present in the registry.
	ErrUnknownEnvironment = errors.New("unknown environment name")

	// ErrUnknownPlatform indicates the host operating system is not supported.
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrConfigDirNotFound indicates the environment configuration directory
	// does not exist.
	ErrConfigDirNotFound = errors.New("configuration directory not found")

	// ErrMissingField indicates an environment file lacks one of the
	// required top-level keys (name, path, lib, variables).
	ErrMissingField = errors.New("missing required field")

	// ErrParseFailure indicates an environment file is not valid JSON.
	ErrParseFailure = errors.New("parse failure")

	// ErrHomeNotFound indicates the user's home directory could not be
	// resolved from the environment.
	ErrHomeNotFound = errors.New("home directory not found")
)

// Re-exports from cockroachdb/errors so callers need a single import.
var (
	New    = errors.New
	Newf   = errors.Newf
	Wrap   = errors.Wrap
	Wrapf  = errors.Wrapf
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
//
// An ExitError with a nil Err signals that the command already reported the
// failure to the user and only the exit code should be propagated.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
