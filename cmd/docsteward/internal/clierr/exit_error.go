// Package clierr carries process exit codes through wrapped errors so
// main stays dumb.
//
// Codes: 1 for check failures and generic errors, 2 for configuration
// errors (missing target directory, unreadable config).
package clierr

import (
	"errors"
	"fmt"
)

const (
	// CodeFailure is the generic failing exit code, also used when the
	// quality checker finds issues.
	CodeFailure = 1
	// CodeConfig marks setup errors that abort before any processing.
	CodeConfig = 2
)

// ExitCoder is an error that carries an explicit process exit code.
type ExitCoder interface {
	error
	ExitCode() int
}

// ExitError implements ExitCoder and supports wrapping, so errors.Is/As
// traverse the underlying cause.
type ExitError struct {
	code  int
	msg   string
	cause error
}

func (e *ExitError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *ExitError) ExitCode() int { return e.code }

func (e *ExitError) Unwrap() error { return e.cause }

// New creates an ExitError with a message.
func New(code int, msg string) error {
	return &ExitError{code: normalize(code), msg: msg}
}

// Newf is a formatted variant.
func Newf(code int, format string, args ...any) error {
	return &ExitError{code: normalize(code), msg: fmt.Sprintf(format, args...)}
}

// Wrap creates an ExitError that wraps an underlying cause.
func Wrap(code int, msg string, cause error) error {
	if cause == nil {
		return New(code, msg)
	}
	return &ExitError{code: normalize(code), msg: msg, cause: cause}
}

// ExitCodeOf extracts an exit code from any error, defaulting to 1.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return CodeFailure
}

func normalize(code int) int {
	// Exit code 0 means success; errors should never be 0.
	if code <= 0 {
		return CodeFailure
	}
	return code
}
