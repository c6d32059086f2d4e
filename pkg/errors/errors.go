// Package errors augments the standard errors
// provided by fmt (https://golang.org/src/fmt/errors.go)
// with a Wrap() method to wrap errors without resorting
// to fmt.Errorf("%w", err).
package errors

import (
	stderr "errors"
)

var _ error = New("")

// Sentinel errors for the release pipeline.
//
// These classify failures at the boundaries: callers match with Is()
// rather than inspecting error text.
var (
	// ErrSchema indicates a structured AI response that does not conform
	// to its expected schema. Never retried.
	ErrSchema = New("response does not conform to schema")

	// ErrDirtyTree indicates uncommitted changes in the working tree.
	ErrDirtyTree = New("working tree has uncommitted changes")

	// ErrNoCredentials indicates a missing API key or access token at the
	// point of first use.
	ErrNoCredentials = New("missing credentials")

	// ErrTagExists indicates an attempt to create a tag that already exists.
	ErrTagExists = New("tag already exists")

	// ErrNotRepository indicates the target directory is not a repository.
	ErrNotRepository = New("not a repository")
)

// New Error
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error augments the standard error interface with a Wrap method.
//
// The main difference with github.com/pkg/errors is that we are wrapping
// errors from errors, not from text.
type Error struct {
	msg    string
	err    error
	origin *Error
}

// Error message
func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

// Unwrap nested error
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap a nested error. The receiver is left untouched, so package-level
// sentinels may be wrapped safely; the result still matches the sentinel
// through Is().
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err, origin: e}
}

// Is of some error type?
func (e *Error) Is(target error) bool {
	return e == target || e.origin == target || e.err == target
}

// As finds the first error in err's chain that matches target, and if so, sets target to that error value and returns true.
// (a shortcut to standard lib errors.As)
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target
// (a shortcut to standard lib errors.As)
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
