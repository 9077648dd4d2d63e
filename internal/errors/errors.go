// Package errors pairs stdlib matching (Is, As, AsType) with pkg/errors
// wrapping, so every wrap records a stack.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error that formats as the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AsType is a generic version of As that returns the typed error and a boolean.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// Wrap returns an error annotating err with a stack trace and the supplied message.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf returns an error annotating err with a stack trace and the format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace at the point WithStack was called.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf formats according to a format specifier and returns the string as a
// value that satisfies error with stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Origin returns "file.go:line" of the innermost wrap in err's chain that
// recorded a stack, or "" when none did.
func Origin(err error) string {
	var origin string
	for ; err != nil; err = stderrors.Unwrap(err) {
		tracer, ok := err.(stackTracer) //nolint:errorlint // walks the chain itself
		if !ok {
			continue
		}
		if frames := tracer.StackTrace(); len(frames) > 0 {
			origin = fmt.Sprintf("%s:%d", frames[0], frames[0])
		}
	}

	return origin
}
