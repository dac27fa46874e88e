// Package ierrors provides the error creation and wrapping functions used
// throughout the module. The constructors behave like their counterparts in
// the standard library, except that Errorf, Wrap and Wrapf attach a stacktrace
// to the error when the "stacktrace" build tag is set.
//
//nolint:goerr113
package ierrors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// New never attaches a stacktrace, so it stays cheap for package level
// sentinel errors.
func New(text string) error {
	return errors.New(text)
}

// Errorf formats according to a format specifier and returns the string as a
// value that satisfies error. A %w verb with an error operand wraps that
// operand like fmt.Errorf does.
func Errorf(format string, args ...any) error {
	return ensureStack(fmt.Errorf(format, args...))
}

// Wrap prepends a message to err and wraps it into a new error.
func Wrap(err error, message string) error {
	return ensureStack(fmt.Errorf("%s: %w", message, err))
}

// Wrapf prepends a formatted message to err and wraps it into a new error.
// If args themselves contain an error, that error is kept in the tree as
// well, so Is and As keep matching it.
func Wrapf(err error, format string, args ...any) error {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			return ensureStack(fmt.Errorf("%w: %w", fmt.Errorf(format, args...), err))
		}
	}

	return ensureStack(fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err))
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target, and if one is
// found, sets target to that error value and returns true.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if err's
// type contains an Unwrap method returning error. Otherwise it returns nil.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
