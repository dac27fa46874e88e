//go:build stacktrace

package ierrors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// stacked decorates an error with the call stack that was active when the
// error was created or wrapped.
type stacked struct {
	err   error
	stack string
}

func (s *stacked) Error() string {
	return s.err.Error() + "\n" + s.stack
}

func (s *stacked) Unwrap() error {
	return s.err
}

// ensureStack attaches the current call stack to err unless the error tree
// already carries one, so rewrapping never duplicates stacktraces.
func ensureStack(err error) error {
	if err == nil {
		return nil
	}

	var s *stacked
	if errors.As(err, &s) {
		return err
	}

	return &stacked{err: err, stack: callStack()}
}

// callStack renders the frames above the exported ierrors function that
// triggered the capture.
func callStack() string {
	var pcs [32]uintptr
	entries := runtime.Callers(4, pcs[:])
	frames := runtime.CallersFrames(pcs[:entries])

	var b strings.Builder
	for {
		frame, more := frames.Next()
		if frame == (runtime.Frame{}) {
			break
		}

		fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
