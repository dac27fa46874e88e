//go:build !stacktrace

package ierrors

// ensureStack is a no-op unless the "stacktrace" build tag is set.
func ensureStack(err error) error {
	return err
}
