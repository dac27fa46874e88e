package ierrors_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mochidev/Bytes/ierrors"
)

func TestWrapKeepsTarget(t *testing.T) {
	base := ierrors.New("decode failed")

	wrapped := ierrors.Wrap(base, "reading header")
	require.True(t, ierrors.Is(wrapped, base))
	require.True(t, ierrors.Is(ierrors.Unwrap(wrapped), base))
	require.ErrorContains(t, wrapped, "reading header: decode failed")

	formatted := ierrors.Wrapf(base, "field %q", "size")
	require.True(t, ierrors.Is(formatted, base))
	require.ErrorContains(t, formatted, `field "size": decode failed`)
}

func TestWrapfKeepsErrorArguments(t *testing.T) {
	base := ierrors.New("short buffer")
	cause := ierrors.New("source drained")

	err := ierrors.Wrapf(base, "after %d bytes: %w", 7, cause)
	require.True(t, ierrors.Is(err, base))
	require.True(t, ierrors.Is(err, cause))
	require.ErrorContains(t, err, "after 7 bytes: source drained: short buffer")
}

func TestErrorfWrapsOperand(t *testing.T) {
	base := ierrors.New("no bytes left")

	err := ierrors.Errorf("window %d: %w", 3, base)
	require.True(t, ierrors.Is(err, base))
	require.ErrorContains(t, err, "window 3: no bytes left")
}
