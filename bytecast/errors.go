package bytecast

import (
	"fmt"

	"github.com/mochidev/Bytes/ierrors"
)

var (
	// ErrInvalidMemorySize gets returned when the size of a byte sequence does
	// not match the memory size required by the target type.
	ErrInvalidMemorySize = ierrors.New("invalid memory size")

	// ErrContiguousMemoryUnavailable gets returned when a byte sequence offers
	// no contiguous view of its storage and is too large to be copied into one.
	ErrContiguousMemoryUnavailable = ierrors.New("contiguous memory unavailable")
)

// InvalidMemorySizeError reports a mismatch between the number of bytes that
// were available and the number of bytes the target type requires.
//
// It matches ErrInvalidMemorySize in errors.Is checks.
type InvalidMemorySizeError struct {
	// Target is the exact number of bytes the cast requires. For collection
	// mapping it holds the next full multiple of the element size.
	Target int
	// TypeName names the type the bytes were cast to.
	TypeName string
	// Actual is the number of bytes that were available.
	Actual int
}

func (e *InvalidMemorySizeError) Error() string {
	return fmt.Sprintf("invalid memory size for %s: required %d bytes, got %d", e.TypeName, e.Target, e.Actual)
}

func (e *InvalidMemorySizeError) Is(target error) bool {
	return target == ErrInvalidMemorySize
}

// ContiguousMemoryUnavailableError reports that a byte sequence could neither
// offer a contiguous view of its storage nor be flattened within the
// configured limit.
//
// It matches ErrContiguousMemoryUnavailable in errors.Is checks.
type ContiguousMemoryUnavailableError struct {
	// CollectionTypeName names the concrete sequence type that was cast from.
	CollectionTypeName string
}

func (e *ContiguousMemoryUnavailableError) Error() string {
	return fmt.Sprintf("contiguous memory unavailable for %s and sequence exceeds the flatten limit", e.CollectionTypeName)
}

func (e *ContiguousMemoryUnavailableError) Is(target error) bool {
	return target == ErrContiguousMemoryUnavailable
}
