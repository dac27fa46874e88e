package byteconv

import (
	"github.com/mochidev/Bytes/ierrors"
)

var (
	// ErrInvalidCharacterByteSequence gets returned when bytes do not decode
	// to valid text, or to exactly one character where one is required.
	ErrInvalidCharacterByteSequence = ierrors.New("invalid character byte sequence")

	// ErrInvalidEnumByteSequence gets returned when bytes decode to a raw
	// value that is not a member of the target enumeration.
	ErrInvalidEnumByteSequence = ierrors.New("invalid enumeration byte sequence")

	// ErrInvalidUUIDByteSequence gets returned when bytes hold neither the
	// raw nor a textual form of a UUID.
	ErrInvalidUUIDByteSequence = ierrors.New("invalid UUID byte sequence")
)
