package byteconv

import (
	"github.com/google/uuid"

	"github.com/mochidev/Bytes/bytecast"
	"github.com/mochidev/Bytes/ierrors"
)

// UUIDSize is the size of the raw form of a UUID.
const UUIDSize = 16

// UUIDStringSize is the size of the canonical textual form of a UUID,
// 36 bytes of the shape xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
const UUIDStringSize = 36

// ToUUID interprets b as a UUID: 16 bytes are taken as the raw big-endian
// form, anything else must be one of the textual forms
// (with or without hyphens, braces or a urn:uuid: prefix).
func ToUUID(b []byte) (uuid.UUID, error) {
	if len(b) == UUIDSize {
		result, err := uuid.FromBytes(b)
		if err != nil {
			return uuid.Nil, ierrors.Wrapf(ErrInvalidUUIDByteSequence, "%s", err.Error())
		}

		return result, nil
	}

	result, err := uuid.ParseBytes(b)
	if err != nil {
		return uuid.Nil, ierrors.Wrapf(ErrInvalidUUIDByteSequence, "%s", err.Error())
	}

	return result, nil
}

// ToUUIDString interprets b as the canonical textual form of a UUID. Other
// textual forms and the raw form are rejected; ToUUID accepts those.
func ToUUIDString(b []byte) (uuid.UUID, error) {
	if len(b) != UUIDStringSize {
		return uuid.Nil, ierrors.Wrapf(ErrInvalidUUIDByteSequence, "canonical form is %d bytes, got %d", UUIDStringSize, len(b))
	}

	result, err := uuid.ParseBytes(b)
	if err != nil {
		return uuid.Nil, ierrors.Wrapf(ErrInvalidUUIDByteSequence, "%s", err.Error())
	}

	return result, nil
}

// UUIDBytes returns the raw 16-byte form of a UUID.
func UUIDBytes(id uuid.UUID) []byte {
	result := make([]byte, UUIDSize)
	copy(result, id[:])

	return result
}

// UUIDStringBytes returns the canonical textual form of a UUID as bytes.
func UUIDStringBytes(id uuid.UUID) []byte {
	return []byte(id.String())
}

// ToUUIDSlice maps b onto a slice of UUIDs in their raw form, in order of
// appearance.
func ToUUIDSlice(b []byte) ([]uuid.UUID, error) {
	return bytecast.ToSliceFunc(b, UUIDSize, ToUUID)
}

// FromUUIDSlice returns the raw forms of all given UUIDs, in order.
func FromUUIDSlice(ids []uuid.UUID) []byte {
	return bytecast.FromSliceFunc(ids, UUIDSize, func(dst []byte, id uuid.UUID) []byte {
		return append(dst, id[:]...)
	})
}
