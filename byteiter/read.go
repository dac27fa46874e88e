package byteiter

import (
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/mochidev/Bytes/bytecast"
	"github.com/mochidev/Bytes/byteconv"
	"github.com/mochidev/Bytes/constraints"
	"github.com/mochidev/Bytes/ierrors"
)

// Reader is the window the typed reads build on: an exact read of a known
// number of bytes, in the plain and in the IfAvailable flavor. *Iterator
// implements it directly; a *ContextIterator participates through Bind.
type Reader interface {
	ReadExact(count int) ([]byte, error)
	ReadExactIfAvailable(count int) ([]byte, bool, error)
}

// ReadValue reads a fixed-layout value of type T in the machine's own memory
// layout.
func ReadValue[T any](reader Reader) (T, error) {
	var result T

	b, err := reader.ReadExact(bytecast.SizeOf[T]())
	if err != nil {
		return result, ierrors.Wrap(err, "failed to read value bytes")
	}

	return bytecast.ToValue[T](b)
}

// ReadValueIfAvailable reads like ReadValue, reporting no value when the
// source was exhausted before the first byte.
func ReadValueIfAvailable[T any](reader Reader) (T, bool, error) {
	var result T

	b, ok, err := reader.ReadExactIfAvailable(bytecast.SizeOf[T]())
	if err != nil {
		return result, false, ierrors.Wrap(err, "failed to read value bytes")
	}
	if !ok {
		return result, false, nil
	}

	result, err = bytecast.ToValue[T](b)

	return result, err == nil, err
}

// ReadNumeric reads a numeric value of type T in the given byte order.
func ReadNumeric[T constraints.Numeric](reader Reader, order binary.ByteOrder) (T, error) {
	var result T

	b, err := reader.ReadExact(bytecast.SizeOf[T]())
	if err != nil {
		return result, ierrors.Wrap(err, "failed to read numeric bytes")
	}

	return byteconv.ToNumeric[T](b, order)
}

// ReadNumericIfAvailable reads like ReadNumeric, reporting no value when the
// source was exhausted before the first byte.
func ReadNumericIfAvailable[T constraints.Numeric](reader Reader, order binary.ByteOrder) (T, bool, error) {
	var result T

	b, ok, err := reader.ReadExactIfAvailable(bytecast.SizeOf[T]())
	if err != nil {
		return result, false, ierrors.Wrap(err, "failed to read numeric bytes")
	}
	if !ok {
		return result, false, nil
	}

	result, err = byteconv.ToNumeric[T](b, order)

	return result, err == nil, err
}

// ReadString reads count bytes of UTF-8 text.
func ReadString(reader Reader, count int) (string, error) {
	b, err := reader.ReadExact(count)
	if err != nil {
		return "", ierrors.Wrap(err, "failed to read string bytes")
	}

	return byteconv.ToString(b)
}

// ReadStringIfAvailable reads like ReadString, reporting no value when the
// source was exhausted before the first byte.
func ReadStringIfAvailable(reader Reader, count int) (string, bool, error) {
	b, ok, err := reader.ReadExactIfAvailable(count)
	if err != nil {
		return "", false, ierrors.Wrap(err, "failed to read string bytes")
	}
	if !ok {
		return "", false, nil
	}

	text, err := byteconv.ToString(b)

	return text, err == nil, err
}

// ReadStringUTF16 reads count bytes of UTF-16 text in the given byte order.
func ReadStringUTF16(reader Reader, count int, order binary.ByteOrder) (string, error) {
	b, err := reader.ReadExact(count)
	if err != nil {
		return "", ierrors.Wrap(err, "failed to read string bytes")
	}

	return byteconv.ToStringUTF16(b, order)
}

// ReadCharacter reads count bytes holding exactly one character.
func ReadCharacter(reader Reader, count int) (string, error) {
	b, err := reader.ReadExact(count)
	if err != nil {
		return "", ierrors.Wrap(err, "failed to read character bytes")
	}

	return byteconv.ToCharacter(b)
}

// ReadUUID reads the raw 16-byte form of a UUID.
func ReadUUID(reader Reader) (uuid.UUID, error) {
	b, err := reader.ReadExact(byteconv.UUIDSize)
	if err != nil {
		return uuid.Nil, ierrors.Wrap(err, "failed to read UUID bytes")
	}

	return byteconv.ToUUID(b)
}

// ReadUUIDIfAvailable reads like ReadUUID, reporting no value when the source
// was exhausted before the first byte. A source ending between two UUIDs is
// told apart from one ending inside a UUID this way.
func ReadUUIDIfAvailable(reader Reader) (uuid.UUID, bool, error) {
	b, ok, err := reader.ReadExactIfAvailable(byteconv.UUIDSize)
	if err != nil {
		return uuid.Nil, false, ierrors.Wrap(err, "failed to read UUID bytes")
	}
	if !ok {
		return uuid.Nil, false, nil
	}

	id, err := byteconv.ToUUID(b)

	return id, err == nil, err
}

// ReadUUIDString reads the canonical 36-byte textual form of a UUID.
func ReadUUIDString(reader Reader) (uuid.UUID, error) {
	b, err := reader.ReadExact(byteconv.UUIDStringSize)
	if err != nil {
		return uuid.Nil, ierrors.Wrap(err, "failed to read UUID bytes")
	}

	return byteconv.ToUUIDString(b)
}

// ReadEnum reads a member of an integer-backed enumeration in the given byte
// order.
func ReadEnum[E byteconv.Enum](reader Reader, order binary.ByteOrder) (E, error) {
	var result E

	b, err := reader.ReadExact(bytecast.SizeOf[E]())
	if err != nil {
		return result, ierrors.Wrap(err, "failed to read enumeration bytes")
	}

	return byteconv.ToEnum[E](b, order)
}

// ReadObject reads size bytes and parses them with the FromBytes method of
// the target type, requiring the parse to consume the whole window.
func ReadObject[V any, VPtr constraints.MarshalablePtr[V]](reader Reader, size int) (V, error) {
	var result V

	b, err := reader.ReadExact(size)
	if err != nil {
		return result, ierrors.Wrap(err, "failed to read object bytes")
	}

	consumedBytes, err := VPtr(&result).FromBytes(b)
	if err != nil {
		return result, ierrors.Wrap(err, "failed to parse object")
	}
	if consumedBytes != len(b) {
		return result, ierrors.Errorf("failed to parse object: consumed bytes (%d) != read bytes (%d)", consumedBytes, len(b))
	}

	return result, nil
}
