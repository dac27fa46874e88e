// Package byteconv converts bytes to higher-level values and back: integers
// and floats with explicit endianness, UTF-8 and UTF-16 text, single
// characters, UUIDs and integer-backed enumerations.
//
// The casting engine in bytecast always works in the machine's own byte
// order; this package normalizes byte order around it.
package byteconv

import (
	"encoding/binary"

	"github.com/mochidev/Bytes/bytecast"
	"github.com/mochidev/Bytes/constraints"
)

// hostIsLittleEndian is probed through the casting engine itself, so the
// conversions stay consistent with it no matter what the platform does.
var hostIsLittleEndian = bytecast.FromValue(uint16(0x0102))[0] == 0x02

// orderIsLittleEndian classifies a byte order by behavior rather than
// identity, so binary.NativeEndian and custom orders work too.
func orderIsLittleEndian(order binary.ByteOrder) bool {
	var probe [2]byte
	order.PutUint16(probe[:], 0x0102)

	return probe[0] == 0x02
}

func orderMatchesHost(order binary.ByteOrder) bool {
	return orderIsLittleEndian(order) == hostIsLittleEndian
}

func reverseInPlace(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Bytes returns the bytes of a numeric value in the given byte order.
func Bytes[T constraints.Numeric](value T, order binary.ByteOrder) []byte {
	b := bytecast.FromValue(value)
	if !orderMatchesHost(order) {
		reverseInPlace(b)
	}

	return b
}

// AppendBytes appends the bytes of a numeric value in the given byte order
// to dst and returns the extended slice.
func AppendBytes[T constraints.Numeric](dst []byte, value T, order binary.ByteOrder) []byte {
	offset := len(dst)
	dst = append(dst, bytecast.FromValue(value)...)
	if !orderMatchesHost(order) {
		reverseInPlace(dst[offset:])
	}

	return dst
}

// BigEndianBytes returns the bytes of a numeric value in big-endian order.
func BigEndianBytes[T constraints.Numeric](value T) []byte {
	return Bytes(value, binary.BigEndian)
}

// LittleEndianBytes returns the bytes of a numeric value in little-endian
// order.
func LittleEndianBytes[T constraints.Numeric](value T) []byte {
	return Bytes(value, binary.LittleEndian)
}

// ToNumeric reads a numeric value of type T from b in the given byte order.
// The slice must hold exactly the memory size of T.
func ToNumeric[T constraints.Numeric](b []byte, order binary.ByteOrder) (T, error) {
	var zero T
	if err := bytecast.CanCastTo[T](len(b)); err != nil {
		return zero, err
	}

	if orderMatchesHost(order) || len(b) < 2 {
		return bytecast.ToValue[T](b)
	}

	reversed := make([]byte, len(b))
	for i, x := range b {
		reversed[len(b)-1-i] = x
	}

	return bytecast.ToValue[T](reversed)
}

// FromBigEndian reads a numeric value of type T from big-endian bytes.
func FromBigEndian[T constraints.Numeric](b []byte) (T, error) {
	return ToNumeric[T](b, binary.BigEndian)
}

// FromLittleEndian reads a numeric value of type T from little-endian bytes.
func FromLittleEndian[T constraints.Numeric](b []byte) (T, error) {
	return ToNumeric[T](b, binary.LittleEndian)
}

// ToNumericSlice maps b onto a slice of numeric values read in the given
// byte order.
func ToNumericSlice[T constraints.Numeric](b []byte, order binary.ByteOrder) ([]T, error) {
	if orderMatchesHost(order) {
		return bytecast.ToSlice[T](b)
	}

	return bytecast.ToSliceFunc(b, bytecast.SizeOf[T](), func(chunk []byte) (T, error) {
		return ToNumeric[T](chunk, order)
	})
}

// SequenceToNumericSlice maps the content of a possibly fragmented byte
// sequence onto a slice of numeric values read in the given byte order. It
// follows the flatten limit of the casting engine, see
// bytecast.SequenceToSlice.
func SequenceToNumericSlice[T constraints.Numeric](seq bytecast.Sequence, order binary.ByteOrder, opts ...bytecast.Option) ([]T, error) {
	values, err := bytecast.SequenceToSlice[T](seq, opts...)
	if err != nil || orderMatchesHost(order) {
		return values, err
	}

	for i, value := range values {
		b := bytecast.FromValue(value)
		reverseInPlace(b)
		// reversing keeps the size, so the cast back cannot fail
		values[i], _ = bytecast.ToValue[T](b)
	}

	return values, nil
}

// FromNumericSlice returns the bytes of all elements of values in the given
// byte order, in element order.
func FromNumericSlice[T constraints.Numeric](values []T, order binary.ByteOrder) []byte {
	if orderMatchesHost(order) {
		return bytecast.FromSlice(values)
	}

	return bytecast.FromSliceFunc(values, bytecast.SizeOf[T](), func(dst []byte, value T) []byte {
		return AppendBytes(dst, value, order)
	})
}
