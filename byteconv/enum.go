package byteconv

import (
	"encoding/binary"
	"reflect"

	"github.com/mochidev/Bytes/constraints"
	"github.com/mochidev/Bytes/ierrors"
)

// Enum is a constraint for integer-backed enumerations that know their own
// members.
type Enum interface {
	constraints.Integer

	// Valid reports whether the value denotes a member of the enumeration.
	Valid() bool
}

// ToEnum reads the raw value of an enumeration member from b in the given
// byte order and checks that it actually denotes a member.
func ToEnum[E Enum](b []byte, order binary.ByteOrder) (E, error) {
	value, err := ToNumeric[E](b, order)
	if err != nil {
		return value, err
	}

	if !value.Valid() {
		var zero E

		return zero, ierrors.Wrapf(ErrInvalidEnumByteSequence, "raw value %d is not a member of %s", value, reflect.TypeOf(value).String())
	}

	return value, nil
}

// EnumBytes returns the bytes of the raw value of an enumeration member in
// the given byte order.
func EnumBytes[E Enum](value E, order binary.ByteOrder) []byte {
	return Bytes(value, order)
}
