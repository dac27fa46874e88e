// Package constraints defines the type constraints used by the generic
// casting and decoding helpers.
package constraints

// Signed permits any signed integer type, including named ones.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned permits any unsigned integer type, including named ones.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Numeric permits any type whose in-memory representation is a single
// fixed-width number, which is exactly the set of types that can be
// reinterpreted as raw bytes without further layout checks.
type Numeric interface {
	Integer | Float
}
