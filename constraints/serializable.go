package constraints

// Serializable permits types that can render themselves as bytes.
type Serializable interface {
	Bytes() ([]byte, error)
}

// Deserializable permits types that can restore themselves from a byte
// slice, reporting how many bytes they consumed.
type Deserializable interface {
	FromBytes([]byte) (int, error)
}

// MarshalablePtr permits pointer types whose pointees round-trip through
// bytes. Constraining on the pointer lets a generic function allocate the
// value and call FromBytes on it without reflection.
type MarshalablePtr[V any] interface {
	*V
	Serializable
	Deserializable
}
