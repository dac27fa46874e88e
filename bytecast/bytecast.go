// Package bytecast casts raw bytes to values of fixed-layout types and back
// by reinterpreting memory, and maps byte slices onto slices and sets of such
// types. Casting never interprets the bytes: results are in the machine's own
// memory layout, including its byte order.
package bytecast

import (
	"reflect"
	"unsafe"
)

// Sequence is an ordered byte sequence that may be fragmented in memory.
// byteutils.Chunked implements it; a plain []byte does not need to, since the
// contiguous entry points accept it directly.
type Sequence interface {
	// Len returns the total number of bytes in the sequence.
	Len() int

	// Contiguous returns the underlying storage without copying if the whole
	// sequence occupies a single region of memory.
	Contiguous() ([]byte, bool)

	// AppendTo appends the content of the sequence to dst and returns the
	// extended slice.
	AppendTo(dst []byte) []byte
}

// DefaultFlattenLimit is the number of bytes up to which a fragmented
// sequence gets copied into fresh contiguous storage instead of the cast
// failing with ErrContiguousMemoryUnavailable.
const DefaultFlattenLimit = 4096

type options struct {
	flattenLimit int
}

// Option modifies the behavior of a single cast.
type Option func(opts *options)

// WithFlattenLimit overrides DefaultFlattenLimit for a single call.
func WithFlattenLimit(limit int) Option {
	return func(opts *options) {
		opts.flattenLimit = limit
	}
}

func newOptions(opts []Option) *options {
	result := &options{
		flattenLimit: DefaultFlattenLimit,
	}
	for _, opt := range opts {
		opt(result)
	}

	return result
}

// SizeOf returns the number of bytes values of type T occupy in memory.
func SizeOf[T any]() int {
	var zero T

	return int(unsafe.Sizeof(zero))
}

// CanCastTo checks whether exactly size bytes are available to cast to a
// value of type T and returns an InvalidMemorySizeError otherwise.
// It panics if T is not fixed-layout, since that is a bug in the calling code
// rather than a property of the input bytes.
func CanCastTo[T any](size int) error {
	t := typeOf[T]()
	mustFixedLayout(t)

	if targetSize := SizeOf[T](); size != targetSize {
		return &InvalidMemorySizeError{
			Target:   targetSize,
			TypeName: t.String(),
			Actual:   size,
		}
	}

	return nil
}

// ToValue reinterprets b as a value of type T. The slice must hold exactly
// SizeOf[T]() bytes laid out the way the machine lays out T.
// It panics if T is not fixed-layout.
func ToValue[T any](b []byte) (T, error) {
	var value T
	if err := CanCastTo[T](len(b)); err != nil {
		return value, err
	}

	copy(valueBytes(&value), b)

	return value, nil
}

// FromValue copies the memory of value into a fresh byte slice of length
// SizeOf[T]().
// It panics if T is not fixed-layout.
func FromValue[T any](value T) []byte {
	mustFixedLayout(typeOf[T]())

	result := make([]byte, SizeOf[T]())
	copy(result, valueBytes(&value))

	return result
}

// SequenceToValue casts the content of a possibly fragmented byte sequence to
// a value of type T. It uses the sequence's contiguous view when one exists
// and otherwise flattens the sequence into fresh storage, but only up to the
// flatten limit: beyond it the cast fails with a
// ContiguousMemoryUnavailableError instead of copying unbounded amounts of
// memory behind the caller's back.
// It panics if T is not fixed-layout or seq is nil.
func SequenceToValue[T any](seq Sequence, opts ...Option) (T, error) {
	// sanitize parameters
	if seq == nil {
		panic("calls to SequenceToValue require a non-nil sequence")
	}

	var value T
	if err := CanCastTo[T](seq.Len()); err != nil {
		return value, err
	}

	if contiguous, ok := seq.Contiguous(); ok {
		copy(valueBytes(&value), contiguous)

		return value, nil
	}

	if limit := newOptions(opts).flattenLimit; seq.Len() > limit {
		return value, &ContiguousMemoryUnavailableError{
			CollectionTypeName: reflect.TypeOf(seq).String(),
		}
	}

	copy(valueBytes(&value), seq.AppendTo(make([]byte, 0, seq.Len())))

	return value, nil
}

// valueBytes and sliceBytes are the only unsafe steps in the package: they
// view storage the package (or the Go runtime) allocated and aligned itself
// as raw bytes, and the views never outlive the call they are created in.

func valueBytes[T any](value *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(value)), SizeOf[T]())
}

func sliceBytes[T any](values []T, totalBytes int) []byte {
	if totalBytes == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(values))), totalBytes)
}
