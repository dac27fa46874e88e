package bytecast

import (
	"reflect"

	"github.com/mochidev/Bytes/ierrors"
)

// CanMapTo checks whether totalBytes can be split into whole values of type T
// and returns the element size and the number of elements. When totalBytes is
// not a multiple of the element size, the returned InvalidMemorySizeError
// carries the next full multiple as its target.
// It panics if T is not fixed-layout or has size zero.
func CanMapTo[T any](totalBytes int) (elemSize int, count int, err error) {
	t := typeOf[T]()
	mustFixedLayout(t)

	elemSize = SizeOf[T]()
	count, err = chunkCount(totalBytes, elemSize, reflect.SliceOf(t).String())
	if err != nil {
		return elemSize, 0, err
	}

	return elemSize, count, nil
}

// ToSlice maps b onto a slice of T values in their order of appearance.
// It panics if T is not fixed-layout or has size zero.
func ToSlice[T any](b []byte) ([]T, error) {
	_, count, err := CanMapTo[T](len(b))
	if err != nil {
		return nil, err
	}

	values := make([]T, count)
	copy(sliceBytes(values, len(b)), b)

	return values, nil
}

// SequenceToSlice maps the content of a possibly fragmented byte sequence
// onto a slice of T values. It uses the sequence's contiguous view when one
// exists and otherwise flattens the sequence into fresh storage, following
// the same flatten limit as SequenceToValue.
// It panics if T is not fixed-layout, has size zero, or seq is nil.
func SequenceToSlice[T any](seq Sequence, opts ...Option) ([]T, error) {
	// sanitize parameters
	if seq == nil {
		panic("calls to SequenceToSlice require a non-nil sequence")
	}

	if _, _, err := CanMapTo[T](seq.Len()); err != nil {
		return nil, err
	}

	if contiguous, ok := seq.Contiguous(); ok {
		return ToSlice[T](contiguous)
	}

	if limit := newOptions(opts).flattenLimit; seq.Len() > limit {
		return nil, &ContiguousMemoryUnavailableError{
			CollectionTypeName: reflect.TypeOf(seq).String(),
		}
	}

	return ToSlice[T](seq.AppendTo(make([]byte, 0, seq.Len())))
}

// ToSliceFunc splits b into chunks of elemSize bytes and builds one element
// per chunk with fromChunk, preserving order. Unlike ToSlice it places no
// layout requirement on T, since fromChunk interprets the bytes.
// It panics if elemSize is not positive.
func ToSliceFunc[T any](b []byte, elemSize int, fromChunk func(chunk []byte) (T, error)) ([]T, error) {
	count, err := chunkCount(len(b), elemSize, reflect.SliceOf(typeOf[T]()).String())
	if err != nil {
		return nil, err
	}

	values := make([]T, 0, count)
	for i := 0; i < count; i++ {
		value, err := fromChunk(b[i*elemSize : (i+1)*elemSize])
		if err != nil {
			return nil, ierrors.Wrapf(err, "unable to map element %d", i)
		}

		values = append(values, value)
	}

	return values, nil
}

// ToSet maps b onto a set of T values. Duplicate elements collapse; order is
// not retained.
// It panics if T is not fixed-layout or has size zero.
func ToSet[T comparable](b []byte) (map[T]struct{}, error) {
	elemSize, count, err := CanMapTo[T](len(b))
	if err != nil {
		return nil, err
	}

	set := make(map[T]struct{}, count)
	for i := 0; i < count; i++ {
		var value T
		copy(valueBytes(&value), b[i*elemSize:(i+1)*elemSize])
		set[value] = struct{}{}
	}

	return set, nil
}

// ToSetFunc splits b into chunks of elemSize bytes and builds a set with one
// element per chunk via fromChunk. Duplicate elements collapse.
// It panics if elemSize is not positive.
func ToSetFunc[T comparable](b []byte, elemSize int, fromChunk func(chunk []byte) (T, error)) (map[T]struct{}, error) {
	count, err := chunkCount(len(b), elemSize, reflect.MapOf(typeOf[T](), reflect.TypeOf(struct{}{})).String())
	if err != nil {
		return nil, err
	}

	set := make(map[T]struct{}, count)
	for i := 0; i < count; i++ {
		value, err := fromChunk(b[i*elemSize : (i+1)*elemSize])
		if err != nil {
			return nil, ierrors.Wrapf(err, "unable to map element %d", i)
		}

		set[value] = struct{}{}
	}

	return set, nil
}

// FromSlice copies the memory of all elements of values into a fresh byte
// slice, in order.
// It panics if T is not fixed-layout.
func FromSlice[T any](values []T) []byte {
	mustFixedLayout(typeOf[T]())

	totalBytes := len(values) * SizeOf[T]()
	result := make([]byte, totalBytes)
	copy(result, sliceBytes(values, totalBytes))

	return result
}

// FromSliceFunc serializes values by calling appendElem for each element in
// order. elemSizeHint pre-sizes the result buffer and may be zero when the
// element size is unknown.
func FromSliceFunc[T any](values []T, elemSizeHint int, appendElem func(dst []byte, value T) []byte) []byte {
	if elemSizeHint < 0 {
		elemSizeHint = 0
	}

	result := make([]byte, 0, len(values)*elemSizeHint)
	for _, value := range values {
		result = appendElem(result, value)
	}

	return result
}

func chunkCount(totalBytes int, elemSize int, targetTypeName string) (int, error) {
	// sanitize parameters
	if elemSize <= 0 {
		panic("calls to the collection mapper require a positive element size")
	}

	count := totalBytes / elemSize
	if count*elemSize != totalBytes {
		return 0, &InvalidMemorySizeError{
			Target:   (count + 1) * elemSize,
			TypeName: targetTypeName,
			Actual:   totalBytes,
		}
	}

	return count, nil
}
