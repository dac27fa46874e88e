// Package byteiter consumes byte sources through windowed reads: every
// operation names the fewest and the most bytes it accepts, reads within that
// window and reports shortfalls in the byte-count vocabulary of bytecast.
//
// Reads exist in two flavors. The plain flavor treats an exhausted source as
// an error. The IfAvailable flavor returns no value when the source was
// exhausted before the first byte of the window, and only treats running out
// of bytes mid-window as an error; this is how optional trailing elements of
// a stream are consumed.
//
// Iterators hold no locks and must be driven by one goroutine at a time.
// The context-aware side of the package accepts sources that can suspend
// between bytes, see ContextSource.
package byteiter

// Source produces bytes one at a time. Once Next reports exhaustion the
// source stays exhausted.
type Source interface {
	Next() (byte, bool)
}

// Iterator consumes a Source through windowed reads.
type Iterator struct {
	source Source
}

// NewIterator creates an Iterator consuming the given source.
func NewIterator(source Source) *Iterator {
	// sanitize parameters
	if source == nil {
		panic("calls to NewIterator require a non-nil source")
	}

	return &Iterator{
		source: source,
	}
}

func (i *Iterator) next() (byte, bool, error) {
	b, ok := i.source.Next()

	return b, ok, nil
}

// NextByte returns the next byte of the source, or false when the source is
// exhausted.
func (i *Iterator) NextByte() (byte, bool) {
	return i.source.Next()
}

// ReadExact reads exactly count bytes. Exhaustion of the source before the
// window is full is an InvalidMemorySizeError carrying count as its target.
func (i *Iterator) ReadExact(count int) ([]byte, error) {
	return readExact(i.next, count)
}

// ReadExactIfAvailable reads exactly count bytes, returning no value when the
// source was exhausted before the first byte. Running out of bytes after the
// window started is an error like in ReadExact. Asking for zero bytes
// trivially succeeds.
func (i *Iterator) ReadExactIfAvailable(count int) ([]byte, bool, error) {
	return readExactIfAvailable(i.next, count)
}

// ReadBounded reads at least minCount and at most maxCount bytes, stopping
// early only when the source is exhausted.
func (i *Iterator) ReadBounded(minCount int, maxCount int) ([]byte, error) {
	return readBounded(i.next, minCount, maxCount)
}

// ReadBoundedIfAvailable reads like ReadBounded, returning no value when the
// source was exhausted before the first byte.
func (i *Iterator) ReadBoundedIfAvailable(minCount int, maxCount int) ([]byte, bool, error) {
	return readBoundedIfAvailable(i.next, minCount, maxCount)
}

// ReadGreedy reads up to maxCount bytes, stopping at exhaustion. It never
// fails: an empty result is valid and distinguishable from "no more data"
// only by subsequent calls.
func (i *Iterator) ReadGreedy(maxCount int) []byte {
	result, _ := readGreedy(i.next, maxCount)

	return result
}

// ReadGreedyIfAvailable reads like ReadGreedy, reporting no value when the
// source was exhausted before the first byte.
func (i *Iterator) ReadGreedyIfAvailable(maxCount int) ([]byte, bool) {
	result, ok, _ := readGreedyIfAvailable(i.next, maxCount)

	return result, ok
}

// CheckByte reads one byte and fails with a CheckedSequenceNotFoundError if
// it differs from the expected one or the source is exhausted.
func (i *Iterator) CheckByte(expected byte) error {
	return checkBytes(i.next, []byte{expected})
}

// CheckByteIfAvailable reads like CheckByte, reporting false without an error
// when the source was already exhausted. A mismatch stays an error.
func (i *Iterator) CheckByteIfAvailable(expected byte) (bool, error) {
	return checkBytesIfAvailable(i.next, []byte{expected})
}

// CheckBytes compares the next len(expected) bytes of the source against
// expected, stopping and failing with a CheckedSequenceNotFoundError at the
// first difference or at exhaustion. An empty expected sequence is a no-op.
func (i *Iterator) CheckBytes(expected []byte) error {
	return checkBytes(i.next, expected)
}

// CheckBytesIfAvailable reads like CheckBytes, reporting false without an
// error when the source was exhausted before the first expected byte was
// consumed. Once consumption has started, exhaustion and mismatches stay
// errors.
func (i *Iterator) CheckBytesIfAvailable(expected []byte) (bool, error) {
	return checkBytesIfAvailable(i.next, expected)
}
