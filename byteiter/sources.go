package byteiter

import (
	"bufio"
	"context"
	"io"

	"go.uber.org/atomic"

	"github.com/mochidev/Bytes/byteutils"
	"github.com/mochidev/Bytes/ierrors"
)

// SliceSource produces the bytes of a slice in order. It keeps a reference to
// the slice instead of copying it.
type SliceSource struct {
	bytes  []byte
	offset int
}

// NewSliceSource creates a SliceSource over the given bytes.
func NewSliceSource(bytes []byte) *SliceSource {
	return &SliceSource{
		bytes: bytes,
	}
}

func (s *SliceSource) Next() (byte, bool) {
	if s.offset >= len(s.bytes) {
		return 0, false
	}

	b := s.bytes[s.offset]
	s.offset++

	return b, true
}

// ChunkedSource produces the bytes of a fragmented sequence in order, without
// ever flattening it.
type ChunkedSource struct {
	chunks     [][]byte
	chunkIndex int
	offset     int
}

// NewChunkedSource creates a ChunkedSource over the given sequence.
func NewChunkedSource(chunked *byteutils.Chunked) *ChunkedSource {
	// sanitize parameters
	if chunked == nil {
		panic("calls to NewChunkedSource require a non-nil sequence")
	}

	return &ChunkedSource{
		chunks: chunked.Chunks(),
	}
}

func (s *ChunkedSource) Next() (byte, bool) {
	for s.chunkIndex < len(s.chunks) {
		chunk := s.chunks[s.chunkIndex]
		if s.offset < len(chunk) {
			b := chunk[s.offset]
			s.offset++

			return b, true
		}

		s.chunkIndex++
		s.offset = 0
	}

	return 0, false
}

// ReaderSource adapts an io.Reader into a Source. Reading is buffered; a read
// failure exhausts the source and is reported by Err afterwards, with io.EOF
// counting as a clean end of the stream. BytesRead may be observed from other
// goroutines while the source is being consumed.
type ReaderSource struct {
	reader    *bufio.Reader
	err       error
	bytesRead atomic.Uint64
}

// NewReaderSource creates a ReaderSource over the given reader.
func NewReaderSource(reader io.Reader) *ReaderSource {
	// sanitize parameters
	if reader == nil {
		panic("calls to NewReaderSource require a non-nil reader")
	}

	return &ReaderSource{
		reader: bufio.NewReader(reader),
	}
}

func (s *ReaderSource) Next() (byte, bool) {
	if s.err != nil {
		return 0, false
	}

	b, err := s.reader.ReadByte()
	if err != nil {
		s.err = err

		return 0, false
	}

	s.bytesRead.Inc()

	return b, true
}

// Err returns the failure that exhausted the source, if any. A source that
// merely reached the end of its stream has no failure.
func (s *ReaderSource) Err() error {
	if s.err == nil || ierrors.Is(s.err, io.EOF) {
		return nil
	}

	return s.err
}

// BytesRead returns the number of bytes produced so far.
func (s *ReaderSource) BytesRead() uint64 {
	return s.bytesRead.Load()
}

// ContextFrom lifts a plain Source into a ContextSource that observes
// cancellation between bytes.
func ContextFrom(source Source) ContextSource {
	// sanitize parameters
	if source == nil {
		panic("calls to ContextFrom require a non-nil source")
	}

	return &liftedSource{
		source: source,
	}
}

type liftedSource struct {
	source Source
}

func (l *liftedSource) Next(ctx context.Context) (byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	b, ok := l.source.Next()

	return b, ok, nil
}
