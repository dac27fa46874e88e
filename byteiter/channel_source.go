package byteiter

import (
	"context"

	"github.com/mochidev/Bytes/syncutils"
)

// ChannelSource is a ContextSource fed by a producer goroutine. The producer
// hands over chunks with Send and finishes the stream with Close or
// CloseWithError; the consumer drains the source through a ContextIterator,
// suspending between chunks when the producer is slower than the reads.
//
// Chunks are handed over by reference and must not be mutated after Send.
// Send must not be called after the source was closed, matching the send
// semantics of a closed channel.
type ChannelSource struct {
	chunks  chan []byte
	current []byte
	offset  int

	closeMutex syncutils.Mutex
	closed     bool
	closeErr   error
}

// NewChannelSource creates a ChannelSource that buffers up to bufferSize
// chunks between the producer and the consumer.
func NewChannelSource(bufferSize int) *ChannelSource {
	// sanitize parameters
	if bufferSize < 0 {
		panic("calls to NewChannelSource require a non-negative buffer size")
	}

	return &ChannelSource{
		chunks: make(chan []byte, bufferSize),
	}
}

// Send hands a chunk to the consumer, blocking while the chunk buffer is full
// and honoring cancellation of the given context. Empty chunks carry no
// content and are dropped.
func (s *ChannelSource) Send(ctx context.Context, chunk []byte) error {
	if len(chunk) == 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case s.chunks <- chunk:
		return nil
	}
}

// Close finishes the stream. The consumer still drains every chunk sent
// before the close and then observes a clean end.
func (s *ChannelSource) Close() {
	s.CloseWithError(nil)
}

// CloseWithError finishes the stream with a failure. The consumer still
// drains every chunk sent before the close and then observes err instead of a
// clean end. Closing more than once keeps the first outcome.
func (s *ChannelSource) CloseWithError(err error) {
	s.closeMutex.Lock()
	defer s.closeMutex.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.closeErr = err

	close(s.chunks)
}

// Next returns the next byte of the stream, suspending on the given context
// while no chunk is buffered.
func (s *ChannelSource) Next(ctx context.Context) (byte, bool, error) {
	for {
		if s.offset < len(s.current) {
			b := s.current[s.offset]
			s.offset++

			return b, true, nil
		}

		select {
		case <-ctx.Done():
			return 0, false, ctx.Err()
		case chunk, ok := <-s.chunks:
			if !ok {
				// the close happened before this receive, so reading the
				// close outcome here is ordered
				return 0, false, s.closeErr
			}

			s.current = chunk
			s.offset = 0
		}
	}
}
