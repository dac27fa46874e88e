package byteutils

// Chunked is an ordered byte sequence stored as a list of chunks that are not
// necessarily adjacent in memory. It keeps references to the chunks it was
// built from instead of copying them, so callers must not mutate a chunk
// after handing it over.
//
// Empty chunks carry no content and are discarded on insertion, which keeps
// Contiguous exact: a sequence with at most one chunk always offers a
// contiguous view.
type Chunked struct {
	chunks [][]byte
	length int
}

// NewChunked creates a Chunked sequence from the given chunks.
func NewChunked(chunks ...[]byte) *Chunked {
	c := &Chunked{
		chunks: make([][]byte, 0, len(chunks)),
	}
	for _, chunk := range chunks {
		c.Append(chunk)
	}

	return c
}

// Append adds a chunk to the end of the sequence. Empty chunks are ignored.
func (c *Chunked) Append(chunk []byte) *Chunked {
	if len(chunk) == 0 {
		return c
	}

	c.chunks = append(c.chunks, chunk)
	c.length += len(chunk)

	return c
}

// Len returns the total number of bytes in the sequence.
func (c *Chunked) Len() int {
	return c.length
}

// Contiguous returns the underlying storage without copying if the sequence
// occupies a single region of memory. The second return value reports whether
// such a view exists; an empty sequence is trivially contiguous.
func (c *Chunked) Contiguous() ([]byte, bool) {
	switch len(c.chunks) {
	case 0:
		return nil, true
	case 1:
		return c.chunks[0], true
	default:
		return nil, false
	}
}

// AppendTo appends the content of all chunks to dst and returns the extended
// slice.
func (c *Chunked) AppendTo(dst []byte) []byte {
	for _, chunk := range c.chunks {
		dst = append(dst, chunk...)
	}

	return dst
}

// Bytes returns the content of the sequence as a single contiguous byte
// slice, copying only if the sequence is fragmented.
func (c *Chunked) Bytes() []byte {
	if contiguous, ok := c.Contiguous(); ok {
		return contiguous
	}

	return Concat(c.chunks...)
}

// CopyTo copies the content of the sequence into target, stopping when either
// the sequence or the target is exhausted, and returns the number of copied
// bytes.
func (c *Chunked) CopyTo(target []byte) int {
	written := 0
	for _, chunk := range c.chunks {
		if written >= len(target) {
			break
		}

		written += ReadAvailableBytesToBuffer(target, written, chunk, 0, len(chunk))
	}

	return written
}

// Chunks returns the chunk list backing the sequence. The returned slices
// share storage with the sequence and must be treated as read-only.
func (c *Chunked) Chunks() [][]byte {
	return c.chunks
}
