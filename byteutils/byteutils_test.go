package byteutils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mochidev/Bytes/byteutils"
)

func TestConcat(t *testing.T) {
	require.Equal(t, []byte{1, 2, 3, 4, 5}, byteutils.Concat([]byte{1, 2}, []byte{3}, []byte{4, 5}))
	require.Equal(t, []byte{1, 2}, byteutils.Concat([]byte{1, 2}, nil))

	require.Panics(t, func() {
		byteutils.Concat()
	})
}

func TestReadAvailableBytesToBuffer(t *testing.T) {
	target := make([]byte, 4)

	// source has fewer bytes than the target needs
	read := byteutils.ReadAvailableBytesToBuffer(target, 0, []byte{1, 2, 3}, 1, 3)
	require.Equal(t, 2, read)
	require.Equal(t, []byte{2, 3, 0, 0}, target)

	// source has more bytes than the target can hold
	read = byteutils.ReadAvailableBytesToBuffer(target, 2, []byte{9, 8, 7, 6}, 0, 4)
	require.Equal(t, 2, read)
	require.Equal(t, []byte{2, 3, 9, 8}, target)
}

func TestChunked_Contiguous(t *testing.T) {
	empty := byteutils.NewChunked()
	contiguous, ok := empty.Contiguous()
	require.True(t, ok)
	require.Empty(t, contiguous)

	single := byteutils.NewChunked([]byte{1, 2, 3})
	contiguous, ok = single.Contiguous()
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 3}, contiguous)

	// empty chunks don't fragment the sequence
	padded := byteutils.NewChunked(nil, []byte{1, 2, 3}, []byte{})
	contiguous, ok = padded.Contiguous()
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 3}, contiguous)

	fragmented := byteutils.NewChunked([]byte{1, 2}, []byte{3})
	_, ok = fragmented.Contiguous()
	require.False(t, ok)
}

func TestChunked_Bytes(t *testing.T) {
	chunked := byteutils.NewChunked([]byte{1, 2}, []byte{3}, []byte{4, 5, 6})
	require.Equal(t, 6, chunked.Len())
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6}, chunked.Bytes())

	// a contiguous sequence returns its storage without copying
	storage := []byte{7, 8, 9}
	single := byteutils.NewChunked(storage)
	bytes := single.Bytes()
	require.Equal(t, storage, bytes)
	storage[0] = 42
	assert.Equal(t, byte(42), bytes[0])
}

func TestChunked_AppendTo(t *testing.T) {
	chunked := byteutils.NewChunked([]byte{3, 4}).Append([]byte{5})

	require.Equal(t, []byte{1, 2, 3, 4, 5}, chunked.AppendTo([]byte{1, 2}))
	require.Equal(t, 3, chunked.Len())
}

func TestChunked_CopyTo(t *testing.T) {
	chunked := byteutils.NewChunked([]byte{1, 2}, []byte{3, 4}, []byte{5, 6})

	target := make([]byte, 4)
	require.Equal(t, 4, chunked.CopyTo(target))
	require.Equal(t, []byte{1, 2, 3, 4}, target)

	oversized := make([]byte, 8)
	require.Equal(t, 6, chunked.CopyTo(oversized))
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 0, 0}, oversized)
}
