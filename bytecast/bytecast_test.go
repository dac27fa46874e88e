package bytecast_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mochidev/Bytes/bytecast"
	"github.com/mochidev/Bytes/byteutils"
)

type header struct {
	Magic   uint32
	Version uint16
	Flags   uint16
}

func TestSizeOf(t *testing.T) {
	require.Equal(t, 1, bytecast.SizeOf[byte]())
	require.Equal(t, 4, bytecast.SizeOf[uint32]())
	require.Equal(t, 8, bytecast.SizeOf[float64]())
	require.Equal(t, 8, bytecast.SizeOf[header]())
	require.Equal(t, 3, bytecast.SizeOf[[3]byte]())
	require.Equal(t, 0, bytecast.SizeOf[struct{}]())
}

func TestCanCastTo(t *testing.T) {
	require.NoError(t, bytecast.CanCastTo[uint32](4))

	err := bytecast.CanCastTo[uint32](3)
	require.ErrorIs(t, err, bytecast.ErrInvalidMemorySize)

	var invalidSize *bytecast.InvalidMemorySizeError
	require.ErrorAs(t, err, &invalidSize)
	assert.Equal(t, 4, invalidSize.Target)
	assert.Equal(t, "uint32", invalidSize.TypeName)
	assert.Equal(t, 3, invalidSize.Actual)
}

func TestToValue(t *testing.T) {
	value, err := bytecast.ToValue[uint32]([]byte{0x01, 0x02, 0x03, 0x04})
	require.NoError(t, err)
	require.Equal(t, binary.NativeEndian.Uint32([]byte{0x01, 0x02, 0x03, 0x04}), value)

	_, err = bytecast.ToValue[uint32]([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	require.ErrorIs(t, err, bytecast.ErrInvalidMemorySize)

	// a zero-size type casts from an empty slice only
	_, err = bytecast.ToValue[struct{}](nil)
	require.NoError(t, err)
	_, err = bytecast.ToValue[struct{}]([]byte{1})
	require.ErrorIs(t, err, bytecast.ErrInvalidMemorySize)
}

func TestFromValue(t *testing.T) {
	buf := bytecast.FromValue(uint64(0xDEADBEEF))
	require.Len(t, buf, 8)
	require.Equal(t, uint64(0xDEADBEEF), binary.NativeEndian.Uint64(buf))

	require.Empty(t, bytecast.FromValue(struct{}{}))
}

func TestFromValue_FieldOrder(t *testing.T) {
	type pair struct {
		A byte
		B byte
	}

	// single-byte fields appear in declaration order, indifferent to the
	// machine's byte order
	require.Equal(t, []byte{0x01, 0x02}, bytecast.FromValue(pair{A: 1, B: 2}))

	restored, err := bytecast.ToValue[pair]([]byte{0x01, 0x02})
	require.NoError(t, err)
	require.Equal(t, pair{A: 1, B: 2}, restored)
}

func TestRoundtrip(t *testing.T) {
	original := header{Magic: 0xCAFEBABE, Version: 3, Flags: 0b1010}

	restored, err := bytecast.ToValue[header](bytecast.FromValue(original))
	require.NoError(t, err)
	require.Equal(t, original, restored)

	// casting does not interpret bytes, so the result stays bit-identical
	// for floats too
	pi, err := bytecast.ToValue[float64](bytecast.FromValue(3.141592653589793))
	require.NoError(t, err)
	require.Equal(t, 3.141592653589793, pi)
}

func TestToValue_SharesNoStorage(t *testing.T) {
	input := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	value, err := bytecast.ToValue[uint32](input)
	require.NoError(t, err)

	input[0] = 0
	require.Equal(t, uint32(0xFFFFFFFF), value)
}

func TestSequenceToValue(t *testing.T) {
	expected := binary.NativeEndian.Uint32([]byte{1, 2, 3, 4})

	// a contiguous sequence casts without flattening
	value, err := bytecast.SequenceToValue[uint32](byteutils.NewChunked([]byte{1, 2, 3, 4}))
	require.NoError(t, err)
	require.Equal(t, expected, value)

	// a fragmented sequence within the flatten limit gets copied
	value, err = bytecast.SequenceToValue[uint32](byteutils.NewChunked([]byte{1, 2}, []byte{3}, []byte{4}))
	require.NoError(t, err)
	require.Equal(t, expected, value)

	require.Panics(t, func() {
		_, _ = bytecast.SequenceToValue[uint32](nil)
	})
}

func TestSequenceToValue_FlattenLimit(t *testing.T) {
	fragmented := byteutils.NewChunked([]byte{1, 2}, []byte{3, 4})

	_, err := bytecast.SequenceToValue[uint32](fragmented, bytecast.WithFlattenLimit(3))
	require.ErrorIs(t, err, bytecast.ErrContiguousMemoryUnavailable)

	var unavailable *bytecast.ContiguousMemoryUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "*byteutils.Chunked", unavailable.CollectionTypeName)

	// the limit bounds flattening, not contiguous views
	contiguous := byteutils.NewChunked([]byte{1, 2, 3, 4})
	value, err := bytecast.SequenceToValue[uint32](contiguous, bytecast.WithFlattenLimit(0))
	require.NoError(t, err)
	require.Equal(t, binary.NativeEndian.Uint32([]byte{1, 2, 3, 4}), value)

	// a size mismatch is reported before fragmentation
	_, err = bytecast.SequenceToValue[uint32](byteutils.NewChunked([]byte{1}, []byte{2}), bytecast.WithFlattenLimit(0))
	require.ErrorIs(t, err, bytecast.ErrInvalidMemorySize)
}

func TestSequenceToValue_LargeFixedArray(t *testing.T) {
	type blob [8192]byte

	chunk := make([]byte, 4096)
	for i := range chunk {
		chunk[i] = byte(i)
	}
	fragmented := byteutils.NewChunked(chunk, chunk)

	// beyond the default flatten limit the cast refuses to copy
	_, err := bytecast.SequenceToValue[blob](fragmented)
	require.ErrorIs(t, err, bytecast.ErrContiguousMemoryUnavailable)

	// raising the limit makes the same cast succeed
	value, err := bytecast.SequenceToValue[blob](fragmented, bytecast.WithFlattenLimit(8192))
	require.NoError(t, err)
	require.Equal(t, byte(4095%256), value[4095])
	require.Equal(t, byte(0), value[4096])
}

func TestIsFixedLayout(t *testing.T) {
	require.True(t, bytecast.IsFixedLayout[uint64]())
	require.True(t, bytecast.IsFixedLayout[[16]byte]())
	require.True(t, bytecast.IsFixedLayout[header]())
	require.True(t, bytecast.IsFixedLayout[complex128]())
	require.True(t, bytecast.IsFixedLayout[struct{ A [2]header }]())

	require.False(t, bytecast.IsFixedLayout[string]())
	require.False(t, bytecast.IsFixedLayout[[]byte]())
	require.False(t, bytecast.IsFixedLayout[*int]())
	require.False(t, bytecast.IsFixedLayout[map[int]int]())
	require.False(t, bytecast.IsFixedLayout[struct{ Name string }]())
	require.False(t, bytecast.IsFixedLayout[[4]struct{ Next *header }]())
}

func TestCast_NonFixedLayoutPanics(t *testing.T) {
	require.Panics(t, func() {
		_, _ = bytecast.ToValue[string]([]byte{1, 2})
	})
	require.Panics(t, func() {
		_ = bytecast.FromValue([]int{1})
	})
	require.Panics(t, func() {
		_ = bytecast.FromValue(struct{ Data []byte }{})
	})
}

var benchBytes []byte

func BenchmarkFromValue(b *testing.B) {
	value := header{Magic: 0xCAFEBABE, Version: 3, Flags: 0b1010}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchBytes = bytecast.FromValue(value)
	}
}

func BenchmarkToValue(b *testing.B) {
	buf := bytecast.FromValue(header{Magic: 0xCAFEBABE, Version: 3, Flags: 0b1010})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bytecast.ToValue[header](buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkToSlice(b *testing.B) {
	buf := make([]byte, 8192)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bytecast.ToSlice[uint64](buf); err != nil {
			b.Fatal(err)
		}
	}
}
