package byteconv_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mochidev/Bytes/bytecast"
	"github.com/mochidev/Bytes/byteconv"
)

func TestToUUID(t *testing.T) {
	original := uuid.MustParse("936da01f-9abd-4d9d-80c7-02af85c822a8")

	// raw form
	parsed, err := byteconv.ToUUID(byteconv.UUIDBytes(original))
	require.NoError(t, err)
	require.Equal(t, original, parsed)

	// textual forms
	parsed, err = byteconv.ToUUID([]byte("936da01f-9abd-4d9d-80c7-02af85c822a8"))
	require.NoError(t, err)
	require.Equal(t, original, parsed)

	parsed, err = byteconv.ToUUID([]byte("urn:uuid:936da01f-9abd-4d9d-80c7-02af85c822a8"))
	require.NoError(t, err)
	require.Equal(t, original, parsed)

	_, err = byteconv.ToUUID([]byte("not a uuid, clearly"))
	require.ErrorIs(t, err, byteconv.ErrInvalidUUIDByteSequence)

	_, err = byteconv.ToUUID([]byte{1, 2, 3})
	require.ErrorIs(t, err, byteconv.ErrInvalidUUIDByteSequence)
}

func TestToUUIDString(t *testing.T) {
	original := uuid.MustParse("936da01f-9abd-4d9d-80c7-02af85c822a8")

	parsed, err := byteconv.ToUUIDString(byteconv.UUIDStringBytes(original))
	require.NoError(t, err)
	require.Equal(t, original, parsed)

	// only the canonical form qualifies here
	_, err = byteconv.ToUUIDString([]byte("urn:uuid:936da01f-9abd-4d9d-80c7-02af85c822a8"))
	require.ErrorIs(t, err, byteconv.ErrInvalidUUIDByteSequence)

	_, err = byteconv.ToUUIDString(byteconv.UUIDBytes(original))
	require.ErrorIs(t, err, byteconv.ErrInvalidUUIDByteSequence)

	_, err = byteconv.ToUUIDString([]byte("936da01f9abd4d9d80c702af85c822a8----"))
	require.ErrorIs(t, err, byteconv.ErrInvalidUUIDByteSequence)
}

func TestUUIDBytes_SharesNoStorage(t *testing.T) {
	original := uuid.MustParse("936da01f-9abd-4d9d-80c7-02af85c822a8")

	b := byteconv.UUIDBytes(original)
	b[0] = 0xFF
	require.Equal(t, byte(0x93), original[0])
}

func TestUUIDSlice(t *testing.T) {
	ids := []uuid.UUID{
		uuid.MustParse("936da01f-9abd-4d9d-80c7-02af85c822a8"),
		uuid.MustParse("00000000-0000-0000-0000-000000000000"),
		uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff"),
	}

	encoded := byteconv.FromUUIDSlice(ids)
	require.Len(t, encoded, 48)

	decoded, err := byteconv.ToUUIDSlice(encoded)
	require.NoError(t, err)
	require.Equal(t, ids, decoded)

	// 40 bytes hold two whole UUIDs, so the next full multiple is 48
	_, err = byteconv.ToUUIDSlice(encoded[:40])
	require.ErrorIs(t, err, bytecast.ErrInvalidMemorySize)

	var invalidSize *bytecast.InvalidMemorySizeError
	require.ErrorAs(t, err, &invalidSize)
	assert.Equal(t, 48, invalidSize.Target)
	assert.Equal(t, "[]uuid.UUID", invalidSize.TypeName)
}
