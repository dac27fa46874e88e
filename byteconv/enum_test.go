package byteconv_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mochidev/Bytes/bytecast"
	"github.com/mochidev/Bytes/byteconv"
)

type frameKind uint8

const (
	frameData frameKind = iota + 1
	frameAck
	frameClose
)

func (f frameKind) Valid() bool {
	return f >= frameData && f <= frameClose
}

type statusCode uint16

func (s statusCode) Valid() bool {
	return s < 4
}

func TestToEnum(t *testing.T) {
	kind, err := byteconv.ToEnum[frameKind]([]byte{2}, binary.BigEndian)
	require.NoError(t, err)
	require.Equal(t, frameAck, kind)

	_, err = byteconv.ToEnum[frameKind]([]byte{99}, binary.BigEndian)
	require.ErrorIs(t, err, byteconv.ErrInvalidEnumByteSequence)

	_, err = byteconv.ToEnum[frameKind]([]byte{1, 2}, binary.BigEndian)
	require.ErrorIs(t, err, bytecast.ErrInvalidMemorySize)
}

func TestToEnum_MultiByte(t *testing.T) {
	status, err := byteconv.ToEnum[statusCode]([]byte{0x00, 0x03}, binary.BigEndian)
	require.NoError(t, err)
	require.Equal(t, statusCode(3), status)

	// the same bytes denote no member in the opposite byte order
	_, err = byteconv.ToEnum[statusCode]([]byte{0x00, 0x03}, binary.LittleEndian)
	require.ErrorIs(t, err, byteconv.ErrInvalidEnumByteSequence)
}

func TestEnumBytes(t *testing.T) {
	require.Equal(t, []byte{0x00, 0x02}, byteconv.EnumBytes(statusCode(2), binary.BigEndian))

	kind, err := byteconv.ToEnum[frameKind](byteconv.EnumBytes(frameClose, binary.LittleEndian), binary.LittleEndian)
	require.NoError(t, err)
	require.Equal(t, frameClose, kind)
}