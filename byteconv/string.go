package byteconv

import (
	"encoding/binary"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/mochidev/Bytes/bytecast"
	"github.com/mochidev/Bytes/ierrors"
)

// ToString interprets b as UTF-8 text and fails on invalid sequences instead
// of silently inserting replacement characters.
func ToString(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ierrors.Wrap(ErrInvalidCharacterByteSequence, "text is not valid UTF-8")
	}

	return string(b), nil
}

// StringBytes returns the UTF-8 bytes of s as a fresh slice.
func StringBytes(s string) []byte {
	return []byte(s)
}

// ToStringUTF16 decodes b as UTF-16 text in the given byte order. The length
// of b must be a multiple of two; unpaired surrogates decode to the Unicode
// replacement character, matching the standard library's UTF-16 handling.
func ToStringUTF16(b []byte, order binary.ByteOrder) (string, error) {
	// code units are uint16, so the size vocabulary of the collection mapper
	// applies to text too
	if _, _, err := bytecast.CanMapTo[uint16](len(b)); err != nil {
		return "", err
	}

	decoded, err := utf16Encoding(order).NewDecoder().Bytes(b)
	if err != nil {
		return "", ierrors.Wrapf(ErrInvalidCharacterByteSequence, "unable to decode UTF-16 text: %s", err.Error())
	}

	return string(decoded), nil
}

// UTF16Bytes encodes s as UTF-16 text in the given byte order, without a byte
// order mark.
func UTF16Bytes(s string, order binary.ByteOrder) ([]byte, error) {
	encoded, err := utf16Encoding(order).NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, ierrors.Wrapf(ErrInvalidCharacterByteSequence, "unable to encode UTF-16 text: %s", err.Error())
	}

	return encoded, nil
}

func utf16Encoding(order binary.ByteOrder) encoding.Encoding {
	endianness := unicode.BigEndian
	if orderIsLittleEndian(order) {
		endianness = unicode.LittleEndian
	}

	return unicode.UTF16(endianness, unicode.IgnoreBOM)
}
