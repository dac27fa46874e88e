package byteconv

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/mochidev/Bytes/ierrors"
)

// ToCharacter interprets b as exactly one user-perceived character, i.e. one
// extended grapheme cluster. Multi-codepoint clusters such as flag emoji or
// combining sequences count as a single character.
func ToCharacter(b []byte) (string, error) {
	if len(b) == 0 {
		return "", ierrors.Wrap(ErrInvalidCharacterByteSequence, "no bytes to decode")
	}

	if !utf8.Valid(b) {
		return "", ierrors.Wrap(ErrInvalidCharacterByteSequence, "character is not valid UTF-8")
	}

	character := string(b)
	if clusters := uniseg.GraphemeClusterCount(character); clusters != 1 {
		return "", ierrors.Wrapf(ErrInvalidCharacterByteSequence, "%d characters where exactly one is required", clusters)
	}

	return character, nil
}

// CharacterBytes returns the UTF-8 bytes of a single character. It is the
// inverse of ToCharacter and shares its definition of a character.
func CharacterBytes(character string) ([]byte, error) {
	if _, err := ToCharacter([]byte(character)); err != nil {
		return nil, err
	}

	return []byte(character), nil
}
