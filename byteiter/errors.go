package byteiter

import (
	"fmt"

	"github.com/mochidev/Bytes/ierrors"
)

// ErrCheckedSequenceNotFound gets returned when the bytes read from a source
// differ from the bytes a check expected.
var ErrCheckedSequenceNotFound = ierrors.New("checked sequence not found")

// CheckedSequenceNotFoundError reports the position at which a check stopped,
// either because a byte differed from the expected one or because the source
// was exhausted before the expected sequence completed.
//
// It matches ErrCheckedSequenceNotFound in errors.Is checks.
type CheckedSequenceNotFoundError struct {
	// Expected holds the byte sequence the check was looking for.
	Expected []byte
	// Actual holds the bytes the check consumed. It is shorter than Expected
	// when the source was exhausted mid-sequence.
	Actual []byte
	// Offset is the index within Expected at which the check stopped.
	Offset int
}

func (e *CheckedSequenceNotFoundError) Error() string {
	if e.Offset >= len(e.Actual) {
		return fmt.Sprintf("checked sequence not found: source exhausted after %d of %d expected bytes", len(e.Actual), len(e.Expected))
	}

	return fmt.Sprintf("checked sequence not found: byte %d is %#02x instead of %#02x", e.Offset, e.Actual[e.Offset], e.Expected[e.Offset])
}

func (e *CheckedSequenceNotFoundError) Is(target error) bool {
	return target == ErrCheckedSequenceNotFound
}
