package byteiter

import (
	"github.com/mochidev/Bytes/bytecast"
	"github.com/mochidev/Bytes/ierrors"
)

// byteSliceTypeName is the type the size vocabulary reports for raw windowed
// reads.
const byteSliceTypeName = "[]byte"

// nextFunc is the primitive every windowed read is driven by: the next byte,
// whether one was available, and a source failure if one occurred. The plain
// and the context-aware iterator both reduce to it, so the windowed algorithm
// exists only once.
type nextFunc func() (byte, bool, error)

// readWindow pulls bytes until maxCount are collected or the source is
// exhausted. Collecting fewer than minCount bytes is reported with an
// InvalidMemorySizeError; a source failure takes precedence and is returned
// as-is. The started flag reports whether any byte was obtained, which is
// what separates "exhausted before the first byte" from "started and came up
// short".
func readWindow(next nextFunc, minCount int, maxCount int) (result []byte, started bool, err error) {
	result = make([]byte, 0, minCount)
	for len(result) < maxCount {
		b, ok, err := next()
		if err != nil {
			return nil, started, err
		}
		if !ok {
			break
		}

		started = true
		result = append(result, b)
	}

	if len(result) < minCount {
		return nil, started, &bytecast.InvalidMemorySizeError{
			Target:   minCount,
			TypeName: byteSliceTypeName,
			Actual:   len(result),
		}
	}

	return result, started, nil
}

// checkWindow drives the compare-as-you-go loop of the check family. It stops
// at the first mismatching byte, so a failed check consumes only the bytes it
// inspected. Exhaustion before the first byte reports "not found" without an
// error when tolerated, and a CheckedSequenceNotFoundError otherwise;
// exhaustion after the first byte always fails, since consumption had already
// started.
func checkWindow(next nextFunc, expected []byte, tolerateUnstarted bool) (bool, error) {
	consumed := make([]byte, 0, len(expected))
	for i := 0; i < len(expected); i++ {
		b, ok, err := next()
		if err != nil {
			return false, err
		}
		if !ok {
			if i == 0 && tolerateUnstarted {
				return false, nil
			}

			return false, &CheckedSequenceNotFoundError{
				Expected: expected,
				Actual:   consumed,
				Offset:   i,
			}
		}

		consumed = append(consumed, b)
		if b != expected[i] {
			return false, &CheckedSequenceNotFoundError{
				Expected: expected,
				Actual:   consumed,
				Offset:   i,
			}
		}
	}

	return true, nil
}

func readExact(next nextFunc, count int) ([]byte, error) {
	checkWindowBounds(count, count)

	// asking for nothing succeeds without consuming the primitive
	if count == 0 {
		return []byte{}, nil
	}

	result, _, err := readWindow(next, count, count)

	return result, err
}

func readExactIfAvailable(next nextFunc, count int) ([]byte, bool, error) {
	checkWindowBounds(count, count)

	if count == 0 {
		return []byte{}, true, nil
	}

	result, started, err := readWindow(next, count, count)

	return suppressUnstartedExhaustion(result, started, err)
}

func readBounded(next nextFunc, minCount int, maxCount int) ([]byte, error) {
	checkWindowBounds(minCount, maxCount)

	result, _, err := readWindow(next, minCount, maxCount)

	return result, err
}

func readBoundedIfAvailable(next nextFunc, minCount int, maxCount int) ([]byte, bool, error) {
	checkWindowBounds(minCount, maxCount)

	if maxCount == 0 {
		return []byte{}, true, nil
	}

	return suppressUnstartedExhaustion(readWindow(next, minCount, maxCount))
}

func readGreedy(next nextFunc, maxCount int) ([]byte, error) {
	checkWindowBounds(0, maxCount)

	result, _, err := readWindow(next, 0, maxCount)

	return result, err
}

func readGreedyIfAvailable(next nextFunc, maxCount int) ([]byte, bool, error) {
	checkWindowBounds(0, maxCount)

	if maxCount == 0 {
		return []byte{}, true, nil
	}

	return suppressUnstartedExhaustion(readWindow(next, 0, maxCount))
}

func checkBytes(next nextFunc, expected []byte) error {
	_, err := checkWindow(next, expected, false)

	return err
}

func checkBytesIfAvailable(next nextFunc, expected []byte) (bool, error) {
	return checkWindow(next, expected, true)
}

// suppressUnstartedExhaustion turns the short-read error of a window that
// never obtained a byte into the "no value" outcome of the IfAvailable
// family. Source failures and short reads that already consumed bytes stay
// errors, and a window that closed empty without a minimum carries no value
// either.
func suppressUnstartedExhaustion(result []byte, started bool, err error) ([]byte, bool, error) {
	if err != nil {
		if !started && ierrors.Is(err, bytecast.ErrInvalidMemorySize) {
			return nil, false, nil
		}

		return nil, false, err
	}

	if !started {
		return nil, false, nil
	}

	return result, true, nil
}

func checkWindowBounds(minCount int, maxCount int) {
	// sanitize parameters
	if minCount < 0 {
		panic("windowed reads require a non-negative minimum byte count")
	}
	if maxCount < minCount {
		panic("windowed reads require a maximum byte count of at least the minimum")
	}
}
