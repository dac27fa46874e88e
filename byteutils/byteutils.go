package byteutils

// ReadAvailableBytesToBuffer copies as many bytes as possible from the given
// region of source into target starting at targetOffset and returns the
// number of copied bytes.
func ReadAvailableBytesToBuffer(target []byte, targetOffset int, source []byte, sourceOffset int, sourceLength int) int {
	availableBytes := sourceLength - sourceOffset
	requiredBytes := len(target) - targetOffset

	var bytesToRead int
	if availableBytes < requiredBytes {
		bytesToRead = availableBytes
	} else {
		bytesToRead = requiredBytes
	}

	copy(target[targetOffset:], source[sourceOffset:sourceOffset+bytesToRead])

	return bytesToRead
}

// Concat concatenates the byte slices into a new byte slice, sized up front
// so the content is copied exactly once.
func Concat(byteSlices ...[]byte) []byte {
	// sanitize parameters
	if len(byteSlices) == 0 {
		panic("calls to Concat require at least one argument")
	}

	totalBytes := 0
	for _, byteSlice := range byteSlices {
		totalBytes += len(byteSlice)
	}

	result := make([]byte, 0, totalBytes)
	for _, byteSlice := range byteSlices {
		result = append(result, byteSlice...)
	}

	return result
}
