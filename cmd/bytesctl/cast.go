package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/mochidev/Bytes/bytecast"
	"github.com/mochidev/Bytes/byteconv"
	"github.com/mochidev/Bytes/byteutils"
	"github.com/mochidev/Bytes/constraints"
	"github.com/mochidev/Bytes/ierrors"
	"github.com/mochidev/Bytes/logger"
)

// castReadChunkSize is the granularity in which cast reads its input files.
// Files larger than the flatten limit arrive fragmented and make the cast
// fail, which is the point: raising --cast.flattenLimit is an explicit
// decision to pay for the copy.
const castReadChunkSize = 4096

// runCast decodes each file as a flat sequence of numeric values.
func runCast(log *logger.Logger, typeName string, endian string, flattenLimit int, paths []string) error {
	order, err := byteOrderNamed(endian)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return ierrors.New("cast requires at least one file")
	}

	for _, path := range paths {
		if err := castFile(log, typeName, order, flattenLimit, path); err != nil {
			return ierrors.Wrapf(err, "failed to cast %s", path)
		}
	}

	return nil
}

func castFile(log *logger.Logger, typeName string, order binary.ByteOrder, flattenLimit int, path string) error {
	seq, err := readChunked(path)
	if err != nil {
		return err
	}

	log.Debugf("read %d bytes from %s", seq.Len(), path)

	switch typeName {
	case "uint8", "byte":
		return printCast[uint8](seq, order, flattenLimit)
	case "uint16":
		return printCast[uint16](seq, order, flattenLimit)
	case "uint32":
		return printCast[uint32](seq, order, flattenLimit)
	case "uint64":
		return printCast[uint64](seq, order, flattenLimit)
	case "int8":
		return printCast[int8](seq, order, flattenLimit)
	case "int16":
		return printCast[int16](seq, order, flattenLimit)
	case "int32":
		return printCast[int32](seq, order, flattenLimit)
	case "int64":
		return printCast[int64](seq, order, flattenLimit)
	case "float32":
		return printCast[float32](seq, order, flattenLimit)
	case "float64":
		return printCast[float64](seq, order, flattenLimit)
	default:
		return ierrors.Errorf("unknown element type %q", typeName)
	}
}

func printCast[T constraints.Numeric](seq bytecast.Sequence, order binary.ByteOrder, flattenLimit int) error {
	values, err := byteconv.SequenceToNumericSlice[T](seq, order, bytecast.WithFlattenLimit(flattenLimit))
	if err != nil {
		return err
	}

	for _, value := range values {
		fmt.Println(value)
	}

	return nil
}

// readChunked reads a whole file as a fragmented sequence, one chunk per read.
func readChunked(path string) (*byteutils.Chunked, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	chunked := byteutils.NewChunked()
	for {
		chunk := make([]byte, castReadChunkSize)
		n, err := file.Read(chunk)
		if n > 0 {
			chunked.Append(chunk[:n])
		}
		if err != nil {
			if ierrors.Is(err, io.EOF) {
				return chunked, nil
			}

			return nil, err
		}
	}
}

func byteOrderNamed(endian string) (binary.ByteOrder, error) {
	switch endian {
	case "big":
		return binary.BigEndian, nil
	case "little":
		return binary.LittleEndian, nil
	default:
		return nil, ierrors.Errorf("unknown byte order %q, use big or little", endian)
	}
}
