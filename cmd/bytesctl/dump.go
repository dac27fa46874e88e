package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mochidev/Bytes/byteiter"
	"github.com/mochidev/Bytes/ierrors"
	"github.com/mochidev/Bytes/logger"
)

// runDump prints a hex dump of each file, one greedy window per line.
func runDump(log *logger.Logger, width int, paths []string) error {
	if width <= 0 {
		return ierrors.Errorf("invalid dump width %d", width)
	}
	if len(paths) == 0 {
		return ierrors.New("dump requires at least one file")
	}

	for _, path := range paths {
		if err := dumpFile(log, width, path); err != nil {
			return ierrors.Wrapf(err, "failed to dump %s", path)
		}
	}

	return nil
}

func dumpFile(log *logger.Logger, width int, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	source := byteiter.NewReaderSource(file)
	iterator := byteiter.NewIterator(source)

	offset := 0
	for {
		window := iterator.ReadGreedy(width)
		if len(window) == 0 {
			break
		}

		fmt.Printf("%08x  %-*s |%s|\n", offset, width*3, hexColumns(window), printableColumn(window))
		offset += len(window)
	}

	if err := source.Err(); err != nil {
		return err
	}

	log.Debugf("dumped %d bytes from %s", source.BytesRead(), path)

	return nil
}

func hexColumns(window []byte) string {
	var builder strings.Builder
	for i, b := range window {
		if i > 0 {
			builder.WriteByte(' ')
		}
		fmt.Fprintf(&builder, "%02x", b)
	}

	return builder.String()
}

func printableColumn(window []byte) string {
	var builder strings.Builder
	for _, b := range window {
		if b < 0x20 || b > 0x7E {
			builder.WriteByte('.')
		} else {
			builder.WriteByte(b)
		}
	}

	return builder.String()
}
