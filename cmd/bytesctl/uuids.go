package main

import (
	"fmt"
	"os"

	"github.com/mochidev/Bytes/byteiter"
	"github.com/mochidev/Bytes/ierrors"
	"github.com/mochidev/Bytes/logger"
)

// runUUIDs prints the raw UUIDs a file consists of, one per line. A file
// ending between two UUIDs is fine; one ending inside a UUID is truncated and
// reported as a failure.
func runUUIDs(log *logger.Logger, paths []string) error {
	if len(paths) == 0 {
		return ierrors.New("uuids requires at least one file")
	}

	for _, path := range paths {
		if err := uuidsFile(log, path); err != nil {
			return ierrors.Wrapf(err, "failed to read UUIDs from %s", path)
		}
	}

	return nil
}

func uuidsFile(log *logger.Logger, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	source := byteiter.NewReaderSource(file)
	iterator := byteiter.NewIterator(source)

	count := 0
	for {
		id, ok, err := byteiter.ReadUUIDIfAvailable(iterator)
		if err != nil {
			if readErr := source.Err(); readErr != nil {
				return readErr
			}

			return err
		}
		if !ok {
			break
		}

		fmt.Println(id)
		count++
	}

	if err := source.Err(); err != nil {
		return err
	}

	log.Debugf("read %d UUIDs from %s", count, path)

	return nil
}
