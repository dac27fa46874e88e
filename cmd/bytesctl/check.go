package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/mochidev/Bytes/byteiter"
	"github.com/mochidev/Bytes/ierrors"
	"github.com/mochidev/Bytes/logger"
)

// runCheck verifies that each file starts with the expected magic bytes. A
// missing magic is reported through the exit status, so the command works in
// scripts.
func runCheck(log *logger.Logger, magicHex string, paths []string) error {
	if magicHex == "" {
		return ierrors.New("check requires --magic")
	}
	magic, err := hex.DecodeString(strings.TrimPrefix(magicHex, "0x"))
	if err != nil {
		return ierrors.Wrapf(err, "invalid magic %q", magicHex)
	}
	if len(paths) == 0 {
		return ierrors.New("check requires at least one file")
	}

	for _, path := range paths {
		err := checkFile(log, magic, path)
		switch {
		case err == nil:
			fmt.Printf("%s: ok\n", path)
		case ierrors.Is(err, byteiter.ErrCheckedSequenceNotFound):
			fmt.Printf("%s: missing magic %x\n", path, magic)

			return ierrors.Wrapf(err, "failed to check %s", path)
		default:
			return ierrors.Wrapf(err, "failed to check %s", path)
		}
	}

	return nil
}

func checkFile(log *logger.Logger, magic []byte, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	source := byteiter.NewReaderSource(file)
	checkErr := byteiter.NewIterator(source).CheckBytes(magic)

	// a reading failure is more accurate than the exhaustion it looks like
	// to the check
	if err := source.Err(); err != nil {
		return err
	}
	if checkErr != nil {
		return checkErr
	}

	log.Debugf("%s starts with %x", path, magic)

	return nil
}
