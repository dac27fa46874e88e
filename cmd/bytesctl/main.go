// bytesctl inspects binary files with the windowed read and cast primitives
// of the library.
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/mochidev/Bytes/bytecast"
	"github.com/mochidev/Bytes/configuration"
	"github.com/mochidev/Bytes/ierrors"
	"github.com/mochidev/Bytes/logger"
)

const (
	keyDumpWidth        = "dump.width"
	keyCastFlattenLimit = "cast.flattenLimit"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "bytesctl:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := configuration.NewUnsortedFlagSet("bytesctl", flag.ContinueOnError)
	flags.Usage = func() { printUsage(flags) }

	configPath := flags.StringP("config", "c", "", "path to a JSON, YAML or TOML config file")
	magic := flags.String("magic", "", "leading byte sequence in hex expected by the check command")
	typeName := flags.String("type", "uint32", "element type decoded by the cast command")
	endian := flags.String("endian", "little", "byte order used by the cast command (big or little)")
	flags.String(logger.ConfigurationKeyLevel, logger.DefaultCfg.Level, "minimum enabled logging level")
	flags.String(logger.ConfigurationKeyEncoding, logger.DefaultCfg.Encoding, "logger encoding (console or json)")
	flags.Int(keyDumpWidth, 16, "bytes per line printed by the dump command")
	flags.Int(keyCastFlattenLimit, bytecast.DefaultFlattenLimit, "largest fragmented input the cast command will flatten")

	if err := flags.Parse(args); err != nil {
		if ierrors.Is(err, flag.ErrHelp) {
			return nil
		}

		return err
	}

	config := configuration.New()
	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			return ierrors.Wrapf(err, "failed to load config file %s", *configPath)
		}
	}

	// flag defaults fill the gaps, env vars override the file, explicitly set
	// flags override everything
	if err := config.LoadFlagSet(flags); err != nil {
		return err
	}
	if err := config.LoadEnvironmentVars("BYTESCTL"); err != nil {
		return err
	}
	if err := config.LoadFlagSet(flags); err != nil {
		return err
	}

	if err := logger.InitGlobalLogger(config); err != nil {
		return err
	}
	log := logger.NewLogger("bytesctl")

	positional := flags.Args()
	if len(positional) == 0 {
		flags.Usage()

		return ierrors.New("missing command")
	}

	command, paths := positional[0], positional[1:]

	switch command {
	case "dump":
		return runDump(log, config.Int(keyDumpWidth), paths)
	case "check":
		return runCheck(log, *magic, paths)
	case "cast":
		return runCast(log, *typeName, *endian, config.Int(keyCastFlattenLimit), paths)
	case "uuids":
		return runUUIDs(log, paths)
	default:
		flags.Usage()

		return ierrors.Errorf("unknown command %q", command)
	}
}

func printUsage(flags *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `bytesctl inspects binary files with windowed reads.

Usage:
  bytesctl dump <file>                         hex dump in greedy windows
  bytesctl check <file> --magic <hex>          verify the leading bytes
  bytesctl cast <file>... --type <T> --endian <order>
                                               decode the input as numeric values
  bytesctl uuids <file>                        print consecutive raw UUIDs

Flags:
%s`, flags.FlagUsages())
}
