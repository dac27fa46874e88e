package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	flag "github.com/spf13/pflag"

	"github.com/mochidev/Bytes/ierrors"
)

var (
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = ierrors.New("unknown config file format")
)

// Configuration holds config parameters from several sources (file, env vars, flags).
// All key paths are lowercased, so lookups are case-insensitive.
type Configuration struct {
	config *koanf.Koanf
}

// New returns an empty configuration.
func New() *Configuration {
	return &Configuration{
		config: koanf.New("."),
	}
}

// parserForFile maps the file extension to the parser handling that format.
func parserForFile(filePath string) (koanf.Parser, error) {
	switch filepath.Ext(filePath) {
	case ".json":
		return &JSONLowerParser{indent: "  "}, nil
	case ".yaml", ".yml":
		return &YAMLLowerParser{}, nil
	case ".toml":
		return &TOMLLowerParser{}, nil
	default:
		return nil, ErrUnknownConfigFormat
	}
}

// LoadFile loads parameters from a JSON, YAML or TOML file and merges them
// into the config. Existing keys are overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return err
	}

	parser, err := parserForFile(filePath)
	if err != nil {
		return err
	}

	if err := c.config.Load(file.Provider(filePath), parser); err != nil {
		return ierrors.Wrapf(err, "failed to load config file %s", filePath)
	}

	return nil
}

// pruneKeyPaths removes the given dot-separated key paths from a nested
// settings map. Paths that do not exist are skipped.
func pruneKeyPaths(settings map[string]interface{}, keyPaths []string) {
	for _, keyPath := range keyPaths {
		parameter := settings
		segments := strings.Split(strings.ToLower(keyPath), ".")
		for lvl, segment := range segments {
			if lvl == len(segments)-1 {
				delete(parameter, segment)
				continue
			}

			par, exists := parameter[segment]
			if !exists {
				break
			}

			parameter = par.(map[string]interface{})
		}
	}
}

// StoreFile stores the current config to a JSON, YAML or TOML file.
// Keys listed in ignoreSettingsAtStore are left out of the file.
func (c *Configuration) StoreFile(filePath string, ignoreSettingsAtStore ...[]string) error {
	settings := c.config.Raw()
	if len(ignoreSettingsAtStore) > 0 {
		pruneKeyPaths(settings, ignoreSettingsAtStore[0])
	}

	parser, err := parserForFile(filePath)
	if err != nil {
		return err
	}

	data, err := parser.Marshal(settings)
	if err != nil {
		return ierrors.Wrap(err, "unable to marshal config file")
	}

	if err := os.WriteFile(filePath, data, 0o666); err != nil {
		return ierrors.Wrap(err, "unable to save config file")
	}

	return nil
}

// LoadFlagSet loads parameters from a FlagSet (spf13/pflag lib) including
// default values and merges them into the loaded config.
// Existing keys will only be overwritten, if they were set via command line.
// If not given via command line, default values will only be used if they did not exist beforehand.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.config.Load(lowerPosflagProvider(flagSet, ".", c.config), nil)
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the
// loaded config. The prefix is used to filter the env vars.
// Only existing keys will be overwritten, all other keys are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
		if !c.config.Exists(mapKey) {
			// only accept values from env vars that already exist in the config
			return ""
		}

		return mapKey
	}), nil)
}
