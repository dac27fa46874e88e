package logger

import (
	"github.com/spf13/cast"

	"github.com/mochidev/Bytes/configuration"
)

// InitGlobalLogger initializes the global logger from the provided config.
func InitGlobalLogger(config *configuration.Configuration) error {
	root, err := NewRootLoggerFromConfiguration(config)
	if err != nil {
		return err
	}

	return SetGlobalLogger(root)
}

// NewRootLoggerFromConfiguration creates a new root logger from the provided configuration.
func NewRootLoggerFromConfiguration(config *configuration.Configuration) (*Logger, error) {
	cfg := DefaultCfg

	// read the values one by one: struct binding does not see a config
	// group whose keys were only defined via flags
	if val := config.String(ConfigurationKeyLevel); val != "" {
		cfg.Level = val
	}
	// env var overrides arrive as strings, so cast instead of asserting
	if val := config.Get(ConfigurationKeyDisableCaller); val != nil {
		cfg.DisableCaller = cast.ToBool(val)
	}
	if val := config.Get(ConfigurationKeyDisableStacktrace); val != nil {
		cfg.DisableStacktrace = cast.ToBool(val)
	}
	if val := config.String(ConfigurationKeyEncoding); val != "" {
		cfg.Encoding = val
	}
	if val := config.Strings(ConfigurationKeyOutputPaths); len(val) > 0 {
		cfg.OutputPaths = val
	}

	return NewRootLogger(cfg)
}
