package logger

import "go.uber.org/zap/zapcore"

const (
	ConfigurationKeyLevel             = "logger.level"
	ConfigurationKeyDisableCaller     = "logger.disableCaller"
	ConfigurationKeyDisableStacktrace = "logger.disableStacktrace"
	ConfigurationKeyEncoding          = "logger.encoding"
	ConfigurationKeyOutputPaths       = "logger.outputPaths"
)

// Config holds the settings to configure a root logger instance.
type Config struct {
	// Level is the minimum enabled logging level, "info" by default.
	Level string `json:"level"`
	// DisableCaller stops annotating logs with the calling function's file
	// name and line number.
	DisableCaller bool `json:"disableCaller"`
	// DisableStacktrace disables automatic stacktrace capturing, which
	// otherwise happens for error level and above.
	DisableStacktrace bool `json:"disableStacktrace"`
	// Encoding is "console" (the default) or "json".
	Encoding string `json:"encoding"`
	// OutputPaths lists URLs, file paths or stdout/stderr to write logging
	// output to, ["stdout"] by default.
	OutputPaths []string `json:"outputPaths"`
}

// DefaultCfg holds the default settings of a root logger instance.
var DefaultCfg = Config{
	Level:       "info",
	Encoding:    "console",
	OutputPaths: []string{"stdout"},
}

var defaultEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.CapitalLevelEncoder,    // level in upper case
	EncodeTime:     zapcore.RFC3339TimeEncoder,     // timestamp according to RFC3339
	EncodeDuration: zapcore.SecondsDurationEncoder, // duration in seconds
	EncodeCaller:   zapcore.ShortCallerEncoder,     // caller according to package/file:line
}
