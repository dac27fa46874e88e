// Package logger provides zap-backed logging with a process-wide root logger
// and named sub-loggers derived from it.
package logger

import (
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mochidev/Bytes/ierrors"
	"github.com/mochidev/Bytes/syncutils"
)

// The Logger uses the sugared logger.
type Logger = zap.SugaredLogger

// A Level is a logging priority. Higher levels are more important.
type Level = zapcore.Level

const (
	// LevelDebug logs are typically voluminous, and are usually disabled in production.
	LevelDebug = zapcore.DebugLevel
	// LevelInfo is the default logging priority.
	LevelInfo = zapcore.InfoLevel
	// LevelWarn logs are more important than Info, but don't need individual human review.
	LevelWarn = zapcore.WarnLevel
	// LevelError logs are high-priority.
	// If an application is running smoothly, it shouldn't generate any error-level logs.
	LevelError = zapcore.ErrorLevel
	// LevelPanic logs a message, then panics.
	LevelPanic = zapcore.PanicLevel
	// LevelFatal logs a message, then calls os.Exit(1).
	LevelFatal = zapcore.FatalLevel
)

// ErrGlobalLoggerAlreadyInitialized is returned when the global logger was already initialized.
var ErrGlobalLoggerAlreadyInitialized = ierrors.New("global logger already initialized")

var (
	mu          syncutils.Mutex
	logger      *Logger
	initialized atomic.Bool

	level = zap.NewAtomicLevel()
)

// SetLevel alters the logging level of the root logger and all its children.
func SetLevel(l Level) {
	level.SetLevel(l)
}

// NewRootLogger creates a new root logger from the provided configuration.
func NewRootLogger(cfg Config) (*Logger, error) {
	var options []zap.Option

	// create the encoder
	encoding := cfg.Encoding
	if encoding == "" {
		encoding = DefaultCfg.Encoding
	}

	var enc zapcore.Encoder
	switch encoding {
	case "json":
		enc = zapcore.NewJSONEncoder(defaultEncoderConfig)
	case "console":
		enc = zapcore.NewConsoleEncoder(defaultEncoderConfig)
	default:
		return nil, ierrors.Errorf("unknown encoding: %s", cfg.Encoding)
	}

	// create the writer syncer
	outputPaths := cfg.OutputPaths
	if len(outputPaths) == 0 {
		outputPaths = DefaultCfg.OutputPaths
	}

	ws, _, err := zap.Open(outputPaths...)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to open log outputs")
	}

	// parse the level
	levelText := cfg.Level
	if levelText == "" {
		levelText = DefaultCfg.Level
	}
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		return nil, ierrors.Wrapf(err, "invalid log level %q", cfg.Level)
	}

	// add caller
	if !cfg.DisableCaller {
		options = append(options, zap.AddCaller())
	}

	// add stacktrace
	if !cfg.DisableStacktrace {
		options = append(options, zap.AddStacktrace(LevelError))
	}

	return zap.New(zapcore.NewCore(enc, ws, level), options...).Sugar(), nil
}

// SetGlobalLogger sets the provided logger as the global logger. It can only
// be called once, further calls return ErrGlobalLoggerAlreadyInitialized.
func SetGlobalLogger(root *Logger) error {
	mu.Lock()
	defer mu.Unlock()

	if initialized.Load() {
		return ErrGlobalLoggerAlreadyInitialized
	}

	logger = root
	initialized.Store(true)

	return nil
}

// NewLogger returns a new named child of the global root logger. It panics if
// the global logger was not initialized with SetGlobalLogger before.
func NewLogger(name string) *Logger {
	if !initialized.Load() {
		panic("global logger not initialized")
	}

	return logger.Named(name)
}
