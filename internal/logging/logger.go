package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "DEBLOATER_LOG_LEVEL"

// Options controls where and how much the logger writes.
type Options struct {
	// Level is one of debug, info, warn, error. Empty falls back to
	// DEBLOATER_LOG_LEVEL, and if that is empty too logging is disabled.
	Level string

	// File redirects output to a file. The terminal UI owns stdout, so the
	// TUI always sets this; CLI commands leave it empty and log to stdout.
	File string
}

// Initialize creates a new logger with the specified level.
// If level is empty, it checks DEBLOATER_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	return InitializeWithOptions(Options{Level: level})
}

// InitializeWithOptions builds the global logger from opts.
func InitializeWithOptions(opts Options) error {
	level := opts.Level
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	if opts.File != "" {
		// No ANSI colours in files
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		config.OutputPaths = []string{opts.File}
		config.ErrorOutputPaths = []string{opts.File}
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

// InitializeFromEnv initializes the logger from the DEBLOATER_LOG_LEVEL
// environment variable, silent by default.
func InitializeFromEnv() error {
	return Initialize("")
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Named returns a child logger for a component ("adb", "catalog", "tui", ...).
func Named(component string) *zap.Logger {
	return GetLogger().Named(component)
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, fields ...zap.Field) {
	GetLogger().Fatal(msg, fields...)
}

// LogDeviceQuery logs the outcome of a device identity lookup.
func LogDeviceQuery(serial, label string, duration time.Duration, err error) {
	fields := []zap.Field{
		zap.String("serial", serial),
		zap.String("label", label),
		zap.Duration("duration", duration),
	}
	if err != nil {
		Warn("Device query failed", append(fields, zap.Error(err))...)
		return
	}
	Info("Device identified", fields...)
}

// LogCatalogLoad logs a catalog load with its source and size.
func LogCatalogLoad(source string, packages int, duration time.Duration, err error) {
	fields := []zap.Field{
		zap.String("source", source),
		zap.Int("packages", packages),
		zap.Duration("duration", duration),
	}
	if err != nil {
		Error("Catalog load failed", append(fields, zap.Error(err))...)
		return
	}
	Info("Catalog loaded", fields...)
}

// LogEvent logs an event entering the controller's update step.
func LogEvent(name string, screen string) {
	Debug("Event",
		zap.String("event", name),
		zap.String("active_screen", screen),
	)
}

// LogCommand logs a command being scheduled.
func LogCommand(name string, generation uint64) {
	Debug("Command scheduled",
		zap.String("command", name),
		zap.Uint64("generation", generation),
	)
}

// LogStaleResult logs an asynchronous result dropped because a newer load superseded it.
func LogStaleResult(event string, got, current uint64) {
	Info("Discarding stale result",
		zap.String("event", event),
		zap.Uint64("result_generation", got),
		zap.Uint64("current_generation", current),
	)
}

// LogConnection logs a WebSocket client connection event
func LogConnection(clientID, remoteAddr, event string) {
	Info("Connection event",
		zap.String("client_id", clientID),
		zap.String("remote_addr", remoteAddr),
		zap.String("event", event),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
