package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "IRSERVICE_LOG_LEVEL"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks IRSERVICE_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	// If no level provided, check environment variable
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	// Customize encoder for better readability
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the IRSERVICE_LOG_LEVEL
// environment variable. This is the recommended way to initialize logging
// for CLI commands that want silent mode by default.
func InitializeFromEnv() error {
	return Initialize("")
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		// This ensures no unexpected log output in CLI commands
		logger = zap.NewNop()
	}
	return logger
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

// LogTransmit logs an infrared transmission event
func LogTransmit(protocol string, code uint64, bits int, repeats int) {
	Info("IR transmit",
		zap.String("protocol", protocol),
		zap.String("code", fmt.Sprintf("0x%X", code)),
		zap.Int("bits", bits),
		zap.Int("repeats", repeats),
	)
}

// LogCapture logs a decoded infrared capture event
func LogCapture(protocol string, value uint64, bits int) {
	Info("IR capture",
		zap.String("protocol", protocol),
		zap.String("value", fmt.Sprintf("0x%X", value)),
		zap.Int("bits", bits),
	)
}

// LogCommand logs an inbound command string from the integration layer
func LogCommand(source string, command string) {
	Info("Command received",
		zap.String("source", source),
		zap.String("command", command),
	)
}

// LogDurations logs a raw mark/space duration train (useful for debugging
// unrecognized waveforms)
func LogDurations(label string, durations []uint16) {
	Debug(label,
		zap.Int("count", len(durations)),
		zap.String("durations", durationsDump(durations)),
	)
}

func durationsDump(durations []uint16) string {
	if len(durations) == 0 {
		return ""
	}
	// Limit to first 64 entries for logging
	n := len(durations)
	truncated := false
	if n > 64 {
		n = 64
		truncated = true
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("%d", durations[i])
	}
	s := strings.Join(parts, ",")
	if truncated {
		s += "..."
	}
	return s
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
