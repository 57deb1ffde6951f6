// Package logging provides structured logging for the IR service.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the service. It provides both general logging
// functions and specialized functions for infrared-specific logging needs.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (duration trains, parse traces)
//   - Info: Normal operations (commands, transmits, captures)
//   - Warn: Non-fatal issues (rejected commands, reconnects)
//   - Error: Fatal issues (startup failures, hardware errors)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Bridge connected",
//	    zap.String("broker", "tcp://192.168.1.5:1883"),
//	    zap.String("device", "LivingRoomIR"),
//	)
//
// # Specialized Logging
//
// The package provides domain-specific logging functions:
//
//	logging.LogTransmit("NEC", 0x20DF10EF, 32, 0)
//	logging.LogCapture("SAMSUNG", 0xE0E040BF, 32)
//	logging.LogCommand("mqtt", "7,E0E040BF,32")
//	logging.LogDurations("raw capture", durations)
//
// # Configuration
//
// Initialize logging at service startup:
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
package logging
