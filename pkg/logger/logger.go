// Package logger provides the logging interface shared by all pwrsched
// components. Implementations may write to the console, a file, or be
// silenced entirely.
package logger

import "log"

// Logger is the logging contract the engine, server and daemon depend on.
type Logger interface {
	// Info logs an informational message (e.g. "schedule item fired").
	Info(format string, args ...interface{})

	// Warning logs a warning message (e.g. "presenter unavailable").
	Warning(format string, args ...interface{})

	// Error logs an error message (e.g. "action executor failed").
	Error(format string, args ...interface{})

	// Close releases any resources held by the logger. Safe to call more
	// than once; loggers without resources return nil.
	Close() error
}

// StandardLogger wraps a stdlib *log.Logger for console or file output.
type StandardLogger struct {
	logger *log.Logger
}

// NewStandardLogger wraps the given *log.Logger.
func NewStandardLogger(l *log.Logger) *StandardLogger {
	return &StandardLogger{logger: l}
}

// Info logs with an [INFO] prefix.
func (s *StandardLogger) Info(format string, args ...interface{}) {
	s.logger.Printf("[INFO] "+format, args...)
}

// Warning logs with a [WARNING] prefix.
func (s *StandardLogger) Warning(format string, args ...interface{}) {
	s.logger.Printf("[WARNING] "+format, args...)
}

// Error logs with an [ERROR] prefix.
func (s *StandardLogger) Error(format string, args ...interface{}) {
	s.logger.Printf("[ERROR] "+format, args...)
}

// Close is a no-op for StandardLogger.
func (s *StandardLogger) Close() error {
	return nil
}

// NopLogger discards all messages. Useful in tests and when logging is
// disabled.
type NopLogger struct{}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (n *NopLogger) Info(format string, args ...interface{})    {}
func (n *NopLogger) Warning(format string, args ...interface{}) {}
func (n *NopLogger) Error(format string, args ...interface{})   {}

// Close is a no-op.
func (n *NopLogger) Close() error {
	return nil
}

var (
	_ Logger = (*StandardLogger)(nil)
	_ Logger = (*NopLogger)(nil)
)
