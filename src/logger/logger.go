package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// -----------------------------------------------------------------------------

// Logger provides named, printf-style logging on top of zerolog
type Logger struct {
	name   string
	logger zerolog.Logger
}

// -----------------------------------------------------------------------------

// SetLevel applies the configured level (DEBUG, INFO, WARNING, ERROR) globally.
// Unknown values fall back to INFO.
func SetLevel(level string) {
	zerolog.SetGlobalLevel(ParseLevel(level))
}

// -----------------------------------------------------------------------------

func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARNING", "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// -----------------------------------------------------------------------------

// NewLogger creates a new Logger instance writing to stdout
func NewLogger(name string) *Logger {
	return NewLoggerTo(os.Stdout, name)
}

// -----------------------------------------------------------------------------

// NewLoggerTo creates a Logger writing JSON lines to w
func NewLoggerTo(w io.Writer, name string) *Logger {
	return &Logger{
		name:   name,
		logger: zerolog.New(w).With().Timestamp().Str("component", name).Logger(),
	}
}

// -----------------------------------------------------------------------------

// Named derives a logger for a sub-component sharing the same sink
func (l *Logger) Named(name string) *Logger {
	return &Logger{
		name:   name,
		logger: l.logger.With().Str("component", name).Logger(),
	}
}

// -----------------------------------------------------------------------------

// DebugEnabled reports whether Debug output is currently emitted
func (l *Logger) DebugEnabled() bool {
	return l.logger.Debug().Enabled()
}

// -----------------------------------------------------------------------------

func (l *Logger) Debug(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

// -----------------------------------------------------------------------------

func (l *Logger) Warning(format string, args ...interface{}) {
	l.logger.Warn().Msgf(format, args...)
}

// -----------------------------------------------------------------------------

// Info logs informational messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.logger.Info().Msgf(format, args...)
}

// -----------------------------------------------------------------------------

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	l.logger.Error().Msgf(format, args...)
}

// -----------------------------------------------------------------------------

// Critical logs critical errors and exits the application
func (l *Logger) Critical(format string, args ...interface{}) {
	l.logger.WithLevel(zerolog.FatalLevel).Msgf(format, args...)
	os.Exit(1)
}
