package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Field represents a structured logging field as a key/value pair.
type Field struct {
	// Key is the field name.
	Key string
	// Value is the field value.
	Value any
}

// String creates a Field with a string value.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates a Field with an int value.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 creates a Field with an int64 value.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Uint64 creates a Field with a uint64 value.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a Field with a float64 value.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err creates a Field with the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the minimal structured logging interface used across the
// application. Implementations must be safe for concurrent use.
type Logger interface {
	// Debug logs a message at debug level with optional structured fields.
	Debug(msg string, fields ...Field)
	// Info logs a message at info level with optional structured fields.
	Info(msg string, fields ...Field)
	// Warn logs a message at warn level with optional structured fields.
	Warn(msg string, fields ...Field)
	// Error logs a message at error level with optional structured fields.
	Error(msg string, fields ...Field)
}

// ZerologAdapter adapts a zerolog.Logger to the Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a Logger backed by the given zerolog.Logger.
//
// Parameters:
//   - logger: The zerolog logger to adapt.
//
// Returns:
//   - *ZerologAdapter: The adapted logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewLogger creates a Logger writing to w with a component field attached to
// every event.
//
// Parameters:
//   - w: The destination writer.
//   - component: The component name recorded on each event.
//
// Returns:
//   - *ZerologAdapter: The configured logger.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{logger: zl}
}

// NewDefaultLogger creates a Logger writing human-readable output to stderr.
func NewDefaultLogger() *ZerologAdapter {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return &ZerologAdapter{logger: zl}
}

func (a *ZerologAdapter) emit(ev *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			ev = ev.Str(f.Key, v)
		case int:
			ev = ev.Int(f.Key, v)
		case int64:
			ev = ev.Int64(f.Key, v)
		case uint64:
			ev = ev.Uint64(f.Key, v)
		case float64:
			ev = ev.Float64(f.Key, v)
		case error:
			ev = ev.AnErr(f.Key, v)
		default:
			ev = ev.Interface(f.Key, v)
		}
	}
	ev.Msg(msg)
}

// Debug logs a message at debug level.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	a.emit(a.logger.Debug(), msg, fields)
}

// Info logs a message at info level.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	a.emit(a.logger.Info(), msg, fields)
}

// Warn logs a message at warn level.
func (a *ZerologAdapter) Warn(msg string, fields ...Field) {
	a.emit(a.logger.Warn(), msg, fields)
}

// Error logs a message at error level.
func (a *ZerologAdapter) Error(msg string, fields ...Field) {
	a.emit(a.logger.Error(), msg, fields)
}

// NopLogger is a Logger that discards every event. It is the default for
// library consumers that do not configure logging.
type NopLogger struct{}

// NewNopLogger creates a Logger that discards all events.
func NewNopLogger() NopLogger { return NopLogger{} }

// Debug discards the event.
func (NopLogger) Debug(string, ...Field) {}

// Info discards the event.
func (NopLogger) Info(string, ...Field) {}

// Warn discards the event.
func (NopLogger) Warn(string, ...Field) {}

// Error discards the event.
func (NopLogger) Error(string, ...Field) {}
