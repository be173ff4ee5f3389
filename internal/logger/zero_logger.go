package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// ZeroLogger writes structured JSON lines through zerolog.
type ZeroLogger struct {
	writer        io.Writer
	level         Level
	defaultFields Fields
	log           zerolog.Logger
}

var _ Logger = (*ZeroLogger)(nil)

// NewZeroLogger return a configured instance of NewZeroLogger
func NewZeroLogger(writer io.Writer, level Level, defaultFields Fields) *ZeroLogger {
	if defaultFields == nil {
		defaultFields = Fields{}
	}
	zeroLogger := ZeroLogger{writer: writer, level: level, defaultFields: defaultFields}
	zeroLogger.configureLogger()
	return &zeroLogger
}

func (l *ZeroLogger) configureLogger() {
	l.log = zerolog.New(l.writer).
		With().
		Fields(map[string]interface{}(l.defaultFields)).
		Timestamp().
		Logger().
		Level(toZerologLevel(l.level))
}

func toZerologLevel(level Level) zerolog.Level {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelFatal:
		return zerolog.FatalLevel
	case LevelOff:
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Info only logs information
func (l *ZeroLogger) Info(message string, properties map[string]interface{}) {
	l.log.Info().Fields(properties).Msg(message)
}

// Error reports all error at error level
func (l *ZeroLogger) Error(err error, properties map[string]interface{}) {
	l.log.Error().Fields(properties).Err(err).Msg(err.Error())
}

// Fatal write the log to output and stop the process
func (l *ZeroLogger) Fatal(err error, properties map[string]interface{}) {
	l.log.Fatal().Fields(properties).Err(err).Msg(err.Error())
}

// Debug is for development diagnostics, e.g. payload dumps.
func (l *ZeroLogger) Debug(message string, properties map[string]interface{}) {
	l.log.Debug().Fields(properties).Msg(message)
}

func (l *ZeroLogger) SetLevel(level Level) {
	l.level = level
	l.configureLogger()
}
