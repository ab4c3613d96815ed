package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
)

// Logger is the structured logger used across the client and CLI.
// Fields are passed as alternating key/value pairs.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}

type zerologLogger struct {
	zl zerolog.Logger
}

// New creates a logger writing to all given writers at the given level
func New(level zerolog.Level, writers ...io.Writer) Logger {
	if len(writers) == 0 {
		return Nop()
	}
	multi := zerolog.MultiLevelWriter(writers...)
	zl := zerolog.New(multi).Level(level).With().Timestamp().Logger()
	return &zerologLogger{zl: zl}
}

// Nop returns a logger that discards everything
func Nop() Logger {
	return &zerologLogger{zl: zerolog.Nop()}
}

// ConsoleWriter returns a human readable writer on w (stderr when nil)
func ConsoleWriter(w io.Writer) io.Writer {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
}

// FileWriter returns a file writer with rotation
func FileWriter(path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}
}

// ParseLevel maps debug/info/warn/error (case-insensitive) to a zerolog level
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
}

func (l *zerologLogger) Debug(msg string, fields ...interface{}) {
	logWithFields(l.zl.Debug(), msg, fields...)
}

func (l *zerologLogger) Info(msg string, fields ...interface{}) {
	logWithFields(l.zl.Info(), msg, fields...)
}

func (l *zerologLogger) Warn(msg string, fields ...interface{}) {
	logWithFields(l.zl.Warn(), msg, fields...)
}

func (l *zerologLogger) Error(msg string, fields ...interface{}) {
	logWithFields(l.zl.Error(), msg, fields...)
}

// logWithFields adds key/value pairs to the event; an "error" key holding an
// error is attached with Err. A trailing key without value is dropped.
func logWithFields(event *zerolog.Event, msg string, fields ...interface{}) {
	if event == nil {
		return
	}
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		switch v := fields[i+1].(type) {
		case error:
			if key == "error" {
				event = event.Err(v)
			} else {
				event = event.AnErr(key, v)
			}
		case time.Duration:
			event = event.Dur(key, v)
		default:
			event = event.Interface(key, v)
		}
	}
	event.Msg(msg)
}
