package log

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
)

var defaultLogger = New(os.Stderr, "", log.Ldate|log.Ltime, LevelInfo)

type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

func (level Level) String() string {
	switch level {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level name. Valid names are: error, warn, info, debug, trace.
func ParseLevel(level string) (Level, error) {
	switch level {
	case "error":
		return LevelError, nil
	case "warn":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	default:
		return LevelError, fmt.Errorf("unknown log level: %s", level)
	}
}

func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
	defaultLogger.Debug("log level set to %s", level)
}

// SetOutput redirects the default logger.
func SetOutput(w io.Writer) {
	defaultLogger.logger.SetOutput(w)
}

// Logger writes one JSON object per line, dropping entries above its level.
type Logger struct {
	logger *log.Logger
	level  Level
}

func New(out io.Writer, prefix string, flag int, level Level) *Logger {
	return &Logger{
		logger: log.New(out, prefix, flag),
		level:  level,
	}
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) logf(level Level, format string, args ...any) {
	if level > l.level {
		return
	}
	entry := map[string]any{
		"level": level.String(),
		"msg":   fmt.Sprintf(format, args...),
	}
	msg, _ := json.Marshal(entry)
	l.logger.Print(string(msg))
}

func (l *Logger) Error(format string, args ...any) {
	l.logf(LevelError, format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.logf(LevelWarn, format, args...)
}

func (l *Logger) Info(format string, args ...any) {
	l.logf(LevelInfo, format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.logf(LevelDebug, format, args...)
}

func (l *Logger) Trace(format string, args ...any) {
	l.logf(LevelTrace, format, args...)
}

func Error(format string, args ...any) {
	defaultLogger.Error(format, args...)
}

func Warn(format string, args ...any) {
	defaultLogger.Warn(format, args...)
}

func Info(format string, args ...any) {
	defaultLogger.Info(format, args...)
}

func Debug(format string, args ...any) {
	defaultLogger.Debug(format, args...)
}

func Trace(format string, args ...any) {
	defaultLogger.Trace(format, args...)
}

// Fatal logs at error level and exits the process.
func Fatal(format string, args ...any) {
	defaultLogger.Error(format, args...)
	os.Exit(1)
}
