// ABOUTME: Logger implementation backed by logrus with structured fields
// ABOUTME: Supports json or text output and optional size-rotated log files via lumberjack

package logrus

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"feedreader-api/pkg/config"
)

// Logger implements interfaces.Logger on top of a logrus.Logger
type Logger struct {
	log *logrus.Logger
}

// NewLogger creates a logger configured from cfg
func NewLogger(cfg config.LogConfig) *Logger {
	l := logrus.New()

	var out io.Writer = os.Stderr
	if cfg.File != "" {
		out = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    500, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
	}
	l.SetOutput(out)

	if strings.EqualFold(cfg.Format, "text") {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	return &Logger{log: l}
}

// NewWithLogger wraps an existing logrus logger
func NewWithLogger(l *logrus.Logger) *Logger {
	return &Logger{log: l}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}

// Writer returns the underlying output, used to route server errors through the same sink
func (l *Logger) Writer() *io.PipeWriter {
	return l.log.WriterLevel(logrus.ErrorLevel)
}
