// ABOUTME: Logrus-backed implementation of the Logger interface
// ABOUTME: Provides leveled structured logging with configurable verbosity

package structured

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLogger implements the Logger interface using logrus
type LogrusLogger struct {
	log *logrus.Logger
}

// NewLogrusLogger creates a new logrus logger with the given level.
// Unknown levels fall back to info.
func NewLogrusLogger(level string) *LogrusLogger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return &LogrusLogger{log: log}
}

// SetOutput redirects log output, primarily for tests
func (l *LogrusLogger) SetOutput(w io.Writer) {
	l.log.SetOutput(w)
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
