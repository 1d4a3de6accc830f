package structured

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogrusLogger(t *testing.T) {
	logger := NewLogrusLogger("info")

	if logger == nil {
		t.Error("NewLogrusLogger returned nil")
	}
}

func TestLogrusLogger_InfoWritesMessageAndFields(t *testing.T) {
	logger := NewLogrusLogger("info")
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Info("Parsing title", map[string]interface{}{
		"title": "Show.S01E01.720p",
	})

	out := buf.String()
	if !strings.Contains(out, "Parsing title") {
		t.Error("Output should contain the message")
	}
	if !strings.Contains(out, "Show.S01E01.720p") {
		t.Error("Output should contain the field value")
	}
}

func TestLogrusLogger_NilFields(t *testing.T) {
	logger := NewLogrusLogger("info")
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Warn("no fields", nil)

	if !strings.Contains(buf.String(), "no fields") {
		t.Error("Output should contain the message when fields are nil")
	}
}

func TestLogrusLogger_DebugSuppressedAtInfoLevel(t *testing.T) {
	logger := NewLogrusLogger("info")
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Debug("hidden", nil)

	if buf.Len() != 0 {
		t.Error("Debug output should be suppressed at info level")
	}
}

func TestNewLogrusLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	logger := NewLogrusLogger("not-a-level")
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Info("still works", nil)
	if !strings.Contains(buf.String(), "still works") {
		t.Error("Logger with invalid level should still log at info")
	}

	buf.Reset()
	logger.Debug("hidden", nil)
	if buf.Len() != 0 {
		t.Error("Logger with invalid level should suppress debug")
	}
}
