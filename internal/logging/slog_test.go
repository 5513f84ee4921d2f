package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestErr_NilError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("test message", Err(nil))

	output := buf.String()
	if strings.Contains(output, "error=") {
		t.Errorf("Expected no error attribute for nil error, got: %s", output)
	}
}

func TestErr_WithError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("test message", Err(errors.New("something broke")))

	output := buf.String()
	if !strings.Contains(output, "error=") {
		t.Errorf("Expected error attribute, got: %s", output)
	}
	if !strings.Contains(output, "something broke") {
		t.Errorf("Expected error message in output, got: %s", output)
	}
}

func TestWithOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	WithOperation(logger, "refresh").Info("done")

	output := buf.String()
	if !strings.Contains(output, "operation=refresh") {
		t.Errorf("Expected operation attribute, got: %s", output)
	}
}

func TestWithService(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	WithService(logger, "events").Info("done")

	output := buf.String()
	if !strings.Contains(output, "service=events") {
		t.Errorf("Expected service attribute, got: %s", output)
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{name: "debug level", level: "debug"},
		{name: "info level", level: "info"},
		{name: "warn level", level: "warn"},
		{name: "error level", level: "error"},
		{name: "unknown falls back to info", level: "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.level)
			if logger == nil {
				t.Fatal("Expected non-nil logger")
			}
		})
	}
}
