package proverlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestNewDefaultsToInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("test", false, &buf)
	logger.Debug("should not appear")
	logger.Info("should appear")

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Errorf("debug message leaked through at the default (info) level: %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("info message missing from output: %q", out)
	}
}

func TestNewWithDebugEnablesDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("test", true, &buf)
	logger.Debug("debug line")

	if !strings.Contains(buf.String(), "debug line") {
		t.Errorf("debug message missing once debug=true, got %q", buf.String())
	}
}

func TestNewDefaultsOutputToStderrWhenNil(t *testing.T) {
	logger := New("test", false, nil)
	if logger == nil {
		t.Fatalf("New should never return a nil logger")
	}
}

func TestDiscardProducesANoOpLogger(t *testing.T) {
	logger := Discard()
	if logger.IsTrace() || logger.IsDebug() || logger.IsInfo() || logger.IsWarn() || logger.IsError() {
		t.Errorf("a discard logger should report every level as disabled")
	}
	var _ hclog.Logger = logger
}
