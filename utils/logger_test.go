package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-kit/log/level"
)

func TestNewLoggerFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := NewLogger(true, false, "", &buf)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer closer.Close()

	level.Debug(logger).Log("msg", "hidden")
	level.Info(logger).Log("msg", "shown", "rule", "b3/s23")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked: %s", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "rule=b3/s23") {
		t.Fatalf("info line missing: %s", out)
	}
}

func TestNewLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := NewLogger(true, true, "", &buf)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	level.Debug(logger).Log("msg", "visible")
	if !strings.Contains(buf.String(), "msg=visible") {
		t.Fatalf("debug line missing: %s", buf.String())
	}
}

func TestNewLoggerDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := NewLogger(false, true, "", &buf)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	level.Info(logger).Log("msg", "dropped")
	if buf.Len() != 0 {
		t.Fatalf("disabled logger wrote %q", buf.String())
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	logger, closer, err := NewLogger(true, false, path, nil)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	level.Info(logger).Log("msg", "to file")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `msg="to file"`) {
		t.Fatalf("log file content = %q", data)
	}
}
