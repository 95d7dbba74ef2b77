package debug

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetNoColor(true)
	SetDebug(true)
	t.Cleanup(func() {
		SetDebug(false)
		SetOutput(nil)
	})
	return &buf
}

func TestSetDebug(t *testing.T) {
	// Initially disabled
	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled initially")
	}

	// Enable
	SetDebug(true)
	if !IsEnabled() {
		t.Error("Debug should be enabled")
	}

	// Disable again
	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled again")
	}
}

func TestDebugOutput(t *testing.T) {
	buf := capture(t)

	Debug("test message %s", "arg")
	output := buf.String()

	if !strings.Contains(output, "DEBUG") {
		t.Errorf("Output should contain DEBUG level, got: %s", output)
	}
	if !strings.Contains(output, "test message arg") {
		t.Errorf("Output should contain message, got: %s", output)
	}
	// Should contain timestamp
	if !strings.Contains(output, ":") {
		t.Errorf("Output should contain timestamp, got: %s", output)
	}
}

func TestDebugDisabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	SetDebug(false)
	Debug("this should not appear")

	if buf.String() != "" {
		t.Errorf("Debug output should be empty when disabled, got: %s", buf.String())
	}
}

func TestDebugSection(t *testing.T) {
	buf := capture(t)

	DebugSection("Test Section")

	if !strings.Contains(buf.String(), "=== Test Section ===") {
		t.Errorf("Output should contain section header, got: %s", buf.String())
	}
}

func TestDebugValue(t *testing.T) {
	buf := capture(t)

	DebugValue("key", "value")
	output := buf.String()

	if !strings.Contains(output, "key") || !strings.Contains(output, `"value"`) {
		t.Errorf("Output should contain key and value, got: %s", output)
	}
}

func TestDebugJSON(t *testing.T) {
	buf := capture(t)

	DebugJSON("testData", map[string]interface{}{
		"foo": "bar",
		"num": 42,
	})
	output := buf.String()

	if !strings.Contains(output, "testData:") {
		t.Errorf("Output should contain key, got: %s", output)
	}
	if !strings.Contains(output, "\"foo\"") {
		t.Errorf("Output should contain JSON data, got: %s", output)
	}
}

func TestSetLogger(t *testing.T) {
	SetDebug(true)
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() {
		SetLogger(nil)
		SetDebug(false)
	})

	Debug("[textfile] Written: %s", "Podfile")

	// Reconfiguring must not drop the injected logger.
	SetNoColor(true)
	SetOutput(nil)
	SetDebug(true)
	Debug("[textfile] Skipped: %s", "Podfile")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "[textfile] Written: Podfile" {
		t.Errorf("Unexpected message %q", entries[0].Message)
	}
}

func TestSetLoggerCleared(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	SetLogger(nil)

	buf := capture(t)
	Debug("after clear")

	if logs.Len() != 0 {
		t.Errorf("Cleared logger should receive nothing, got %d entries", logs.Len())
	}
	if !strings.Contains(buf.String(), "after clear") {
		t.Errorf("Output should go to the configured writer, got: %s", buf.String())
	}
}
