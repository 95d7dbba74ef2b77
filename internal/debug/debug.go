package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	out     zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
	logger                      = zap.NewNop()
	override *zap.Logger
)

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
	rebuild()
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
	rebuild()
}

// SetOutput redirects debug output, stderr by default.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = zapcore.Lock(zapcore.AddSync(w))
	rebuild()
}

// SetLogger replaces the underlying logger. Used by tests to observe output.
// The injected logger survives later SetDebug, SetNoColor and SetOutput
// calls until SetLogger(nil) clears it.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	override = l
	rebuild()
}

// Logger returns the current structured logger.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// rebuild must be called with mu held.
func rebuild() {
	if override != nil {
		logger = override
		return
	}
	if !enabled {
		logger = zap.NewNop()
		return
	}
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	if noColor {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), out, zapcore.DebugLevel)
	logger = zap.New(core)
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	Logger().Debug(fmt.Sprintf(format, args...))
}

// Debugf is an alias for Debug
func Debugf(format string, args ...interface{}) {
	Debug(format, args...)
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}
	Logger().Debug(fmt.Sprintf("=== %s ===", section))
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	if !IsEnabled() {
		return
	}
	Logger().Debug(key, zap.Any("value", value))
}

// DebugJSON prints structured data as JSON for debugging
func DebugJSON(key string, v interface{}) {
	if !IsEnabled() {
		return
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		Debug("Failed to marshal %s to JSON: %v", key, err)
		return
	}
	Logger().Debug(key + ":\n" + string(data))
}

// Sync flushes buffered log entries.
func Sync() error {
	return Logger().Sync()
}
