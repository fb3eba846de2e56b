// Package debug provides opt-in trace logging to stderr.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	out     io.Writer = os.Stderr
)

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
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
}

// SetOutput redirects debug output. Passing nil restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
}

// emit writes one prefixed, timestamped line.
func emit(body string) {
	mu.RLock()
	w, plain := out, noColor
	mu.RUnlock()

	prefix := color.New(color.FgCyan)
	stamp := color.New(color.FgHiBlack)
	if plain {
		prefix.DisableColor()
		stamp.DisableColor()
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(w, "%s %s %s\n", prefix.Sprint("[DEBUG]"), stamp.Sprint(timestamp), body)
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	emit(fmt.Sprintf(format, args...))
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}
	emit("=== " + section + " ===")
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	if !IsEnabled() {
		return
	}
	emit(fmt.Sprintf("%s = %v", key, value))
}
