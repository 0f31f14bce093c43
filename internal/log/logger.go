// Package log provides a global logger with configurable logging level. The intended use is for
// development builds and test debugging.

package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type Level int

const (
	LevelNone    Level = iota // Disables logging.
	LevelError                // Logs anomalies that are not expected to occur during normal use.
	LevelWarning              // Logs anomalies that are expected to occur occasionally during normal use.
	LevelInfo                 // Logs major events.
	LevelDebug                // Logs cache admission, eviction, and lookup decisions.
)

var (
	mu     sync.Mutex
	level  Level
	output io.Writer = os.Stderr
)

func (l Level) label() string {
	switch l {
	case LevelError:
		return "[error]"
	case LevelWarning:
		return "[warn ]"
	case LevelInfo:
		return "[info ]"
	case LevelDebug:
		return "[debug]"
	}
	return "[     ]"
}

func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// SetOutput redirects log messages to w. The default is os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func log(l Level, format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l > level {
		return
	}
	msg := fmt.Sprintf(format, a...)
	fmt.Fprintf(output, "%s %s %s\n", time.Now().Format(time.RFC3339), l.label(), msg)
}

func Debug(format string, a ...any) {
	log(LevelDebug, format, a...)
}
func Info(format string, a ...any) {
	log(LevelInfo, format, a...)
}
func Warning(format string, a ...any) {
	log(LevelWarning, format, a...)
}
func Error(format string, a ...any) {
	log(LevelError, format, a...)
}
