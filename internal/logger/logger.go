package logger

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Logger writes component-tagged diagnostics to stderr. Debug and Info are
// gated on the verbose check so normal runs stay quiet; Warn and Error always
// print.
type Logger struct {
	component string
	verbose   func() bool
	writer    io.Writer
}

// New creates a logger for a component. verbose may be nil, which disables
// Debug and Info output entirely.
func New(component string, verbose func() bool) *Logger {
	return &Logger{
		component: component,
		verbose:   verbose,
		writer:    os.Stderr,
	}
}

// WithComponent returns a logger that shares settings but tags a different
// component.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		component: component,
		verbose:   l.verbose,
		writer:    l.writer,
	}
}

// Debug logs developer diagnostics (verbose only).
func (l *Logger) Debug(msg string, args ...interface{}) {
	if l.isVerbose() {
		l.log("DEBUG", msg, args...)
	}
}

// Info logs progress messages (verbose only).
func (l *Logger) Info(msg string, args ...interface{}) {
	if l.isVerbose() {
		l.log("INFO", msg, args...)
	}
}

// Warn logs recoverable problems (always shown).
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.log("WARN", msg, args...)
}

// Error logs failures (always shown).
func (l *Logger) Error(msg string, args ...interface{}) {
	l.log("ERROR", msg, args...)
}

func (l *Logger) isVerbose() bool {
	return l.verbose != nil && l.verbose()
}

func (l *Logger) log(level, msg string, args ...interface{}) {
	component := l.component
	if component == "" {
		component = "main"
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(l.writer, "[%s] %s [%s] %s\n",
		timestamp, level, component, fmt.Sprintf(msg, args...))
}
