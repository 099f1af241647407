package ui

import (
	"fmt"
	"io"
	"os"
)

// Logger writes leveled lines to stderr so stdout carries only results.
type Logger struct {
	Debug bool
	Out   io.Writer
}

func NewLogger(debug bool) *Logger {
	return &Logger{Debug: debug, Out: os.Stderr}
}

func (l *Logger) Debugf(format string, args ...any) {
	if l.Debug {
		l.printf("[DEBUG] "+format, args...)
	}
}

func (l *Logger) Infof(format string, args ...any) {
	l.printf("[INFO] "+format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.printf("[ERROR] "+format, args...)
}

func (l *Logger) printf(format string, args ...any) {
	out := l.Out
	if out == nil {
		out = os.Stderr
	}
	_, _ = fmt.Fprintf(out, format, args...)
}
