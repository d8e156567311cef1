package logger

import (
	"fmt"
	"io"
	"strings"
)

const prefix = "[DEBUG] "

// Logger writes debug lines to the diagnostic stream when enabled by -d/--debug.
type Logger struct {
	w       io.Writer
	enabled bool
}

func NewLogger(w io.Writer, enabled bool) *Logger {
	return &Logger{
		w:       w,
		enabled: enabled,
	}
}

func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

func (l *Logger) Debugf(format string, args ...any) {
	if !l.Enabled() {
		return
	}
	fmt.Fprintf(l.w, prefix+format+"\n", args...)
}

// Block writes a multi-line body under a title, prefixing every line.
func (l *Logger) Block(title string, body string) {
	if !l.Enabled() {
		return
	}
	l.Debugf("%s", title)
	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		l.Debugf("  %s", line)
	}
}
