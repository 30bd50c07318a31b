package ui

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno-gym/card/color"
)

// Logger writes human readable game progress lines. A disabled logger
// swallows everything, which is how simulation instances stay quiet.
type Logger struct {
	enabled bool
}

func NewLogger(enabled bool) *Logger {
	return &Logger{enabled: enabled}
}

func (l *Logger) Enabled() bool {
	return l.enabled
}

func (l *Logger) Printfln(format string, args ...interface{}) {
	l.Println(fmt.Sprintf(format, args...))
}

func (l *Logger) Printlns(lines []string) {
	l.Println(strings.Join(lines, "\n"))
}

func (l *Logger) Println(args ...interface{}) {
	if !l.enabled {
		return
	}
	fmt.Fprintln(color.Stdout, args...)
}
