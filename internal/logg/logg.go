// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package logg - multi-level logging for command-line tools.
package logg

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

var (
	bold = color.New(color.Bold).FprintfFunc()
	blue = color.New(color.FgBlue).FprintfFunc()
	red  = color.New(color.FgRed).FprintfFunc()
	yel  = color.New(color.FgYellow).FprintfFunc()
)

// Logger writes leveled messages. Info goes to Out, everything else to Err.
type Logger struct {
	Out, Err io.Writer
	Verbose  bool
}

// New returns a logger writing to stdout and stderr.
func New(verbose bool) *Logger {
	return &Logger{Out: os.Stdout, Err: os.Stderr, Verbose: verbose}
}

// Info prints a message as is.
func (l *Logger) Info(i ...interface{}) {
	fmt.Fprintln(l.Out, i...)
}

// Infof prints a formatted message as is.
func (l *Logger) Infof(format string, i ...interface{}) {
	fmt.Fprintf(l.Out, format, i...)
}

// Warn prints a warning.
func (l *Logger) Warn(i ...interface{}) {
	yel(l.Err, "Warning ")
	fmt.Fprintln(l.Err, i...)
}

// Error prints an error.
func (l *Logger) Error(i ...interface{}) {
	red(l.Err, "Error ")
	fmt.Fprintln(l.Err, i...)
}

// Debugf prints a timestamped message, if the logger is verbose.
func (l *Logger) Debugf(format string, i ...interface{}) {
	if !l.Verbose {
		return
	}
	blue(l.Err, time.Now().Format(time.StampMilli))
	fmt.Fprint(l.Err, " ")
	bold(l.Err, format, i...)
	fmt.Fprint(l.Err, "\n")
}
