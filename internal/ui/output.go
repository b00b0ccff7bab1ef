package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects the message helpers. Nil leaves a stream unchanged.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// Stdout is where list output goes.
func Stdout() io.Writer { return stdout }

// Stderr is where failures and warnings go.
func Stderr() io.Writer { return stderr }

// SetColorForcing overrides terminal detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

func OK(msg string) {
	t := current
	fmt.Fprintln(stdout, t.Success.Render(t.SymOK+" "+msg))
}

func Fail(msg string) {
	t := current
	fmt.Fprintln(stderr, t.Error.Render(t.SymFail+" "+msg))
}

func Warn(msg string) {
	t := current
	fmt.Fprintln(stderr, t.Warn.Render(t.SymWarn+" "+msg))
}

// Info prints a muted line to stdout.
func Info(msg string) {
	fmt.Fprintln(stdout, current.Muted.Render(msg))
}

// Hint prints a muted line to stderr, usually after Fail.
func Hint(msg string) {
	fmt.Fprintln(stderr, current.Muted.Render(msg))
}
