// Package printer formats command-line output with colors.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

func init() {
	// Users can disable colors with the NO_COLOR environment variable
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
}

var (
	// Color definitions
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// out and errOut are swapped by tests.
var (
	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr
)

// SetOutput redirects standard and error output. Nil leaves a stream unchanged.
func SetOutput(stdout, stderr io.Writer) {
	if stdout != nil {
		out = stdout
	}
	if stderr != nil {
		errOut = stderr
	}
}

// DisableColor turns off color escapes for the rest of the process.
func DisableColor() {
	color.NoColor = true
}

// Success prints a success message in green with a checkmark prefix
func Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	green.Fprint(out, msg)
}

// Info prints an informational message in the default color
func Info(format string, a ...any) {
	fmt.Fprintf(out, format, a...)
}

// Highlight prints a message in cyan
func Highlight(format string, a ...any) {
	cyan.Fprintf(out, format, a...)
}

// Warning prints a warning message in yellow with a warning prefix
func Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠") {
		msg = "⚠  " + msg
	}
	yellow.Fprint(out, msg)
}

// Error prints a formatted error with title, explanation, and suggestions to
// stderr and returns a plain error for Cobra
func Error(title string, explanation string, suggestions []string) error {
	red.Fprintf(errOut, "%s\n\n", title)
	fmt.Fprintf(errOut, "%s\n", explanation)

	if len(suggestions) > 0 {
		fmt.Fprintf(errOut, "\n")
		if len(suggestions) == 1 {
			fmt.Fprintf(errOut, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(errOut, "Either:\n")
			for i, suggestion := range suggestions {
				fmt.Fprintf(errOut, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	return fmt.Errorf("%s", title)
}
