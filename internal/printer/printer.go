// Package printer centralizes colored terminal output for the bayesmc CLI.
package printer

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func init() {
	// Force color output even when not connected to a TTY.
	// Users can disable with the NO_COLOR environment variable.
	if os.Getenv("NO_COLOR") == "" {
		color.NoColor = false
	}
}

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// Success prints a success message in green with a checkmark prefix.
func Success(format string, a ...any) {
	green.Printf("✓ "+format+"\n", a...)
}

// Info prints an informational message in the default color.
func Info(format string, a ...any) {
	fmt.Printf(format+"\n", a...)
}

// Stage prints a pipeline-stage transition in cyan.
func Stage(format string, a ...any) {
	cyan.Printf("→ "+format+"\n", a...)
}

// Warning prints a warning message in yellow.
func Warning(format string, a ...any) {
	yellow.Printf("⚠ "+format+"\n", a...)
}

// Error prints a failure title in red to stderr, followed by the detail, and
// returns a plain error for Cobra to propagate.
func Error(title string, err error) error {
	red.Fprintf(os.Stderr, "%s\n", title)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  %v\n", err)
	}
	return fmt.Errorf("%s", title)
}
