// Package output provides styled terminal output for the pluralize CLI.
//
// Commands report status through these helpers so messages stay visually
// consistent; transformation results themselves go straight to stdout.
package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
)

// SetVerbose enables or disables verbose output. The CLI calls this when
// the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a completed-operation message in green.
func Success(msg string) {
	fmt.Println(successStyle.Render("✓ " + msg))
}

// Error prints a failure that needs user attention in red.
func Error(msg string) {
	fmt.Println(errorStyle.Render("✗ " + msg))
}

// Warn prints a non-fatal problem in yellow.
func Warn(msg string) {
	fmt.Println(warnStyle.Render("! " + msg))
}

// Info prints a status update or explanation in cyan.
func Info(msg string) {
	fmt.Println(infoStyle.Render("• " + msg))
}

// Step prints an indented sub-item in gray.
func Step(msg string) {
	fmt.Println(stepStyle.Render("   " + msg))
}

// Verbose prints a debug message only when verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Println(stepStyle.Render("· " + msg))
	}
}
