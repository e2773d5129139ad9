// Package console provides styled terminal output for the non-GUI paths.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	// ErrorStyle is the style for error messages
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))

	// SuccessStyle is the style for success messages
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))

	// DimStyle is the style for hints
	DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	SuccessIcon = "✓"
	ErrorIcon   = "✗"
)

// Output and ErrOutput are replaceable for tests.
var (
	Output    io.Writer = os.Stdout
	ErrOutput io.Writer = os.Stderr
)

func Success(format string, args ...interface{}) {
	fmt.Fprintf(Output, "%s %s\n", SuccessIcon, SuccessStyle.Render(fmt.Sprintf(format, args...)))
}

func Error(format string, args ...interface{}) {
	fmt.Fprintf(ErrOutput, "%s %s\n", ErrorIcon, ErrorStyle.Render(fmt.Sprintf(format, args...)))
}

// Hint prints an indented, dimmed follow-up line.
func Hint(format string, args ...interface{}) {
	fmt.Fprintf(Output, "  %s\n", DimStyle.Render(fmt.Sprintf(format, args...)))
}
