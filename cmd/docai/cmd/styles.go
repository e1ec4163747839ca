package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorWarn    = lipgloss.Color("#F59E0B")
)

// Styles
var (
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	warnStyle    = lipgloss.NewStyle().Foreground(colorWarn)
)

// colorEnabled is set per invocation from the output.color config key
var colorEnabled = true

func render(style lipgloss.Style, msg string) string {
	if !colorEnabled {
		return msg
	}
	return style.Render(msg)
}

// printSuccess writes a success line to stdout
func printSuccess(format string, args ...interface{}) {
	fmt.Println(render(successStyle, fmt.Sprintf(format, args...)))
}

// printWarn writes a warning line to stdout
func printWarn(format string, args ...interface{}) {
	fmt.Println(render(warnStyle, fmt.Sprintf(format, args...)))
}

// printFailure writes a per-item failure line to stdout
func printFailure(format string, args ...interface{}) {
	fmt.Println(render(errorStyle, fmt.Sprintf(format, args...)))
}

// printError writes an error line to stderr
func printError(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, render(errorStyle, fmt.Sprintf(format, args...)))
}
