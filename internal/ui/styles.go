// Package ui renders qb output: styled messages, error panels, tabular
// data in several formats, a progress spinner and hidden input prompts.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	successStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	warningStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	highlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	mutedStyle     = lipgloss.NewStyle().Faint(true).Italic(true)
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("9")).Padding(1, 2)
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
	indexStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Padding(0, 1)
)

// Title renders s in bold.
func Title(s string) string {
	return titleStyle.Render(s)
}

// Success prefixes msg with a green check mark.
func Success(msg string) string {
	return successStyle.Render("✓") + " " + msg
}

// Warning prefixes msg with a yellow warning sign.
func Warning(msg string) string {
	return warningStyle.Render("⚠") + " " + msg
}

// Failure prefixes msg with a red cross.
func Failure(msg string) string {
	return errorStyle.Render("✗") + " " + msg
}

// Highlight renders s in bold cyan.
func Highlight(s string) string {
	return highlightStyle.Render(s)
}

// Muted renders s faint and italic.
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Mask replaces every character of secret with an asterisk.
func Mask(secret string) string {
	return strings.Repeat("*", len([]rune(secret)))
}

// EnsureNewline appends a newline to s unless it already ends with one.
func EnsureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
