// Package tui holds the terminal presentation layer: lipgloss styles,
// huh prompt and form helpers, and the interactive leads browser.
package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/useleadnest/leadnest-cli/internal/session"
)

// Styles contains lipgloss styles for terminal output
type Styles struct {
	Title   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
	Border  lipgloss.Style
}

// DefaultStyles returns the default lipgloss styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")). // Purple
			MarginBottom(1),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // Red
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")), // Green
		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")), // Orange
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Key: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")), // Cyan
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
	}
}

// TerminalNotifier renders session notifications as styled lines on
// stderr, keeping stdout clean for command output and --json.
type TerminalNotifier struct {
	styles Styles
	out    io.Writer
}

// NewTerminalNotifier creates a notifier writing to stderr.
func NewTerminalNotifier() *TerminalNotifier {
	return &TerminalNotifier{styles: DefaultStyles(), out: os.Stderr}
}

// Notify implements session.Notifier.
func (n *TerminalNotifier) Notify(kind session.Kind, message string) {
	var rendered string
	switch kind {
	case session.KindSuccess:
		rendered = n.styles.Success.Render("✓") + " " + message
	case session.KindError:
		rendered = n.styles.Error.Render("✗") + " " + message
	default:
		rendered = n.styles.Muted.Render(message)
	}
	fmt.Fprintln(n.out, rendered)
}
