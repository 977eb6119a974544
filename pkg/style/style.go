// Package style defines the visual styling for hearthkeep's terminal
// output. All styles use semantic names and adaptive colors that adjust to
// light and dark terminal themes.
package style

import "github.com/charmbracelet/lipgloss"

var (
	// Success styles confirmation lines after install/uninstall
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#007A33", Dark: "#3DD68C"}).
		Bold(true)

	// Error styles terminal failures
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF6B6B"}).
		Bold(true)

	// Warning styles degraded but non-fatal conditions
	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#B7791F", Dark: "#F6C343"})

	// Path styles filesystem paths in messages
	Path = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#1A56DB", Dark: "#76A9FA"})

	// Muted styles secondary detail
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
)
