package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: file paths, template names.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow is used for draft markers.
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (file paths, template names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDraft styles the draft marker in the confirmation line.
	StyleDraft = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCreated renders the confirmation line for a newly written file.
//
// Format: ✔ The file is created at: <path> [draft]
func FormatCreated(path string, draft bool) string {
	msg := "The file is created at: " + StyleNoun.Render(path)
	if draft {
		msg += " " + StyleDraft.Render("[draft]")
	}
	return FormatCheckmark(msg)
}
