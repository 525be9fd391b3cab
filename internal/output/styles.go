package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: archive entries, file names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "written" and "new" member statuses.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "changed" status and highlighted paths.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for removals in diffs.
	ColorRed = lipgloss.Color("196")

	// ColorBoldRed is used for the "failed" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (entry names, archive names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StylePath styles deployment destinations shown before confirmation.
	StylePath = lipgloss.NewStyle().Bold(true).Foreground(ColorYellow)

	// StyleAction styles action verbs (extracting, skipping).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Member status constants.
const (
	StatusWritten   = "written"
	StatusSkipped   = "SKIPPED"
	StatusNew       = "new"
	StatusUnchanged = "unchanged"
	StatusChanged   = "changed"
	StatusFailed    = "failed"
)

// StatusStyle returns the style for a member status. Unknown statuses are unstyled.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusWritten, StatusNew:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusChanged:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusUnchanged, StatusSkipped:
		return lipgloss.NewStyle().Faint(true)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minMemberColumnWidth keeps status words aligned across lines.
const minMemberColumnWidth = 40

// FormatMemberLine renders a member with a right-aligned, color-coded status.
//
// Format: <kind>:<name>  <status>
func FormatMemberLine(kind, name, status string) string {
	path := kind + ":" + name
	padding := minMemberColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render(kind + ":")
	return prefix + StyleNoun.Render(name) + strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// Styles groups the styles used by renderers that accept a style set.
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Noun    lipgloss.Style
}

// GetStyles returns the colored style set.
func GetStyles() *Styles {
	return &Styles{
		Success: lipgloss.NewStyle().Foreground(ColorGreen),
		Error:   lipgloss.NewStyle().Foreground(ColorRed),
		Warning: lipgloss.NewStyle().Foreground(ColorYellow),
		Noun:    StyleNoun,
	}
}

// NoColorStyles returns a style set that renders plain text.
func NoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{Success: plain, Error: plain, Warning: plain, Noun: plain}
}
