package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette: named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color
// literals.
var (
	// ColorCyan is used for identifiable nouns: fragment paths, labels,
	// environments.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for success lines.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings and substituted layers.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for validation errors.
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for separators and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (fragment paths, environments).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleWarning styles warning lines.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleError styles error lines.
	StyleError = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleSuccess styles success lines.
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleDim styles structural chrome (labels, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleBold styles headers and summary lines.
	StyleBold = lipgloss.NewStyle().Bold(true)
)

// labelColumnWidth is the minimum width for the legacy label column so
// fragment names align consistently in listings.
const labelColumnWidth = 10

// FormatListingLine renders a discovery entry name with an optional dim,
// fixed-width label prefix (SHARED/LOCAL).
func FormatListingLine(label, name string) string {
	if label == "" {
		return StyleNoun.Render(name)
	}

	padded := fmt.Sprintf("[%-*s]", labelColumnWidth-2, label)
	return StyleDim.Render(padded) + " " + StyleNoun.Render(name)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// Separator renders a dim horizontal rule.
func Separator(width int) string {
	if width <= 0 {
		width = 60
	}
	return StyleDim.Render(strings.Repeat("─", width))
}
