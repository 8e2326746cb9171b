package builder

import (
	"charm.land/lipgloss/v2"
)

// Color palette (Catppuccin Mocha)
var (
	colorPrimary       = lipgloss.Color("#cba6f7") // Mauve
	colorText          = lipgloss.Color("#cdd6f4") // Text
	colorBase          = lipgloss.Color("#1e1e2e") // Base
	colorSubtext0      = lipgloss.Color("#a6adc8") // Subtext0
	colorSubtext1      = lipgloss.Color("#bac2de") // Subtext1
	colorSurface2      = lipgloss.Color("#585b70") // Surface2
	colorBorderFocused = lipgloss.Color("#b4befe") // Lavender
	colorError         = lipgloss.Color("#f38ba8") // Red
	colorSuccess       = lipgloss.Color("#a6e3a1") // Green
)

// Modal styles
var (
	styleModalContainer = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorderFocused).
				Background(colorBase).
				Padding(1, 2)

	styleModalTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Align(lipgloss.Center)

	styleInstruction = lipgloss.NewStyle().
				Foreground(colorText).
				MarginBottom(1)

	styleFieldLabel = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	styleFieldLabelFocused = lipgloss.NewStyle().
				Foreground(colorBorderFocused).
				Bold(true)

	styleError = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	styleNote = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Italic(true)

	styleListCursor = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleListItem = lipgloss.NewStyle().
			Foreground(colorText)

	styleListItemDim = lipgloss.NewStyle().
				Foreground(colorSubtext0)

	styleProgressDone = lipgloss.NewStyle().
				Foreground(colorSuccess)

	styleProgressRest = lipgloss.NewStyle().
				Foreground(colorSurface2)
)

// Hint bar styles
var (
	styleHintKey = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Bold(true)

	styleHintDesc = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	styleHintSeparator = lipgloss.NewStyle().
				Foreground(colorSurface2)
)

// renderHintBar renders a hint bar with the given key-description pairs.
// Example: renderHintBar("↑↓", "navigate", "enter", "select", "esc", "back")
// Returns: "↑↓ navigate • enter select • esc back"
func renderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	var result string
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			result += " " + styleHintSeparator.Render("•") + " "
		}
		result += styleHintKey.Render(pairs[i]) + " " + styleHintDesc.Render(pairs[i+1])
	}

	return result
}
