package builder

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal  ButtonState = iota // Normal state (enabled)
	ButtonFocused                    // Focused/highlighted state
)

// Button is a single button in the button bar.
type Button struct {
	Label string
	State ButtonState
}

// ButtonBar renders a row of buttons with consistent styling. The
// final review step uses it for Back/Generate.
type ButtonBar struct {
	buttons []Button
	width   int
}

// NewButtonBar creates a button bar with the given labels.
func NewButtonBar(labels ...string) *ButtonBar {
	buttons := make([]Button, 0, len(labels))
	for _, l := range labels {
		buttons = append(buttons, Button{Label: l})
	}
	return &ButtonBar{buttons: buttons, width: 60}
}

// SetWidth updates the width used to center the bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// SetFocus marks the button at index i focused and all others normal.
// An out-of-range index clears focus entirely.
func (b *ButtonBar) SetFocus(i int) {
	for j := range b.buttons {
		if j == i {
			b.buttons[j].State = ButtonFocused
		} else {
			b.buttons[j].State = ButtonNormal
		}
	}
}

// Len returns the number of buttons.
func (b *ButtonBar) Len() int {
	return len(b.buttons)
}

// Render renders the button bar centered in its width.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#cdd6f4")).
		Background(lipgloss.Color("#313244")).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	focusedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1e1e2e")).
		Background(lipgloss.Color("#b4befe")).
		Bold(true).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	var rendered []string
	for _, btn := range b.buttons {
		if btn.State == ButtonFocused {
			rendered = append(rendered, focusedStyle.Render(btn.Label))
		} else {
			rendered = append(rendered, normalStyle.Render(btn.Label))
		}
	}

	result := strings.Join(rendered, "")
	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, result)
}
