package builder

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// textField is one labeled text input in a form step. The key matches
// the field name used in validation errors so an error can put the
// cursor on the offending input.
type textField struct {
	key   string
	label string
	input textinput.Model
}

// fieldSet manages a vertical stack of text inputs with a single focus
// and tab-order cycling. Form steps embed one and forward key events.
type fieldSet struct {
	fields []textField
	focus  int
}

// newField creates a labeled input pre-filled with the given value.
func newField(key, label, placeholder, value string) textField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.SetWidth(50)
	ti.SetValue(value)
	return textField{key: key, label: label, input: ti}
}

func newFieldSet(fields ...textField) *fieldSet {
	return &fieldSet{fields: fields}
}

// Focus moves focus to the field at index i, blurring all others.
func (f *fieldSet) Focus(i int) tea.Cmd {
	if i < 0 || i >= len(f.fields) {
		return nil
	}
	var cmd tea.Cmd
	for j := range f.fields {
		if j == i {
			cmd = f.fields[j].input.Focus()
		} else {
			f.fields[j].input.Blur()
		}
	}
	f.focus = i
	return cmd
}

// FocusKey focuses the field with the given key. Unknown keys are
// ignored.
func (f *fieldSet) FocusKey(key string) tea.Cmd {
	for i := range f.fields {
		if f.fields[i].key == key {
			return f.Focus(i)
		}
	}
	return nil
}

// Blur removes focus from every field.
func (f *fieldSet) Blur() {
	for i := range f.fields {
		f.fields[i].input.Blur()
	}
}

// Next advances focus to the following field. The second return value
// reports whether focus wrapped past the last field.
func (f *fieldSet) Next() (tea.Cmd, bool) {
	wrapped := f.focus == len(f.fields)-1
	next := (f.focus + 1) % len(f.fields)
	return f.Focus(next), wrapped
}

// Prev moves focus to the preceding field. The second return value
// reports whether focus wrapped past the first field.
func (f *fieldSet) Prev() (tea.Cmd, bool) {
	wrapped := f.focus == 0
	prev := (f.focus - 1 + len(f.fields)) % len(f.fields)
	return f.Focus(prev), wrapped
}

// Update forwards a message to the focused input.
func (f *fieldSet) Update(msg tea.Msg) tea.Cmd {
	if f.focus < 0 || f.focus >= len(f.fields) {
		return nil
	}
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

// Value returns the trimmed value of the field with the given key.
func (f *fieldSet) Value(key string) string {
	for i := range f.fields {
		if f.fields[i].key == key {
			return strings.TrimSpace(f.fields[i].input.Value())
		}
	}
	return ""
}

// SetValue replaces the value of the field with the given key.
func (f *fieldSet) SetValue(key, value string) {
	for i := range f.fields {
		if f.fields[i].key == key {
			f.fields[i].input.SetValue(value)
			return
		}
	}
}

// Clear empties every field.
func (f *fieldSet) Clear() {
	for i := range f.fields {
		f.fields[i].input.SetValue("")
	}
}

// Empty reports whether every field is blank.
func (f *fieldSet) Empty() bool {
	for i := range f.fields {
		if strings.TrimSpace(f.fields[i].input.Value()) != "" {
			return false
		}
	}
	return true
}

// SetWidth resizes all inputs.
func (f *fieldSet) SetWidth(width int) {
	for i := range f.fields {
		f.fields[i].input.SetWidth(width)
	}
}

// View renders the labeled inputs stacked vertically, with the focused
// label highlighted.
func (f *fieldSet) View() string {
	var rows []string
	for i := range f.fields {
		labelStyle := styleFieldLabel
		if i == f.focus && f.fields[i].input.Focused() {
			labelStyle = styleFieldLabelFocused
		}
		rows = append(rows, labelStyle.Render(f.fields[i].label))
		rows = append(rows, f.fields[i].input.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
