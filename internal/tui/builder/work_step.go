package builder

import (
	"errors"
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkail/foliogen/internal/wizard"
)

// Focus zones within the work step.
const (
	workZoneFields = iota
	workZoneDesc
	workZoneList
)

// WorkStep collects work-experience entries. Title and company are
// required per entry; the description is free-form.
type WorkStep struct {
	st     *wizard.State
	fields *fieldSet
	desc   textarea.Model
	cursor int
	zone   int
	errMsg string
	width  int
	height int
}

// NewWorkStep creates the work-experience step.
func NewWorkStep(st *wizard.State) *WorkStep {
	fs := newFieldSet(
		newField("work-title", "Job title", "Senior Backend Engineer", ""),
		newField("work-company", "Company", "Acme GmbH", ""),
	)
	fs.Focus(0)

	ta := textarea.New()
	ta.Placeholder = "What did you do there?"
	ta.CharLimit = 2000
	ta.SetHeight(4)
	ta.SetWidth(60)

	return &WorkStep{st: st, fields: fs, desc: ta}
}

// Init initializes the work step.
func (s *WorkStep) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the work step.
func (s *WorkStep) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s.forward(msg)
	}

	switch key.String() {
	case "tab":
		return s.focusNext()
	case "shift+tab":
		return s.focusPrev()
	case "ctrl+d":
		// Add the entry from any zone.
		return s.add()
	}

	switch s.zone {
	case workZoneFields:
		if key.String() == "enter" {
			if s.fields.Empty() && strings.TrimSpace(s.desc.Value()) == "" {
				return func() tea.Msg { return NextStepMsg{} }
			}
			return s.add()
		}
		if s.errMsg != "" {
			s.errMsg = ""
		}
		return s.fields.Update(key)

	case workZoneDesc:
		var cmd tea.Cmd
		s.desc, cmd = s.desc.Update(key)
		return cmd

	case workZoneList:
		switch key.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.st.WorkEntries())-1 {
				s.cursor++
			}
		case "ctrl+x":
			s.st.RemoveWorkEntry(s.cursor)
			if n := len(s.st.WorkEntries()); s.cursor >= n {
				s.cursor = n - 1
			}
			if len(s.st.WorkEntries()) == 0 {
				s.zone = workZoneFields
				return s.fields.Focus(0)
			}
		case "enter":
			return func() tea.Msg { return NextStepMsg{} }
		}
	}
	return nil
}

func (s *WorkStep) forward(msg tea.Msg) tea.Cmd {
	switch s.zone {
	case workZoneFields:
		return s.fields.Update(msg)
	case workZoneDesc:
		var cmd tea.Cmd
		s.desc, cmd = s.desc.Update(msg)
		return cmd
	}
	return nil
}

// add appends the entry and clears the form on success.
func (s *WorkStep) add() tea.Cmd {
	err := s.st.AddWorkEntry(
		s.fields.Value("work-title"),
		s.fields.Value("work-company"),
		s.desc.Value(),
	)
	if err != nil {
		var ve *wizard.ValidationError
		if errors.As(err, &ve) {
			s.errMsg = ve.Message
			s.zone = workZoneFields
			s.desc.Blur()
			return s.fields.FocusKey(ve.Field)
		}
		s.errMsg = err.Error()
		return nil
	}
	s.fields.Clear()
	s.desc.SetValue("")
	s.errMsg = ""
	s.zone = workZoneFields
	s.desc.Blur()
	return s.fields.Focus(0)
}

// focusNext cycles fields → description → list → fields.
func (s *WorkStep) focusNext() tea.Cmd {
	switch s.zone {
	case workZoneFields:
		cmd, wrapped := s.fields.Next()
		if !wrapped {
			return cmd
		}
		s.fields.Blur()
		s.zone = workZoneDesc
		return s.desc.Focus()
	case workZoneDesc:
		s.desc.Blur()
		if len(s.st.WorkEntries()) > 0 {
			s.zone = workZoneList
			if s.cursor >= len(s.st.WorkEntries()) {
				s.cursor = len(s.st.WorkEntries()) - 1
			}
			return nil
		}
		s.zone = workZoneFields
		return s.fields.Focus(0)
	default:
		s.zone = workZoneFields
		return s.fields.Focus(0)
	}
}

func (s *WorkStep) focusPrev() tea.Cmd {
	switch s.zone {
	case workZoneFields:
		cmd, wrapped := s.fields.Prev()
		if !wrapped {
			return cmd
		}
		s.fields.Blur()
		if len(s.st.WorkEntries()) > 0 {
			s.zone = workZoneList
			return nil
		}
		s.zone = workZoneDesc
		return s.desc.Focus()
	case workZoneDesc:
		s.zone = workZoneFields
		return s.fields.Focus(len(s.fields.fields) - 1)
	default:
		s.zone = workZoneDesc
		return s.desc.Focus()
	}
}

// Commit is a no-op: entries are added to the state as they are
// confirmed.
func (s *WorkStep) Commit(*wizard.State) {}

// FocusField puts the cursor on the named input.
func (s *WorkStep) FocusField(field string) tea.Cmd {
	s.zone = workZoneFields
	return s.fields.FocusKey(field)
}

// SetSize updates the dimensions for the work step.
func (s *WorkStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	w := min(width-4, 60)
	s.fields.SetWidth(w)
	s.desc.SetWidth(w)
}

// View renders the work step.
func (s *WorkStep) View() string {
	descLabel := styleFieldLabel
	if s.zone == workZoneDesc {
		descLabel = styleFieldLabelFocused
	}

	var rows []string
	rows = append(rows, styleInstruction.Render("Add work experience. Leave the form empty and press enter when done."))
	rows = append(rows, s.fields.View())
	rows = append(rows, descLabel.Render("Description (optional)"))
	rows = append(rows, s.desc.View())

	if s.errMsg != "" {
		rows = append(rows, styleError.Render("✗ "+s.errMsg))
	}

	entries := s.st.WorkEntries()
	if len(entries) > 0 {
		rows = append(rows, "")
		for i, e := range entries {
			label := e.Title + " · " + e.Company
			if s.zone == workZoneList && i == s.cursor {
				rows = append(rows, styleListCursor.Render("› "+label))
			} else {
				rows = append(rows, styleListItem.Render("  "+label))
			}
		}
	}

	rows = append(rows, "")
	hints := []string{"tab", "next section", "ctrl+d", "add entry", "enter", "add / continue", "esc", "back"}
	if s.zone == workZoneList {
		hints = []string{"↑↓", "navigate", "ctrl+x", "remove", "tab", "form", "esc", "back"}
	}
	rows = append(rows, renderHintBar(hints...))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
