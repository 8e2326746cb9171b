package builder

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkail/foliogen/internal/wizard"
)

// Focus zones within the skills step.
const (
	skillsZoneInput = iota
	skillsZoneList
)

// SkillsStep collects a free-form skill list. Entries are added one at
// a time; exact duplicates are rejected with a note.
type SkillsStep struct {
	st     *wizard.State
	input  textinput.Model
	cursor int
	zone   int
	note   string
	width  int
	height int
}

// NewSkillsStep creates the skills step.
func NewSkillsStep(st *wizard.State) *SkillsStep {
	ti := textinput.New()
	ti.Placeholder = "e.g. Go, PostgreSQL, Kubernetes"
	ti.CharLimit = 60
	ti.SetWidth(50)
	ti.Focus()
	return &SkillsStep{st: st, input: ti}
}

// Init initializes the skills step.
func (s *SkillsStep) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the skills step.
func (s *SkillsStep) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if s.zone == skillsZoneInput {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return cmd
		}
		return nil
	}

	if key.String() == "tab" || key.String() == "shift+tab" {
		s.toggleZone()
		return nil
	}

	if s.zone == skillsZoneList {
		return s.updateList(key)
	}
	return s.updateInput(key)
}

func (s *SkillsStep) updateInput(key tea.KeyPressMsg) tea.Cmd {
	if key.String() == "enter" {
		value := strings.TrimSpace(s.input.Value())
		// Empty input means the user is done with this step.
		if value == "" {
			return func() tea.Msg { return NextStepMsg{} }
		}
		if s.st.AddSkill(value) {
			s.input.SetValue("")
			s.note = ""
		} else {
			s.note = "already in the list"
		}
		return nil
	}

	if s.note != "" {
		s.note = ""
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(key)
	return cmd
}

func (s *SkillsStep) updateList(key tea.KeyPressMsg) tea.Cmd {
	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.st.Skills())-1 {
			s.cursor++
		}
	case "ctrl+x":
		s.st.RemoveSkill(s.cursor)
		if n := len(s.st.Skills()); s.cursor >= n {
			s.cursor = n - 1
		}
		if len(s.st.Skills()) == 0 {
			s.toggleZone()
		}
	case "enter":
		return func() tea.Msg { return NextStepMsg{} }
	}
	return nil
}

// toggleZone moves focus between the input and the list. The list zone
// is only reachable when it has entries.
func (s *SkillsStep) toggleZone() {
	if s.zone == skillsZoneInput && len(s.st.Skills()) > 0 {
		s.zone = skillsZoneList
		s.input.Blur()
		if s.cursor >= len(s.st.Skills()) {
			s.cursor = len(s.st.Skills()) - 1
		}
		return
	}
	s.zone = skillsZoneInput
	s.input.Focus()
}

// Commit is a no-op: skills are added to the state as they are typed.
func (s *SkillsStep) Commit(*wizard.State) {}

// FocusField is a no-op.
func (s *SkillsStep) FocusField(string) tea.Cmd {
	return nil
}

// SetSize updates the dimensions for the skills step.
func (s *SkillsStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.input.SetWidth(min(width-4, 60))
}

// View renders the skills step.
func (s *SkillsStep) View() string {
	var rows []string
	rows = append(rows, styleInstruction.Render("Add your skills one at a time. Leave the input empty and press enter when done."))
	rows = append(rows, s.input.View())

	if s.note != "" {
		rows = append(rows, styleNote.Render(s.note))
	}

	skills := s.st.Skills()
	if len(skills) > 0 {
		rows = append(rows, "")
		for i, sk := range skills {
			if s.zone == skillsZoneList && i == s.cursor {
				rows = append(rows, styleListCursor.Render("› "+sk))
			} else {
				rows = append(rows, styleListItem.Render("  "+sk))
			}
		}
	}

	rows = append(rows, "")
	hints := []string{"enter", "add / continue", "tab", "list", "esc", "back"}
	if s.zone == skillsZoneList {
		hints = []string{"↑↓", "navigate", "ctrl+x", "remove", "tab", "input", "esc", "back"}
	}
	rows = append(rows, renderHintBar(hints...))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
