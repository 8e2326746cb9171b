package builder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkail/foliogen/internal/wizard"
)

// DomainStep is the single-choice domain selector. A domain must be
// chosen before the flow can continue.
type DomainStep struct {
	st     *wizard.State
	cursor int
	width  int
	height int
}

// NewDomainStep creates the domain step with the cursor on any
// previously chosen domain.
func NewDomainStep(st *wizard.State) *DomainStep {
	cursor := 0
	for i, d := range wizard.Domains {
		if d == st.Domain {
			cursor = i
			break
		}
	}
	return &DomainStep{st: st, cursor: cursor}
}

// Init initializes the domain step.
func (s *DomainStep) Init() tea.Cmd {
	return nil
}

// Update handles messages for the domain step.
func (s *DomainStep) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(wizard.Domains)-1 {
			s.cursor++
		}
	case " ":
		// Select without leaving the step. Choosing replaces any prior
		// choice.
		s.st.SelectDomain(wizard.Domains[s.cursor])
	case "enter":
		s.st.SelectDomain(wizard.Domains[s.cursor])
		return func() tea.Msg { return NextStepMsg{} }
	}
	return nil
}

// Commit is a no-op: the domain is stored at selection time so the
// required-choice validation still fires when nothing was picked.
func (s *DomainStep) Commit(*wizard.State) {}

// FocusField is a no-op.
func (s *DomainStep) FocusField(string) tea.Cmd {
	return nil
}

// SetSize updates the dimensions for the domain step.
func (s *DomainStep) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// View renders the domain step.
func (s *DomainStep) View() string {
	var rows []string
	rows = append(rows, styleInstruction.Render("Pick the domain your portfolio is about:"))

	for i, d := range wizard.Domains {
		marker := "( )"
		if d == s.st.Domain {
			marker = "(•)"
		}
		line := "  " + marker + " " + d
		if i == s.cursor {
			line = styleListCursor.Render("› " + marker + " " + d)
		} else {
			line = styleListItem.Render(line)
		}
		rows = append(rows, line)
	}

	rows = append(rows, "")
	rows = append(rows, renderHintBar("↑↓", "navigate", "enter", "select & continue", "esc", "back"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
