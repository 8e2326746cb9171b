package builder

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkail/foliogen/internal/wizard"
)

// IdentityStep collects the required identity fields (name, email,
// title) plus optional phone and location.
type IdentityStep struct {
	fields *fieldSet
	width  int
	height int
}

// NewIdentityStep creates the identity step pre-filled from the state.
func NewIdentityStep(st *wizard.State) *IdentityStep {
	fs := newFieldSet(
		newField("full-name", "Full name", "Jane Doe", st.FullName),
		newField("email", "Email", "jane@example.com", st.Email),
		newField("title", "Professional title", "Backend Engineer", st.Title),
		newField("phone", "Phone (optional)", "+1 555 0100", st.Phone),
		newField("location", "Location (optional)", "Berlin, Germany", st.Location),
	)
	fs.Focus(0)
	return &IdentityStep{fields: fs}
}

// Init initializes the identity step.
func (s *IdentityStep) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the identity step.
func (s *IdentityStep) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter":
			return func() tea.Msg { return NextStepMsg{} }
		case "tab", "down":
			cmd, _ := s.fields.Next()
			return cmd
		case "shift+tab", "up":
			cmd, _ := s.fields.Prev()
			return cmd
		}
	}
	return s.fields.Update(msg)
}

// Commit writes the inputs into the wizard state.
func (s *IdentityStep) Commit(st *wizard.State) {
	st.FullName = s.fields.Value("full-name")
	st.Email = s.fields.Value("email")
	st.Title = s.fields.Value("title")
	st.Phone = s.fields.Value("phone")
	st.Location = s.fields.Value("location")
}

// FocusField puts the cursor on the named input.
func (s *IdentityStep) FocusField(field string) tea.Cmd {
	return s.fields.FocusKey(field)
}

// SetSize updates the dimensions for the identity step.
func (s *IdentityStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.fields.SetWidth(min(width-4, 60))
}

// View renders the identity step.
func (s *IdentityStep) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		styleInstruction.Render("Tell us who you are. Name, email, and title appear in the portfolio header."),
		s.fields.View(),
		"",
		renderHintBar("tab", "next field", "enter", "continue", "esc", "quit"),
	)
}
