package builder

import (
	"os"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/editor"

	"github.com/mkail/foliogen/internal/portfolio"
	"github.com/mkail/foliogen/internal/wizard"
)

// Focus zones within the profile step.
const (
	profileZoneBio = iota
	profileZoneExperience
	profileZoneFields
)

// ProfileStep collects the optional profile details: bio (markdown),
// avatar image URL, experience level, education, and social links.
type ProfileStep struct {
	bio     textarea.Model
	expIdx  int // 0 = none, 1.. = index+1 into ExperienceLevels
	fields  *fieldSet
	zone    int
	width   int
	height  int
	tmpFile string // temp file while the external editor is open
}

// NewProfileStep creates the profile step pre-filled from the state.
func NewProfileStep(st *wizard.State) *ProfileStep {
	ta := textarea.New()
	ta.Placeholder = "A short bio in markdown.\n\n**Bold**, *italic*, and lists are rendered in the portfolio."
	ta.CharLimit = 5000
	ta.SetHeight(5)
	ta.SetWidth(60)
	ta.SetValue(st.Bio)
	ta.Focus()

	expIdx := 0
	for i, level := range wizard.ExperienceLevels {
		if level == st.Experience {
			expIdx = i + 1
			break
		}
	}

	fs := newFieldSet(
		newField("image-url", "Profile image URL (optional)", "https://example.com/me.jpg", st.ImageURL),
		newField("education", "Education (optional)", "B.Sc. Computer Science, TU Berlin", st.Education),
		newField("linkedin", "LinkedIn (optional)", "linkedin.com/in/janedoe", st.Socials.LinkedIn),
		newField("github", "GitHub (optional)", "github.com/janedoe", st.Socials.GitHub),
		newField("website", "Website (optional)", "janedoe.dev", st.Socials.Website),
		newField("handle", "Social handle (optional)", "@janedoe", st.Socials.Handle),
	)

	return &ProfileStep{
		bio:    ta,
		expIdx: expIdx,
		fields: fs,
		zone:   profileZoneBio,
	}
}

// Init initializes the profile step.
func (s *ProfileStep) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the profile step.
func (s *ProfileStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab":
			return s.focusNext()
		case "shift+tab":
			return s.focusPrev()
		}

		switch s.zone {
		case profileZoneBio:
			switch msg.String() {
			case "ctrl+d":
				return func() tea.Msg { return NextStepMsg{} }
			case "ctrl+e":
				if os.Getenv("EDITOR") != "" {
					return s.openEditor()
				}
				return nil
			}
			var cmd tea.Cmd
			s.bio, cmd = s.bio.Update(msg)
			return cmd

		case profileZoneExperience:
			switch msg.String() {
			case "left", "h":
				s.expIdx--
				if s.expIdx < 0 {
					s.expIdx = len(wizard.ExperienceLevels)
				}
			case "right", "l":
				s.expIdx = (s.expIdx + 1) % (len(wizard.ExperienceLevels) + 1)
			case "enter":
				return func() tea.Msg { return NextStepMsg{} }
			}
			return nil

		case profileZoneFields:
			if msg.String() == "enter" {
				return func() tea.Msg { return NextStepMsg{} }
			}
			return s.fields.Update(msg)
		}

	case BioEditedMsg:
		s.bio.SetValue(msg.Content)
		if s.tmpFile != "" {
			_ = os.Remove(s.tmpFile)
			s.tmpFile = ""
		}
		return nil
	}

	if s.zone == profileZoneBio {
		var cmd tea.Cmd
		s.bio, cmd = s.bio.Update(msg)
		return cmd
	}
	return s.fields.Update(msg)
}

// focusNext cycles bio → experience → fields → bio.
func (s *ProfileStep) focusNext() tea.Cmd {
	switch s.zone {
	case profileZoneBio:
		s.bio.Blur()
		s.zone = profileZoneExperience
		return nil
	case profileZoneExperience:
		s.zone = profileZoneFields
		return s.fields.Focus(0)
	default:
		cmd, wrapped := s.fields.Next()
		if wrapped {
			s.fields.Blur()
			s.zone = profileZoneBio
			return s.bio.Focus()
		}
		return cmd
	}
}

// focusPrev cycles in the opposite direction.
func (s *ProfileStep) focusPrev() tea.Cmd {
	switch s.zone {
	case profileZoneBio:
		s.bio.Blur()
		s.zone = profileZoneFields
		return s.fields.Focus(len(s.fields.fields) - 1)
	case profileZoneExperience:
		s.zone = profileZoneBio
		return s.bio.Focus()
	default:
		cmd, wrapped := s.fields.Prev()
		if wrapped {
			s.fields.Blur()
			s.zone = profileZoneExperience
			return nil
		}
		return cmd
	}
}

// openEditor launches $EDITOR with the current bio content.
func (s *ProfileStep) openEditor() tea.Cmd {
	tmpfile, err := os.CreateTemp("", "foliogen_bio_*.md")
	if err != nil {
		return nil
	}
	if _, err := tmpfile.WriteString(s.bio.Value()); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil
	}
	_ = tmpfile.Close()
	s.tmpFile = tmpfile.Name()

	cmd, err := editor.Command("foliogen", tmpfile.Name())
	if err != nil {
		_ = os.Remove(tmpfile.Name())
		return nil
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			return nil
		}
		content, err := os.ReadFile(tmpfile.Name())
		if err != nil {
			return nil
		}
		return BioEditedMsg{Content: string(content)}
	})
}

// Commit writes the inputs into the wizard state.
func (s *ProfileStep) Commit(st *wizard.State) {
	st.Bio = strings.TrimSpace(s.bio.Value())
	if s.expIdx == 0 {
		st.Experience = ""
	} else {
		st.Experience = wizard.ExperienceLevels[s.expIdx-1]
	}
	st.ImageURL = s.fields.Value("image-url")
	st.Education = s.fields.Value("education")
	st.Socials = portfolio.Socials{
		LinkedIn: s.fields.Value("linkedin"),
		GitHub:   s.fields.Value("github"),
		Website:  s.fields.Value("website"),
		Handle:   s.fields.Value("handle"),
	}
}

// FocusField is a no-op: every profile input is optional.
func (s *ProfileStep) FocusField(string) tea.Cmd {
	return nil
}

// SetSize updates the dimensions for the profile step.
func (s *ProfileStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	w := min(width-4, 60)
	s.bio.SetWidth(w)
	s.fields.SetWidth(w)
}

// View renders the profile step.
func (s *ProfileStep) View() string {
	expLabel := styleFieldLabel
	if s.zone == profileZoneExperience {
		expLabel = styleFieldLabelFocused
	}
	expValue := "(none)"
	if s.expIdx > 0 {
		expValue = wizard.ExperienceLevels[s.expIdx-1]
	}
	experience := expLabel.Render("Experience level (optional)") + "\n" +
		styleListItem.Render("◂ "+expValue+" ▸")

	bioLabel := styleFieldLabel
	if s.zone == profileZoneBio {
		bioLabel = styleFieldLabelFocused
	}

	hints := []string{"tab", "next section", "enter", "continue", "esc", "back"}
	if s.zone == profileZoneBio {
		hints = []string{"tab", "next section", "ctrl+e", "editor", "ctrl+d", "continue", "esc", "back"}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		styleInstruction.Render("All of this is optional. Add as much as you want shown."),
		bioLabel.Render("Bio (markdown)"),
		s.bio.View(),
		"",
		experience,
		"",
		s.fields.View(),
		"",
		renderHintBar(hints...),
	)
}
