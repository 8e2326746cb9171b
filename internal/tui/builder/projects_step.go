package builder

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkail/foliogen/internal/portfolio"
	"github.com/mkail/foliogen/internal/wizard"
)

// ProjectsStep edits the project sub-forms. At least one project with
// a name and description must exist before the flow can continue; the
// collection always shows at least one form.
type ProjectsStep struct {
	st     *wizard.State
	cur    int // index of the sub-form being edited
	fields *fieldSet
	width  int
	height int
}

// NewProjectsStep creates the projects step editing the first
// sub-form.
func NewProjectsStep(st *wizard.State) *ProjectsStep {
	s := &ProjectsStep{
		st: st,
		fields: newFieldSet(
			newField("name", "Project name", "CLI Toolkit", ""),
			newField("description", "Description", "What it does and why it matters", ""),
			newField("image-url", "Screenshot URL (optional)", "https://example.com/shot.png", ""),
			newField("live-link", "Live link (optional)", "https://demo.example.com", ""),
			newField("github-link", "GitHub link (optional)", "github.com/janedoe/cli-toolkit", ""),
		),
	}
	s.load(0)
	s.fields.Focus(0)
	return s
}

// load fills the form from the sub-form at index i.
func (s *ProjectsStep) load(i int) {
	projects := s.st.Projects()
	if i < 0 || i >= len(projects) {
		return
	}
	s.cur = i
	p := projects[i]
	s.fields.SetValue("name", p.Name)
	s.fields.SetValue("description", p.Description)
	s.fields.SetValue("image-url", p.ImageURL)
	s.fields.SetValue("live-link", p.LiveLink)
	s.fields.SetValue("github-link", p.GithubLink)
}

// save writes the form back into the sub-form being edited.
func (s *ProjectsStep) save() {
	s.st.SetProject(s.cur, portfolio.Project{
		Name:        s.fields.Value("name"),
		Description: s.fields.Value("description"),
		ImageURL:    s.fields.Value("image-url"),
		LiveLink:    s.fields.Value("live-link"),
		GithubLink:  s.fields.Value("github-link"),
	})
}

// Init initializes the projects step.
func (s *ProjectsStep) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the projects step.
func (s *ProjectsStep) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s.fields.Update(msg)
	}

	switch key.String() {
	case "enter":
		return func() tea.Msg { return NextStepMsg{} }
	case "tab", "down":
		cmd, _ := s.fields.Next()
		return cmd
	case "shift+tab", "up":
		cmd, _ := s.fields.Prev()
		return cmd
	case "ctrl+n":
		// New sub-form after the current ones.
		s.save()
		s.st.AddProject()
		s.load(s.st.ProjectCount() - 1)
		return s.fields.Focus(0)
	case "ctrl+x":
		// Removing the last remaining form is a no-op downstream.
		s.st.RemoveProject(s.cur)
		if s.cur >= s.st.ProjectCount() {
			s.cur = s.st.ProjectCount() - 1
		}
		s.load(s.cur)
		return nil
	case "pgdown":
		s.save()
		if s.cur < s.st.ProjectCount()-1 {
			s.load(s.cur + 1)
		}
		return nil
	case "pgup":
		s.save()
		if s.cur > 0 {
			s.load(s.cur - 1)
		}
		return nil
	}

	return s.fields.Update(key)
}

// Commit saves the form being edited.
func (s *ProjectsStep) Commit(*wizard.State) {
	s.save()
}

// FocusField switches to the sub-form named by a validation error
// ("project-2-name") and focuses the offending input.
func (s *ProjectsStep) FocusField(field string) tea.Cmd {
	rest, ok := strings.CutPrefix(field, "project-")
	if !ok {
		return nil
	}
	var n int
	var key string
	if _, err := fmt.Sscanf(rest, "%d-%s", &n, &key); err != nil {
		return nil
	}
	s.save()
	s.load(n - 1)
	return s.fields.FocusKey(key)
}

// SetSize updates the dimensions for the projects step.
func (s *ProjectsStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.fields.SetWidth(min(width-4, 60))
}

// View renders the projects step.
func (s *ProjectsStep) View() string {
	header := fmt.Sprintf("Project %d of %d", s.cur+1, s.st.ProjectCount())
	return lipgloss.JoinVertical(
		lipgloss.Left,
		styleInstruction.Render("Showcase your projects. Every project needs a name and a description."),
		styleFieldLabelFocused.Render(header),
		"",
		s.fields.View(),
		"",
		renderHintBar(
			"tab", "next field",
			"ctrl+n", "new project",
			"ctrl+x", "remove",
			"pgup/pgdn", "switch",
			"enter", "continue",
			"esc", "back",
		),
	)
}
