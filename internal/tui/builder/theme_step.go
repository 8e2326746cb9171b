package builder

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkail/foliogen/internal/generator"
	"github.com/mkail/foliogen/internal/wizard"
)

// ThemeStep is the final screen: theme selection plus a scrollable
// review of everything collected, with Back/Generate buttons.
type ThemeStep struct {
	st       *wizard.State
	palettes []generator.Palette
	idx      int
	viewport viewport.Model
	buttons  *ButtonBar
	onBtns   bool
	btnIdx   int
	width    int
	height   int
}

// NewThemeStep creates the theme step. A session without a chosen
// theme starts on the first palette so the snapshot always carries
// one.
func NewThemeStep(st *wizard.State) *ThemeStep {
	pals := generator.Palettes()

	idx := 0
	for i, p := range pals {
		if p.Name == st.Theme {
			idx = i
			break
		}
	}
	if st.Theme == "" {
		st.SelectTheme(pals[0].Name)
	}

	vp := viewport.New(
		viewport.WithWidth(60),
		viewport.WithHeight(10),
	)
	vp.MouseWheelEnabled = true
	vp.SetContent(renderSummary(summaryMarkdown(st), 60))

	return &ThemeStep{
		st:       st,
		palettes: pals,
		idx:      idx,
		viewport: vp,
		buttons:  NewButtonBar("← Back", "Generate ✓"),
		btnIdx:   1,
	}
}

// Init refreshes the summary; the step is revisited whenever the user
// walks back and forth.
func (s *ThemeStep) Init() tea.Cmd {
	s.viewport.SetContent(renderSummary(summaryMarkdown(s.st), s.contentWidth()))
	s.viewport.GotoTop()
	return nil
}

// Update handles messages for the theme step.
func (s *ThemeStep) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		s.viewport, cmd = s.viewport.Update(msg)
		return cmd
	}

	switch key.String() {
	case "tab", "shift+tab":
		s.onBtns = !s.onBtns
		return nil
	case "left", "h":
		if s.onBtns {
			s.btnIdx = 0
			return nil
		}
		s.cycleTheme(-1)
		return nil
	case "right", "l":
		if s.onBtns {
			s.btnIdx = 1
			return nil
		}
		s.cycleTheme(1)
		return nil
	case "enter":
		if s.onBtns && s.btnIdx == 0 {
			return func() tea.Msg { return PrevStepMsg{} }
		}
		return func() tea.Msg { return GenerateMsg{} }
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(key)
	return cmd
}

// cycleTheme moves the selection and stores it immediately.
func (s *ThemeStep) cycleTheme(delta int) {
	s.idx = (s.idx + delta + len(s.palettes)) % len(s.palettes)
	s.st.SelectTheme(s.palettes[s.idx].Name)
}

// Commit stores the selected theme.
func (s *ThemeStep) Commit(st *wizard.State) {
	st.SelectTheme(s.palettes[s.idx].Name)
}

// FocusField is a no-op.
func (s *ThemeStep) FocusField(string) tea.Cmd {
	return nil
}

func (s *ThemeStep) contentWidth() int {
	w := s.width - 4
	if w < 40 {
		w = 40
	}
	if w > 76 {
		w = 76
	}
	return w
}

// SetSize updates the dimensions for the theme step.
func (s *ThemeStep) SetSize(width, height int) {
	s.width = width
	s.height = height

	w := s.contentWidth()
	s.viewport.SetWidth(w)
	vpHeight := height - 8
	if vpHeight < 5 {
		vpHeight = 5
	}
	s.viewport.SetHeight(vpHeight)
	s.viewport.SetContent(renderSummary(summaryMarkdown(s.st), w))
	s.buttons.SetWidth(w)
}

// View renders the theme step.
func (s *ThemeStep) View() string {
	if s.onBtns {
		s.buttons.SetFocus(s.btnIdx)
	} else {
		s.buttons.SetFocus(-1)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		styleInstruction.Render("Pick a theme and review your portfolio before generating."),
		s.renderSwatches(),
		"",
		s.viewport.View(),
		"",
		s.buttons.Render(),
		renderHintBar("◂▸", "theme", "↑↓", "scroll", "tab", "buttons", "enter", "generate", "esc", "back"),
	)
}

// renderSwatches renders one colored swatch per palette with the
// selected name highlighted.
func (s *ThemeStep) renderSwatches() string {
	var parts []string
	for i, p := range s.palettes {
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Primary)).
			Render("██")
		name := p.Name
		if i == s.idx {
			name = styleListCursor.Render("[" + name + "]")
		} else {
			name = styleListItemDim.Render(" " + name + " ")
		}
		parts = append(parts, swatch+" "+name)
	}
	return strings.Join(parts, "  ")
}
