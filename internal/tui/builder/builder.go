// Package builder implements the interactive portfolio builder: a
// full-screen eight-step form flow driven by the wizard state
// controller. Each step is its own component; the model here owns
// step transitions, validation feedback, and draft autosaving.
package builder

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mkail/foliogen/internal/draft"
	"github.com/mkail/foliogen/internal/logger"
	"github.com/mkail/foliogen/internal/portfolio"
	"github.com/mkail/foliogen/internal/wizard"
)

// ErrCancelled is returned by RunBuilder when the user quits without
// generating a document.
var ErrCancelled = errors.New("builder cancelled")

// stepComponent is the contract every step screen implements.
type stepComponent interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)

	// Commit writes the component's current inputs into the wizard
	// state. Called before any step transition so typed-but-unsubmitted
	// values survive navigation.
	Commit(st *wizard.State)

	// FocusField puts the cursor on the input named by a validation
	// error. Components without named inputs ignore it.
	FocusField(field string) tea.Cmd
}

// Model is the BubbleTea model for the builder flow.
type Model struct {
	state  *wizard.State
	store  *draft.Store // nil disables autosave
	dr     *draft.Draft
	steps  map[int]stepComponent
	errMsg string

	width     int
	height    int
	cancelled bool
	snapshot  *portfolio.Snapshot
}

// RunBuilder runs the interactive builder to completion. The state may
// be a fresh session or one restored from a draft; when a store is
// given the session is saved after every step transition. Returns the
// collected snapshot, or ErrCancelled if the user quit.
func RunBuilder(state *wizard.State, store *draft.Store, dr *draft.Draft) (*portfolio.Snapshot, error) {
	if store != nil && dr == nil {
		dr = draft.NewDraft(state)
	}

	m := newModel(state, store, dr)
	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("builder failed: %w", err)
	}

	final, ok := finalModel.(*Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if final.cancelled || final.snapshot == nil {
		return nil, ErrCancelled
	}
	return final.snapshot, nil
}

func newModel(state *wizard.State, store *draft.Store, dr *draft.Draft) *Model {
	return &Model{
		state: state,
		store: store,
		dr:    dr,
		steps: make(map[int]stepComponent),
	}
}

// Init initializes the builder model.
func (m *Model) Init() tea.Cmd {
	return m.currentStep().Init()
}

// currentStep returns the component for the state's current step,
// constructing it on first visit.
func (m *Model) currentStep() stepComponent {
	step := m.state.Step()
	if c, ok := m.steps[step]; ok {
		return c
	}

	var c stepComponent
	switch step {
	case wizard.StepIdentity:
		c = NewIdentityStep(m.state)
	case wizard.StepProfile:
		c = NewProfileStep(m.state)
	case wizard.StepDomain:
		c = NewDomainStep(m.state)
	case wizard.StepSkills:
		c = NewSkillsStep(m.state)
	case wizard.StepCertificates:
		c = NewCertificatesStep(m.state)
	case wizard.StepWork:
		c = NewWorkStep(m.state)
	case wizard.StepProjects:
		c = NewProjectsStep(m.state)
	case wizard.StepTheme:
		c = NewThemeStep(m.state)
	}
	m.steps[step] = c
	m.resizeStep(c)
	return c
}

// Update handles messages for the builder.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "esc":
			if m.state.Step() == 1 {
				m.cancelled = true
				return m, tea.Quit
			}
			return m, m.retreat()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, c := range m.steps {
			m.resizeStep(c)
		}
		return m, nil

	case NextStepMsg:
		return m, m.advance()

	case PrevStepMsg:
		return m, m.retreat()

	case GenerateMsg:
		cur := m.currentStep()
		cur.Commit(m.state)
		snap, err := m.state.Snapshot()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.snapshot = snap
		return m, tea.Quit
	}

	return m, m.currentStep().Update(msg)
}

// advance commits the current step, validates, and moves forward. On a
// validation failure the error is shown and the offending input gets
// focus.
func (m *Model) advance() tea.Cmd {
	cur := m.currentStep()
	cur.Commit(m.state)

	if err := m.state.Advance(); err != nil {
		var ve *wizard.ValidationError
		if errors.As(err, &ve) {
			m.errMsg = ve.Message
			return cur.FocusField(ve.Field)
		}
		m.errMsg = err.Error()
		return nil
	}

	m.errMsg = ""
	return tea.Batch(m.currentStep().Init(), m.autosave())
}

// retreat commits the current step (so nothing typed is lost) and goes
// back without validating.
func (m *Model) retreat() tea.Cmd {
	m.currentStep().Commit(m.state)
	m.state.Retreat()
	m.errMsg = ""
	return tea.Batch(m.currentStep().Init(), m.autosave())
}

// autosave persists the session to the draft store in the background.
// Failures are logged, never surfaced: losing autosave must not block
// the flow.
func (m *Model) autosave() tea.Cmd {
	if m.store == nil || m.dr == nil {
		return nil
	}
	store, dr := m.store, m.dr
	return func() tea.Msg {
		if err := store.Save(dr); err != nil {
			logger.Debug("draft autosave failed: %v", err)
		}
		return nil
	}
}

// resizeStep passes the content area dimensions to a step component.
func (m *Model) resizeStep(c stepComponent) {
	contentWidth := m.width - 10
	contentHeight := m.height - 10
	if contentWidth < 40 {
		contentWidth = 40
	}
	if contentHeight < 10 {
		contentHeight = 10
	}
	c.SetSize(contentWidth, contentHeight)
}

// View renders the builder UI.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	content := m.renderModal(m.currentStep().View())

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(content).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// renderModal wraps the step content in a centered modal with title,
// progress, and any validation error.
func (m *Model) renderModal(stepContent string) string {
	step := m.state.Step()

	var sections []string
	title := fmt.Sprintf("Portfolio Builder - Step %d of %d: %s",
		step, wizard.TotalSteps, wizard.StepName(step))
	sections = append(sections, styleModalTitle.Render(title))
	sections = append(sections, m.renderProgress())
	sections = append(sections, "")
	sections = append(sections, stepContent)

	if m.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, styleError.Render("✗ "+m.errMsg))
	}

	content := strings.Join(sections, "\n")

	modalWidth := m.width - 10
	if modalWidth < 60 {
		modalWidth = 60
	}
	if modalWidth > 100 {
		modalWidth = 100
	}

	modalContent := styleModalContainer.Width(modalWidth).Render(content)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		modalContent,
	)
}

// renderProgress renders the step progress as a segmented bar.
func (m *Model) renderProgress() string {
	step := m.state.Step()
	done := strings.Repeat("█", step*3)
	rest := strings.Repeat("░", (wizard.TotalSteps-step)*3)
	pct := fmt.Sprintf(" %.0f%%", m.state.Progress())
	return styleProgressDone.Render(done) + styleProgressRest.Render(rest) + styleNote.Render(pct)
}
