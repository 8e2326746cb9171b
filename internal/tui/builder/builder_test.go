package builder

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mkail/foliogen/internal/asset"
	"github.com/mkail/foliogen/internal/portfolio"
	"github.com/mkail/foliogen/internal/wizard"
)

func projectFixture() portfolio.Project {
	return portfolio.Project{Name: "CLI Toolkit", Description: "A toolkit for CLIs"}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

// fillIdentity puts valid values into the identity step inputs.
func fillIdentity(s *IdentityStep) {
	s.fields.SetValue("full-name", "Jane Doe")
	s.fields.SetValue("email", "jane@example.com")
	s.fields.SetValue("title", "Backend Engineer")
}

func TestAdvanceBlockedOnEmptyIdentity(t *testing.T) {
	m := newModel(wizard.New(), nil, nil)

	updated, _ := m.Update(NextStepMsg{})
	m = updated.(*Model)

	if m.state.Step() != wizard.StepIdentity {
		t.Errorf("step = %d, want to stay on identity", m.state.Step())
	}
	if m.errMsg == "" {
		t.Error("expected a validation message")
	}
}

func TestAdvanceWithValidIdentity(t *testing.T) {
	m := newModel(wizard.New(), nil, nil)

	fillIdentity(m.currentStep().(*IdentityStep))
	updated, _ := m.Update(NextStepMsg{})
	m = updated.(*Model)

	if m.state.Step() != wizard.StepProfile {
		t.Errorf("step = %d, want profile step", m.state.Step())
	}
	if m.errMsg != "" {
		t.Errorf("errMsg = %q, want empty", m.errMsg)
	}
	if m.state.FullName != "Jane Doe" {
		t.Errorf("FullName = %q, commit did not run", m.state.FullName)
	}
}

func TestEscOnFirstStepCancels(t *testing.T) {
	m := newModel(wizard.New(), nil, nil)

	updated, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = updated.(*Model)

	if !m.cancelled {
		t.Error("expected cancelled after esc on step 1")
	}
}

func TestEscGoesBackWithoutValidating(t *testing.T) {
	st := wizard.New()
	st.FullName = "Jane Doe"
	st.Email = "jane@example.com"
	st.Title = "Backend Engineer"
	if err := st.Advance(); err != nil {
		t.Fatal(err)
	}

	m := newModel(st, nil, nil)
	updated, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = updated.(*Model)

	if m.cancelled {
		t.Error("esc past step 1 must not cancel")
	}
	if m.state.Step() != wizard.StepIdentity {
		t.Errorf("step = %d, want back on identity", m.state.Step())
	}
}

func TestDomainStepSelectsOnEnter(t *testing.T) {
	st := wizard.New()
	step := NewDomainStep(st)

	step.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	cmd := step.Update(enterKey())
	if cmd == nil {
		t.Fatal("enter should produce a command")
	}

	if st.Domain != wizard.Domains[1] {
		t.Errorf("domain = %q, want %q", st.Domain, wizard.Domains[1])
	}
	if _, ok := cmd().(NextStepMsg); !ok {
		t.Error("enter should request the next step")
	}
}

func TestSkillsStepAddAndDedup(t *testing.T) {
	st := wizard.New()
	step := NewSkillsStep(st)

	step.input.SetValue("Go")
	step.Update(enterKey())
	if skills := st.Skills(); len(skills) != 1 || skills[0] != "Go" {
		t.Fatalf("skills = %v", skills)
	}

	step.input.SetValue("Go")
	step.Update(enterKey())
	if len(st.Skills()) != 1 {
		t.Error("duplicate skill must not be added")
	}
	if step.note == "" {
		t.Error("expected a duplicate note")
	}

	// Empty input continues to the next step.
	step.input.SetValue("")
	cmd := step.Update(enterKey())
	if cmd == nil {
		t.Fatal("enter on empty input should produce a command")
	}
	if _, ok := cmd().(NextStepMsg); !ok {
		t.Error("enter on empty input should request the next step")
	}
}

func TestCertificatesStepRejectsOversizedImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badge.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Truncate(asset.MaxImageSize + 1); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cmd := loadCertImage("Cert", "Issuer", path)
	msg, ok := cmd().(certImageMsg)
	if !ok {
		t.Fatal("expected certImageMsg")
	}
	if !errors.Is(msg.err, asset.ErrImageTooLarge) {
		t.Fatalf("err = %v, want ErrImageTooLarge", msg.err)
	}

	st := wizard.New()
	step := NewCertificatesStep(st)
	step.Update(msg)

	if len(st.Certificates()) != 0 {
		t.Error("oversized image must not add a certificate")
	}
	if step.errMsg == "" {
		t.Error("expected an error message")
	}
}

func TestCertificatesStepRequiresIssuer(t *testing.T) {
	st := wizard.New()
	step := NewCertificatesStep(st)

	step.fields.SetValue("certificate-name", "AWS SA")
	step.Update(enterKey())

	if len(st.Certificates()) != 0 {
		t.Error("entry without issuer must not be added")
	}
	if !strings.Contains(step.errMsg, "issuer") {
		t.Errorf("errMsg = %q, want issuer complaint", step.errMsg)
	}
}

func TestWorkStepAddEntry(t *testing.T) {
	st := wizard.New()
	step := NewWorkStep(st)

	step.fields.SetValue("work-title", "Engineer")
	step.fields.SetValue("work-company", "Acme")
	step.desc.SetValue("Built things")
	step.Update(enterKey())

	entries := st.WorkEntries()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Company != "Acme" {
		t.Errorf("company = %q", entries[0].Company)
	}
	if !step.fields.Empty() {
		t.Error("form should clear after adding")
	}
}

func TestProjectsStepFocusField(t *testing.T) {
	st := wizard.New()
	st.AddProject()
	step := NewProjectsStep(st)

	if cmd := step.FocusField("project-2-name"); cmd == nil {
		t.Fatal("expected focus command")
	}
	if step.cur != 1 {
		t.Errorf("cur = %d, want second sub-form", step.cur)
	}
}

func TestProjectsStepCommitSaves(t *testing.T) {
	st := wizard.New()
	step := NewProjectsStep(st)

	step.fields.SetValue("name", "CLI Toolkit")
	step.fields.SetValue("description", "Does things")
	step.Commit(st)

	projects := st.Projects()
	if projects[0].Name != "CLI Toolkit" || projects[0].Description != "Does things" {
		t.Errorf("project = %+v", projects[0])
	}
}

func TestThemeStepDefaultsAndCycles(t *testing.T) {
	st := wizard.New()
	step := NewThemeStep(st)

	if st.Theme == "" {
		t.Fatal("theme step must pick a default theme")
	}
	first := st.Theme

	step.cycleTheme(1)
	if st.Theme == first {
		t.Error("cycling should change the theme")
	}
	step.cycleTheme(-1)
	if st.Theme != first {
		t.Errorf("theme = %q, want %q after cycling back", st.Theme, first)
	}
}

func TestGenerateProducesSnapshot(t *testing.T) {
	st := wizard.New()
	st.FullName = "Jane Doe"
	st.Email = "jane@example.com"
	st.Title = "Backend Engineer"
	st.SelectDomain(wizard.Domains[0])
	st.SelectTheme("dark")
	st.SetProject(0, projectFixture())

	m := newModel(st, nil, nil)
	updated, _ := m.Update(GenerateMsg{})
	m = updated.(*Model)

	if m.snapshot == nil {
		t.Fatalf("snapshot missing, errMsg = %q", m.errMsg)
	}
	if m.snapshot.FullName != "Jane Doe" {
		t.Errorf("snapshot name = %q", m.snapshot.FullName)
	}
}

func TestGenerateBlockedOnInvalidState(t *testing.T) {
	m := newModel(wizard.New(), nil, nil)

	updated, _ := m.Update(GenerateMsg{})
	m = updated.(*Model)

	if m.snapshot != nil {
		t.Error("invalid state must not produce a snapshot")
	}
	if m.errMsg == "" {
		t.Error("expected a validation message")
	}
}

func TestSummaryMarkdown(t *testing.T) {
	st := wizard.New()
	st.FullName = "Jane Doe"
	st.Title = "Backend Engineer"
	st.SelectDomain("Web Development")
	st.AddSkill("Go")
	st.AddSkill("PostgreSQL")

	md := summaryMarkdown(st)
	for _, want := range []string{"# Jane Doe", "Web Development", "Skills (2)", "Go, PostgreSQL"} {
		if !strings.Contains(md, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}
