package wizard

import (
	"errors"
	"testing"

	"github.com/mkail/foliogen/internal/portfolio"
)

// fillStep populates the state so that the given step validates.
func fillStep(s *State, step int) {
	switch step {
	case StepIdentity:
		s.FullName = "Jane Doe"
		s.Email = "jane@example.com"
		s.Title = "Backend Engineer"
	case StepDomain:
		s.SelectDomain("Web Development")
	case StepProjects:
		s.SetProject(0, portfolio.Project{Name: "CLI Toolkit", Description: "A toolkit for CLIs"})
	}
}

// completeState returns a state that validates on every step.
func completeState() *State {
	s := New()
	fillStep(s, StepIdentity)
	fillStep(s, StepDomain)
	fillStep(s, StepProjects)
	return s
}

func TestStepBounds(t *testing.T) {
	s := completeState()

	// Retreat at step 1 never drops below 1.
	for i := 0; i < 5; i++ {
		s.Retreat()
	}
	if s.Step() != 1 {
		t.Fatalf("step = %d after retreating at start, want 1", s.Step())
	}

	// Advance through the full flow, then keep advancing.
	for i := 0; i < TotalSteps+5; i++ {
		if err := s.Advance(); err != nil {
			t.Fatalf("Advance() at step %d: %v", s.Step(), err)
		}
		if s.Step() < 1 || s.Step() > TotalSteps {
			t.Fatalf("step %d out of bounds", s.Step())
		}
	}
	if s.Step() != TotalSteps {
		t.Errorf("step = %d after advancing past end, want %d", s.Step(), TotalSteps)
	}
}

func TestAdvanceBlockedByValidation(t *testing.T) {
	s := New()

	err := s.Advance()
	if err == nil {
		t.Fatal("Advance() with empty identity fields should fail")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if verr.Field != "full-name" {
		t.Errorf("first offending field = %q, want %q", verr.Field, "full-name")
	}
	if s.Step() != 1 {
		t.Errorf("step = %d after failed advance, want 1", s.Step())
	}

	// Whitespace-only values do not count as filled.
	s.FullName = "   "
	s.Email = "jane@example.com"
	s.Title = "Engineer"
	if err := s.Advance(); err == nil {
		t.Error("Advance() with whitespace-only name should fail")
	}
}

func TestDomainStepRequiresChoice(t *testing.T) {
	s := completeState()
	s.Domain = ""
	s.currentStep = StepDomain

	err := s.Advance()
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "domain" {
		t.Fatalf("Advance() = %v, want domain validation error", err)
	}

	s.SelectDomain("Data Science")
	if err := s.Advance(); err != nil {
		t.Errorf("Advance() after domain choice: %v", err)
	}
	if s.Step() != StepDomain+1 {
		t.Errorf("step = %d, want %d", s.Step(), StepDomain+1)
	}
}

func TestRetreatSkipsValidation(t *testing.T) {
	s := completeState()
	s.currentStep = StepSkills
	s.FullName = "" // step 1 would no longer validate

	s.Retreat()
	if s.Step() != StepDomain {
		t.Errorf("step = %d after retreat, want %d", s.Step(), StepDomain)
	}
}

func TestAddSkillDeduplicates(t *testing.T) {
	s := New()

	if !s.AddSkill("Go") {
		t.Error("first AddSkill should report a change")
	}
	if s.AddSkill("Go") {
		t.Error("duplicate AddSkill should be a no-op")
	}
	if !s.AddSkill("go") {
		t.Error("dedup is case-sensitive; 'go' differs from 'Go'")
	}
	if s.AddSkill("  ") {
		t.Error("whitespace-only AddSkill should be a no-op")
	}
	if !s.AddSkill("  Rust  ") {
		t.Error("AddSkill should trim and append")
	}

	got := s.Skills()
	want := []string{"Go", "go", "Rust"}
	if len(got) != len(want) {
		t.Fatalf("skills = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("skills[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPositionalRemoval(t *testing.T) {
	s := New()
	for _, v := range []string{"a", "b", "c", "d"} {
		s.AddSkill(v)
	}

	s.RemoveSkill(1)
	got := s.Skills()
	want := []string{"a", "c", "d"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("after RemoveSkill(1): skills = %v, want %v", got, want)
		}
	}

	// Out-of-range removals are ignored.
	s.RemoveSkill(-1)
	s.RemoveSkill(99)
	if len(s.Skills()) != 3 {
		t.Errorf("out-of-range removal changed the list: %v", s.Skills())
	}

	if err := s.AddCertificate("CKA", "CNCF", ""); err != nil {
		t.Fatal(err)
	}
	if err := s.AddCertificate("AWS SAA", "Amazon", ""); err != nil {
		t.Fatal(err)
	}
	s.RemoveCertificate(0)
	certs := s.Certificates()
	if len(certs) != 1 || certs[0].Name != "AWS SAA" {
		t.Errorf("after RemoveCertificate(0): %v", certs)
	}

	if err := s.AddWorkEntry("Engineer", "Acme", ""); err != nil {
		t.Fatal(err)
	}
	if err := s.AddWorkEntry("Lead", "Globex", "led a team"); err != nil {
		t.Fatal(err)
	}
	s.RemoveWorkEntry(1)
	work := s.WorkEntries()
	if len(work) != 1 || work[0].Company != "Acme" {
		t.Errorf("after RemoveWorkEntry(1): %v", work)
	}
}

func TestAddCertificateRequiresNameAndIssuer(t *testing.T) {
	s := New()

	if err := s.AddCertificate("", "CNCF", ""); err == nil {
		t.Error("AddCertificate without name should fail")
	}
	if err := s.AddCertificate("CKA", "  ", ""); err == nil {
		t.Error("AddCertificate without issuer should fail")
	}
	if len(s.Certificates()) != 0 {
		t.Errorf("failed adds recorded partial state: %v", s.Certificates())
	}
}

func TestAddWorkEntryDescriptionOptional(t *testing.T) {
	s := New()

	if err := s.AddWorkEntry("Engineer", "Acme", ""); err != nil {
		t.Errorf("empty description should be allowed: %v", err)
	}
	if err := s.AddWorkEntry("", "Acme", "x"); err == nil {
		t.Error("AddWorkEntry without title should fail")
	}
	if err := s.AddWorkEntry("Engineer", "", "x"); err == nil {
		t.Error("AddWorkEntry without company should fail")
	}
}

func TestProjectSubForms(t *testing.T) {
	s := New()
	if s.ProjectCount() != 1 {
		t.Fatalf("new state should start with one project sub-form, got %d", s.ProjectCount())
	}

	s.AddProject()
	s.AddProject()
	if s.ProjectCount() != 3 {
		t.Fatalf("project count = %d, want 3", s.ProjectCount())
	}

	s.SetProject(1, portfolio.Project{Name: "Second", Description: "d"})
	s.RemoveProject(0)
	got := s.Projects()
	if len(got) != 2 || got[0].Name != "Second" {
		t.Errorf("after RemoveProject(0): %v", got)
	}

	// The last sub-form cannot be removed.
	s.RemoveProject(0)
	s.RemoveProject(0)
	if s.ProjectCount() != 1 {
		t.Errorf("project count = %d, the last sub-form must remain", s.ProjectCount())
	}
}

func TestProjectValidationReportsFirstOffender(t *testing.T) {
	s := completeState()
	s.AddProject() // second, blank project
	s.currentStep = StepProjects

	err := s.Advance()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if verr.Field != "project-1-name" {
		t.Errorf("field = %q, want %q", verr.Field, "project-1-name")
	}
}

func TestSelectionIsExclusive(t *testing.T) {
	s := New()
	s.SelectDomain("Web Development")
	s.SelectDomain("Cybersecurity")
	if s.Domain != "Cybersecurity" {
		t.Errorf("domain = %q, want the latest choice", s.Domain)
	}

	s.SelectTheme("green")
	s.SelectTheme("purple")
	if s.Theme != "purple" {
		t.Errorf("theme = %q, want the latest choice", s.Theme)
	}
}

func TestProgress(t *testing.T) {
	s := completeState()
	if s.Progress() != 12.5 {
		t.Errorf("progress at step 1 = %v, want 12.5", s.Progress())
	}
	if err := s.Advance(); err != nil {
		t.Fatal(err)
	}
	if s.Progress() != 25 {
		t.Errorf("progress at step 2 = %v, want 25", s.Progress())
	}
}

func TestSnapshotAndReset(t *testing.T) {
	s := completeState()
	s.AddSkill("Go")
	if err := s.AddCertificate("CKA", "CNCF", ""); err != nil {
		t.Fatal(err)
	}
	s.SelectTheme("green")
	s.Bio = "  Hello there.  "

	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	if snap.FullName != "Jane Doe" || snap.Theme != "green" {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.Bio != "Hello there." {
		t.Errorf("bio not trimmed: %q", snap.Bio)
	}
	if len(snap.Skills) != 1 || len(snap.Certificates) != 1 || len(snap.Projects) != 1 {
		t.Errorf("snapshot lists: %+v", snap)
	}

	// The snapshot is a copy: later mutations do not leak into it.
	s.AddSkill("Rust")
	if len(snap.Skills) != 1 {
		t.Error("snapshot skills aliased to live state")
	}

	s.Reset()
	if s.Step() != 1 {
		t.Errorf("step after reset = %d, want 1", s.Step())
	}
	if s.FullName != "" || s.Domain != "" || s.Theme != "" {
		t.Errorf("scalar fields survived reset: %+v", s)
	}
	if len(s.Skills()) != 0 || len(s.Certificates()) != 0 || len(s.WorkEntries()) != 0 {
		t.Error("lists survived reset")
	}
	if s.ProjectCount() != 1 {
		t.Errorf("project sub-forms after reset = %d, want 1", s.ProjectCount())
	}
}

func TestSnapshotFailsOnInvalidState(t *testing.T) {
	s := New()
	if _, err := s.Snapshot(); err == nil {
		t.Error("Snapshot() on an empty state should fail")
	}
}

func TestStepName(t *testing.T) {
	if StepName(StepIdentity) == "" || StepName(StepTheme) == "" {
		t.Error("known steps should have names")
	}
	if StepName(0) != "" || StepName(TotalSteps+1) != "" {
		t.Error("out-of-range steps should have empty names")
	}
}
