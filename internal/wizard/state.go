// Package wizard implements the portfolio builder's multi-step form
// controller: an 8-step linear flow with guarded forward transitions,
// three user-curated repeating lists, and a snapshot/reset lifecycle.
// The package is UI-agnostic; the TUI in internal/tui/builder drives it.
package wizard

import (
	"strings"

	"github.com/mkail/foliogen/internal/portfolio"
)

// TotalSteps is the number of steps in the wizard flow.
const TotalSteps = 8

// Step identifiers, 1-indexed to match the on-screen step counter.
const (
	StepIdentity = iota + 1
	StepProfile
	StepDomain
	StepSkills
	StepCertificates
	StepWork
	StepProjects
	StepTheme
)

// stepNames maps step numbers to their display titles.
var stepNames = map[int]string{
	StepIdentity:     "About You",
	StepProfile:      "Profile",
	StepDomain:       "Domain",
	StepSkills:       "Skills",
	StepCertificates: "Certifications",
	StepWork:         "Work Experience",
	StepProjects:     "Projects",
	StepTheme:        "Theme & Review",
}

// StepName returns the display title for a step, or "" if out of range.
func StepName(step int) string {
	return stepNames[step]
}

// Domains are the selectable portfolio domains.
var Domains = []string{
	"Web Development",
	"Mobile Development",
	"Data Science",
	"Machine Learning / AI",
	"DevOps & Cloud",
	"UI/UX Design",
	"Game Development",
	"Cybersecurity",
}

// ExperienceLevels are the selectable experience levels.
var ExperienceLevels = []string{
	"Entry Level",
	"Junior",
	"Mid-Level",
	"Senior",
	"Lead / Principal",
}

// State is the mutable wizard session state. One State instance lives
// for one builder session: created on open, mutated step by step,
// snapshotted once at submission, and reset afterwards.
//
// Scalar form fields are plain exported fields; the repeating lists are
// unexported and mutated only through the Add*/Remove* methods so their
// insert ordering and dedup rules hold.
type State struct {
	currentStep int

	FullName   string
	Email      string
	Title      string
	Bio        string
	ImageURL   string
	Experience string
	Education  string
	Location   string
	Phone      string
	Socials    portfolio.Socials

	Domain string
	Theme  string

	skills       []string
	certificates []portfolio.Certificate
	work         []portfolio.WorkEntry
	projects     []portfolio.Project
}

// New creates a fresh wizard state positioned at step 1 with a single
// blank project sub-form, matching the initial collection surface.
func New() *State {
	return &State{
		currentStep: 1,
		projects:    []portfolio.Project{{}},
	}
}

// Step returns the current step, always within [1, TotalSteps].
func (s *State) Step() int {
	return s.currentStep
}

// Progress returns completion as a percentage of steps entered.
func (s *State) Progress() float64 {
	return float64(s.currentStep) / float64(TotalSteps) * 100
}

// Advance validates the current step and moves forward on success.
// On the final step it validates but stays put; the caller submits via
// Snapshot. On failure the returned ValidationError names the first
// offending field and the step does not change.
func (s *State) Advance() error {
	if err := s.ValidateStep(s.currentStep); err != nil {
		return err
	}
	if s.currentStep < TotalSteps {
		s.currentStep++
	}
	return nil
}

// Retreat moves one step back. Going backward never validates and
// never drops below step 1.
func (s *State) Retreat() {
	if s.currentStep > 1 {
		s.currentStep--
	}
}

// AddSkill trims and appends a skill. Empty input and exact
// (case-sensitive) duplicates are ignored. Reports whether the list
// changed.
func (s *State) AddSkill(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	for _, existing := range s.skills {
		if existing == value {
			return false
		}
	}
	s.skills = append(s.skills, value)
	return true
}

// RemoveSkill removes the skill at index i, shifting later entries
// down. Out-of-range indexes are ignored.
func (s *State) RemoveSkill(i int) {
	if i < 0 || i >= len(s.skills) {
		return
	}
	s.skills = append(s.skills[:i], s.skills[i+1:]...)
}

// Skills returns a copy of the skill list in insertion order.
func (s *State) Skills() []string {
	out := make([]string, len(s.skills))
	copy(out, s.skills)
	return out
}

// AddCertificate appends a certificate. Name and issuer are required;
// image, when present, must already be an encoded data URI (see
// internal/asset, which enforces the size limit before any state is
// touched).
func (s *State) AddCertificate(name, issuer, image string) error {
	name = strings.TrimSpace(name)
	issuer = strings.TrimSpace(issuer)
	if name == "" {
		return &ValidationError{Field: "certificate-name", Message: "certificate name is required"}
	}
	if issuer == "" {
		return &ValidationError{Field: "certificate-issuer", Message: "certificate issuer is required"}
	}
	s.certificates = append(s.certificates, portfolio.Certificate{
		Name:   name,
		Issuer: issuer,
		Image:  image,
	})
	return nil
}

// RemoveCertificate removes the certificate at index i.
func (s *State) RemoveCertificate(i int) {
	if i < 0 || i >= len(s.certificates) {
		return
	}
	s.certificates = append(s.certificates[:i], s.certificates[i+1:]...)
}

// Certificates returns a copy of the certificate list.
func (s *State) Certificates() []portfolio.Certificate {
	out := make([]portfolio.Certificate, len(s.certificates))
	copy(out, s.certificates)
	return out
}

// AddWorkEntry appends a work-experience entry. Title and company are
// required; description may be empty.
func (s *State) AddWorkEntry(title, company, description string) error {
	title = strings.TrimSpace(title)
	company = strings.TrimSpace(company)
	if title == "" {
		return &ValidationError{Field: "work-title", Message: "job title is required"}
	}
	if company == "" {
		return &ValidationError{Field: "work-company", Message: "company is required"}
	}
	s.work = append(s.work, portfolio.WorkEntry{
		Title:       title,
		Company:     company,
		Description: strings.TrimSpace(description),
	})
	return nil
}

// RemoveWorkEntry removes the work entry at index i.
func (s *State) RemoveWorkEntry(i int) {
	if i < 0 || i >= len(s.work) {
		return
	}
	s.work = append(s.work[:i], s.work[i+1:]...)
}

// WorkEntries returns a copy of the work-experience list.
func (s *State) WorkEntries() []portfolio.WorkEntry {
	out := make([]portfolio.WorkEntry, len(s.work))
	copy(out, s.work)
	return out
}

// AddProject appends one more blank project sub-form.
func (s *State) AddProject() {
	s.projects = append(s.projects, portfolio.Project{})
}

// RemoveProject removes the project sub-form at index i. The last
// remaining sub-form cannot be removed: the collection surface always
// shows at least one.
func (s *State) RemoveProject(i int) {
	if len(s.projects) <= 1 || i < 0 || i >= len(s.projects) {
		return
	}
	s.projects = append(s.projects[:i], s.projects[i+1:]...)
}

// SetProject replaces the project entry at index i with the given
// values. Out-of-range indexes are ignored.
func (s *State) SetProject(i int, p portfolio.Project) {
	if i < 0 || i >= len(s.projects) {
		return
	}
	s.projects[i] = p
}

// Projects returns a copy of the project entries.
func (s *State) Projects() []portfolio.Project {
	out := make([]portfolio.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// ProjectCount returns the number of project sub-forms, used for
// placeholder labeling ("Project 3").
func (s *State) ProjectCount() int {
	return len(s.projects)
}

// SelectDomain stores the single-choice domain. Choosing one replaces
// any prior choice.
func (s *State) SelectDomain(domain string) {
	s.Domain = domain
}

// SelectTheme stores the single-choice theme.
func (s *State) SelectTheme(theme string) {
	s.Theme = theme
}

// Snapshot validates every step and returns the immutable collected
// state for the generator. The state itself is left untouched; the
// caller resets it once generation is done.
func (s *State) Snapshot() (*portfolio.Snapshot, error) {
	for step := 1; step <= TotalSteps; step++ {
		if err := s.ValidateStep(step); err != nil {
			return nil, err
		}
	}

	snap := &portfolio.Snapshot{
		FullName:       strings.TrimSpace(s.FullName),
		Email:          strings.TrimSpace(s.Email),
		Title:          strings.TrimSpace(s.Title),
		Bio:            strings.TrimSpace(s.Bio),
		ImageURL:       strings.TrimSpace(s.ImageURL),
		Domain:         s.Domain,
		Experience:     s.Experience,
		Education:      strings.TrimSpace(s.Education),
		Location:       strings.TrimSpace(s.Location),
		Phone:          strings.TrimSpace(s.Phone),
		Socials:        s.Socials,
		Skills:         s.Skills(),
		Certificates:   s.Certificates(),
		WorkExperience: s.WorkEntries(),
		Theme:          s.Theme,
	}

	// Harvest project sub-forms, trimming field whitespace.
	snap.Projects = make([]portfolio.Project, 0, len(s.projects))
	for _, p := range s.projects {
		snap.Projects = append(snap.Projects, portfolio.Project{
			Name:        strings.TrimSpace(p.Name),
			Description: strings.TrimSpace(p.Description),
			ImageURL:    strings.TrimSpace(p.ImageURL),
			LiveLink:    strings.TrimSpace(p.LiveLink),
			GithubLink:  strings.TrimSpace(p.GithubLink),
		})
	}

	return snap, nil
}

// Reset returns the state to its initial empty values at step 1, ready
// for a new session without recreating the controller.
func (s *State) Reset() {
	*s = *New()
}
