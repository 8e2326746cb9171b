package wizard

import (
	"fmt"
	"strings"
)

// ValidationError reports the first invalid field of a step. Field is a
// stable key the UI uses to focus the offending input; validation stops
// at the first failure rather than enumerating all of them.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// requiredField describes one required text field within a step.
type requiredField struct {
	key   string
	label string
	value func(*State) string
}

// requiredFields lists the required free-text fields per step.
// Domain choice and project sub-forms have dedicated checks below.
var requiredFields = map[int][]requiredField{
	StepIdentity: {
		{"full-name", "full name", func(s *State) string { return s.FullName }},
		{"email", "email", func(s *State) string { return s.Email }},
		{"title", "professional title", func(s *State) string { return s.Title }},
	},
}

// ValidateStep checks the required fields of one step. It returns nil
// when the step may be left forward, or a ValidationError for the first
// empty (whitespace-trimmed) required field.
func (s *State) ValidateStep(step int) error {
	for _, f := range requiredFields[step] {
		if strings.TrimSpace(f.value(s)) == "" {
			return &ValidationError{
				Field:   f.key,
				Message: fmt.Sprintf("please fill in your %s", f.label),
			}
		}
	}

	switch step {
	case StepDomain:
		if s.Domain == "" {
			return &ValidationError{
				Field:   "domain",
				Message: "please choose a domain",
			}
		}
	case StepProjects:
		if len(s.projects) == 0 {
			return &ValidationError{
				Field:   "project-0-name",
				Message: "please add at least one project",
			}
		}
		for i, p := range s.projects {
			if strings.TrimSpace(p.Name) == "" {
				return &ValidationError{
					Field:   fmt.Sprintf("project-%d-name", i),
					Message: fmt.Sprintf("please fill in the name of project %d", i+1),
				}
			}
			if strings.TrimSpace(p.Description) == "" {
				return &ValidationError{
					Field:   fmt.Sprintf("project-%d-description", i),
					Message: fmt.Sprintf("please fill in the description of project %d", i+1),
				}
			}
		}
	}

	return nil
}
