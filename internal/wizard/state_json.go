package wizard

import (
	"encoding/json"

	"github.com/mkail/foliogen/internal/portfolio"
)

// stateJSON is the serialized form of State used by the draft store.
// It mirrors every field, including the unexported lists, so an
// interrupted session round-trips losslessly.
type stateJSON struct {
	Step       int               `json:"step"`
	FullName   string            `json:"full_name"`
	Email      string            `json:"email"`
	Title      string            `json:"title"`
	Bio        string            `json:"bio"`
	ImageURL   string            `json:"image_url"`
	Experience string            `json:"experience"`
	Education  string            `json:"education"`
	Location   string            `json:"location"`
	Phone      string            `json:"phone"`
	Socials    portfolio.Socials `json:"socials"`
	Domain     string            `json:"domain"`
	Theme      string            `json:"theme"`

	Skills       []string                `json:"skills"`
	Certificates []portfolio.Certificate `json:"certificates"`
	Work         []portfolio.WorkEntry   `json:"work"`
	Projects     []portfolio.Project     `json:"projects"`
}

// MarshalJSON implements json.Marshaler.
func (s *State) MarshalJSON() ([]byte, error) {
	return json.Marshal(stateJSON{
		Step:         s.currentStep,
		FullName:     s.FullName,
		Email:        s.Email,
		Title:        s.Title,
		Bio:          s.Bio,
		ImageURL:     s.ImageURL,
		Experience:   s.Experience,
		Education:    s.Education,
		Location:     s.Location,
		Phone:        s.Phone,
		Socials:      s.Socials,
		Domain:       s.Domain,
		Theme:        s.Theme,
		Skills:       s.skills,
		Certificates: s.certificates,
		Work:         s.work,
		Projects:     s.projects,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The restored step is
// clamped into [1, TotalSteps] and the project surface keeps its
// minimum of one sub-form, so a hand-edited or stale draft cannot
// break the controller's invariants.
func (s *State) UnmarshalJSON(data []byte) error {
	var v stateJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	if v.Step < 1 {
		v.Step = 1
	}
	if v.Step > TotalSteps {
		v.Step = TotalSteps
	}
	if len(v.Projects) == 0 {
		v.Projects = []portfolio.Project{{}}
	}

	s.currentStep = v.Step
	s.FullName = v.FullName
	s.Email = v.Email
	s.Title = v.Title
	s.Bio = v.Bio
	s.ImageURL = v.ImageURL
	s.Experience = v.Experience
	s.Education = v.Education
	s.Location = v.Location
	s.Phone = v.Phone
	s.Socials = v.Socials
	s.Domain = v.Domain
	s.Theme = v.Theme
	s.skills = v.Skills
	s.certificates = v.Certificates
	s.work = v.Work
	s.projects = v.Projects
	return nil
}
