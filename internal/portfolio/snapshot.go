// Package portfolio defines the collected portfolio data model: the
// immutable snapshot consumed by the document generator and the YAML
// profile format used to store and reload it.
package portfolio

import (
	"fmt"
	"strings"
)

// Certificate is one certification entry. Image, when present, is a
// data URI embedded directly into the generated document.
type Certificate struct {
	Name   string `yaml:"name"`
	Issuer string `yaml:"issuer"`
	Image  string `yaml:"image,omitempty"`
}

// WorkEntry is one work-experience entry. Description may be empty.
type WorkEntry struct {
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	Description string `yaml:"description,omitempty"`
}

// Project is one project card. Only Name and Description are required.
type Project struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	ImageURL    string `yaml:"image_url,omitempty"`
	LiveLink    string `yaml:"live_link,omitempty"`
	GithubLink  string `yaml:"github_link,omitempty"`
}

// Socials holds the optional social/contact links beyond email and phone.
type Socials struct {
	LinkedIn string `yaml:"linkedin,omitempty"`
	GitHub   string `yaml:"github,omitempty"`
	Website  string `yaml:"website,omitempty"`
	Handle   string `yaml:"handle,omitempty"`
}

// Snapshot is the flattened, read-once form state handed to the
// generator. It is constructed by the wizard controller at submission
// time and never mutated afterwards.
type Snapshot struct {
	FullName   string `yaml:"full_name"`
	Email      string `yaml:"email"`
	Title      string `yaml:"title"`
	Bio        string `yaml:"bio,omitempty"`
	ImageURL   string `yaml:"image_url,omitempty"`
	Domain     string `yaml:"domain"`
	Experience string `yaml:"experience,omitempty"`
	Education  string `yaml:"education,omitempty"`
	Location   string `yaml:"location,omitempty"`
	Phone      string `yaml:"phone,omitempty"`

	Socials Socials `yaml:"socials,omitempty"`

	Skills         []string      `yaml:"skills,omitempty"`
	Certificates   []Certificate `yaml:"certificates,omitempty"`
	WorkExperience []WorkEntry   `yaml:"work_experience,omitempty"`
	Projects       []Project     `yaml:"projects"`

	Theme string `yaml:"theme,omitempty"`
}

// Validate checks the snapshot for the fields the generator cannot do
// without. List entries are assumed to have been validated on insert.
func (s *Snapshot) Validate() error {
	if strings.TrimSpace(s.FullName) == "" {
		return fmt.Errorf("full name is required")
	}
	if strings.TrimSpace(s.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(s.Projects) == 0 {
		return fmt.Errorf("at least one project is required")
	}
	for i, p := range s.Projects {
		if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Description) == "" {
			return fmt.Errorf("project %d: name and description are required", i+1)
		}
	}
	return nil
}

// FileName derives the download file name from the person's name:
// whitespace runs become underscores and "_Portfolio.html" is appended.
func (s *Snapshot) FileName() string {
	name := strings.Join(strings.Fields(s.FullName), "_")
	if name == "" {
		name = "My"
	}
	return name + "_Portfolio.html"
}
