package portfolio

import (
	"path/filepath"
	"testing"
)

func validSnapshot() *Snapshot {
	return &Snapshot{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Title:    "Backend Engineer",
		Domain:   "Web Development",
		Projects: []Project{
			{Name: "CLI Toolkit", Description: "A toolkit for CLIs"},
		},
	}
}

func TestSnapshotValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Snapshot)
		wantErr bool
	}{
		{"valid", func(s *Snapshot) {}, false},
		{"missing name", func(s *Snapshot) { s.FullName = "  " }, true},
		{"missing email", func(s *Snapshot) { s.Email = "" }, true},
		{"missing title", func(s *Snapshot) { s.Title = "" }, true},
		{"no projects", func(s *Snapshot) { s.Projects = nil }, true},
		{"project missing description", func(s *Snapshot) {
			s.Projects = []Project{{Name: "X"}}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := validSnapshot()
			tt.mutate(snap)
			err := snap.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSnapshotFileName(t *testing.T) {
	tests := []struct {
		fullName string
		want     string
	}{
		{"Jane Doe", "Jane_Doe_Portfolio.html"},
		{"  Jane   van  Doe ", "Jane_van_Doe_Portfolio.html"},
		{"Prince", "Prince_Portfolio.html"},
		{"", "My_Portfolio.html"},
	}

	for _, tt := range tests {
		t.Run(tt.fullName, func(t *testing.T) {
			snap := &Snapshot{FullName: tt.fullName}
			if got := snap.FileName(); got != tt.want {
				t.Errorf("FileName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProfileRoundTrip(t *testing.T) {
	snap := validSnapshot()
	snap.Skills = []string{"Go", "SQL"}
	snap.Certificates = []Certificate{{Name: "CKA", Issuer: "CNCF"}}
	snap.WorkExperience = []WorkEntry{{Title: "Engineer", Company: "Acme", Description: "Built things"}}
	snap.Theme = "green"
	snap.Socials = Socials{GitHub: "https://github.com/janedoe"}

	path := filepath.Join(t.TempDir(), "profile.yml")
	if err := SaveProfile(snap, path); err != nil {
		t.Fatalf("SaveProfile() error: %v", err)
	}

	got, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile() error: %v", err)
	}

	if got.FullName != snap.FullName {
		t.Errorf("full name = %q, want %q", got.FullName, snap.FullName)
	}
	if len(got.Skills) != 2 || got.Skills[0] != "Go" {
		t.Errorf("skills = %v, want %v", got.Skills, snap.Skills)
	}
	if len(got.Certificates) != 1 || got.Certificates[0].Issuer != "CNCF" {
		t.Errorf("certificates = %v, want %v", got.Certificates, snap.Certificates)
	}
	if got.Theme != "green" {
		t.Errorf("theme = %q, want %q", got.Theme, "green")
	}
	if got.Socials.GitHub != snap.Socials.GitHub {
		t.Errorf("github = %q, want %q", got.Socials.GitHub, snap.Socials.GitHub)
	}
}

func TestLoadProfileRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yml")
	snap := &Snapshot{FullName: "Jane Doe"} // missing email, title, projects
	if err := SaveProfile(snap, path); err != nil {
		t.Fatalf("SaveProfile() error: %v", err)
	}
	if _, err := LoadProfile(path); err == nil {
		t.Error("LoadProfile() should reject an incomplete profile")
	}
}
