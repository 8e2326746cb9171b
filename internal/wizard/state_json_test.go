package wizard

import (
	"encoding/json"
	"testing"

	"github.com/mkail/foliogen/internal/portfolio"
)

func TestStateJSONRoundTrip(t *testing.T) {
	s := completeState()
	s.AddSkill("Go")
	if err := s.AddCertificate("CKA", "CNCF", ""); err != nil {
		t.Fatal(err)
	}
	if err := s.AddWorkEntry("Engineer", "Acme", "billing"); err != nil {
		t.Fatal(err)
	}
	s.SelectTheme("blue")
	if err := s.Advance(); err != nil {
		t.Fatal(err)
	}
	if err := s.Advance(); err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	restored := New()
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if restored.Step() != s.Step() {
		t.Errorf("step = %d, want %d", restored.Step(), s.Step())
	}
	if restored.FullName != "Jane Doe" || restored.Theme != "blue" {
		t.Errorf("fields lost: %+v", restored)
	}
	if len(restored.Skills()) != 1 || restored.Skills()[0] != "Go" {
		t.Errorf("skills = %v", restored.Skills())
	}
	if len(restored.Certificates()) != 1 || len(restored.WorkEntries()) != 1 {
		t.Error("lists lost in round trip")
	}
	if restored.ProjectCount() != 1 {
		t.Errorf("projects = %d, want 1", restored.ProjectCount())
	}
}

func TestStateJSONClampsInvalidDrafts(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantStep int
	}{
		{"step too low", `{"step": 0}`, 1},
		{"step too high", `{"step": 99}`, TotalSteps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			if err := json.Unmarshal([]byte(tt.raw), s); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if s.Step() != tt.wantStep {
				t.Errorf("step = %d, want %d", s.Step(), tt.wantStep)
			}
			if s.ProjectCount() < 1 {
				t.Error("restored draft lost the minimum project sub-form")
			}
		})
	}
}

func TestStateJSONKeepsProjectValues(t *testing.T) {
	s := New()
	s.SetProject(0, portfolio.Project{Name: "X", Description: "Y", GithubLink: "https://github.com/x"})

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	restored := New()
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatal(err)
	}
	p := restored.Projects()[0]
	if p.Name != "X" || p.GithubLink != "https://github.com/x" {
		t.Errorf("project = %+v", p)
	}
}
