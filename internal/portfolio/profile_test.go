package portfolio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	p := Default()
	if err := p.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if p.Sections[0] != SectionHome {
		t.Errorf("first section = %q, want %q", p.Sections[0], SectionHome)
	}
	if len(p.Sections) != 6 {
		t.Errorf("len(Sections) = %d, want 6", len(p.Sections))
	}
}

func TestDefault_ReturnsCopy(t *testing.T) {
	a := Default()
	a.Sections[0] = "changed"
	if b := Default(); b.Sections[0] != SectionHome {
		t.Error("Default() shares state between calls")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Profile)
		wantErr string
	}{
		{"valid", func(p *Profile) {}, ""},
		{"missing name", func(p *Profile) { p.FullName = "  " }, "full_name is required"},
		{"bad email", func(p *Profile) { p.Email = "nobody@home" }, "not a valid address"},
		{"no sections", func(p *Profile) { p.Sections = nil }, "sections must not be empty"},
		{"home not first", func(p *Profile) { p.Sections = []string{"about", "home"} }, "first section must be"},
		{"duplicate section", func(p *Profile) { p.Sections = []string{"home", "about", "about"} }, "duplicate section"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(p)
			err := p.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a@b.co", true},
		{"first.last@example.org", true},
		{"", false},
		{"plain", false},
		{"no@dot", false},
		{"two@@signs.com", false},
		{"spa ce@example.com", false},
	}
	for _, tt := range tests {
		if got := ValidEmail(tt.in); got != tt.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	content := `full_name: Ada Lovelace
role: Analyst
email: ada@example.com
phone: "+44 20 7946 0000"
github: ada
sections: [home, about, contact]
about:
  - "Wrote the **first** program."
projects:
  - title: Engine notes
    tech: [math]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.FirstName() != "Ada" || p.LastName() != "Lovelace" {
		t.Errorf("name split = %q / %q", p.FirstName(), p.LastName())
	}
	if p.GitHubURL() != "https://github.com/ada" {
		t.Errorf("GitHubURL() = %q", p.GitHubURL())
	}
	if p.TelURL() != "tel:+442079460000" {
		t.Errorf("TelURL() = %q", p.TelURL())
	}
	if len(p.Projects) != 1 || p.Projects[0].Tech[0] != "math" {
		t.Errorf("Projects = %+v", p.Projects)
	}
	if p.Name() != "Ada Lovelace" {
		t.Errorf("Name() = %q, want full name fallback", p.Name())
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) error = nil")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("full_name: [unclosed"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("Load(malformed) error = nil")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("full_name: X\nemail: nope\nsections: [home]\n"), 0o644)
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "invalid content file") {
		t.Errorf("Load(invalid) error = %v", err)
	}
}

func TestLoadOrDefault_EmptyPath(t *testing.T) {
	p, err := LoadOrDefault("")
	if err != nil {
		t.Fatal(err)
	}
	if p.FullName != Default().FullName {
		t.Errorf("LoadOrDefault(\"\") = %q", p.FullName)
	}
}

func TestTitleAndHeading(t *testing.T) {
	if Title("skills") != "Skills" || Heading("skills") != "Skills & Tech Stack" {
		t.Error("skills labels wrong")
	}
	if Title("blog") != "Blog" || Heading("blog") != "Blog" {
		t.Errorf("fallback title = %q", Title("blog"))
	}
	if Heading(SectionEducation) != "Education" {
		t.Errorf("Heading(education) = %q", Heading(SectionEducation))
	}
}
