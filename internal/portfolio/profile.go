// Package portfolio holds the content shown on the page.
package portfolio

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Section ids in the default layout.
const (
	SectionHome      = "home"
	SectionAbout     = "about"
	SectionSkills    = "skills"
	SectionProjects  = "projects"
	SectionEducation = "education"
	SectionContact   = "contact"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

type SkillGroup struct {
	Category string   `yaml:"category"`
	List     []string `yaml:"list"`
}

type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tech        []string `yaml:"tech"`
	Link        string   `yaml:"link"`
}

type Education struct {
	Type        string `yaml:"type"`
	Institution string `yaml:"institution"`
	Details     string `yaml:"details"`
	Year        string `yaml:"year"`
}

// Profile is everything the page renders.
type Profile struct {
	FullName    string `yaml:"full_name"`
	DisplayName string `yaml:"display_name"`
	Role        string `yaml:"role"`
	Bio         string `yaml:"bio"`

	Email string `yaml:"email"`
	Phone string `yaml:"phone"`

	GitHub     string `yaml:"github"`
	LinkedIn   string `yaml:"linkedin"`
	ResumeLink string `yaml:"resume_link"`

	// About paragraphs may use inline markdown.
	About     []string     `yaml:"about"`
	Sections  []string     `yaml:"sections"`
	Skills    []SkillGroup `yaml:"skills"`
	Projects  []Project    `yaml:"projects"`
	Education []Education  `yaml:"education"`
}

// Load reads a profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse content file %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content file %s: %w", path, err)
	}
	return &p, nil
}

// LoadOrDefault loads path, or returns Default when path is empty.
func LoadOrDefault(path string) (*Profile, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks the fields the page cannot do without.
func (p *Profile) Validate() error {
	var errs []error
	if strings.TrimSpace(p.FullName) == "" {
		errs = append(errs, errors.New("full_name is required"))
	}
	if !ValidEmail(p.Email) {
		errs = append(errs, fmt.Errorf("email %q is not a valid address", p.Email))
	}
	if len(p.Sections) == 0 {
		errs = append(errs, errors.New("sections must not be empty"))
	} else if p.Sections[0] != SectionHome {
		errs = append(errs, fmt.Errorf("first section must be %q, got %q", SectionHome, p.Sections[0]))
	}

	seen := make(map[string]bool, len(p.Sections))
	for _, id := range p.Sections {
		if seen[id] {
			errs = append(errs, fmt.Errorf("duplicate section %q", id))
		}
		seen[id] = true
	}
	return errors.Join(errs...)
}

// FirstName is the first word of the full name.
func (p *Profile) FirstName() string {
	fields := strings.Fields(p.FullName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// LastName is everything after the first word.
func (p *Profile) LastName() string {
	fields := strings.Fields(p.FullName)
	if len(fields) < 2 {
		return ""
	}
	return strings.Join(fields[1:], " ")
}

// Name returns DisplayName, falling back to FullName.
func (p *Profile) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.FullName
}

func (p *Profile) GitHubURL() string {
	if p.GitHub == "" {
		return ""
	}
	return "https://github.com/" + p.GitHub
}

func (p *Profile) MailtoURL() string {
	return "mailto:" + p.Email
}

// TelURL strips whitespace from the phone number.
func (p *Profile) TelURL() string {
	return "tel:" + strings.Join(strings.Fields(p.Phone), "")
}

// Title returns the navigation label for a section id.
func Title(id string) string {
	switch id {
	case SectionAbout:
		return "About"
	case SectionSkills:
		return "Skills"
	case SectionProjects:
		return "Projects"
	case SectionEducation:
		return "Education"
	case SectionContact:
		return "Contact"
	case SectionHome:
		return "Home"
	}
	if id == "" {
		return ""
	}
	return strings.ToUpper(id[:1]) + id[1:]
}

// Heading returns the heading shown at the top of a section.
func Heading(id string) string {
	switch id {
	case SectionAbout:
		return "About Me"
	case SectionSkills:
		return "Skills & Tech Stack"
	case SectionProjects:
		return "Featured Projects"
	case SectionContact:
		return "Get In Touch"
	}
	return Title(id)
}
