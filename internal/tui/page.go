package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/folio/internal/markup"
	"github.com/Zachkp/folio/internal/portfolio"
	"github.com/Zachkp/folio/internal/tracker"
)

// lineRegion is a section's extent in page lines. It stays unrendered until
// the first layout.
type lineRegion struct {
	rect     tracker.Rect
	rendered bool
}

func (r *lineRegion) Bounds() (tracker.Rect, bool) {
	return r.rect, r.rendered
}

func (r *lineRegion) set(rect tracker.Rect) {
	r.rect = rect
	r.rendered = true
}

// renderPage lays the sections out one after another. Each section is at
// least minHeight lines tall so any of them can be scrolled to the top.
func renderPage(p *portfolio.Profile, s styles, width, minHeight int) (string, []tracker.Rect) {
	var b strings.Builder
	rects := make([]tracker.Rect, len(p.Sections))
	line := 0
	for i, id := range p.Sections {
		block := lipgloss.NewStyle().PaddingLeft(2).Render(renderSection(p, id, s, width))
		h := lipgloss.Height(block)
		if h < minHeight {
			block += strings.Repeat("\n", minHeight-h)
			h = minHeight
		}
		rects[i] = tracker.Rect{Top: float64(line), Height: float64(h)}
		line += h

		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(block)
	}
	return b.String(), rects
}

func renderSection(p *portfolio.Profile, id string, s styles, width int) string {
	wrap := lipgloss.NewStyle().Width(width)
	heading := s.Heading.Render(portfolio.Heading(id))

	var body []string
	switch id {
	case portfolio.SectionHome:
		return renderHome(p, s, wrap)

	case portfolio.SectionAbout:
		for _, para := range p.About {
			body = append(body, wrap.Render(markup.Terminal(para, s.Markup)), "")
		}

	case portfolio.SectionSkills:
		for _, g := range p.Skills {
			body = append(body,
				s.Item.Render(g.Category),
				wrap.Render(s.Text.Render(strings.Join(g.List, " · "))),
				"",
			)
		}

	case portfolio.SectionProjects:
		for _, pr := range p.Projects {
			body = append(body,
				s.Item.Render(pr.Title),
				wrap.Render(s.Text.Render(pr.Description)),
				s.Tag.Render(strings.Join(pr.Tech, "  ")),
			)
			if pr.Link != "" {
				body = append(body, s.Label.Render("→ ")+s.Subtle.Render(pr.Link))
			}
			body = append(body, "")
		}

	case portfolio.SectionEducation:
		for _, e := range p.Education {
			body = append(body,
				s.Item.Render(e.Type)+"  "+s.Label.Render(e.Year),
				s.Text.Render(e.Institution),
				wrap.Render(s.Subtle.Render(e.Details)),
				"",
			)
		}

	case portfolio.SectionContact:
		body = append(body, contactLines(p, s)...)
		body = append(body, "", s.Subtle.Render("Press c to write a message."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{heading}, body...)...)
}

func renderHome(p *portfolio.Profile, s styles, wrap lipgloss.Style) string {
	lines := []string{
		"",
		s.Name.Render(p.FullName),
		s.Accent.Render(p.Role),
		"",
		wrap.Render(markup.Terminal(p.Bio, s.Markup)),
		"",
	}
	if p.ResumeLink != "" {
		lines = append(lines, s.Label.Render("Resume  ")+s.Subtle.Render(p.ResumeLink))
	}
	lines = append(lines, s.Label.Render("Contact ")+s.Subtle.Render("press c"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func contactLines(p *portfolio.Profile, s styles) []string {
	row := func(label, value string) string {
		return s.Label.Render(fmt.Sprintf("%-9s", label)) + s.Text.Render(value)
	}
	lines := []string{row("Email", p.Email)}
	if p.Phone != "" {
		lines = append(lines, row("Phone", p.Phone))
	}
	if p.LinkedIn != "" {
		lines = append(lines, row("LinkedIn", p.LinkedIn))
	}
	if u := p.GitHubURL(); u != "" {
		lines = append(lines, row("GitHub", u))
	}
	return lines
}
