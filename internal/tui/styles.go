package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/folio/internal/markup"
	"github.com/Zachkp/folio/internal/theme"
	"github.com/Zachkp/folio/internal/toast"
)

// Layout constants, in terminal cells.
const (
	SidebarWidth    = 26
	NarrowWidth     = 100 // below this the sidebar collapses into a header menu
	MaxContentWidth = 88
	statusHeight    = 1
)

type palette struct {
	Text     lipgloss.Color
	Subtle   lipgloss.Color
	Accent   lipgloss.Color
	OnAccent lipgloss.Color
	Border   lipgloss.Color
}

var palettes = map[theme.Theme]palette{
	theme.Light: {
		Text:     lipgloss.Color("#111827"),
		Subtle:   lipgloss.Color("#6B7280"),
		Accent:   lipgloss.Color("#0D9488"),
		OnAccent: lipgloss.Color("#FFFFFF"),
		Border:   lipgloss.Color("#D1D5DB"),
	},
	theme.Dark: {
		Text:     lipgloss.Color("#F9FAFB"),
		Subtle:   lipgloss.Color("#9CA3AF"),
		Accent:   lipgloss.Color("#2DD4BF"),
		OnAccent: lipgloss.Color("#111827"),
		Border:   lipgloss.Color("#374151"),
	},
}

var toastColors = map[toast.Kind]lipgloss.Color{
	toast.Success: lipgloss.Color("#14B8A6"),
	toast.Error:   lipgloss.Color("#EF4444"),
	toast.Warning: lipgloss.Color("#EAB308"),
}

// styles is the full set of styles for one theme.
type styles struct {
	Text      lipgloss.Style
	Subtle    lipgloss.Style
	Accent    lipgloss.Style
	Name      lipgloss.Style
	Heading   lipgloss.Style
	Item      lipgloss.Style
	Label     lipgloss.Style
	Tag       lipgloss.Style
	Nav       lipgloss.Style
	NavActive lipgloss.Style
	Sidebar   lipgloss.Style
	Header    lipgloss.Style
	Field     lipgloss.Style
	FieldOn   lipgloss.Style
	Markup    markup.Styles

	palette palette
}

func newStyles(t theme.Theme) styles {
	p, ok := palettes[t]
	if !ok {
		p = palettes[theme.Light]
	}

	return styles{
		Text:   lipgloss.NewStyle().Foreground(p.Text),
		Subtle: lipgloss.NewStyle().Foreground(p.Subtle),
		Accent: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Name: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),
		Heading: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true).
			Border(lipgloss.ThickBorder(), false, false, true, false).
			BorderForeground(p.Accent).
			MarginBottom(1),
		Item:  lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Label: lipgloss.NewStyle().Foreground(p.Accent),
		Tag: lipgloss.NewStyle().
			Foreground(p.Subtle).
			Italic(true),
		Nav: lipgloss.NewStyle().
			Foreground(p.Subtle).
			PaddingLeft(1),
		NavActive: lipgloss.NewStyle().
			Foreground(p.OnAccent).
			Background(p.Accent).
			Bold(true).
			PaddingLeft(1),
		Sidebar: lipgloss.NewStyle().
			Width(SidebarWidth-1).
			Padding(1, 1).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(p.Border),
		Header: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),
		Field: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		FieldOn: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),
		Markup: markup.Styles{
			Strong:   lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
			Emphasis: lipgloss.NewStyle().Italic(true),
			Code:     lipgloss.NewStyle().Foreground(p.Accent),
		},
		palette: p,
	}
}

// toastStyle renders a notification box for kind.
func (s styles) toastStyle(kind toast.Kind) lipgloss.Style {
	fg := lipgloss.Color("#FFFFFF")
	if kind.Normalize() == toast.Warning {
		fg = lipgloss.Color("#111827")
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Background(toastColors[kind.Normalize()]).
		Bold(true).
		Padding(0, 1)
}

// themeGlyph maps Theme.Icon names onto terminal glyphs.
func themeGlyph(t theme.Theme) string {
	if t.Icon() == "sun" {
		return "☀"
	}
	return "☾"
}
