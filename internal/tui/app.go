package tui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/contact"
	"github.com/Zachkp/folio/internal/logging"
	"github.com/Zachkp/folio/internal/portfolio"
	"github.com/Zachkp/folio/internal/theme"
	"github.com/Zachkp/folio/internal/toast"
	"github.com/Zachkp/folio/internal/tracker"
)

const (
	fps            = 60
	submitTimeout  = 20 * time.Second
	storeTimeout   = 2 * time.Second
	backToTopAfter = 10 // lines scrolled before the back-to-top hint shows

	// NarrowOffset keeps one line of the previous section above a jump
	// target in the header layout.
	NarrowOffset = 1
)

// Options configure the terminal front end.
type Options struct {
	Profile *portfolio.Profile
	Theme   *theme.Preference
	Chain   *contact.Chain
	// Clipboard writes the draft for ctrl+y. Nil means no clipboard.
	Clipboard func(string) error
}

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeContact
)

type (
	frameMsg struct{}
	themeMsg struct {
		theme theme.Theme
		err   error
	}
	submitMsg   struct{ out contact.Outcome }
	toastEndMsg struct{ id uint64 }
)

// Model is the whole terminal page.
type Model struct {
	profile  *portfolio.Profile
	pref     *theme.Preference
	chain    *contact.Chain
	clip     func(string) error
	styles   styles
	tracker  *tracker.Tracker
	regions  []*lineRegion
	notifier *toast.Notifier

	vp     viewport.Model
	width  int
	height int
	mode   mode

	// scroll animation
	spring    harmonica.Spring
	animating bool
	pos, vel  float64
	target    float64

	search   textinput.Model
	form     contactForm
	help     help.Model
	keys     keyMap
	formKeys formKeyMap
}

// New builds the model. Nothing is rendered until the first window size
// message arrives.
func New(opts Options) Model {
	p := opts.Profile
	if p == nil {
		p = portfolio.Default()
	}
	pref := opts.Theme
	if pref == nil {
		pref = theme.Init(context.Background(), nil, "", theme.Light)
	}
	chain := opts.Chain
	if chain == nil {
		chain = contact.NewChain(p.Email)
	}

	regions := make([]*lineRegion, len(p.Sections))
	sections := make([]tracker.Section, len(p.Sections))
	for i, id := range p.Sections {
		regions[i] = &lineRegion{}
		sections[i] = tracker.Section{ID: id, Region: regions[i]}
	}
	t := tracker.New(sections, tracker.WithLayout(tracker.Layout{
		Breakpoint:   NarrowWidth,
		NarrowOffset: NarrowOffset,
	}))
	t.Subscribe(func(id string) {
		logging.Debug("Active section changed", zap.String("section", id))
	})

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "section"

	return Model{
		profile:  p,
		pref:     pref,
		chain:    chain,
		clip:     opts.Clipboard,
		styles:   newStyles(pref.Current()),
		tracker:  t,
		regions:  regions,
		notifier: toast.New(),
		vp:       viewport.New(0, 0),
		spring:   harmonica.NewSpring(harmonica.FPS(fps), 7.0, 1.0),
		search:   search,
		form:     newContactForm(),
		help:     help.New(),
		keys:     newKeyMap(),
		formKeys: newFormKeyMap(),
	}
}

// Run starts the program and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.MouseMsg:
		if m.mode != modeBrowse {
			return m, nil
		}
		m.animating = false
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		m.sync()
		return m, cmd

	case frameMsg:
		return m.stepAnimation()

	case themeMsg:
		if msg.err != nil {
			logging.Warn("Failed to save theme preference", zap.Error(msg.err))
		}
		m.styles = newStyles(msg.theme)
		m.render()
		return m, nil

	case submitMsg:
		m.form.sending = false
		if msg.out.Reset {
			m.form.reset()
			m.closeForm()
		}
		return m, m.notify(msg.out.Message, msg.out.Kind)

	case toastEndMsg:
		m.notifier.Dismiss(msg.id)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeContact:
			return m.updateForm(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.mode == modeContact {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.vp.Height)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.vp.Height)
	case key.Matches(msg, m.keys.Next):
		return m.jumpRelative(1)
	case key.Matches(msg, m.keys.Prev):
		return m.jumpRelative(-1)
	case key.Matches(msg, m.keys.Jump):
		i := int(msg.String()[0] - '1')
		if i < len(m.profile.Sections) {
			return m.jumpTo(m.profile.Sections[i])
		}
	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.search.Reset()
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Theme):
		return m, m.toggleTheme()
	case key.Matches(msg, m.keys.Contact):
		m.mode = modeContact
		return m, m.form.focusField(fieldName)
	case key.Matches(msg, m.keys.Top):
		return m.animateTo(0)
	case key.Matches(msg, m.keys.Menu):
		if m.narrow() {
			m.tracker.ToggleMenu()
			m.layout()
		}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.search.Blur()
		return m, nil
	case tea.KeyEnter:
		m.mode = modeBrowse
		m.search.Blur()
		id, ok := matchSection(m.search.Value(), m.profile.Sections)
		if !ok {
			return m, m.notify(fmt.Sprintf("No section matches %q", m.search.Value()), toast.Warning)
		}
		return m.jumpTo(id)
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Close):
		m.closeForm()
		return m, nil
	case key.Matches(msg, m.formKeys.Next):
		return m, m.form.focusField(m.form.focus + 1)
	case key.Matches(msg, m.formKeys.Prev):
		return m, m.form.focusField(m.form.focus - 1)
	case key.Matches(msg, m.formKeys.Submit):
		if m.form.sending {
			return m, nil
		}
		m.form.sending = true
		return m, m.submit()
	case key.Matches(msg, m.formKeys.Copy):
		out := contact.CopyDraft(m.chain.To, m.form.value(), m.clip)
		return m, m.notify(out.Message, out.Kind)
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m *Model) closeForm() {
	m.mode = modeBrowse
	m.form.blur()
}

func (m Model) submit() tea.Cmd {
	chain, f := m.chain, m.form.value()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		return submitMsg{out: chain.Submit(ctx, f)}
	}
}

func (m Model) toggleTheme() tea.Cmd {
	pref := m.pref
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		t, err := pref.Toggle(ctx)
		return themeMsg{theme: t, err: err}
	}
}

// notify shows a toast and schedules its dismissal.
func (m Model) notify(message string, kind toast.Kind) tea.Cmd {
	t := m.notifier.Show(message, kind, toast.DefaultDuration)
	return tea.Tick(toast.DefaultDuration, func(time.Time) tea.Msg {
		return toastEndMsg{id: t.ID}
	})
}

// Scrolling

func (m Model) narrow() bool {
	return m.width < NarrowWidth
}

func (m Model) trackerViewport() tracker.Viewport {
	return tracker.Viewport{
		Width:   float64(m.width),
		Height:  float64(m.vp.Height),
		ScrollY: float64(m.vp.YOffset),
	}
}

func (m Model) maxOffset() int {
	return max(0, m.vp.TotalLineCount()-m.vp.Height)
}

// scrollTo moves the page and runs the tracker for the new position.
func (m *Model) scrollTo(y int) {
	m.vp.SetYOffset(min(max(0, y), m.maxOffset()))
	m.sync()
}

func (m *Model) scrollBy(n int) {
	m.animating = false
	m.scrollTo(m.vp.YOffset + n)
}

func (m *Model) sync() {
	m.tracker.Update(m.trackerViewport())
}

func (m Model) jumpRelative(delta int) (tea.Model, tea.Cmd) {
	ids := m.profile.Sections
	if len(ids) == 0 {
		return m, nil
	}
	i := 0
	active := m.tracker.Active()
	for j, id := range ids {
		if id == active {
			i = j
			break
		}
	}
	i = min(max(0, i+delta), len(ids)-1)
	return m.jumpTo(ids[i])
}

// jumpTo animates the page to section id.
func (m Model) jumpTo(id string) (tea.Model, tea.Cmd) {
	if m.tracker.State().MenuOpen {
		m.tracker.SetMenuOpen(false)
		m.layout()
	}
	top, ok := m.tracker.ScrollTo(id, m.trackerViewport())
	if !ok {
		return m, nil
	}
	return m.animateTo(int(top))
}

func (m Model) animateTo(y int) (tea.Model, tea.Cmd) {
	m.target = float64(min(max(0, y), m.maxOffset()))
	if m.animating {
		return m, nil
	}
	m.animating = true
	m.pos = float64(m.vp.YOffset)
	m.vel = 0
	return m, frame()
}

func (m Model) stepAnimation() (tea.Model, tea.Cmd) {
	if !m.animating {
		return m, nil
	}
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, m.target)
	if math.Abs(m.pos-m.target) < 0.5 && math.Abs(m.vel) < 0.5 {
		m.pos, m.vel = m.target, 0
		m.animating = false
	}
	m.scrollTo(int(math.Round(m.pos)))
	if m.animating {
		return m, frame()
	}
	return m, nil
}

func frame() tea.Cmd {
	return tea.Tick(time.Second/fps, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// Layout

func (m Model) mainWidth() int {
	if m.narrow() {
		return m.width
	}
	return max(0, m.width-SidebarWidth)
}

func (m Model) headerHeight() int {
	if !m.narrow() {
		return 0
	}
	if m.tracker.State().MenuOpen {
		return 1 + len(m.profile.Sections)
	}
	return 1
}

// layout resizes the viewport and form to the window and re-renders.
func (m *Model) layout() {
	m.vp.Width = m.mainWidth()
	m.vp.Height = max(1, m.height-m.headerHeight()-statusHeight)
	m.help.Width = m.mainWidth()
	m.form.setWidth(min(m.mainWidth(), MaxContentWidth))
	m.search.Width = max(10, m.mainWidth()-4)
	m.render()
}

// render rebuilds the page content and region bounds.
func (m *Model) render() {
	if m.width == 0 {
		return
	}
	width := max(20, min(m.mainWidth()-4, MaxContentWidth))
	content, rects := renderPage(m.profile, m.styles, width, m.vp.Height)
	for i, r := range rects {
		m.regions[i].set(r)
	}
	m.vp.SetContent(content)
	m.scrollTo(m.vp.YOffset)
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	main := m.vp.View()
	if m.mode == modeContact {
		main = lipgloss.NewStyle().
			Width(m.vp.Width).
			Height(m.vp.Height).
			Padding(1, 2).
			Render(m.form.view(m.styles, m.chain.To))
	}
	status := lipgloss.NewStyle().MaxWidth(m.mainWidth()).Render(m.statusLine())
	main = lipgloss.JoinVertical(lipgloss.Left, main, status)

	if m.narrow() {
		return lipgloss.JoinVertical(lipgloss.Left, m.header(), main)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), main)
}

func (m Model) statusLine() string {
	if t, ok := m.notifier.Current(); ok {
		return m.styles.toastStyle(t.Kind).Render(t.Kind.Icon() + " " + t.Message)
	}
	switch m.mode {
	case modeSearch:
		return m.search.View()
	case modeContact:
		return m.help.View(m.formKeys)
	}

	line := m.help.View(m.keys)
	if m.vp.YOffset > backToTopAfter {
		line = m.styles.Accent.Render("g ↑ top") + "  " + line
	}
	return line
}

func (m Model) navItems(numbered bool) []string {
	active := m.tracker.State().Active
	items := make([]string, len(m.profile.Sections))
	for i, id := range m.profile.Sections {
		label := portfolio.Title(id)
		if numbered {
			label = fmt.Sprintf("%d %s", i+1, label)
		}
		if id == active {
			items[i] = m.styles.NavActive.Render(label)
		} else {
			items[i] = m.styles.Nav.Render(label)
		}
	}
	return items
}

func (m Model) logo() string {
	return m.styles.Name.Render(m.profile.FirstName()) + " " + m.styles.Accent.Render(m.profile.LastName())
}

func (m Model) sidebar() string {
	s := m.styles
	current := m.pref.Current()

	lines := []string{m.logo(), ""}
	lines = append(lines, m.navItems(true)...)
	lines = append(lines,
		"",
		s.Subtle.Render(fmt.Sprintf("t %s %s mode", themeGlyph(current), current.Toggle())),
		"",
	)
	lines = append(lines, contactLines(m.profile, s)[:1]...)
	lines = append(lines, s.Subtle.Render(fmt.Sprintf("© %d %s", time.Now().Year(), m.profile.FirstName())))

	return s.Sidebar.Height(m.height).Render(strings.Join(lines, "\n"))
}

func (m Model) header() string {
	s := m.styles
	state := m.tracker.State()
	bar := m.logo() + "  " + s.Subtle.Render(portfolio.Title(state.Active)) +
		"  " + s.Subtle.Render(themeGlyph(m.pref.Current())+"  m ☰")
	if !state.MenuOpen {
		return bar
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{bar}, m.navItems(true)...)...)
}
