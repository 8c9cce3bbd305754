package tracker

import "sync"

const (
	// DefaultThreshold is the visible fraction a region must reach before
	// observation reports it.
	DefaultThreshold = 0.5

	// DefaultSection is active before any signal fires.
	DefaultSection = "home"
)

// Layout controls the scroll-to offset. Viewports narrower than Breakpoint
// get NarrowOffset subtracted so the target clears a fixed header.
type Layout struct {
	Breakpoint   float64
	NarrowOffset float64
}

// DefaultLayout matches the web page: 768px breakpoint, 90px header offset.
var DefaultLayout = Layout{Breakpoint: 768, NarrowOffset: 90}

// Offset returns the header offset for a viewport of the given width.
func (l Layout) Offset(width float64) float64 {
	if width >= l.Breakpoint {
		return 0
	}
	return l.NarrowOffset
}

// Section binds an identifier to its on-screen region. Region may be nil
// until the section is rendered.
type Section struct {
	ID     string
	Region Region
}

// Entry is one visibility crossing reported by observation.
type Entry struct {
	ID           string
	Ratio        float64
	Intersecting bool
}

// NavigationState is what the navigation view reads.
type NavigationState struct {
	Active   string
	MenuOpen bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithThreshold sets the observation threshold. Values outside (0, 1] are
// ignored.
func WithThreshold(threshold float64) Option {
	return func(t *Tracker) {
		if threshold > 0 && threshold <= 1 {
			t.threshold = threshold
		}
	}
}

// WithLayout sets the breakpoint and narrow offset used by ScrollTo.
func WithLayout(l Layout) Option {
	return func(t *Tracker) {
		t.layout = l
	}
}

// Tracker reconciles visibility observation and proximity polling into a
// single active section.
type Tracker struct {
	mu        sync.Mutex
	sections  []Section
	order     map[string]int
	threshold float64
	layout    Layout
	state     NavigationState

	// last reported crossing state per section, absent until first observed
	crossed map[string]bool

	listeners map[int]func(string)
	nextID    int
}

// New creates a Tracker over sections in document order. The first
// section is active initially, or DefaultSection when there are none.
func New(sections []Section, opts ...Option) *Tracker {
	t := &Tracker{
		sections:  append([]Section(nil), sections...),
		order:     make(map[string]int, len(sections)),
		threshold: DefaultThreshold,
		layout:    DefaultLayout,
		crossed:   make(map[string]bool),
		listeners: make(map[int]func(string)),
	}
	for i, s := range sections {
		if _, dup := t.order[s.ID]; !dup {
			t.order[s.ID] = i
		}
	}
	t.state.Active = DefaultSection
	if len(sections) > 0 {
		t.state.Active = sections[0].ID
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Active returns the active section identifier.
func (t *Tracker) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Active
}

// State returns a snapshot of the navigation state.
func (t *Tracker) State() NavigationState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// IDs returns the section identifiers in document order.
func (t *Tracker) IDs() []string {
	ids := make([]string, len(t.sections))
	for i, s := range t.sections {
		ids[i] = s.ID
	}
	return ids
}

// Threshold returns the observation threshold.
func (t *Tracker) Threshold() float64 {
	return t.threshold
}

// Subscribe registers fn to be called with the new identifier whenever the
// active section changes. The returned function removes the listener.
func (t *Tracker) Subscribe(fn func(id string)) (cancel func()) {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.listeners[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.listeners, id)
		t.mu.Unlock()
	}
}

// Observe computes visibility for every rendered region, reports the
// regions whose threshold crossing state changed (every region on its first
// observation) and applies them with Record.
func (t *Tracker) Observe(v Viewport) []Entry {
	t.mu.Lock()
	var entries []Entry
	for _, s := range t.sections {
		r, ok := bounds(s)
		if !ok {
			continue
		}
		ratio := VisibleFraction(r, v)
		in := ratio >= t.threshold
		if prev, seen := t.crossed[s.ID]; seen && prev == in {
			continue
		}
		t.crossed[s.ID] = in
		entries = append(entries, Entry{ID: s.ID, Ratio: ratio, Intersecting: in})
	}
	t.mu.Unlock()

	t.Record(entries)
	return entries
}

// Record applies a batch of observation entries, as delivered by an
// external observer. Of the intersecting entries, the one with the largest
// ratio wins; ties go to the earlier section. Unknown identifiers are
// ignored.
func (t *Tracker) Record(entries []Entry) {
	best := -1
	for i, e := range entries {
		if !e.Intersecting {
			continue
		}
		if _, known := t.order[e.ID]; !known {
			continue
		}
		if best < 0 || t.better(e, entries[best]) {
			best = i
		}
	}
	if best >= 0 {
		t.setActive(entries[best].ID)
	}
}

func (t *Tracker) better(a, b Entry) bool {
	if a.Ratio != b.Ratio {
		return a.Ratio > b.Ratio
	}
	return t.order[a.ID] < t.order[b.ID]
}

// Poll makes the region whose top is nearest the viewport anchor active and
// returns it. It returns "" and leaves the state alone when no region is
// rendered. Equal distances go to the earlier section.
func (t *Tracker) Poll(v Viewport) string {
	nearest := ""
	best := 0.0
	for _, s := range t.sections {
		r, ok := bounds(s)
		if !ok {
			continue
		}
		d := anchorDistance(r, v)
		if nearest == "" || d < best {
			nearest, best = s.ID, d
		}
	}
	if nearest != "" {
		t.setActive(nearest)
	}
	return nearest
}

// Update runs observation then polling for one scroll or resize event and
// returns the resulting active section. Polling runs last and wins.
func (t *Tracker) Update(v Viewport) string {
	t.Observe(v)
	t.Poll(v)
	return t.Active()
}

// ScrollTo returns the scroll position that brings the section's top edge
// to the top of the viewport, less the layout offset for narrow viewports.
// It closes the menu. ok is false for unknown or unrendered sections.
func (t *Tracker) ScrollTo(id string, v Viewport) (top float64, ok bool) {
	idx, known := t.order[id]
	if !known {
		return 0, false
	}
	r, rendered := bounds(t.sections[idx])
	if !rendered {
		return 0, false
	}

	t.mu.Lock()
	t.state.MenuOpen = false
	t.mu.Unlock()

	top = r.Top - t.layout.Offset(v.Width)
	if top < 0 {
		top = 0
	}
	return top, true
}

// SetMenuOpen opens or closes the narrow-layout menu.
func (t *Tracker) SetMenuOpen(open bool) {
	t.mu.Lock()
	t.state.MenuOpen = open
	t.mu.Unlock()
}

// ToggleMenu flips the menu and returns the new value.
func (t *Tracker) ToggleMenu() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.MenuOpen = !t.state.MenuOpen
	return t.state.MenuOpen
}

func (t *Tracker) setActive(id string) {
	t.mu.Lock()
	if t.state.Active == id {
		t.mu.Unlock()
		return
	}
	t.state.Active = id
	fns := make([]func(string), 0, len(t.listeners))
	for _, fn := range t.listeners {
		fns = append(fns, fn)
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn(id)
	}
}

func bounds(s Section) (Rect, bool) {
	if s.Region == nil {
		return Rect{}, false
	}
	return s.Region.Bounds()
}
