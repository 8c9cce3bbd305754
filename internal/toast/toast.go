// Package toast holds the single transient notification shown to the user.
package toast

import (
	"sync"
	"time"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Warning Kind = "warning"
)

// DefaultDuration is how long a toast stays up when no duration is given.
const DefaultDuration = 3 * time.Second

// Normalize maps unknown kinds to Warning.
func (k Kind) Normalize() Kind {
	switch k {
	case Success, Error, Warning:
		return k
	}
	return Warning
}

// Icon is a one-glyph marker for the kind.
func (k Kind) Icon() string {
	switch k.Normalize() {
	case Success:
		return "✓"
	case Error:
		return "✗"
	}
	return "!"
}

type Toast struct {
	ID      uint64
	Message string
	Kind    Kind
	Expires time.Time
}

// Notifier keeps at most one toast. Showing a new one replaces the old.
type Notifier struct {
	mu      sync.Mutex
	now     func() time.Time
	current *Toast
	nextID  uint64
}

func New() *Notifier {
	return &Notifier{now: time.Now}
}

// Show replaces the current toast. A non-positive duration means
// DefaultDuration.
func (n *Notifier) Show(message string, kind Kind, d time.Duration) Toast {
	if d <= 0 {
		d = DefaultDuration
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	t := Toast{
		ID:      n.nextID,
		Message: message,
		Kind:    kind.Normalize(),
		Expires: n.now().Add(d),
	}
	n.current = &t
	return t
}

// Current returns the visible toast, if any has not yet expired.
func (n *Notifier) Current() (Toast, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return Toast{}, false
	}
	if !n.now().Before(n.current.Expires) {
		n.current = nil
		return Toast{}, false
	}
	return *n.current, true
}

// Dismiss removes the toast with the given id. A stale id (an older toast
// already replaced) is ignored and false is returned.
func (n *Notifier) Dismiss(id uint64) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil || n.current.ID != id {
		return false
	}
	n.current = nil
	return true
}
