package contact

import (
	"context"
	"fmt"

	"github.com/Zachkp/folio/internal/toast"
)

// Mailto opens the draft with Open, typically an OS URL opener.
type Mailto struct {
	Open func(url string) error
}

func (s *Mailto) Name() string { return "mailto" }

func (s *Mailto) Deliver(_ context.Context, m Message) (Outcome, error) {
	if s.Open == nil {
		return Outcome{}, ErrUnavailable
	}
	if err := s.Open(m.MailtoURL()); err != nil {
		return Outcome{}, fmt.Errorf("failed to open mail client: %w", err)
	}
	return Outcome{Message: MsgMailtoOpened}, nil
}

// Handoff leaves opening the mail client to the caller, which receives the
// link in Outcome.MailtoURL. The web front end uses it.
type Handoff struct{}

func (Handoff) Name() string { return "mailto" }

func (Handoff) Deliver(_ context.Context, m Message) (Outcome, error) {
	return Outcome{Message: MsgMailtoOpened, MailtoURL: m.MailtoURL()}, nil
}

// Clipboard copies the message with Write. Available, when set, reports
// whether a clipboard exists at all.
type Clipboard struct {
	Write     func(text string) error
	Available func() bool
}

func (s *Clipboard) Name() string { return "clipboard" }

func (s *Clipboard) Deliver(_ context.Context, m Message) (Outcome, error) {
	if s.Write == nil || (s.Available != nil && !s.Available()) {
		return Outcome{}, ErrUnavailable
	}
	if err := s.Write(m.ClipboardText()); err != nil {
		return Outcome{}, fmt.Errorf("%w: %v", ErrClipboard, err)
	}
	return Outcome{Message: MsgClipboardCopy, Kind: toast.Warning}, nil
}
