package contact

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/logging"
	"github.com/Zachkp/folio/internal/toast"
)

var (
	// ErrUnavailable means the step is not configured here; the chain
	// moves on without logging a failure.
	ErrUnavailable = errors.New("delivery step unavailable")

	// ErrClipboard wraps clipboard write failures.
	ErrClipboard = errors.New("clipboard write failed")
)

// User-facing toast text.
const (
	MsgMissingFields = "Please fill all required fields."
	MsgInvalidEmail  = "Please enter a valid email address."
	MsgEmailJSSent   = "Message sent successfully via EmailJS. Thank you!"
	MsgSMTPSent      = "Thank you for your message! I'll get back to you soon."
	MsgMailtoOpened  = "Email client opened. You may need to press Send."
	MsgClipboardCopy = "Could not open mail client — message copied to clipboard. Paste into your email composer."

	msgNoClipboardPrefix = "Unable to open email client. Please send your message to "
	msgClipboardPrefix   = "Unable to open email client or copy to clipboard. Please contact: "

	MsgDraftCopied      = "Message copied to clipboard. Paste into your email client."
	MsgDraftCopyFailed  = "Unable to copy to clipboard. Please copy manually."
	MsgDraftUnavailable = "Clipboard not available. Please copy manually."
)

// Outcome is the result of a submission.
type Outcome struct {
	// Step names the step that succeeded, empty when none did.
	Step    string
	Message string
	Kind    toast.Kind
	// Reset is true when the form should be cleared.
	Reset bool
	// MailtoURL is set when the mail client still has to be opened by the
	// caller (web hand-off).
	MailtoURL string
}

// Delivered reports whether some step accepted the message.
func (o Outcome) Delivered() bool {
	return o.Step != ""
}

// Step is one way of getting a message to the site owner.
type Step interface {
	Name() string
	Deliver(ctx context.Context, m Message) (Outcome, error)
}

// Chain runs steps in order until one succeeds.
type Chain struct {
	To    string
	Steps []Step
}

// NewChain returns a chain delivering to the given address.
func NewChain(to string, steps ...Step) *Chain {
	return &Chain{To: to, Steps: steps}
}

// Submit validates f and, if valid, tries each step once.
func (c *Chain) Submit(ctx context.Context, f Form) Outcome {
	if err := f.Validate(); err != nil {
		return validationOutcome(err)
	}

	m := Compose(c.To, f)
	var lastErr error
	for _, step := range c.Steps {
		out, err := step.Deliver(ctx, m)
		if errors.Is(err, ErrUnavailable) {
			logging.Debug("Contact step skipped", zap.String("step", step.Name()))
			continue
		}
		if err != nil {
			logging.Warn("Contact step failed",
				zap.String("step", step.Name()),
				zap.Error(err),
			)
			lastErr = err
			continue
		}

		out.Step = step.Name()
		out.Reset = true
		if out.Kind == "" {
			out.Kind = toast.Success
		}
		logging.Info("Contact message handed off",
			zap.String("step", out.Step),
			zap.String("from", m.Form.Email),
		)
		return out
	}

	if errors.Is(lastErr, ErrClipboard) {
		return Outcome{Message: msgClipboardPrefix + c.To, Kind: toast.Error}
	}
	return Outcome{Message: msgNoClipboardPrefix + c.To, Kind: toast.Error}
}

func validationOutcome(err error) Outcome {
	msg := MsgMissingFields
	if errors.Is(err, ErrInvalidEmail) {
		msg = MsgInvalidEmail
	}
	return Outcome{Message: msg, Kind: toast.Error}
}

// CopyDraft copies the draft text with write. A nil write means no
// clipboard is available.
func CopyDraft(to string, f Form, write func(string) error) Outcome {
	if write == nil {
		return Outcome{Message: MsgDraftUnavailable, Kind: toast.Error}
	}
	if err := write(DraftText(to, f)); err != nil {
		logging.Warn("Copy draft failed", zap.Error(err))
		return Outcome{Message: MsgDraftCopyFailed, Kind: toast.Error}
	}
	return Outcome{Step: "clipboard", Message: MsgDraftCopied, Kind: toast.Success}
}
