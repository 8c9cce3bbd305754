package contact

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Zachkp/folio/internal/portfolio"
)

var (
	ErrMissingFields = errors.New("missing required field")
	ErrInvalidEmail  = errors.New("invalid email address")
)

// Form is what the visitor typed.
type Form struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

// Validate checks required fields first, then the email address.
func (f Form) Validate() error {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" || strings.TrimSpace(f.Message) == "" {
		return ErrMissingFields
	}
	if !portfolio.ValidEmail(strings.TrimSpace(f.Email)) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, f.Email)
	}
	return nil
}

// Message is a validated form addressed to the site owner.
type Message struct {
	To      string
	Form    Form
	Subject string
	Body    string
}

// Compose builds the subject and body sent by every delivery step.
func Compose(to string, f Form) Message {
	f.Name = singleLine(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	return Message{
		To:      to,
		Form:    f,
		Subject: subject(f.Name),
		Body:    fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", f.Name, f.Email, f.Message),
	}
}

// singleLine collapses every run of whitespace, line breaks included, into
// one space. The name ends up in mail headers.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func subject(name string) string {
	return "Portfolio Contact from " + singleLine(name)
}

// MailtoURL opens a draft of m in the user's mail client.
func (m Message) MailtoURL() string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", m.To, escape(m.Subject), escape(m.Body))
}

// escape percent-encodes s for a mailto query, with spaces as %20 rather
// than "+". It escapes a few more characters than encodeURIComponent
// (!'()*), which decodes to the same text.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ClipboardText is what the clipboard step copies.
func (m Message) ClipboardText() string {
	return fmt.Sprintf("%s\n\nSubject: %s\n\n%s", m.To, m.Subject, m.Body)
}

// DraftText is what the standalone copy action copies. It does not need a
// valid form.
func DraftText(to string, f Form) string {
	return fmt.Sprintf("To: %s\nSubject: %s\n\n%s", to, subject(f.Name), f.Message)
}
