package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/folio/internal/contact"
)

const (
	fieldName = iota
	fieldEmail
	fieldMessage
	fieldCount
)

// contactForm is the name/email/message editor.
type contactForm struct {
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	focus   int
	sending bool
}

func newContactForm() contactForm {
	name := textinput.New()
	name.Placeholder = "Your Name *"
	name.CharLimit = 120

	email := textinput.New()
	email.Placeholder = "Your Email *"
	email.CharLimit = 254

	msg := textarea.New()
	msg.Placeholder = "Your Message *"
	msg.ShowLineNumbers = false
	msg.SetHeight(5)

	return contactForm{name: name, email: email, message: msg}
}

func (f contactForm) value() contact.Form {
	return contact.Form{
		Name:    f.name.Value(),
		Email:   f.email.Value(),
		Message: f.message.Value(),
	}
}

func (f *contactForm) reset() {
	f.name.Reset()
	f.email.Reset()
	f.message.Reset()
}

func (f *contactForm) setWidth(w int) {
	w = max(20, w-4)
	f.name.Width = w
	f.email.Width = w
	f.message.SetWidth(w)
}

// focusField moves focus to field i, wrapping around.
func (f *contactForm) focusField(i int) tea.Cmd {
	f.focus = (i%fieldCount + fieldCount) % fieldCount
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()

	switch f.focus {
	case fieldName:
		return f.name.Focus()
	case fieldEmail:
		return f.email.Focus()
	default:
		return f.message.Focus()
	}
}

func (f *contactForm) blur() {
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
}

// update sends msg to the focused field.
func (f contactForm) update(msg tea.Msg) (contactForm, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldEmail:
		f.email, cmd = f.email.Update(msg)
	default:
		f.message, cmd = f.message.Update(msg)
	}
	return f, cmd
}

func (f contactForm) view(s styles, to string) string {
	box := func(i int, v string) string {
		if i == f.focus {
			return s.FieldOn.Render(v)
		}
		return s.Field.Render(v)
	}

	status := s.Subtle.Render("To: " + to)
	if f.sending {
		status = s.Accent.Render("Sending…")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.Heading.Render("Send a message"),
		box(fieldName, f.name.View()),
		box(fieldEmail, f.email.View()),
		box(fieldMessage, f.message.View()),
		status,
	)
}
