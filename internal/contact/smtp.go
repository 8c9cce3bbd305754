package contact

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTP delivers straight to a mail server with PLAIN auth.
type SMTP struct {
	Host string
	Port string
	User string
	Pass string
	// To defaults to the chain's address.
	To string

	// send is swapped out in tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func (s *SMTP) Name() string { return "smtp" }

func (s *SMTP) Deliver(_ context.Context, m Message) (Outcome, error) {
	if s.User == "" || s.Pass == "" {
		return Outcome{}, ErrUnavailable
	}

	to := s.To
	if to == "" {
		to = m.To
	}

	body := fmt.Sprintf(`
New contact form submission from your portfolio:

%s

---
Sent from your portfolio contact form
`, m.Body)

	msg := []byte("To: " + to + "\r\n" +
		"Subject: " + m.Subject + "\r\n" +
		"From: " + s.User + "\r\n" +
		"Reply-To: " + m.Form.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	send := s.send
	if send == nil {
		send = smtp.SendMail
	}
	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)
	if err := send(s.Host+":"+s.Port, auth, s.User, []string{to}, msg); err != nil {
		return Outcome{}, fmt.Errorf("smtp send failed: %w", err)
	}
	return Outcome{Message: MsgSMTPSent}, nil
}
