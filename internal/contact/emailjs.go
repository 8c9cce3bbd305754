package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// EmailJS sends through the EmailJS REST API.
type EmailJS struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	// AccessToken is the account's private key, needed when the account
	// requires it for non-browser calls.
	AccessToken string
	Endpoint    string

	Client *http.Client
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

func (e *EmailJS) Name() string { return "emailjs" }

func (e *EmailJS) configured() bool {
	return e.ServiceID != "" && e.TemplateID != "" && e.PublicKey != "" && e.Endpoint != ""
}

func (e *EmailJS) Deliver(ctx context.Context, m Message) (Outcome, error) {
	if !e.configured() {
		return Outcome{}, ErrUnavailable
	}

	payload, err := json.Marshal(emailJSRequest{
		ServiceID:   e.ServiceID,
		TemplateID:  e.TemplateID,
		UserID:      e.PublicKey,
		AccessToken: e.AccessToken,
		TemplateParams: map[string]string{
			"from_name":  m.Form.Name,
			"from_email": m.Form.Email,
			"message":    m.Form.Message,
			"subject":    m.Subject,
		},
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to encode emailjs request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to build emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := e.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return Outcome{}, fmt.Errorf("emailjs request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Outcome{}, fmt.Errorf("emailjs returned %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return Outcome{Message: MsgEmailJSSent}, nil
}
