package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"strings"
	"testing"

	"github.com/Zachkp/folio/internal/toast"
)

const owner = "owner@example.com"

var validForm = Form{Name: "Ada", Email: "ada@example.com", Message: "Hello there"}

// fakeStep records calls and returns a canned result.
type fakeStep struct {
	name  string
	out   Outcome
	err   error
	calls int
}

func (f *fakeStep) Name() string { return f.name }

func (f *fakeStep) Deliver(context.Context, Message) (Outcome, error) {
	f.calls++
	return f.out, f.err
}

func TestSubmit_ValidationBlocksDelivery(t *testing.T) {
	tests := []struct {
		name string
		form Form
		want string
	}{
		{"empty field", Form{Name: "Ada", Email: "ada@example.com"}, MsgMissingFields},
		{"malformed email", Form{Name: "Ada", Email: "ada@", Message: "hi"}, MsgInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := &fakeStep{name: "api"}
			out := NewChain(owner, step).Submit(context.Background(), tt.form)

			if step.calls != 0 {
				t.Errorf("step called %d times, want 0", step.calls)
			}
			if out.Message != tt.want || out.Kind != toast.Error {
				t.Errorf("Outcome = %+v, want error %q", out, tt.want)
			}
			if out.Delivered() || out.Reset {
				t.Error("invalid submission reported as delivered")
			}
		})
	}
}

func TestSubmit_MalformedEmailMakesNoNetworkCall(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	api := &EmailJS{ServiceID: "s", TemplateID: "t", PublicKey: "k", Endpoint: srv.URL, Client: srv.Client()}
	out := NewChain(owner, api).Submit(context.Background(), Form{Name: "Ada", Email: "not-an-email", Message: "hi"})

	if hits != 0 {
		t.Errorf("server hit %d times", hits)
	}
	if out.Message != MsgInvalidEmail {
		t.Errorf("Message = %q", out.Message)
	}
}

func TestSubmit_FallsThroughInOrder(t *testing.T) {
	api := &fakeStep{name: "emailjs", err: errors.New("503")}
	mail := &fakeStep{name: "smtp", err: ErrUnavailable}
	mailto := &fakeStep{name: "mailto", out: Outcome{Message: MsgMailtoOpened}}
	clip := &fakeStep{name: "clipboard"}

	out := NewChain(owner, api, mail, mailto, clip).Submit(context.Background(), validForm)

	if out.Step != "mailto" || out.Message != MsgMailtoOpened {
		t.Errorf("Outcome = %+v, want mailto", out)
	}
	if out.Kind != toast.Success || !out.Reset {
		t.Errorf("Kind = %q, Reset = %v", out.Kind, out.Reset)
	}
	for _, s := range []*fakeStep{api, mail, mailto} {
		if s.calls != 1 {
			t.Errorf("%s called %d times, want 1", s.name, s.calls)
		}
	}
	if clip.calls != 0 {
		t.Errorf("clipboard called after success")
	}
}

func TestSubmit_AllFail(t *testing.T) {
	t.Run("clipboard failed", func(t *testing.T) {
		clip := &Clipboard{Write: func(string) error { return errors.New("no display") }}
		out := NewChain(owner, &EmailJS{}, &SMTP{}, &Mailto{}, clip).Submit(context.Background(), validForm)

		want := "Unable to open email client or copy to clipboard. Please contact: " + owner
		if out.Message != want || out.Kind != toast.Error {
			t.Errorf("Outcome = %+v, want %q", out, want)
		}
	})

	t.Run("no clipboard", func(t *testing.T) {
		out := NewChain(owner, &EmailJS{}, &Clipboard{}).Submit(context.Background(), validForm)

		want := "Unable to open email client. Please send your message to " + owner
		if out.Message != want || out.Kind != toast.Error {
			t.Errorf("Outcome = %+v, want %q", out, want)
		}
	})

	t.Run("clipboard unsupported", func(t *testing.T) {
		clip := &Clipboard{
			Write:     func(string) error { t.Fatal("Write called"); return nil },
			Available: func() bool { return false },
		}
		out := NewChain(owner, clip).Submit(context.Background(), validForm)
		if !strings.HasPrefix(out.Message, "Unable to open email client. Please send") {
			t.Errorf("Message = %q", out.Message)
		}
	})
}

func TestClipboardStep(t *testing.T) {
	var copied string
	clip := &Clipboard{Write: func(s string) error { copied = s; return nil }}

	out := NewChain(owner, &Mailto{Open: func(string) error { return errors.New("no opener") }}, clip).
		Submit(context.Background(), validForm)

	if out.Step != "clipboard" || out.Kind != toast.Warning || out.Message != MsgClipboardCopy {
		t.Errorf("Outcome = %+v", out)
	}
	if !strings.HasPrefix(copied, owner+"\n\nSubject: Portfolio Contact from Ada") {
		t.Errorf("copied = %q", copied)
	}
}

func TestMailtoStep(t *testing.T) {
	var opened string
	out := NewChain(owner, &Mailto{Open: func(u string) error { opened = u; return nil }}).
		Submit(context.Background(), validForm)

	if out.Step != "mailto" || out.MailtoURL != "" {
		t.Errorf("Outcome = %+v", out)
	}
	if !strings.HasPrefix(opened, "mailto:"+owner+"?subject=") {
		t.Errorf("opened = %q", opened)
	}
}

func TestHandoffStep(t *testing.T) {
	out := NewChain(owner, Handoff{}).Submit(context.Background(), validForm)
	if out.Step != "mailto" || !strings.HasPrefix(out.MailtoURL, "mailto:"+owner) {
		t.Errorf("Outcome = %+v", out)
	}
}

func TestEmailJS(t *testing.T) {
	var got emailJSRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("request = %s %s", r.Method, r.Header.Get("Content-Type"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	api := &EmailJS{ServiceID: "svc", TemplateID: "tpl", PublicKey: "pub", Endpoint: srv.URL, Client: srv.Client()}
	out := NewChain(owner, api, &fakeStep{name: "never"}).Submit(context.Background(), validForm)

	if out.Step != "emailjs" || out.Message != MsgEmailJSSent {
		t.Fatalf("Outcome = %+v", out)
	}
	if got.ServiceID != "svc" || got.TemplateID != "tpl" || got.UserID != "pub" {
		t.Errorf("ids = %+v", got)
	}
	want := map[string]string{
		"from_name":  "Ada",
		"from_email": "ada@example.com",
		"message":    "Hello there",
		"subject":    "Portfolio Contact from Ada",
	}
	for k, v := range want {
		if got.TemplateParams[k] != v {
			t.Errorf("template_params[%s] = %q, want %q", k, got.TemplateParams[k], v)
		}
	}
}

func TestEmailJS_ErrorFallsThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "The Public Key is invalid", http.StatusBadRequest)
	}))
	defer srv.Close()

	api := &EmailJS{ServiceID: "svc", TemplateID: "tpl", PublicKey: "bad", Endpoint: srv.URL, Client: srv.Client()}
	_, err := api.Deliver(context.Background(), Compose(owner, validForm))
	if err == nil || !strings.Contains(err.Error(), "400") {
		t.Errorf("Deliver() error = %v", err)
	}

	next := &fakeStep{name: "smtp", out: Outcome{Message: MsgSMTPSent}}
	out := NewChain(owner, api, next).Submit(context.Background(), validForm)
	if out.Step != "smtp" {
		t.Errorf("Outcome = %+v, want smtp", out)
	}
}

func TestSMTP(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg string

	s := &SMTP{Host: "smtp.example.com", Port: "587", User: "site@example.com", Pass: "pw"}
	s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, string(msg)
		return nil
	}

	out := NewChain(owner, s).Submit(context.Background(), validForm)
	if out.Step != "smtp" || out.Message != MsgSMTPSent {
		t.Fatalf("Outcome = %+v", out)
	}
	if gotAddr != "smtp.example.com:587" || gotFrom != "site@example.com" {
		t.Errorf("addr = %q, from = %q", gotAddr, gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != owner {
		t.Errorf("to = %v", gotTo)
	}
	for _, want := range []string{"Subject: Portfolio Contact from Ada\r\n", "Reply-To: ada@example.com\r\n", "Message:\nHello there"} {
		if !strings.Contains(gotMsg, want) {
			t.Errorf("message missing %q:\n%s", want, gotMsg)
		}
	}
}

func TestSMTP_NameCannotAddHeaders(t *testing.T) {
	var gotMsg string
	s := &SMTP{Host: "smtp.example.com", Port: "587", User: "site@example.com", Pass: "pw"}
	s.send = func(_ string, _ smtp.Auth, _ string, _ []string, msg []byte) error {
		gotMsg = string(msg)
		return nil
	}

	f := Form{Name: "Eve\r\nX-Injected: yes", Email: "eve@example.com", Message: "hi"}
	if out := NewChain(owner, s).Submit(context.Background(), f); out.Step != "smtp" {
		t.Fatalf("Outcome = %+v", out)
	}

	header, _, _ := strings.Cut(gotMsg, "\r\n\r\n")
	lines := strings.Split(header, "\r\n")
	want := []string{
		"To: " + owner,
		"Subject: Portfolio Contact from Eve X-Injected: yes",
		"From: site@example.com",
		"Reply-To: eve@example.com",
	}
	if len(lines) != len(want) {
		t.Fatalf("header lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("header line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestSMTP_Unconfigured(t *testing.T) {
	_, err := (&SMTP{Host: "smtp.example.com"}).Deliver(context.Background(), Compose(owner, validForm))
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Deliver() error = %v, want ErrUnavailable", err)
	}
}

func TestCopyDraft(t *testing.T) {
	tests := []struct {
		name  string
		write func(string) error
		want  string
		kind  toast.Kind
	}{
		{"copied", func(string) error { return nil }, MsgDraftCopied, toast.Success},
		{"write fails", func(string) error { return errors.New("denied") }, MsgDraftCopyFailed, toast.Error},
		{"no clipboard", nil, MsgDraftUnavailable, toast.Error},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// copy works without a valid form
			out := CopyDraft(owner, Form{Message: "draft"}, tt.write)
			if out.Message != tt.want || out.Kind != tt.kind {
				t.Errorf("CopyDraft() = %+v", out)
			}
		})
	}
}
