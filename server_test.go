package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/contact"
	"github.com/Zachkp/folio/internal/portfolio"
	"github.com/Zachkp/folio/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Open(filepath.Join(t.TempDir(), "folio.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	p := portfolio.Default()
	chain := contact.NewChain(p.Email, contact.Handoff{})
	s, err := newSite(p, chain, st, "test-salt")
	if err != nil {
		t.Fatalf("newSite: %v", err)
	}
	r, err := newRouter(gin.New(), s)
	if err != nil {
		t.Fatalf("newRouter: %v", err)
	}
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func visitorCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == visitorCookie {
			return c
		}
	}
	t.Fatal("no visitor cookie set")
	return nil
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHomePage(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		`class="light"`,
		`<section id="home"`,
		`<section id="contact"`,
		`data-nav="home" class="nav-link active"`,
		`data-threshold="0.5"`,
		`data-anchor="0.35"`,
		`<strong>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, `data-nav="about" class="nav-link active"`) {
		t.Error("only the first section should start active")
	}
	visitorCookieFrom(t, w)
}

func TestStaticAssets(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/static/site.css", "/static/tracker.js"} {
		w := serve(r, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("GET %s status = %d", path, w.Code)
		}
	}
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)
	w := serve(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Errorf("healthz = %d %q", w.Code, w.Body.String())
	}
}

func TestThemeTogglePersistsPerVisitor(t *testing.T) {
	r := newTestRouter(t)
	cookie := visitorCookieFrom(t, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)))

	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	req.AddCookie(cookie)
	w := serve(r, req)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	if body := serve(r, req).Body.String(); !strings.Contains(body, `class="dark"`) {
		t.Error("theme not remembered for the visitor")
	}

	// A different visitor is unaffected.
	if body := serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String(); !strings.Contains(body, `class="light"`) {
		t.Error("new visitor should get the default theme")
	}
}

func TestThemeToggleHTMX(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	req.Header.Set("HX-Request", "true")

	w := serve(r, req)

	if w.Code != http.StatusOK || w.Body.String() != "dark" {
		t.Errorf("toggle = %d %q, want 200 dark", w.Code, w.Body.String())
	}
}

func TestDoNotTrack(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("DNT", "1")
	req.Header.Set("Sec-CH-Prefers-Color-Scheme", `"dark"`)

	w := serve(r, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == visitorCookie {
			t.Error("DNT request should not get a visitor cookie")
		}
	}
	if !strings.Contains(w.Body.String(), `class="dark"`) {
		t.Error("DNT visitor should get the browser color scheme")
	}
}

func TestThemeToggleDoNotTrack(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	req.Header.Set("DNT", "1")
	w := serve(r, req)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}

	var themeC *http.Cookie
	for _, c := range w.Result().Cookies() {
		switch c.Name {
		case visitorCookie:
			t.Error("DNT toggle should not set a visitor cookie")
		case themeCookie:
			themeC = c
		}
	}
	if themeC == nil || themeC.Value != "dark" {
		t.Fatalf("theme cookie = %+v, want dark", themeC)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("DNT", "1")
	req.AddCookie(themeC)
	if body := serve(r, req).Body.String(); !strings.Contains(body, `class="dark"`) {
		t.Error("DNT visitor should see the toggled theme")
	}

	// Toggling again flips back from the cookie value.
	req = httptest.NewRequest(http.MethodPost, "/theme", nil)
	req.Header.Set("DNT", "1")
	req.Header.Set("HX-Request", "true")
	req.AddCookie(themeC)
	if w := serve(r, req); w.Body.String() != "light" {
		t.Errorf("second toggle = %q, want light", w.Body.String())
	}
}

func TestThemeToggleIsWiredForHTMX(t *testing.T) {
	r := newTestRouter(t)
	body := serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()
	if !strings.Contains(body, `hx-post="/theme"`) {
		t.Error("theme toggle form should post through HTMX")
	}
}

func TestContactValidation(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{"missing message", url.Values{"name": {"Ada"}, "email": {"ada@example.com"}}, contact.MsgMissingFields},
		{"bad email", url.Values{"name": {"Ada"}, "email": {"ada@"}, "message": {"hi"}}, contact.MsgInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := postForm("/contact", tt.form)
			req.Header.Set("HX-Request", "true")
			w := serve(r, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			body := w.Body.String()
			if !strings.Contains(body, "toast-error") || !strings.Contains(body, tt.want) {
				t.Errorf("body = %s", body)
			}
			if strings.Contains(body, "mailto-handoff") {
				t.Error("invalid form must not produce a mail link")
			}
		})
	}
}

func TestContactHandoff(t *testing.T) {
	r := newTestRouter(t)
	req := postForm("/contact", url.Values{
		"name":    {"Ada Lovelace"},
		"email":   {"ada@example.com"},
		"message": {"Hello & welcome"},
	})
	req.Header.Set("HX-Request", "true")

	body := serve(r, req).Body.String()

	if !strings.Contains(body, "toast-success") {
		t.Errorf("expected success toast, got %s", body)
	}
	if !strings.Contains(body, `class="mailto-handoff" href="mailto:`) {
		t.Errorf("expected mailto hand-off link, got %s", body)
	}
	if !strings.Contains(body, "Portfolio%20Contact%20from%20Ada%20Lovelace") {
		t.Errorf("subject not encoded in link: %s", body)
	}
}

func TestContactWithoutJavaScript(t *testing.T) {
	r := newTestRouter(t)
	form := url.Values{"name": {"Ada"}, "email": {"bad"}, "message": {"hi"}}

	w := serve(r, postForm("/contact", form))

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, contact.MsgInvalidEmail) {
		t.Error("page should carry the validation toast")
	}
	if !strings.Contains(body, `value="Ada"`) {
		t.Error("form values should be kept after a failed submit")
	}
}

func TestHashVisitor(t *testing.T) {
	a := hashVisitor("id", "salt")
	if len(a) != 16 {
		t.Errorf("len = %d, want 16", len(a))
	}
	if a != hashVisitor("id", "salt") {
		t.Error("hash not stable")
	}
	if a == hashVisitor("id", "other") {
		t.Error("salt not applied")
	}
}
