package main

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/contact"
	"github.com/Zachkp/folio/internal/logging"
	"github.com/Zachkp/folio/internal/markup"
	"github.com/Zachkp/folio/internal/portfolio"
	"github.com/Zachkp/folio/internal/theme"
	"github.com/Zachkp/folio/internal/toast"
	"github.com/Zachkp/folio/internal/tracker"
)

//go:embed templates/*.html static/*
var assets embed.FS

const contactTimeout = 20 * time.Second

// site is everything the HTTP handlers share.
type site struct {
	profile *portfolio.Profile
	bio     template.HTML
	about   []template.HTML
	chain   *contact.Chain
	prefs   theme.Store
	salt    string
}

func newSite(p *portfolio.Profile, chain *contact.Chain, prefs theme.Store, salt string) (*site, error) {
	bio, err := markup.HTML(p.Bio)
	if err != nil {
		return nil, err
	}
	s := &site{profile: p, bio: bio, chain: chain, prefs: prefs, salt: salt}
	for _, para := range p.About {
		html, err := markup.HTML(para)
		if err != nil {
			return nil, err
		}
		s.about = append(s.about, html)
	}
	return s, nil
}

type navItem struct {
	ID     string
	Title  string
	Active bool
}

type toastView struct {
	Message   string
	Kind      toast.Kind
	Icon      string
	MailtoURL string
	Duration  int64
}

type pageData struct {
	Profile  *portfolio.Profile
	Bio      template.HTML
	About    []template.HTML
	Theme    theme.Theme
	Nav      []navItem
	Sections []string
	Year     int
	Toast    *toastView
	Form     contact.Form

	// Tracker settings handed to the in-browser tracker.
	Threshold      float64
	Anchor         float64
	Breakpoint     float64
	NarrowOffset   float64
	ToastDuration  int64
	ScrollTopAfter int
}

func newToastView(out contact.Outcome) *toastView {
	return &toastView{
		Message:   out.Message,
		Kind:      out.Kind.Normalize(),
		Icon:      out.Kind.Icon(),
		MailtoURL: out.MailtoURL,
		Duration:  toast.DefaultDuration.Milliseconds(),
	}
}

func (s *site) page(t theme.Theme) pageData {
	sections := make([]tracker.Section, len(s.profile.Sections))
	for i, id := range s.profile.Sections {
		sections[i] = tracker.Section{ID: id}
	}
	// Nothing is laid out yet on the server, so this is the initial state
	// the browser starts from.
	nav := tracker.New(sections)
	state := nav.State()

	items := make([]navItem, len(s.profile.Sections))
	for i, id := range s.profile.Sections {
		items[i] = navItem{ID: id, Title: portfolio.Title(id), Active: id == state.Active}
	}

	return pageData{
		Profile:        s.profile,
		Bio:            s.bio,
		About:          s.about,
		Theme:          t,
		Nav:            items,
		Sections:       s.profile.Sections,
		Year:           time.Now().Year(),
		Threshold:      nav.Threshold(),
		Anchor:         tracker.AnchorFraction,
		Breakpoint:     tracker.DefaultLayout.Breakpoint,
		NarrowOffset:   tracker.DefaultLayout.NarrowOffset,
		ToastDuration:  toast.DefaultDuration.Milliseconds(),
		ScrollTopAfter: 500,
	}
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"heading": portfolio.Heading,
		// tel: links are not on html/template's URL allow list.
		"telURL": func(p *portfolio.Profile) template.URL {
			return template.URL(p.TelURL())
		},
	}
}

// newRouter wires the routes onto engine.
func newRouter(r *gin.Engine, s *site) (*gin.Engine, error) {
	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, err
	}
	r.StaticFS("/static", http.FS(static))

	r.Use(s.visitorMiddleware())

	// Home page route
	r.GET("/", func(c *gin.Context) {
		pref := s.preference(c)
		c.Header("Accept-CH", "Sec-CH-Prefers-Color-Scheme")
		c.HTML(http.StatusOK, "index.html", s.page(pref.Current()))
	})

	// Theme toggle. HTMX gets the new theme name and swaps the class in
	// place; without JavaScript the form post redirects back.
	r.POST("/theme", func(c *gin.Context) {
		pref := s.preference(c)
		t, err := pref.Toggle(c.Request.Context())
		if err != nil {
			logging.Warn("Failed to persist theme", zap.Error(err))
		}
		s.rememberInCookie(c, t)
		if c.GetHeader("HX-Request") == "true" {
			c.String(http.StatusOK, string(t))
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	})

	// Contact form submission. HTMX gets the toast fragment, plain form
	// posts get the whole page back with the toast in it.
	r.POST("/contact", func(c *gin.Context) {
		var form contact.Form
		if err := c.ShouldBind(&form); err != nil {
			logging.Debug("Failed to bind contact form", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), contactTimeout)
		defer cancel()
		out := s.chain.Submit(ctx, form)
		view := newToastView(out)

		if c.GetHeader("HX-Request") == "true" {
			c.HTML(http.StatusOK, "toast.html", view)
			return
		}

		data := s.page(s.preference(c).Current())
		data.Toast = view
		if !out.Reset {
			data.Form = form
		}
		status := http.StatusOK
		if !out.Delivered() {
			status = http.StatusUnprocessableEntity
		}
		c.HTML(status, "index.html", data)
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r, nil
}
