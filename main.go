// Folio serves a one-page portfolio, either as a website or in the terminal.
//
// Usage:
//
//	folio serve [flags]   # HTTP server
//	folio tui [flags]     # terminal rendition
//
// Settings come from the environment (and a .env file); see internal/config.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/gin-gonic/gin"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/contact"
	"github.com/Zachkp/folio/internal/logging"
	"github.com/Zachkp/folio/internal/portfolio"
	"github.com/Zachkp/folio/internal/store"
	"github.com/Zachkp/folio/internal/theme"
	"github.com/Zachkp/folio/internal/tui"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "folio",
	Short:         "One-page portfolio for the browser and the terminal",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	portFlag     string
	contentFlag  string
	dbFlag       string
	logLevelFlag string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&contentFlag, "content", "", "YAML content file (default: built-in profile)")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "SQLite file for theme preferences")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "debug, info, warn or error")

	serveCmd.Flags().StringVarP(&portFlag, "port", "p", "", "port to listen on (default $PORT or 8080)")

	rootCmd.AddCommand(serveCmd, tuiCmd, versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "folio", version)
	},
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if portFlag != "" {
		cfg.Port = portFlag
	}
	if contentFlag != "" {
		cfg.ContentPath = contentFlag
	}
	if dbFlag != "" {
		cfg.DBPath = dbFlag
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}
	return cfg, nil
}

func openStore(cfg *config.Config) (*store.Store, error) {
	path, err := cfg.DataPath()
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		level := cfg.LogLevel
		if level == "" {
			level = "info"
		}
		if err := logging.Initialize(level); err != nil {
			return err
		}
		defer logging.Sync()

		profile, err := portfolio.LoadOrDefault(cfg.ContentPath)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var prefs theme.Store
		st, err := openStore(cfg)
		if err != nil {
			logging.Warn("Theme preferences will not be remembered", zap.Error(err))
		} else {
			defer st.Close()
			purgePreferences(ctx, st)
			prefs = st
		}

		salt := cfg.VisitorSalt
		if salt == "" {
			if salt, err = generateSalt(); err != nil {
				return err
			}
			logging.Warn("FOLIO_VISITOR_SALT not set; stored themes reset on restart")
		}

		chain := contact.NewChain(contactAddress(cfg, profile),
			emailJSStep(cfg),
			smtpStep(cfg),
			contact.Handoff{},
		)
		logging.Info("Contact delivery",
			zap.Bool("emailjs", cfg.EmailJS.Configured()),
			zap.Bool("smtp", cfg.SMTP.Configured()),
		)

		s, err := newSite(profile, chain, prefs, salt)
		if err != nil {
			return err
		}

		gin.SetMode(cfg.GinMode)
		r, err := newRouter(gin.Default(), s)
		if err != nil {
			return err
		}

		srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
		errc := make(chan error, 1)
		go func() {
			logging.Info("Serving portfolio", zap.String("addr", srv.Addr))
			errc <- srv.ListenAndServe()
		}()

		select {
		case err := <-errc:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		logging.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the portfolio in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("tui needs an interactive terminal")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := logging.InitializeToFile(cfg.LogLevel, cfg.LogFile); err != nil {
			return err
		}
		defer logging.Sync()

		profile, err := portfolio.LoadOrDefault(cfg.ContentPath)
		if err != nil {
			return err
		}

		def := theme.Light
		if lipgloss.HasDarkBackground() {
			def = theme.Dark
		}
		var prefs theme.Store
		st, err := openStore(cfg)
		if err != nil {
			logging.Warn("Theme preference will not be remembered", zap.Error(err))
		} else {
			defer st.Close()
			prefs = st
		}
		pref := theme.Init(cmd.Context(), prefs, "terminal", def)

		// The opener must not write over the screen.
		browser.Stdout = io.Discard
		browser.Stderr = io.Discard

		chain := contact.NewChain(contactAddress(cfg, profile),
			emailJSStep(cfg),
			smtpStep(cfg),
			&contact.Mailto{Open: browser.OpenURL},
			&contact.Clipboard{
				Write:     clipboard.WriteAll,
				Available: func() bool { return !clipboard.Unsupported },
			},
		)

		return tui.Run(tui.Options{
			Profile:   profile,
			Theme:     pref,
			Chain:     chain,
			Clipboard: clipboardWriter(),
		})
	},
}

func clipboardWriter() func(string) error {
	if clipboard.Unsupported {
		return nil
	}
	return clipboard.WriteAll
}

// contactAddress is where contact messages go: TO_EMAIL, else the
// profile's own address.
func contactAddress(cfg *config.Config, p *portfolio.Profile) string {
	if cfg.SMTP.To != "" {
		return cfg.SMTP.To
	}
	return p.Email
}

func emailJSStep(cfg *config.Config) *contact.EmailJS {
	return &contact.EmailJS{
		ServiceID:   cfg.EmailJS.ServiceID,
		TemplateID:  cfg.EmailJS.TemplateID,
		PublicKey:   cfg.EmailJS.PublicKey,
		AccessToken: cfg.EmailJS.AccessToken,
		Endpoint:    cfg.EmailJS.Endpoint,
	}
}

func smtpStep(cfg *config.Config) *contact.SMTP {
	return &contact.SMTP{
		Host: cfg.SMTP.Host,
		Port: cfg.SMTP.Port,
		User: cfg.SMTP.User,
		Pass: cfg.SMTP.Pass,
		To:   cfg.SMTP.To,
	}
}
