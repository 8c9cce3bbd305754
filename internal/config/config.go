// Package config reads runtime settings from the environment. A .env file in
// the working directory is loaded first.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting both front ends read.
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	DBPath      string `env:"FOLIO_DB_PATH"`
	ContentPath string `env:"FOLIO_CONTENT"`
	LogLevel    string `env:"FOLIO_LOG_LEVEL"`
	LogFile     string `env:"FOLIO_LOG_FILE"`

	// Salt for hashing visitor ids. Random per process when unset, which
	// orphans stored preferences on restart.
	VisitorSalt string `env:"FOLIO_VISITOR_SALT"`

	SMTP    SMTP
	EmailJS EmailJS
}

// SMTP configures direct mail delivery of contact messages.
type SMTP struct {
	Host string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port string `env:"SMTP_PORT" envDefault:"587"`
	User string `env:"SMTP_USER"`
	Pass string `env:"SMTP_PASS"`
	To   string `env:"TO_EMAIL"`
}

// Configured reports whether credentials are present.
func (s SMTP) Configured() bool {
	return s.User != "" && s.Pass != ""
}

// EmailJS configures the hosted email API.
type EmailJS struct {
	ServiceID   string `env:"EMAILJS_SERVICE_ID"`
	TemplateID  string `env:"EMAILJS_TEMPLATE_ID"`
	PublicKey   string `env:"EMAILJS_PUBLIC_KEY"`
	AccessToken string `env:"EMAILJS_ACCESS_TOKEN"`
	Endpoint    string `env:"EMAILJS_ENDPOINT" envDefault:"https://api.emailjs.com/api/v1.0/email/send"`
}

// Configured reports whether all three identifiers are set.
func (e EmailJS) Configured() bool {
	return e.ServiceID != "" && e.TemplateID != "" && e.PublicKey != ""
}

// Load reads .env (if present) and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return Parse()
}

// Parse reads the environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// DataPath returns DBPath, defaulting to folio.db under the user config
// directory.
func (c *Config) DataPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	dir = filepath.Join(dir, "folio")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return filepath.Join(dir, "folio.db"), nil
}
