package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DotenvFiles are read, when present, before secrets are applied. Variables
// already set in the environment win.
var DotenvFiles = []string{".env.local", ".env"}

// loadDotenv loads every existing file in paths into the process
// environment.
func loadDotenv(paths []string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
	}
	return nil
}

// secrets are the conventional un-prefixed variables a hosting platform
// injects. They override file and ARCHSITE_* values when set.
type secrets struct {
	UseCMS          string `env:"USE_CMS"`
	HygraphEndpoint string `env:"HYGRAPH_ENDPOINT"`
	HygraphToken    string `env:"HYGRAPH_TOKEN"`
	ContactEmail    string `env:"CONTACT_EMAIL"`
	SMTPHost        string `env:"SMTP_HOST"`
	SMTPPort        int    `env:"SMTP_PORT"`
	SMTPUser        string `env:"SMTP_USER"`
	SMTPPass        string `env:"SMTP_PASS"`
	SMTPSecure      string `env:"SMTP_SECURE"`
}

func applySecrets(cfg *Config) error {
	var s secrets
	if err := env.Parse(&s); err != nil {
		return fmt.Errorf("parsing secrets from environment: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(s.UseCMS)) {
	case "":
	case "true", "1", "yes":
		cfg.Backend = BackendCMS
	case "false", "0", "no":
		cfg.Backend = BackendMock
	default:
		return fmt.Errorf("invalid USE_CMS value %q", s.UseCMS)
	}

	if s.HygraphEndpoint != "" {
		cfg.CMS.Endpoint = s.HygraphEndpoint
	}
	if s.HygraphToken != "" {
		cfg.CMS.Token = s.HygraphToken
	}
	if s.ContactEmail != "" {
		cfg.Contact.Recipient = s.ContactEmail
	}
	if s.SMTPHost != "" {
		cfg.Contact.SMTP.Host = s.SMTPHost
	}
	if s.SMTPPort != 0 {
		cfg.Contact.SMTP.Port = s.SMTPPort
	}
	if s.SMTPUser != "" {
		cfg.Contact.SMTP.Username = s.SMTPUser
		if cfg.Contact.From == "" {
			cfg.Contact.From = s.SMTPUser
		}
	}
	if s.SMTPPass != "" {
		cfg.Contact.SMTP.Password = s.SMTPPass
	}
	if s.SMTPSecure != "" {
		cfg.Contact.SMTP.TLS = s.SMTPSecure == "true"
	}
	return nil
}
