package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment overrides of config keys.
// Nested keys use a double underscore: ARCHSITE_CMS__TIMEOUT_SECONDS.
const EnvPrefix = "ARCHSITE_"

// Load reads configuration from the given YAML file, overlays environment
// variable overrides (ARCHSITE_*), and finally applies the conventional
// un-prefixed secrets (SMTP_*, HYGRAPH_*, USE_CMS). Dotenv files in the
// working directory are loaded into the environment first.
func Load(path string) (*Config, error) {
	if err := loadDotenv(DotenvFiles); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := applySecrets(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envKey maps ARCHSITE_CMS__TIMEOUT_SECONDS to cms.timeout_seconds.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path. Secrets are
// never written.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// CMSTimeout returns the per-request timeout for the GraphQL backend.
func (c *Config) CMSTimeout() time.Duration {
	if c.CMS.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.CMS.TimeoutSeconds) * time.Second
}

// RateLimitWindow returns the rolling window for contact submissions.
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.Contact.WindowMinutes) * time.Minute
}

var validBackends = map[BackendType]bool{
	BackendMock: true,
	BackendCMS:  true,
}

var validNotifiers = map[NotifierType]bool{
	NotifierSMTP:    true,
	NotifierWebhook: true,
	NotifierLog:     true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Backend == "" {
		return fmt.Errorf("backend is required")
	}
	if !validBackends[c.Backend] {
		return fmt.Errorf("invalid backend %q: must be one of mock, cms", c.Backend)
	}

	switch c.Backend {
	case BackendMock:
		if c.ContentDir == "" {
			return fmt.Errorf("content_dir is required for the mock backend")
		}
	case BackendCMS:
		if c.CMS.Endpoint == "" {
			return fmt.Errorf("cms.endpoint (or HYGRAPH_ENDPOINT) is required for the cms backend")
		}
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.CMS.TimeoutSeconds < 0 {
		return fmt.Errorf("cms.timeout_seconds must be non-negative")
	}
	if c.CMS.RequestsPerSecond < 0 {
		return fmt.Errorf("cms.requests_per_second must be non-negative")
	}

	if !validNotifiers[c.Contact.Notifier] {
		return fmt.Errorf("invalid contact.notifier %q: must be one of smtp, webhook, log", c.Contact.Notifier)
	}
	if c.Contact.Notifier == NotifierWebhook && c.Contact.WebhookURL == "" {
		return fmt.Errorf("contact.webhook_url is required for the webhook notifier")
	}
	if c.Contact.Notifier == NotifierSMTP && c.Contact.Recipient == "" {
		return fmt.Errorf("contact.recipient (or CONTACT_EMAIL) is required for the smtp notifier")
	}
	if c.Contact.MaxAttempts <= 0 {
		return fmt.Errorf("contact.max_attempts must be positive")
	}
	if c.Contact.WindowMinutes <= 0 {
		return fmt.Errorf("contact.window_minutes must be positive")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	return nil
}
