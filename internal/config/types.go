package config

// BackendType selects where site content is fetched from.
type BackendType string

const (
	BackendMock BackendType = "mock"
	BackendCMS  BackendType = "cms"
)

// NotifierType selects how accepted contact inquiries are delivered.
type NotifierType string

const (
	NotifierSMTP    NotifierType = "smtp"
	NotifierWebhook NotifierType = "webhook"
	NotifierLog     NotifierType = "log"
)

// Config is the top-level archsite configuration, corresponding to .archsite.yml.
type Config struct {
	Backend       BackendType   `yaml:"backend" koanf:"backend"`
	ContentDir    string        `yaml:"content_dir" koanf:"content_dir"`
	OutputDir     string        `yaml:"output_dir" koanf:"output_dir"`
	StaticDir     string        `yaml:"static_dir" koanf:"static_dir"`
	StaticInclude []string      `yaml:"static_include" koanf:"static_include"`
	StaticExclude []string      `yaml:"static_exclude" koanf:"static_exclude"`
	BaseURL       string        `yaml:"base_url" koanf:"base_url"`
	CMS           CMSConfig     `yaml:"cms" koanf:"cms"`
	Contact       ContactConfig `yaml:"contact" koanf:"contact"`
	Server        ServerConfig  `yaml:"server" koanf:"server"`
}

// CMSConfig holds settings for the GraphQL content backend. The endpoint
// and token usually come from HYGRAPH_ENDPOINT / HYGRAPH_TOKEN instead.
type CMSConfig struct {
	Endpoint          string  `yaml:"endpoint" koanf:"endpoint"`
	Token             string  `yaml:"-" koanf:"token"`
	TimeoutSeconds    int     `yaml:"timeout_seconds" koanf:"timeout_seconds"`
	RequestsPerSecond float64 `yaml:"requests_per_second" koanf:"requests_per_second"`
}

// ContactConfig holds settings for the contact form endpoint.
type ContactConfig struct {
	Recipient         string       `yaml:"recipient" koanf:"recipient"`
	From              string       `yaml:"from" koanf:"from"`
	Notifier          NotifierType `yaml:"notifier" koanf:"notifier"`
	WebhookURL        string       `yaml:"webhook_url" koanf:"webhook_url"`
	MaxAttempts       int          `yaml:"max_attempts" koanf:"max_attempts"`
	WindowMinutes     int          `yaml:"window_minutes" koanf:"window_minutes"`
	PersistRateLimit  bool         `yaml:"persist_rate_limit" koanf:"persist_rate_limit"`
	DisposableDomains []string     `yaml:"disposable_domains" koanf:"disposable_domains"`
	SpamTerms         []string     `yaml:"spam_terms" koanf:"spam_terms"`
	SMTP              SMTPConfig   `yaml:"-" koanf:"smtp"`
}

// SMTPConfig holds outbound mail credentials. It is never written to disk.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	TLS      bool
}

// ServerConfig holds HTTP server settings shared by `serve` and `server`.
type ServerConfig struct {
	Port           int      `yaml:"port" koanf:"port"`
	DataDir        string   `yaml:"data_dir" koanf:"data_dir"`
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}
