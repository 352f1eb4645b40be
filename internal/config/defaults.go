package config

// DefaultDisposableDomains are throwaway mail providers rejected by the contact form.
var DefaultDisposableDomains = []string{
	"tempmail.com",
	"guerrillamail.com",
	"10minutemail.com",
	"mailinator.com",
	"trashmail.com",
	"throwaway.email",
	"getnada.com",
	"temp-mail.org",
}

// DefaultSpamTerms are phrases that cause a contact message to be rejected.
var DefaultSpamTerms = []string{
	"viagra",
	"cialis",
	"casino",
	"lottery",
	"forex",
	"crypto",
	"bitcoin",
	"investment opportunity",
	"click here",
	"buy now",
}

// DefaultStaticExcludes are glob patterns never copied from the static dir.
var DefaultStaticExcludes = []string{
	".DS_Store",
	"**/.DS_Store",
	"**/*.psd",
	"**/*.sketch",
	"**/Thumbs.db",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Backend:       BackendMock,
		ContentDir:    "content/mock",
		OutputDir:     "public",
		StaticDir:     "static",
		StaticInclude: []string{"**"},
		StaticExclude: clone(DefaultStaticExcludes),
		CMS: CMSConfig{
			TimeoutSeconds:    10,
			RequestsPerSecond: 5,
		},
		Contact: ContactConfig{
			Recipient:         "kmckim@mckimdesign.com",
			Notifier:          NotifierLog,
			MaxAttempts:       3,
			WindowMinutes:     15,
			DisposableDomains: clone(DefaultDisposableDomains),
			SpamTerms:         clone(DefaultSpamTerms),
			SMTP: SMTPConfig{
				Host: "smtp.gmail.com",
				Port: 587,
			},
		},
		Server: ServerConfig{
			Port:           8080,
			DataDir:        ".archsite",
			AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		},
	}
}

// clone copies a default slice so unmarshalling over a Config never writes
// into the package-level defaults.
func clone(s []string) []string {
	return append([]string(nil), s...)
}
