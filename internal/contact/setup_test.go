package contact

import (
	"testing"

	"github.com/mckimdesign/archsite/internal/config"
)

func TestFromConfig(t *testing.T) {
	database := openTestDB(t)

	tests := []struct {
		name        string
		mod         func(c *config.Config)
		db          bool
		wantLimiter string
		wantNotify  string
		wantErr     bool
	}{
		{"defaults", func(c *config.Config) {}, false, "memory", "log", false},
		{"persisted", func(c *config.Config) { c.Contact.PersistRateLimit = true }, true, "sqlite", "log", false},
		{"persist without db", func(c *config.Config) { c.Contact.PersistRateLimit = true }, false, "memory", "log", false},
		{"webhook", func(c *config.Config) {
			c.Contact.Notifier = config.NotifierWebhook
			c.Contact.WebhookURL = "http://hooks.example"
		}, false, "memory", "webhook", false},
		{"smtp", func(c *config.Config) { c.Contact.Notifier = config.NotifierSMTP }, false, "memory", "smtp", false},
		{"smtp without host", func(c *config.Config) {
			c.Contact.Notifier = config.NotifierSMTP
			c.Contact.SMTP.Host = ""
		}, false, "", "", true},
		{"unknown notifier", func(c *config.Config) { c.Contact.Notifier = "pigeon" }, false, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mod(cfg)
			var d = database
			if !tt.db {
				d = nil
			}
			svc, err := FromConfig(cfg, d, "McKim Design")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("FromConfig: %v", err)
			}

			switch tt.wantLimiter {
			case "memory":
				if _, ok := svc.limiter.(*MemoryLimiter); !ok {
					t.Errorf("limiter = %T, want *MemoryLimiter", svc.limiter)
				}
			case "sqlite":
				if _, ok := svc.limiter.(*SQLiteLimiter); !ok {
					t.Errorf("limiter = %T, want *SQLiteLimiter", svc.limiter)
				}
			}
			switch tt.wantNotify {
			case "log":
				if _, ok := svc.notifier.(LogNotifier); !ok {
					t.Errorf("notifier = %T, want LogNotifier", svc.notifier)
				}
			case "webhook":
				if _, ok := svc.notifier.(*WebhookNotifier); !ok {
					t.Errorf("notifier = %T, want *WebhookNotifier", svc.notifier)
				}
			case "smtp":
				if _, ok := svc.notifier.(*SMTPNotifier); !ok {
					t.Errorf("notifier = %T, want *SMTPNotifier", svc.notifier)
				}
			}
			if (svc.store != nil) != tt.db {
				t.Errorf("store set = %v, want %v", svc.store != nil, tt.db)
			}
		})
	}
}
