package contact

import (
	"fmt"
	"log"

	"github.com/mckimdesign/archsite/internal/config"
	"github.com/mckimdesign/archsite/internal/db"
)

// FromConfig assembles a Service from configuration. database may be nil;
// then inquiries are not stored and rate limiting stays in memory.
func FromConfig(cfg *config.Config, database *db.DB, siteName string) (*Service, error) {
	cc := cfg.Contact
	rules := DefaultRules(cc.DisposableDomains, cc.SpamTerms)

	var limiter Limiter
	if cc.PersistRateLimit && database != nil {
		limiter = NewSQLiteLimiter(database, cc.MaxAttempts, cfg.RateLimitWindow())
	} else {
		if cc.PersistRateLimit {
			log.Printf("contact: persist_rate_limit set but no database open, using in-memory limiter")
		}
		limiter = NewMemoryLimiter(cc.MaxAttempts, cfg.RateLimitWindow())
	}

	var notifier Notifier
	switch cc.Notifier {
	case config.NotifierSMTP:
		if cc.SMTP.Host == "" {
			return nil, fmt.Errorf("contact: smtp notifier needs SMTP_HOST")
		}
		notifier = NewSMTPNotifier(SMTPSettings{
			Host:     cc.SMTP.Host,
			Port:     cc.SMTP.Port,
			Username: cc.SMTP.Username,
			Password: cc.SMTP.Password,
			TLS:      cc.SMTP.TLS,
			From:     cc.From,
			To:       cc.Recipient,
			SiteName: siteName,
		})
	case config.NotifierWebhook:
		notifier = NewWebhookNotifier(cc.WebhookURL)
	case config.NotifierLog, "":
		notifier = LogNotifier{}
	default:
		return nil, fmt.Errorf("contact: unknown notifier %q", cc.Notifier)
	}

	var store *Store
	if database != nil {
		store = NewStore(database)
	}
	return NewService(rules, limiter, notifier, store), nil
}
