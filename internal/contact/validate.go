package contact

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	urlPattern   = regexp.MustCompile(`(?i)https?://`)
)

// Rules are the content checks applied to a submission.
type Rules struct {
	DisposableDomains []string
	SpamTerms         []string
	MinLength         int
	MaxLength         int
	MaxURLs           int
}

// DefaultRules returns the standard limits with the given blocklists.
func DefaultRules(disposable, spam []string) Rules {
	return Rules{
		DisposableDomains: disposable,
		SpamTerms:         spam,
		MinLength:         10,
		MaxLength:         5000,
		MaxURLs:           3,
	}
}

// IsBot reports whether the honeypot field was filled in.
func IsBot(s Submission) bool {
	return strings.TrimSpace(s.Website) != ""
}

// Validate returns the first rule s breaks, or nil. Message length is
// counted in characters, not bytes.
func (r Rules) Validate(s Submission) *Rejection {
	name := strings.TrimSpace(s.Name)
	email := strings.TrimSpace(s.Email)
	if name == "" || email == "" || strings.TrimSpace(s.Message) == "" {
		return badRequest(MsgRequired)
	}

	if !emailPattern.MatchString(email) || !isMailbox(email) {
		return badRequest(MsgInvalidEmail)
	}
	if r.isDisposable(email) {
		return badRequest(MsgDisposableEmail)
	}

	n := utf8.RuneCountInString(s.Message)
	if n < r.MinLength {
		return badRequest(MsgTooShort)
	}
	if r.MaxLength > 0 && n > r.MaxLength {
		return badRequest(MsgTooLong)
	}

	lower := strings.ToLower(s.Message)
	for _, term := range r.SpamTerms {
		if term != "" && strings.Contains(lower, strings.ToLower(term)) {
			return badRequest(MsgProhibited)
		}
	}

	if len(urlPattern.FindAllStringIndex(s.Message, -1)) > r.MaxURLs {
		return badRequest(MsgTooManyLinks)
	}
	return nil
}

// isMailbox reports whether email is a bare RFC 5322 address, the form
// outgoing mail headers accept.
func isMailbox(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// isDisposable matches the address's domain, or any parent domain, against
// the blocklist.
func (r Rules) isDisposable(email string) bool {
	at := strings.LastIndex(email, "@")
	domain := strings.ToLower(email[at+1:])
	for _, blocked := range r.DisposableDomains {
		blocked = strings.ToLower(strings.TrimSpace(blocked))
		if blocked == "" {
			continue
		}
		if domain == blocked || strings.HasSuffix(domain, "."+blocked) {
			return true
		}
	}
	return false
}
