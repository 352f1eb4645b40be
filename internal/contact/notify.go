package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
)

// Notifier delivers an accepted inquiry to the firm.
type Notifier interface {
	Notify(ctx context.Context, inq Inquiry) error
}

// LogNotifier writes inquiries to the process log. Useful in development
// and as a fallback when no delivery channel is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, inq Inquiry) error {
	log.Printf("contact: inquiry %s from %s <%s> (%d chars)", inq.ID, inq.Name, inq.Email, len([]rune(inq.Message)))
	return nil
}

// WebhookNotifier POSTs each inquiry as JSON to a URL.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

// NewWebhookNotifier creates a WebhookNotifier for url.
func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type webhookPayload struct {
	Event   string  `json:"event"`
	Inquiry Inquiry `json:"inquiry"`
}

func (n *WebhookNotifier) Notify(ctx context.Context, inq Inquiry) error {
	payload, err := json.Marshal(webhookPayload{Event: "contact.inquiry", Inquiry: inq})
	if err != nil {
		return fmt.Errorf("marshalling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// SMTPSettings are the outbound mail server and addressing for SMTPNotifier.
type SMTPSettings struct {
	Host     string
	Port     int
	Username string
	Password string
	// TLS selects implicit TLS (usually port 465). Otherwise STARTTLS is
	// used when the server offers it.
	TLS  bool
	From string
	To   string
	// SiteName appears in the subject and footer.
	SiteName string
}

// SMTPNotifier emails each inquiry to the firm with Reply-To set to the
// visitor, so answering the email reaches them directly.
type SMTPNotifier struct {
	settings SMTPSettings
	dial     func(ctx context.Context, m *mail.Msg) error
}

// NewSMTPNotifier creates an SMTPNotifier.
func NewSMTPNotifier(s SMTPSettings) *SMTPNotifier {
	n := &SMTPNotifier{settings: s}
	n.dial = n.send
	return n
}

func (n *SMTPNotifier) Notify(ctx context.Context, inq Inquiry) error {
	m, err := n.message(inq)
	if err != nil {
		return err
	}
	return n.dial(ctx, m)
}

// message builds the email for inq.
func (n *SMTPNotifier) message(inq Inquiry) (*mail.Msg, error) {
	s := n.settings
	from := s.From
	if from == "" {
		from = s.Username
	}

	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("setting from address %q: %w", from, err)
	}
	if err := m.To(s.To); err != nil {
		return nil, fmt.Errorf("setting recipient %q: %w", s.To, err)
	}
	if err := m.ReplyTo(inq.Email); err != nil {
		return nil, fmt.Errorf("setting reply-to %q: %w", inq.Email, err)
	}
	m.Subject("New Contact Form Submission from " + inq.Name)
	m.SetBodyString(mail.TypeTextHTML, inquiryHTML(inq, s.SiteName))
	m.AddAlternativeString(mail.TypeTextPlain, inquiryText(inq, s.SiteName))
	return m, nil
}

func (n *SMTPNotifier) send(ctx context.Context, m *mail.Msg) error {
	s := n.settings
	opts := []mail.Option{mail.WithPort(s.Port)}
	if s.TLS {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if s.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.Username),
			mail.WithPassword(s.Password),
		)
	}

	client, err := mail.NewClient(s.Host, opts...)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("sending mail via %s:%d: %w", s.Host, s.Port, err)
	}
	return nil
}

// inquiryHTML renders the visitor's input escaped, keeping line breaks.
func inquiryHTML(inq Inquiry, site string) string {
	msg := strings.ReplaceAll(html.EscapeString(inq.Message), "\n", "<br>")
	var b strings.Builder
	b.WriteString("<h3>New Contact Form Submission</h3>\n")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>\n", html.EscapeString(inq.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>\n", html.EscapeString(inq.Email))
	b.WriteString("<p><strong>Message:</strong></p>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n<hr>\n", msg)
	fmt.Fprintf(&b, "<p><small>Sent from %s website contact form</small></p>\n", html.EscapeString(site))
	return b.String()
}

func inquiryText(inq Inquiry, site string) string {
	return fmt.Sprintf("New Contact Form Submission\n\nName: %s\nEmail: %s\n\n%s\n\n--\nSent from %s website contact form\n",
		inq.Name, inq.Email, inq.Message, site)
}
