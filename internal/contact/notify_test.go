package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wneessen/go-mail"
)

func sampleInquiry() Inquiry {
	return Inquiry{
		ID:      "inq-1",
		Name:    "Ada <Admin>",
		Email:   "visitor@example.com",
		Message: "Line one\nLine <two> & more",
	}
}

func TestWebhookNotifier(t *testing.T) {
	var got webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := NewWebhookNotifier(srv.URL).Notify(context.Background(), sampleInquiry()); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if got.Event != "contact.inquiry" || got.Inquiry.ID != "inq-1" {
		t.Errorf("payload = %+v", got)
	}
}

func TestWebhookNotifierErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewWebhookNotifier(srv.URL).Notify(context.Background(), sampleInquiry())
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("err = %v, want status 502", err)
	}
}

func TestSMTPNotifierMessage(t *testing.T) {
	n := NewSMTPNotifier(SMTPSettings{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "site@example.com",
		To:       "office@example.com",
		SiteName: "McKim Design",
	})

	var sent *mail.Msg
	n.dial = func(_ context.Context, m *mail.Msg) error {
		sent = m
		return nil
	}
	if err := n.Notify(context.Background(), sampleInquiry()); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if sent == nil {
		t.Fatal("no message sent")
	}

	rcpts, err := sent.GetRecipients()
	if err != nil {
		t.Fatalf("GetRecipients: %v", err)
	}
	if len(rcpts) != 1 || rcpts[0] != "office@example.com" {
		t.Errorf("recipients = %v", rcpts)
	}
	subj := sent.GetGenHeader(mail.HeaderSubject)
	if len(subj) != 1 || subj[0] != "New Contact Form Submission from Ada <Admin>" {
		t.Errorf("subject = %v", subj)
	}

	var buf bytes.Buffer
	if _, err := sent.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	raw := buf.String()
	if !strings.Contains(raw, "Reply-To") || !strings.Contains(raw, "visitor@example.com") {
		t.Errorf("message lacks reply-to visitor:\n%s", raw)
	}
	if !strings.Contains(raw, "site@example.com") {
		t.Errorf("message lacks from address falling back to username:\n%s", raw)
	}
}

func TestSMTPNotifierBadRecipient(t *testing.T) {
	n := NewSMTPNotifier(SMTPSettings{From: "site@example.com", To: "not an address"})
	n.dial = func(context.Context, *mail.Msg) error {
		t.Fatal("dial should not be reached")
		return nil
	}
	if err := n.Notify(context.Background(), sampleInquiry()); err == nil {
		t.Fatal("expected error for invalid recipient")
	}
}

// Every address the form accepts must also be usable as a Reply-To header.
func TestSMTPNotifierAcceptsValidatedSenders(t *testing.T) {
	n := NewSMTPNotifier(SMTPSettings{From: "site@example.com", To: "office@example.com"})
	rules := testRules()
	for _, email := range []string{
		"a@b.com",
		"jane.doe+site@studio.example.com",
		"o'brien@example.ie",
		"john..doe@example.com",
		"a<b@example.com",
		"a,b@example.com",
		"x)@ex.com",
	} {
		sub := Submission{Name: "A", Email: email, Message: "Hello, interested in a renovation quote."}
		if rules.Validate(sub) != nil {
			continue
		}
		inq := sampleInquiry()
		inq.Email = email
		if _, err := n.message(inq); err != nil {
			t.Errorf("validated address %q rejected by mailer: %v", email, err)
		}
	}
}

func TestInquiryHTMLEscapes(t *testing.T) {
	body := inquiryHTML(sampleInquiry(), "McKim Design")
	if strings.Contains(body, "<Admin>") || strings.Contains(body, "<two>") {
		t.Errorf("visitor input not escaped:\n%s", body)
	}
	if !strings.Contains(body, "Line one<br>Line &lt;two&gt; &amp; more") {
		t.Errorf("line breaks not preserved:\n%s", body)
	}
	if !strings.Contains(body, "Sent from McKim Design website") {
		t.Errorf("footer missing:\n%s", body)
	}
}
