package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []Inquiry
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, inq Inquiry) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, inq)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

type testEnv struct {
	svc      *Service
	notifier *recordingNotifier
	store    *Store
	router   chi.Router
	clock    time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		notifier: &recordingNotifier{},
		store:    NewStore(openTestDB(t)),
		clock:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	env.svc = NewService(testRules(), NewMemoryLimiter(3, 15*time.Minute), env.notifier, env.store)
	env.svc.now = func() time.Time { return env.clock }
	env.router = chi.NewRouter()
	RegisterRoutes(env.router, env.svc)
	return env
}

func (e *testEnv) postJSON(t *testing.T, client string, sub Submission) (int, response) {
	t.Helper()
	body, _ := json.Marshal(sub)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", client+", 10.1.1.1")
	return e.do(t, req)
}

func (e *testEnv) do(t *testing.T, req *http.Request) (int, response) {
	t.Helper()
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	var resp response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	return rec.Code, resp
}

var validSubmission = Submission{
	Name:    "A",
	Email:   "a@b.com",
	Message: "Hello, interested in a renovation quote.",
}

func TestSubmitValid(t *testing.T) {
	env := newTestEnv(t)

	code, resp := env.postJSON(t, "203.0.113.5", validSubmission)
	if code != http.StatusOK {
		t.Fatalf("status = %d (%s), want 200", code, resp.Message)
	}
	if resp.Message != MsgSuccess {
		t.Errorf("message = %q", resp.Message)
	}
	if env.notifier.count() != 1 {
		t.Fatalf("notifications = %d, want exactly 1", env.notifier.count())
	}

	inq, err := env.store.GetByID(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if inq.Status != StatusDelivered {
		t.Errorf("stored status = %q, want delivered", inq.Status)
	}
	if inq.ClientAddr != "203.0.113.5" {
		t.Errorf("ClientAddr = %q", inq.ClientAddr)
	}
}

func TestSubmitRejections(t *testing.T) {
	tests := []struct {
		name string
		sub  Submission
		want string
	}{
		{"spam", Submission{Name: "A", Email: "a@b.com", Message: "buy now and win the lottery"}, MsgProhibited},
		{"disposable", Submission{Name: "A", Email: "user@mailinator.com", Message: validSubmission.Message}, MsgDisposableEmail},
		{"missing", Submission{Email: "a@b.com", Message: validSubmission.Message}, MsgRequired},
		{"consecutive dots", Submission{Name: "A", Email: "john..doe@example.com", Message: validSubmission.Message}, MsgInvalidEmail},
		{"angle bracket", Submission{Name: "A", Email: "a<b@example.com", Message: validSubmission.Message}, MsgInvalidEmail},
		{"comma", Submission{Name: "A", Email: "a,b@example.com", Message: validSubmission.Message}, MsgInvalidEmail},
		{"paren", Submission{Name: "A", Email: "x)@ex.com", Message: validSubmission.Message}, MsgInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			code, resp := env.postJSON(t, "203.0.113.5", tt.sub)
			if code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", code)
			}
			if resp.Message != tt.want {
				t.Errorf("message = %q, want %q", resp.Message, tt.want)
			}
			if env.notifier.count() != 0 {
				t.Errorf("rejected submission was delivered")
			}
		})
	}
}

func TestSubmitRateLimited(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 3; i++ {
		if code, resp := env.postJSON(t, "203.0.113.5", validSubmission); code != http.StatusOK {
			t.Fatalf("submission %d: status %d (%s)", i+1, code, resp.Message)
		}
		env.clock = env.clock.Add(time.Minute)
	}

	code, resp := env.postJSON(t, "203.0.113.5", validSubmission)
	if code != http.StatusTooManyRequests {
		t.Fatalf("4th submission status = %d, want 429", code)
	}
	if resp.Message != "Too many attempts. Please try again in 12 minutes." {
		t.Errorf("message = %q", resp.Message)
	}
	if env.notifier.count() != 3 {
		t.Errorf("notifications = %d, want 3", env.notifier.count())
	}

	if code, _ := env.postJSON(t, "198.51.100.7", validSubmission); code != http.StatusOK {
		t.Errorf("other client status = %d, want 200", code)
	}

	env.clock = env.clock.Add(12 * time.Minute)
	if code, _ := env.postJSON(t, "203.0.113.5", validSubmission); code != http.StatusOK {
		t.Errorf("after window status = %d, want 200", code)
	}
}

func TestRejectedSubmissionsDoNotCount(t *testing.T) {
	env := newTestEnv(t)
	spam := Submission{Name: "A", Email: "a@b.com", Message: "click here to claim"}
	for i := 0; i < 5; i++ {
		env.postJSON(t, "203.0.113.5", spam)
	}
	if code, _ := env.postJSON(t, "203.0.113.5", validSubmission); code != http.StatusOK {
		t.Errorf("status = %d, want 200", code)
	}
}

func TestSubmitHoneypot(t *testing.T) {
	env := newTestEnv(t)
	bot := validSubmission
	bot.Website = "http://bot.example"

	for i := 0; i < 5; i++ {
		code, resp := env.postJSON(t, "203.0.113.5", bot)
		if code != http.StatusOK || resp.Message != MsgSuccess {
			t.Fatalf("honeypot response = %d %q, want silent success", code, resp.Message)
		}
		if resp.ID != "" {
			t.Errorf("honeypot response carries id %q", resp.ID)
		}
	}
	if env.notifier.count() != 0 {
		t.Errorf("honeypot submission was delivered")
	}
	list, _ := env.store.List(context.Background(), ListFilter{})
	if len(list) != 0 {
		t.Errorf("honeypot submission was stored")
	}
	if code, _ := env.postJSON(t, "203.0.113.5", validSubmission); code != http.StatusOK {
		t.Errorf("honeypot hits counted against the limit: status %d", code)
	}
}

func TestSubmitDeliveryFailure(t *testing.T) {
	env := newTestEnv(t)
	env.notifier.err = errors.New("connection refused")

	code, resp := env.postJSON(t, "203.0.113.5", validSubmission)
	if code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", code)
	}
	if resp.Message != MsgSendFailed {
		t.Errorf("message = %q", resp.Message)
	}
	if strings.Contains(resp.Message, "refused") {
		t.Errorf("transport detail leaked to visitor")
	}

	failed, err := env.store.List(context.Background(), ListFilter{Status: StatusFailed})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(failed) != 1 || failed[0].DeliveryError != "connection refused" {
		t.Errorf("failed inquiries = %+v", failed)
	}
}

func TestSubmitFormEncoded(t *testing.T) {
	env := newTestEnv(t)
	form := url.Values{
		"name":    {"A"},
		"email":   {"a@b.com"},
		"message": {validSubmission.Message},
		"website": {""},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "192.0.2.9:51234"

	code, resp := env.do(t, req)
	if code != http.StatusOK {
		t.Fatalf("status = %d (%s)", code, resp.Message)
	}
	inq, err := env.store.GetByID(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if inq.ClientAddr != "192.0.2.9" {
		t.Errorf("ClientAddr = %q, want remote host", inq.ClientAddr)
	}
}

func TestSubmitMalformedJSON(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	if code, _ := env.do(t, req); code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	code, resp := env.do(t, req)
	if code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", code)
	}
	if resp.Message != MsgMethodNotAllowed {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestClientAddr(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded", map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, "9.9.9.9:1", "1.2.3.4"},
		{"real ip", map[string]string{"X-Real-IP": "4.3.2.1"}, "9.9.9.9:1", "4.3.2.1"},
		{"remote", nil, "9.9.9.9:1", "9.9.9.9"},
		{"remote without port", nil, "9.9.9.9", "9.9.9.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := clientAddr(req); got != tt.want {
				t.Errorf("clientAddr = %q, want %q", got, tt.want)
			}
		})
	}
}
