package contact

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service runs a submission through bot detection, rate limiting and
// validation, then stores and delivers it.
type Service struct {
	rules    Rules
	limiter  Limiter
	notifier Notifier
	store    *Store // optional
	now      func() time.Time
}

// NewService creates a Service. store may be nil, in which case accepted
// inquiries are delivered but not recorded.
func NewService(rules Rules, limiter Limiter, notifier Notifier, store *Store) *Service {
	return &Service{
		rules:    rules,
		limiter:  limiter,
		notifier: notifier,
		store:    store,
		now:      time.Now,
	}
}

// Submit handles one submission from client. It returns (nil, nil) when the
// honeypot is filled: the caller reports success but nothing is sent.
// Refusals are returned as *Rejection.
func (s *Service) Submit(ctx context.Context, client string, sub Submission) (*Inquiry, error) {
	if IsBot(sub) {
		log.Printf("contact: honeypot filled by %s, dropping", client)
		return nil, nil
	}

	now := s.now()
	wait, err := s.limiter.Check(ctx, client, now)
	if err != nil {
		return nil, &Rejection{Status: http.StatusInternalServerError, Reason: MsgSendFailed, Err: err}
	}
	if wait > 0 {
		return nil, rateLimited(wait)
	}

	if rej := s.rules.Validate(sub); rej != nil {
		return nil, rej
	}

	// A concurrent request may have filled the window since Check.
	wait, err = s.limiter.Reserve(ctx, client, now)
	if err != nil {
		return nil, &Rejection{Status: http.StatusInternalServerError, Reason: MsgSendFailed, Err: err}
	}
	if wait > 0 {
		return nil, rateLimited(wait)
	}

	inq := &Inquiry{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(sub.Name),
		Email:      strings.TrimSpace(sub.Email),
		Message:    strings.TrimSpace(sub.Message),
		ClientAddr: client,
		ReceivedAt: now.UTC(),
		Status:     StatusPending,
	}
	stored := false
	if s.store != nil {
		if err := s.store.Create(ctx, inq); err != nil {
			log.Printf("contact: storing inquiry from %s: %v", client, err)
		} else {
			stored = true
		}
	}

	if err := s.notifier.Notify(ctx, *inq); err != nil {
		log.Printf("contact: delivering inquiry %s: %v", inq.ID, err)
		inq.Status = StatusFailed
		inq.DeliveryError = err.Error()
		s.record(ctx, inq, stored)
		return inq, &Rejection{Status: http.StatusInternalServerError, Reason: MsgSendFailed, Err: err}
	}

	inq.Status = StatusDelivered
	s.record(ctx, inq, stored)
	return inq, nil
}

// record persists the delivery outcome. The request context may already
// be cancelled, so a detached context is used.
func (s *Service) record(ctx context.Context, inq *Inquiry, stored bool) {
	if !stored {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.store.SetStatus(ctx, inq.ID, inq.Status, inq.DeliveryError); err != nil {
		log.Printf("contact: updating inquiry %s: %v", inq.ID, err)
	}
}

// rejectionOf unwraps err into a Rejection, treating anything else as a
// server fault.
func rejectionOf(err error) *Rejection {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej
	}
	return &Rejection{Status: http.StatusInternalServerError, Reason: MsgSendFailed, Err: err}
}
