// Package contact implements the contact form endpoint: validation, per-client
// rate limiting, persistence of accepted inquiries and delivery to the firm.
package contact

import (
	"fmt"
	"net/http"
	"time"
)

// Response messages shown to the visitor.
const (
	MsgSuccess          = "Email sent successfully"
	MsgRequired         = "All fields are required"
	MsgInvalidEmail     = "Invalid email address"
	MsgDisposableEmail  = "Please use a valid email address"
	MsgTooShort         = "Message is too short"
	MsgTooLong          = "Message is too long"
	MsgProhibited       = "Message contains prohibited content"
	MsgTooManyLinks     = "Too many links in message"
	MsgSendFailed       = "Error sending email"
	MsgMethodNotAllowed = "Method not allowed"
)

// Submission is the raw form as posted. Website is a honeypot field that
// humans never see and must leave empty.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Website string `json:"website"`
}

// Inquiry is an accepted submission.
type Inquiry struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Message       string    `json:"message"`
	ClientAddr    string    `json:"client_addr"`
	ReceivedAt    time.Time `json:"received_at"`
	Status        Status    `json:"status"`
	DeliveryError string    `json:"delivery_error,omitempty"`
}

// Status tracks delivery of a stored inquiry.
type Status string

const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
)

// Rejection is a user-facing refusal with an HTTP status classification:
// 400 for bad input, 429 when rate limited and 500 for delivery faults.
type Rejection struct {
	Status int
	Reason string
	Err    error
}

func (r *Rejection) Error() string {
	if r.Err != nil {
		return fmt.Sprintf("contact: %s (%d): %v", r.Reason, r.Status, r.Err)
	}
	return fmt.Sprintf("contact: %s (%d)", r.Reason, r.Status)
}

func (r *Rejection) Unwrap() error { return r.Err }

func badRequest(reason string) *Rejection {
	return &Rejection{Status: http.StatusBadRequest, Reason: reason}
}

func rateLimited(wait time.Duration) *Rejection {
	return &Rejection{
		Status: http.StatusTooManyRequests,
		Reason: fmt.Sprintf("Too many attempts. Please try again in %d minutes.", retryMinutes(wait)),
	}
}

// retryMinutes rounds wait up to whole minutes, never below one.
func retryMinutes(wait time.Duration) int {
	m := int((wait + time.Minute - 1) / time.Minute)
	if m < 1 {
		m = 1
	}
	return m
}
