package contact

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mckimdesign/archsite/internal/db"
)

// timeLayout is fixed-width so received_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store persists accepted inquiries so nothing is lost when delivery fails.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create inserts inq. If inq.ID is empty a UUID is generated and written
// back.
func (s *Store) Create(ctx context.Context, inq *Inquiry) error {
	if inq.ID == "" {
		inq.ID = uuid.New().String()
	}
	if inq.Status == "" {
		inq.Status = StatusPending
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_submissions (id, name, email, message, client_addr, received_at, status, delivery_error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inq.ID, inq.Name, inq.Email, inq.Message, inq.ClientAddr,
		inq.ReceivedAt.UTC().Format(timeLayout), string(inq.Status), inq.DeliveryError,
	)
	if err != nil {
		return fmt.Errorf("inserting inquiry: %w", err)
	}
	return nil
}

// SetStatus records the delivery outcome of an inquiry.
func (s *Store) SetStatus(ctx context.Context, id string, status Status, deliveryErr string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE contact_submissions SET status = ?, delivery_error = ? WHERE id = ?`,
		string(status), deliveryErr, id,
	)
	if err != nil {
		return fmt.Errorf("updating inquiry %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("inquiry %s not found", id)
	}
	return nil
}

// GetByID retrieves a single inquiry.
func (s *Store) GetByID(ctx context.Context, id string) (*Inquiry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, message, client_addr, received_at, status, delivery_error
		FROM contact_submissions WHERE id = ?`, id)
	return scanInquiry(row)
}

// ListFilter controls which inquiries List returns.
type ListFilter struct {
	Status Status
	Limit  int
}

// List returns inquiries newest first.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]Inquiry, error) {
	query := `SELECT id, name, email, message, client_addr, received_at, status, delivery_error
		FROM contact_submissions`
	var args []any
	if filter.Status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(filter.Status))
	}
	query += ` ORDER BY received_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing inquiries: %w", err)
	}
	defer rows.Close()

	var out []Inquiry
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *inq)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInquiry(sc scanner) (*Inquiry, error) {
	var (
		inq      Inquiry
		received string
		status   string
	)
	err := sc.Scan(&inq.ID, &inq.Name, &inq.Email, &inq.Message, &inq.ClientAddr, &received, &status, &inq.DeliveryError)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("inquiry not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning inquiry: %w", err)
	}
	inq.Status = Status(status)
	if inq.ReceivedAt, err = time.Parse(timeLayout, received); err != nil {
		return nil, fmt.Errorf("parsing received_at %q: %w", received, err)
	}
	return &inq, nil
}
