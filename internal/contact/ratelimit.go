package contact

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/mckimdesign/archsite/internal/db"
)

// Limiter counts accepted submissions per client over a rolling window.
type Limiter interface {
	// Check returns a positive wait when client has no submissions left in
	// the current window.
	Check(ctx context.Context, client string, now time.Time) (time.Duration, error)
	// Reserve records an accepted submission for client. When the window is
	// already full it records nothing and returns a positive wait instead.
	Reserve(ctx context.Context, client string, now time.Time) (time.Duration, error)
}

// sweepThreshold is the number of tracked clients above which expired
// clients are dropped from a MemoryLimiter.
const sweepThreshold = 1000

// MemoryLimiter keeps attempt timestamps in process memory. History is
// lost on restart.
type MemoryLimiter struct {
	max    int
	window time.Duration

	mu       sync.Mutex
	attempts map[string][]time.Time
}

// NewMemoryLimiter allows max submissions per client within window.
func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		max:      max,
		window:   window,
		attempts: make(map[string][]time.Time),
	}
}

// live drops expired attempts for client and returns the rest, oldest
// first. Callers must hold l.mu.
func (l *MemoryLimiter) live(client string, now time.Time) []time.Time {
	cutoff := now.Add(-l.window)
	times := l.attempts[client]
	i := 0
	for i < len(times) && !times[i].After(cutoff) {
		i++
	}
	times = times[i:]
	if len(times) == 0 {
		delete(l.attempts, client)
		return nil
	}
	l.attempts[client] = times
	return times
}

func (l *MemoryLimiter) wait(times []time.Time, now time.Time) time.Duration {
	if len(times) < l.max {
		return 0
	}
	return times[0].Add(l.window).Sub(now)
}

func (l *MemoryLimiter) Check(_ context.Context, client string, now time.Time) (time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.wait(l.live(client, now), now), nil
}

func (l *MemoryLimiter) Reserve(_ context.Context, client string, now time.Time) (time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	times := l.live(client, now)
	if w := l.wait(times, now); w > 0 {
		return w, nil
	}
	l.attempts[client] = append(times, now)
	if len(l.attempts) > sweepThreshold {
		l.sweep(now)
	}
	return 0, nil
}

// sweep drops every client whose attempts have all expired. Callers must
// hold l.mu.
func (l *MemoryLimiter) sweep(now time.Time) {
	for client := range l.attempts {
		l.live(client, now)
	}
}

// Clients returns the number of clients with live history.
func (l *MemoryLimiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.attempts)
}

// SQLiteLimiter keeps attempt history in the database so limits survive
// restarts and are shared by processes using the same file.
type SQLiteLimiter struct {
	db     *db.DB
	max    int
	window time.Duration
}

// NewSQLiteLimiter allows max submissions per client within window.
func NewSQLiteLimiter(database *db.DB, max int, window time.Duration) *SQLiteLimiter {
	return &SQLiteLimiter{db: database, max: max, window: window}
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// live returns how many unexpired attempts client has and when the oldest
// of them was made.
func (l *SQLiteLimiter) live(ctx context.Context, q rowQuerier, client string, now time.Time) (int, time.Time, error) {
	var n int
	var oldest sql.NullInt64
	err := q.QueryRowContext(ctx, `
		SELECT COUNT(*), MIN(attempted_at) FROM contact_attempts
		WHERE client_addr = ? AND attempted_at > ?`,
		client, now.Add(-l.window).UnixNano(),
	).Scan(&n, &oldest)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("counting attempts: %w", err)
	}
	if !oldest.Valid {
		return n, time.Time{}, nil
	}
	return n, time.Unix(0, oldest.Int64), nil
}

func (l *SQLiteLimiter) wait(n int, oldest, now time.Time) time.Duration {
	if n < l.max {
		return 0
	}
	return oldest.Add(l.window).Sub(now)
}

func (l *SQLiteLimiter) Check(ctx context.Context, client string, now time.Time) (time.Duration, error) {
	n, oldest, err := l.live(ctx, l.db, client, now)
	if err != nil {
		return 0, err
	}
	return l.wait(n, oldest, now), nil
}

func (l *SQLiteLimiter) Reserve(ctx context.Context, client string, now time.Time) (time.Duration, error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	n, oldest, err := l.live(ctx, tx, client, now)
	if err != nil {
		return 0, err
	}
	if w := l.wait(n, oldest, now); w > 0 {
		return w, nil
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO contact_attempts (client_addr, attempted_at) VALUES (?, ?)`,
		client, now.UnixNano(),
	); err != nil {
		return 0, fmt.Errorf("recording attempt: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM contact_attempts WHERE attempted_at <= ?`,
		now.Add(-l.window).UnixNano(),
	); err != nil {
		return 0, fmt.Errorf("pruning attempts: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing attempt: %w", err)
	}
	return 0, nil
}
