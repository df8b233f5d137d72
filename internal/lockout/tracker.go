package lockout

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/common"
)

// Tracker evaluates the per-username lockout state machine on top of a
// Repository. A username is locked when it has accumulated at least
// maxAttempts consecutive failures and the most recent one is younger than
// the lockout duration. An expired run of failures collapses back to the
// clear state on the next read; the next failure then restarts the counter
// at 1 (sliding reset).
type Tracker struct {
	repo        Repository
	maxAttempts int
	duration    time.Duration
	now         func() time.Time
}

type TrackerOption func(*Tracker)

// WithClock overrides the wall clock, for tests that simulate the passage
// of time.
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) {
		t.now = now
	}
}

func NewTracker(repo Repository, maxAttempts int, duration time.Duration, opts ...TrackerOption) *Tracker {
	tracker := &Tracker{
		repo:        repo,
		maxAttempts: maxAttempts,
		duration:    duration,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(tracker)
	}
	return tracker
}

// MaxAttempts returns the configured failure threshold.
func (t *Tracker) MaxAttempts() int {
	return t.maxAttempts
}

// Duration returns the configured lockout window.
func (t *Tracker) Duration() time.Duration {
	return t.duration
}

// normalize lowercases the username so that records conflict correctly
// regardless of the case the caller used.
func normalize(username string) string {
	return strings.ToLower(username)
}

// Status reports whether the username is currently locked out and, if so,
// how many whole seconds remain until the window elapses. Clear and expired
// states both report (false, 0).
func (t *Tracker) Status(ctx context.Context, username string) (locked bool, secondsRemaining int, err error) {
	record, err := t.repo.Get(ctx, normalize(username))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, 0, nil
		}
		return false, 0, common.ErrorInternal
	}

	if record.AttemptCount < t.maxAttempts {
		return false, 0, nil
	}

	elapsed := t.now().Unix() - record.LastAttemptUnix
	window := int64(t.duration.Seconds())
	if elapsed >= window {
		return false, 0, nil
	}

	return true, int(window - elapsed), nil
}

// RecordFailure registers one failed login attempt and returns the new
// consecutive-failure count. Must be called on every failed verification,
// before the failure is reported to the caller.
func (t *Tracker) RecordFailure(ctx context.Context, username string) (int, error) {
	window := int64(t.duration.Seconds())
	count, err := t.repo.RecordFailure(ctx, normalize(username), t.now().Unix(), window)
	if err != nil {
		return 0, common.ErrorInternal
	}
	return count, nil
}

// RecordSuccess clears the failure record so a prior near-lockout does not
// linger past a successful login.
func (t *Tracker) RecordSuccess(ctx context.Context, username string) error {
	if err := t.repo.Clear(ctx, normalize(username)); err != nil {
		return common.ErrorInternal
	}
	return nil
}
