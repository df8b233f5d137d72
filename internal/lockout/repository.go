// Package lockout implements the failure-throttling state machine: a durable
// per-username failure counter with a time-based lockout window and sliding
// reset semantics.
package lockout

import "context"

// Repository is the persistence port for failure records. RecordFailure must
// be a single atomic read-modify-write per username, so concurrent failed
// logins can neither lose increments nor double-count.
type Repository interface {
	// Get returns the failure record for the username, or
	// common.ErrorNotFound when no failures are recorded.
	Get(ctx context.Context, username string) (*Record, error)

	// RecordFailure upserts the failure record atomically and returns the
	// new attempt count. If at least windowSeconds have elapsed since the
	// previous failure the counter restarts at 1, otherwise it increments.
	RecordFailure(ctx context.Context, username string, now int64, windowSeconds int64) (int, error)

	// Clear removes the failure record entirely.
	Clear(ctx context.Context, username string) error
}
