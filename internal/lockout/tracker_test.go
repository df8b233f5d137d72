package lockout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/common"
)

type fakeRepo struct {
	records map[string]*Record
	getErr  error
	recErr  error
	clrErr  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]*Record)}
}

func (f *fakeRepo) Get(ctx context.Context, username string) (*Record, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	record, ok := f.records[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return record, nil
}

func (f *fakeRepo) RecordFailure(ctx context.Context, username string, now int64, windowSeconds int64) (int, error) {
	if f.recErr != nil {
		return 0, f.recErr
	}
	record, ok := f.records[username]
	if !ok || now-record.LastAttemptUnix >= windowSeconds {
		record = &Record{Username: username, AttemptCount: 1, LastAttemptUnix: now}
		f.records[username] = record
		return 1, nil
	}
	record.AttemptCount++
	record.LastAttemptUnix = now
	return record.AttemptCount, nil
}

func (f *fakeRepo) Clear(ctx context.Context, username string) error {
	if f.clrErr != nil {
		return f.clrErr
	}
	delete(f.records, username)
	return nil
}

func newTestTracker(repo Repository, at time.Time) *Tracker {
	return NewTracker(repo, 3, 60*time.Second, WithClock(func() time.Time { return at }))
}

func TestTrackerStatusNoRecord(t *testing.T) {
	tracker := newTestTracker(newFakeRepo(), time.Unix(1000, 0))

	locked, remaining, err := tracker.Status(context.Background(), "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if locked || remaining != 0 {
		t.Errorf("expected clear state, got locked=%v remaining=%d", locked, remaining)
	}
}

func TestTrackerStatusBelowThreshold(t *testing.T) {
	repo := newFakeRepo()
	repo.records["bob"] = &Record{Username: "bob", AttemptCount: 2, LastAttemptUnix: 999}
	tracker := newTestTracker(repo, time.Unix(1000, 0))

	locked, remaining, err := tracker.Status(context.Background(), "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if locked || remaining != 0 {
		t.Errorf("expected clear state at 2 of 3 attempts, got locked=%v remaining=%d", locked, remaining)
	}
}

func TestTrackerStatusLocked(t *testing.T) {
	repo := newFakeRepo()
	repo.records["bob"] = &Record{Username: "bob", AttemptCount: 3, LastAttemptUnix: 1000}
	tracker := newTestTracker(repo, time.Unix(1010, 0))

	locked, remaining, err := tracker.Status(context.Background(), "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !locked {
		t.Fatal("expected locked state")
	}
	if remaining != 50 {
		t.Errorf("expected 50 seconds remaining, got %d", remaining)
	}
}

func TestTrackerStatusExpired(t *testing.T) {
	repo := newFakeRepo()
	repo.records["bob"] = &Record{Username: "bob", AttemptCount: 3, LastAttemptUnix: 1000}
	tracker := newTestTracker(repo, time.Unix(1060, 0))

	locked, remaining, err := tracker.Status(context.Background(), "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if locked || remaining != 0 {
		t.Errorf("expected expired window to read clear, got locked=%v remaining=%d", locked, remaining)
	}
}

func TestTrackerStatusNormalizesUsername(t *testing.T) {
	repo := newFakeRepo()
	repo.records["bob"] = &Record{Username: "bob", AttemptCount: 3, LastAttemptUnix: 1000}
	tracker := newTestTracker(repo, time.Unix(1010, 0))

	locked, _, err := tracker.Status(context.Background(), "BoB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !locked {
		t.Error("expected lockout to apply regardless of username case")
	}
}

func TestTrackerStatusRepoError(t *testing.T) {
	repo := newFakeRepo()
	repo.getErr = errors.New("boom")
	tracker := newTestTracker(repo, time.Unix(1000, 0))

	_, _, err := tracker.Status(context.Background(), "bob")
	if !errors.Is(err, common.ErrorInternal) {
		t.Errorf("expected ErrorInternal, got %v", err)
	}
}

func TestTrackerRecordFailureIncrements(t *testing.T) {
	repo := newFakeRepo()
	tracker := newTestTracker(repo, time.Unix(1000, 0))

	for want := 1; want <= 3; want++ {
		count, err := tracker.RecordFailure(context.Background(), "bob")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != want {
			t.Errorf("expected count %d, got %d", want, count)
		}
	}
}

func TestTrackerRecordFailureSlidingReset(t *testing.T) {
	repo := newFakeRepo()
	repo.records["bob"] = &Record{Username: "bob", AttemptCount: 3, LastAttemptUnix: 1000}
	tracker := newTestTracker(repo, time.Unix(1061, 0))

	count, err := tracker.RecordFailure(context.Background(), "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected counter to restart at 1 after the window, got %d", count)
	}
}

func TestTrackerRecordSuccessClears(t *testing.T) {
	repo := newFakeRepo()
	repo.records["bob"] = &Record{Username: "bob", AttemptCount: 2, LastAttemptUnix: 1000}
	tracker := newTestTracker(repo, time.Unix(1001, 0))

	if err := tracker.RecordSuccess(context.Background(), "BOB"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.records["bob"]; ok {
		t.Error("expected record to be cleared")
	}
}

func TestTrackerRecordSuccessRepoError(t *testing.T) {
	repo := newFakeRepo()
	repo.clrErr = errors.New("boom")
	tracker := newTestTracker(repo, time.Unix(1000, 0))

	if err := tracker.RecordSuccess(context.Background(), "bob"); !errors.Is(err, common.ErrorInternal) {
		t.Errorf("expected ErrorInternal, got %v", err)
	}
}
