// Package auth orchestrates credential verification and lockout tracking
// into the register/login/check operations exposed to presentation code.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/accounts"
	"github.com/dmitrijs2005/credkeeper/internal/common"
)

// CredentialStore is the account-side collaborator.
type CredentialStore interface {
	Register(ctx context.Context, username string, password []byte) (*accounts.Account, error)
	Verify(ctx context.Context, username string, password []byte) (accountID string, ok bool, err error)
	Exists(ctx context.Context, username string) (bool, error)
}

// LockoutTracker is the failure-throttling collaborator.
type LockoutTracker interface {
	Status(ctx context.Context, username string) (locked bool, secondsRemaining int, err error)
	RecordFailure(ctx context.Context, username string) (int, error)
	RecordSuccess(ctx context.Context, username string) error
	MaxAttempts() int
	Duration() time.Duration
}

type Service struct {
	store   CredentialStore
	lockout LockoutTracker
}

func NewService(store CredentialStore, lockout LockoutTracker) *Service {
	return &Service{store: store, lockout: lockout}
}

// Register validates the credential format and creates the account. A
// duplicate username, in any case variation, yields ErrUsernameTaken.
// Validation failures never reach storage.
func (s *Service) Register(ctx context.Context, username string, password []byte) (string, error) {
	if err := ValidateUsername(username); err != nil {
		return "", err
	}
	if err := ValidatePassword(password); err != nil {
		return "", err
	}

	account, err := s.store.Register(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", ErrUsernameTaken
		}
		return "", err
	}

	return account.ID, nil
}

// Login verifies the credentials subject to the lockout policy.
//
// A locked account is refused up front, without verification and without
// touching the failure counter. A failed verification records one failure;
// the lockout threshold turns it into AccountLockedError, otherwise the
// caller is told how many attempts remain. A successful login clears the
// failure record and returns the account id.
func (s *Service) Login(ctx context.Context, username string, password []byte) (string, error) {
	locked, remaining, err := s.lockout.Status(ctx, username)
	if err != nil {
		return "", err
	}
	if locked {
		return "", &AccountLockedError{SecondsRemaining: remaining}
	}

	accountID, ok, err := s.store.Verify(ctx, username, password)
	if err != nil {
		return "", err
	}

	if !ok {
		count, err := s.lockout.RecordFailure(ctx, username)
		if err != nil {
			return "", err
		}
		if count >= s.lockout.MaxAttempts() {
			return "", &AccountLockedError{SecondsRemaining: int(s.lockout.Duration().Seconds())}
		}
		return "", &InvalidCredentialsError{AttemptsRemaining: s.lockout.MaxAttempts() - count}
	}

	if err := s.lockout.RecordSuccess(ctx, username); err != nil {
		return "", err
	}

	return accountID, nil
}

// Check reports whether the username is registered, case-insensitively. It
// has no lockout interaction and no side effects.
func (s *Service) Check(ctx context.Context, username string) (bool, error) {
	return s.store.Exists(ctx, username)
}
