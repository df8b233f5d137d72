package accounts

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/cryptox"
)

// Service owns the account repository and the hashing engine. It is the only
// component that sees plaintext passwords; repositories only ever see the
// encoded hash.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register hashes the password and inserts a new account. The caller is
// expected to have validated the credential format already. A duplicate
// username (any case variation) yields common.ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, username string, password []byte) (*Account, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	account := &Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	account, err = s.repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return account, nil
}

// Verify looks up the stored hash for username and checks password against
// it. An unknown username and a wrong password are both reported as
// ok == false with a nil error, so callers cannot tell the cases apart.
// The error is non-nil only for storage failures.
func (s *Service) Verify(ctx context.Context, username string, password []byte) (accountID string, ok bool, err error) {
	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", false, nil
		}
		return "", false, common.ErrorInternal
	}

	if !cryptox.VerifyPassword(account.PasswordHash, password) {
		return "", false, nil
	}

	return account.ID, true, nil
}

// Exists reports whether the username is registered, case-insensitively.
func (s *Service) Exists(ctx context.Context, username string) (bool, error) {
	exists, err := s.repo.Exists(ctx, username)
	if err != nil {
		return false, common.ErrorInternal
	}
	return exists, nil
}
