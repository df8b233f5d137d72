// Package accounts implements the credential store: the account model, the
// storage repositories, and the service that hashes and verifies passwords.
package accounts

import "context"

// Repository is the persistence port for accounts. Username lookups are
// case-insensitive; uniqueness is enforced by the storage engine itself so
// concurrent registrations cannot both succeed.
type Repository interface {
	// Create inserts the account. A case-insensitive duplicate username
	// yields common.ErrorAlreadyExists.
	Create(ctx context.Context, account *Account) (*Account, error)

	// GetByUsername returns the account for the username, matched
	// case-insensitively. Absent accounts yield common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*Account, error)

	// Exists reports whether an account with the username exists,
	// matched case-insensitively.
	Exists(ctx context.Context, username string) (bool, error)
}
