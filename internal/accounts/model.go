package accounts

import "time"

// Account is a registered credential record. ID is an opaque identifier
// assigned at creation; Username is unique under case-insensitive comparison;
// PasswordHash is the encoded Argon2id hash, never the plaintext.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
