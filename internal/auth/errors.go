package auth

import (
	"errors"
	"fmt"
)

// ErrUsernameTaken is returned by Register when the username is already
// registered, in any case variation.
var ErrUsernameTaken = errors.New("username is already taken")

// InvalidFormatError is a local validation failure; it never reaches storage.
type InvalidFormatError struct {
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return e.Reason
}

// InvalidCredentialsError covers both an unknown username and a wrong
// password; callers cannot tell the two apart. AttemptsRemaining is feedback
// for the user, not a branching signal.
type InvalidCredentialsError struct {
	AttemptsRemaining int
}

func (e *InvalidCredentialsError) Error() string {
	return fmt.Sprintf("invalid credentials, %d attempt(s) remaining", e.AttemptsRemaining)
}

// AccountLockedError is a time-gated refusal. Repeating the login while
// locked returns the same error without recording further attempts.
type AccountLockedError struct {
	SecondsRemaining int
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account is locked, try again in %d second(s)", e.SecondsRemaining)
}
