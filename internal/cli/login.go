package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/auth"
	"github.com/dmitrijs2005/credkeeper/internal/common"
)

// Login captures a password and verifies the credentials, subject to the
// lockout policy. The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context, username string) int {
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		fmt.Fprintf(a.errOut, "Login failed: %s\n", err.Error())
		return ExitFailure
	}
	defer common.WipeByteArray(password)

	accountID, err := a.auth.Login(ctx, username, password)
	if err != nil {
		var lockedErr *auth.AccountLockedError
		var credErr *auth.InvalidCredentialsError
		switch {
		case errors.As(err, &lockedErr):
			fmt.Fprintf(a.errOut, "Account '%s' locked. Try again in %d seconds\n", username, lockedErr.SecondsRemaining)
		case errors.As(err, &credErr):
			fmt.Fprintf(a.errOut, "Login failed: invalid credentials (%d attempts remaining)\n", credErr.AttemptsRemaining)
		default:
			a.logger.Error(ctx, "login error", "error", err)
			fmt.Fprintln(a.errOut, "Login failed: internal error")
		}
		return ExitFailure
	}

	fmt.Fprintf(a.out, "Login OK (user_id=%s)\n", accountID)
	return ExitOK
}
