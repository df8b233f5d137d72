package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/auth"
	"github.com/dmitrijs2005/credkeeper/internal/common"
)

// getPassword is an indirection used to facilitate testing.
var getPassword = GetPassword

// Register captures a password and creates the account. The password byte
// slice is wiped before returning.
func (a *App) Register(ctx context.Context, username string) int {
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		fmt.Fprintf(a.errOut, "Registration failed: %s\n", err.Error())
		return ExitFailure
	}
	defer common.WipeByteArray(password)

	if _, err := a.auth.Register(ctx, username, password); err != nil {
		var formatErr *auth.InvalidFormatError
		switch {
		case errors.As(err, &formatErr), errors.Is(err, auth.ErrUsernameTaken):
			fmt.Fprintf(a.errOut, "Registration failed: %s\n", err.Error())
		default:
			a.logger.Error(ctx, "registration error", "error", err)
			fmt.Fprintln(a.errOut, "Registration failed: internal error")
		}
		return ExitFailure
	}

	fmt.Fprintf(a.out, "Registered user '%s'\n", username)
	return ExitOK
}
