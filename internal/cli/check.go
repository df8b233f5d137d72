package cli

import (
	"context"
	"fmt"
)

// Check reports whether the username is registered. The lookup is
// case-insensitive and always exits 0 unless storage fails.
func (a *App) Check(ctx context.Context, username string) int {
	exists, err := a.auth.Check(ctx, username)
	if err != nil {
		a.logger.Error(ctx, "check error", "error", err)
		fmt.Fprintln(a.errOut, "Check failed: internal error")
		return ExitFailure
	}

	if exists {
		fmt.Fprintf(a.out, "Username '%s' exists\n", username)
	} else {
		fmt.Fprintf(a.out, "Username '%s' not found\n", username)
	}
	return ExitOK
}
