// Package cli implements the credkeeper command-line interface: argument
// parsing, password capture, and the register/login/check subcommands.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/credkeeper/internal/accounts"
	"github.com/dmitrijs2005/credkeeper/internal/auth"
	"github.com/dmitrijs2005/credkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/credkeeper/internal/config"
	"github.com/dmitrijs2005/credkeeper/internal/lockout"
	"github.com/dmitrijs2005/credkeeper/internal/logging"
	"github.com/dmitrijs2005/credkeeper/internal/storage"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

type App struct {
	config *config.Config
	auth   *auth.Service
	repos  storage.RepositoryManager
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	var (
		repos storage.RepositoryManager
		err   error
	)
	switch cfg.DatabaseEngine {
	case config.EnginePostgres:
		repos, err = storage.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	case config.EngineSQLite:
		repos, err = storage.NewSQLiteRepositoryManager(ctx, cfg.SQLitePath)
	default:
		err = fmt.Errorf("unknown database engine: %q", cfg.DatabaseEngine)
	}
	if err != nil {
		// the caller logs startup failures, see cmd/cli
		return nil, err
	}

	store := accounts.NewService(repos.Accounts())
	tracker := lockout.NewTracker(repos.Lockouts(), cfg.MaxLoginAttempts, cfg.LockoutDuration)

	return &App{
		config: cfg,
		auth:   auth.NewService(store, tracker),
		repos:  repos,
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		errOut: os.Stderr,
	}, nil
}

func (a *App) Close() error {
	return a.repos.Close()
}

// Run dispatches the subcommand and returns the process exit code: 0 on
// success, 1 on an operation failure, 2 on a usage error.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.printUsage()
		return ExitUsage
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "version":
		buildinfo.PrintBuildData(a.out)
		return ExitOK
	case "register", "login", "check":
		if len(rest) != 1 {
			fmt.Fprintf(a.errOut, "Error: %s needs <username>\n", command)
			a.printUsage()
			return ExitUsage
		}
	default:
		fmt.Fprintf(a.errOut, "Error: unknown command '%s'\n", command)
		a.printUsage()
		return ExitUsage
	}

	username := rest[0]

	switch command {
	case "register":
		return a.Register(ctx, username)
	case "login":
		return a.Login(ctx, username)
	default:
		return a.Check(ctx, username)
	}
}

func (a *App) printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(a.errOut,
		"Usage:\n"+
			"  %[1]s register <username>\n"+
			"  %[1]s login <username>\n"+
			"  %[1]s check <username>\n"+
			"  %[1]s version\n",
		name)
}
