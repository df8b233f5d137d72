package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/credkeeper/internal/cli"
	"github.com/dmitrijs2005/credkeeper/internal/config"
	"github.com/dmitrijs2005/credkeeper/internal/flagx"
	"github.com/dmitrijs2005/credkeeper/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup error", "error", err)
		return cli.ExitFailure
	}
	defer app.Close()

	// strip the config/engine flags so only the subcommand and its
	// arguments reach the dispatcher
	args := flagx.StripFlags(os.Args[1:], []string{"-c", "-config", "-e", "-d", "-f", "-m", "-l"})

	return app.Run(ctx, args)
}
