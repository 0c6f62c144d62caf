package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/semant/internal/client/cli"
	"github.com/dmitrijs2005/semant/internal/client/client"
	"github.com/dmitrijs2005/semant/internal/client/config"
	"github.com/dmitrijs2005/semant/internal/client/contrast"
	"github.com/dmitrijs2005/semant/internal/client/metrics"
	"github.com/dmitrijs2005/semant/internal/client/notify"
	"github.com/dmitrijs2005/semant/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/semant/internal/client/stores"
	"github.com/dmitrijs2005/semant/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogFormat, os.Stderr)

	db, err := client.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("local store init: %w", err)
	}
	defer db.Close()

	m := metrics.New()
	api, err := client.NewHTTPClient(cfg.ServerURL,
		client.WithTransport(m.Transport(nil)),
		client.WithTimeout(cfg.RequestTimeout),
		client.WithRateLimit(cfg.RateLimit),
	)
	if err != nil {
		return err
	}
	defer api.Close()

	notifier := notify.NewConsole(os.Stderr)
	reporter := notify.NewLogReporter(logger, notifier)

	collections := stores.NewCollections(api, reporter, logger)
	session := stores.NewSession(api, collections, metadata.NewSQLiteRepository(db), reporter, notifier, logger)

	app := cli.NewApp(session, collections, contrast.New(logger), m, logger, os.Stdin, os.Stdout)

	cmd := app.Command()
	cmd.SetArgs(config.CommandArgs(os.Args[1:]))
	return cmd.ExecuteContext(ctx)
}
