package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"forkcast/config"
	"forkcast/internal/client/api"
	"forkcast/internal/client/app"
	"forkcast/internal/client/cli"
	"forkcast/internal/client/session"
	logs "forkcast/internal/infra/log"
)

const (
	defaultServerURL   = "http://127.0.0.1:8080"
	defaultSessionPath = "forkcast-session.db"
	defaultTimeout     = 15 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("client exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	serverURL := defaultServerURL
	sessionPath := defaultSessionPath
	timeout := defaultTimeout
	if cfg.Client != nil {
		if cfg.Client.ServerURL != "" {
			serverURL = cfg.Client.ServerURL
		}
		if cfg.Client.SessionPath != "" {
			sessionPath = cfg.Client.SessionPath
		}
		if cfg.Client.Timeout > 0 {
			timeout = cfg.Client.Timeout
		}
	}

	store, err := session.New(sessionPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Warn("failed to close session store", slog.Any("error", closeErr))
		}
	}()

	apiClient := api.New(serverURL, store, logger, api.WithTimeout(timeout))

	// The shell renders the app's notices, so wire them up both ways.
	var shell *cli.CLI
	application := app.New(apiClient, store, logger, func(n app.Notice) { shell.Notify(n) })
	shell = cli.New(application, os.Stdin, os.Stdout, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return shell.Run(ctx)
}
