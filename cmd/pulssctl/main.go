package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/okian/pulss/internal/adapters/upstream"
	service "github.com/okian/pulss/internal/app"
	"github.com/okian/pulss/internal/cli"
	"github.com/okian/pulss/internal/config"
	"github.com/okian/pulss/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	// Logs go to stderr so stdout stays parseable.
	if err := logger.Init(logger.WithWriter(os.Stderr), logger.WithJSON(cfg.LogJSON)); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	level := os.Getenv("PULSSCTL_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	if err := logger.SetLevelString(level); err != nil {
		return err
	}
	log := logger.Get()

	dash := service.New(
		service.WithAPI(upstream.New(cfg.APIBaseURL,
			upstream.WithTimeout(cfg.RequestTimeout()),
			upstream.WithLogger(log.Named("upstream")),
		)),
		service.WithLogger(log),
		service.WithFallbackEnabled(cfg.FallbackEnabled),
		service.WithNewsDefaultLimit(cfg.NewsDefaultLimit),
	)

	app := &cli.App{
		Dashboard: dash,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		},
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
