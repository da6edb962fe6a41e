package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lysyi3m/blogger2ghost/app/cfg"
	"github.com/lysyi3m/blogger2ghost/app/converter"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	appConfig, err := cfg.Load(args)
	if err != nil {
		var usageErr *cfg.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "Error: %v\n\n%s", usageErr.Err, usageErr.Usage)
			return 2
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if appConfig == nil {
		// Help was shown
		return 0
	}

	level := slog.LevelInfo
	if appConfig.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	slog.Info("Starting Blogger2Ghost",
		"version", appConfig.Version,
		"feed", appConfig.FeedPath,
		"output", appConfig.OutputDir,
		"workers", appConfig.Workers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outcome, err := converter.New(appConfig, nil).Run(ctx)
	if err != nil {
		slog.Error("Conversion failed", "error", err)
		return 1
	}

	slog.Info("Conversion complete",
		"run_dir", outcome.Bundle.Dir,
		"posts", len(outcome.Result.Posts),
		"images_downloaded", outcome.Downloads.Succeeded,
		"images_failed", outcome.Downloads.Failed)

	return 0
}
