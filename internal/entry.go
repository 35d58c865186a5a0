// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/brf/internal/journal"
	"github.com/starford/brf/internal/rename"
	"github.com/starford/brf/internal/storage"
)

// Done is printed after a run completes normally.
const Done = "Done!"

// Run parses the arguments and renames the files of the target directory.
// Usage and directory errors are returned as apperr.ErrUsage and
// apperr.ErrNotDirectory for the caller to report.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{
		out:    os.Stdout,
		logOut: os.Stderr,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		app.config = NewDefaultConfig()
	}

	cfg := app.config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(app.logOut, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	runCfg, err := rename.ParseArgs(app.args)
	if err != nil {
		return err
	}
	if err := runCfg.Validate(); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	store, err := storage.NewFS(runCfg.Dir)
	if err != nil {
		return err
	}

	logger.Debug("Configuration loaded",
		slog.String("dir", store.Root()),
		slog.String("mode", runCfg.Mode.String()),
		slog.Int("max_probes", cfg.Rename.MaxProbes),
		slog.String("journal", cfg.Journal.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	renamerOpts := []rename.Option{
		rename.WithLogger(logger),
		rename.WithMaxProbes(cfg.Rename.MaxProbes),
	}

	if cfg.Journal.Enabled() {
		db, err := journal.Open(cfg.Journal.Path)
		if err != nil {
			return fmt.Errorf("init journal: %w", err)
		}
		defer db.Close()

		run, err := db.BeginRun(ctx, journal.RunInfo{
			Dir:    store.Root(),
			Mode:   runCfg.Mode.String(),
			Prefix: runCfg.Prefix,
		})
		if err != nil {
			logger.Warn("journal disabled for this run", slog.String("error", err.Error()))
		} else {
			logger.Info("journal run started", slog.String("run_id", run.ID()))
			renamerOpts = append(renamerOpts, rename.WithRecorder(run))
		}
	}

	if _, err := rename.NewRenamer(store, runCfg, app.out, renamerOpts...).Run(ctx); err != nil {
		return err
	}

	fmt.Fprintln(app.out, Done)
	return nil
}
