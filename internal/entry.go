// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/starford/imaginarium/internal/imaging"
	"github.com/starford/imaginarium/internal/packfile"
	"github.com/starford/imaginarium/internal/packstore"
	"github.com/starford/imaginarium/internal/pipeline"
	"github.com/starford/imaginarium/internal/registry"
	"github.com/starford/imaginarium/internal/watch"
)

// Run starts the application with the given options: a single-shot pack
// build when an image path is set, inbox watch mode when enabled, or both.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	if app.imagePath == "" && !app.watch {
		return fmt.Errorf("nothing to do: provide an image or enable watch mode")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	plan := cfg.Pipeline.RolePlan
	if len(app.rolePlan) > 0 {
		plan = app.rolePlan
	}

	logger.Info("Configuration loaded",
		slog.String("output_path", cfg.Output.Path),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.Int("pack_size", len(plan)),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Load and validate the method catalog; a malformed template aborts here.
	reg, err := registry.New()
	if err != nil {
		return fmt.Errorf("init registry: %w", err)
	}
	logger.Info("Method registry loaded", slog.Int("methods", reg.Len()))

	// Ensure output directory exists.
	if err := os.MkdirAll(cfg.Output.Path, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	store, err := packfile.NewFS(cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("init pack store: %w", err)
	}

	db, err := packstore.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init pack index: %w", err)
	}
	defer db.Close()

	popts := pipeline.Options{
		PoolPerMethod: cfg.Pipeline.PoolPerMethod,
		TargetRMSDB:   cfg.Pipeline.TargetRMSDB,
	}

	buildOne := func(ctx context.Context, path string) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		img, hash, err := imaging.Decode(data)
		if err != nil {
			return err
		}
		pack, err := pipeline.Run(ctx, reg, img, hash, app.seed, plan, popts)
		if err != nil {
			return err
		}
		written, err := store.Write(pack)
		if err != nil {
			return err
		}
		if err := db.SavePack(pack); err != nil {
			return err
		}
		logger.Info("Pack built",
			slog.String("image", path),
			slog.String("image_hash", hash[:12]),
			slog.Int64("seed", app.seed),
			slog.Int("generators", len(pack.Generators)),
			slog.String("manifest", written))
		return nil
	}

	if app.imagePath != "" {
		if err := buildOne(ctx, app.imagePath); err != nil {
			return fmt.Errorf("build pack: %w", err)
		}
	}

	if !app.watch {
		return nil
	}

	if cfg.Inbox.Path == "" {
		return fmt.Errorf("watch mode requires inbox.path")
	}
	if err := os.MkdirAll(cfg.Inbox.Path, 0o755); err != nil {
		return fmt.Errorf("create inbox dir: %w", err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(watchCtx)

	g.Go(func() error {
		return watch.Watch(gCtx, cfg.Inbox.Path, logger, func(path string) error {
			return buildOne(gCtx, path)
		})
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
		}
		cancel()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Stopped successfully")
	return nil
}
