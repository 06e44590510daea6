// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/starford/ansuz/internal/build"
	"github.com/starford/ansuz/internal/render"
	"github.com/starford/ansuz/internal/storage"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured logger.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("drafts_path", cfg.Paths.Drafts),
		slog.String("site_path", cfg.Paths.Site),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Initialize storage over both directory roots.
	drafts, err := storage.NewFS(cfg.Paths.Drafts)
	if err != nil {
		return fmt.Errorf("init drafts storage: %w", err)
	}
	site, err := storage.NewFS(cfg.Paths.Site)
	if err != nil {
		return fmt.Errorf("init site storage: %w", err)
	}

	builder := build.New(drafts, site, siteView(cfg), logger)

	if app.clean {
		if err := builder.Clean(); err != nil {
			return err
		}
	}

	if _, err := builder.Run(ctx); err != nil {
		return err
	}
	logger.Info("Build finished")

	if !app.watch {
		return nil
	}

	// Watch mode keeps running until an interrupt or termination signal.
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return builder.Watch(ctx, cfg.Paths.Drafts)
}

// siteView maps configuration onto the rendered site identity.
func siteView(cfg *Config) render.Site {
	heading := cfg.Site.Heading
	if heading == "" {
		heading = cfg.Site.Name
	}
	return render.Site{
		Name:        cfg.Site.Name,
		Heading:     heading,
		Tagline:     cfg.Site.Tagline,
		Description: cfg.Site.Description,
		Author:      cfg.Site.Author,
		Email:       cfg.Site.Email,
		LinkedIn:    cfg.Site.LinkedIn,
		Year:        time.Now().Year(),
	}
}
