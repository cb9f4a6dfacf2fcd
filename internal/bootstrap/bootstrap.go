// Package bootstrap assembles the application services shared by the
// desktop and terminal front ends.
package bootstrap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ytget/names72/internal/catalog"
	"github.com/ytget/names72/internal/config"
	"github.com/ytget/names72/internal/narration"
	"github.com/ytget/names72/internal/platform"
	"github.com/ytget/names72/internal/player"
)

// Options controls how the services are assembled
type Options struct {
	// ConfigPath is the YAML file to load; "" uses defaults and env only
	ConfigPath string
	// LogOutput receives log records, os.Stderr when nil
	LogOutput io.Writer
	// Sink overrides the audio output device, mostly for tests
	Sink narration.Sink
}

// Components holds the assembled services
type Components struct {
	Config   *config.Config
	Settings *config.Settings
	Catalog  *catalog.Catalog
	Narrator *narration.Service
	Player   *player.Player

	shutdownLogging platform.ShutdownFunc
}

// Setup loads the configuration and builds every service. Missing resources
// and an unavailable audio device are logged and leave the app in a
// degraded mode; only a broken logging setup is returned as an error.
func Setup(ctx context.Context, opts Options) (*Components, error) {
	cfg, cfgErr := config.Load(opts.ConfigPath)
	if cfgErr != nil {
		cfg = config.Default()
	}

	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	shutdown, err := platform.SetupLogging(out, cfg.Log.SlogLevel(), cfg.Log.Console)
	if err != nil {
		return nil, err
	}
	if cfgErr != nil {
		slog.Warn("configuration not loaded, using defaults", "path", opts.ConfigPath, "error", cfgErr)
	}

	settings := config.NewSettings(cfg)
	resourceDir := settings.GetResourceDir()
	if resourceDir == "" {
		resourceDir = "."
	}
	resources := os.DirFS(resourceDir)
	slog.Info("resources located", "dir", resourceDir)

	names := catalog.Load(ctx, resources, catalogPath(resourceDir, settings.GetCatalogFile()))

	sink := opts.Sink
	if sink == nil && settings.GetNarrationEnabled() {
		device, err := narration.NewDeviceSink()
		if err != nil {
			slog.Warn("audio output unavailable, narration disabled", "error", err)
		} else {
			sink = device
		}
	}
	narrator := narration.NewService(narration.Options{
		FS:      resources,
		Pattern: settings.GetClipPattern(),
		Sink:    sink,
	})
	if missing := narrator.Verify(); len(missing) > 0 {
		slog.Warn("narration clips missing", "count", len(missing), "first", missing[0])
	}

	seq := player.NewService(player.Options{
		Speed: settings.GetSpeed(),
		Loop:  settings.GetLoop(),
	})

	return &Components{
		Config:          cfg,
		Settings:        settings,
		Catalog:         names,
		Narrator:        narrator,
		Player:          seq,
		shutdownLogging: shutdown,
	}, nil
}

// Close stops playback, releases the audio device and flushes logs
func (c *Components) Close(ctx context.Context) error {
	c.Player.Close()
	var errs []error
	if err := c.Narrator.Close(); err != nil {
		errs = append(errs, err)
	}
	if c.shutdownLogging != nil {
		if err := c.shutdownLogging(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// catalogPath resolves the configured catalog file to a slash separated path
// inside resourceDir, tolerating a differently cased file name
func catalogPath(resourceDir, name string) string {
	found, err := platform.FindFileWithFallback(filepath.Join(resourceDir, name))
	if err != nil {
		return filepath.ToSlash(filepath.Clean(name))
	}
	rel, err := filepath.Rel(resourceDir, found)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(filepath.Clean(name))
	}
	return filepath.ToSlash(rel)
}
