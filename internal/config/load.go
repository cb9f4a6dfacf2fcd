package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable overrides, e.g.
// NAMES72_PLAYBACK_SPEED
const EnvPrefix = "NAMES72"

// Default values
const (
	DefaultCatalogFile = "72_names_kabbalah.csv"
	DefaultClipPattern = "name%d.mp3"
	DefaultChartImage  = "72names.jpg"
	DefaultSpeed       = 1.0
	DefaultLogLevel    = "info"
	DefaultLanguage    = "system"
)

var defaults = map[string]any{
	"resources.dir":          "",
	"resources.catalog_file": DefaultCatalogFile,
	"resources.clip_pattern": DefaultClipPattern,
	"resources.chart_image":  DefaultChartImage,
	"resources.hebrew_font":  "",
	"playback.speed":         DefaultSpeed,
	"playback.loop":          false,
	"playback.narration":     true,
	"review.enabled":         true,
	"review.store_url":       "",
	"log.level":              DefaultLogLevel,
	"log.console":            false,
	"ui.language":            DefaultLanguage,
}

// Load builds the configuration from defaults, the optional YAML file at
// path and NAMES72_ environment variables, in increasing precedence. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("error reading config file %s: %w", path, err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// defaults always validate unless the environment overrides them
		return &Config{
			Resources: ResourcesConfig{
				CatalogFile: DefaultCatalogFile,
				ClipPattern: DefaultClipPattern,
				ChartImage:  DefaultChartImage,
			},
			Playback: PlaybackConfig{Speed: DefaultSpeed, Narration: true},
			Review:   ReviewConfig{Enabled: true},
			Log:      LogConfig{Level: DefaultLogLevel},
		}
	}
	return cfg
}

// SlogLevel converts the configured level name
func (c LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
