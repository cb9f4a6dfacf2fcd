package config

import (
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/names72/internal/model"
	"github.com/ytget/names72/internal/platform"
)

// Settings exposes the loaded configuration to the application with
// resolved paths and clamped values
type Settings struct {
	cfg         *Config
	resourceDir string
}

// NewSettings creates a settings view over cfg. A nil cfg uses the defaults.
// The resource directory is resolved once, here.
func NewSettings(cfg *Config) *Settings {
	if cfg == nil {
		cfg = Default()
	}
	s := &Settings{cfg: cfg}

	dir, err := platform.FindResourceDir(cfg.Resources.Dir, cfg.Resources.CatalogFile)
	if err != nil {
		dir = cfg.Resources.Dir
	}
	s.resourceDir = dir
	return s
}

// ConfigFilePath returns where the configuration file is looked up: the
// app's storage root on mobile, the user config directory elsewhere
func ConfigFilePath(app fyne.App) string {
	if app != nil && platform.IsAndroid() {
		if root := app.Storage().RootURI(); root != nil {
			return filepath.Join(root.Path(), platform.ConfigFileName)
		}
	}
	path, err := platform.DefaultConfigFile()
	if err != nil {
		return ""
	}
	return path
}

// Config returns the underlying configuration
func (s *Settings) Config() *Config {
	return s.cfg
}

// GetResourceDir returns the resolved resource directory
func (s *Settings) GetResourceDir() string {
	return s.resourceDir
}

// GetCatalogFile returns the catalog file name relative to the resource directory
func (s *Settings) GetCatalogFile() string {
	return s.cfg.Resources.CatalogFile
}

// GetClipPattern returns the narration clip name pattern
func (s *Settings) GetClipPattern() string {
	return s.cfg.Resources.ClipPattern
}

// GetChartImagePath returns the absolute-or-relative path of the printable chart
func (s *Settings) GetChartImagePath() string {
	return s.resolve(s.cfg.Resources.ChartImage)
}

// GetHebrewFontPath returns the font used for the script forms, or "" for
// the theme default
func (s *Settings) GetHebrewFontPath() string {
	if s.cfg.Resources.HebrewFont == "" {
		return ""
	}
	return s.resolve(s.cfg.Resources.HebrewFont)
}

// GetSpeed returns the initial playback speed
func (s *Settings) GetSpeed() float64 {
	return model.ClampSpeed(s.cfg.Playback.Speed)
}

// GetLoop returns whether playback starts with looping enabled
func (s *Settings) GetLoop() bool {
	return s.cfg.Playback.Loop
}

// GetNarrationEnabled returns whether the audio device should be opened
func (s *Settings) GetNarrationEnabled() bool {
	return s.cfg.Playback.Narration
}

// GetReviewEnabled returns whether the rating prompt may be shown
func (s *Settings) GetReviewEnabled() bool {
	return s.cfg.Review.Enabled
}

// GetStoreURL returns the store page opened by the rating prompt
func (s *Settings) GetStoreURL() string {
	return s.cfg.Review.StoreURL
}

// GetLanguage returns the interface language code, "system" for the OS default
func (s *Settings) GetLanguage() string {
	if s.cfg.UI.Language == "" {
		return DefaultLanguage
	}
	return s.cfg.UI.Language
}

func (s *Settings) resolve(name string) string {
	if filepath.IsAbs(name) || s.resourceDir == "" {
		return name
	}
	return filepath.Join(s.resourceDir, name)
}
